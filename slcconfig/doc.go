// Package slcconfig holds the ambient tunables shared by the matching and lp
// components: numerical tolerance, iteration safety caps, and the
// connectivity-repair retry bound. Options are built with functional
// options, matching this module's convention elsewhere; an optional
// FromViper loader lets a CLI or service wrapper source the same tunables
// from file or environment without the algorithmic packages depending on
// viper directly.
package slcconfig
