package slcconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// viperShape mirrors Options' fields for viper.Unmarshal; keys match the
// "slc" config section a caller's viper.Viper is expected to carry.
type viperShape struct {
	Epsilon                 float64 `mapstructure:"epsilon"`
	MaxPrimalDualIterations int     `mapstructure:"max_primal_dual_iterations"`
	MaxConnectivityRepairs  int     `mapstructure:"max_connectivity_repairs"`
}

// FromViper reads the "slc" section of v (epsilon, max_primal_dual_iterations,
// max_connectivity_repairs) and returns the equivalent Options. Fields left
// unset in v fall back to Options' own defaults.
func FromViper(v *viper.Viper) (Options, error) {
	var shape viperShape
	if err := v.UnmarshalKey("slc", &shape); err != nil {
		return Options{}, fmt.Errorf("slcconfig: reading viper config: %w", err)
	}

	opts := New()
	if shape.Epsilon > 0 {
		opts.Epsilon = shape.Epsilon
	}
	opts.MaxPrimalDualIterations = shape.MaxPrimalDualIterations
	opts.MaxConnectivityRepairs = shape.MaxConnectivityRepairs

	return opts, nil
}
