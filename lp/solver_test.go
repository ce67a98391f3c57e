package lp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowaypoint/slc/lp"
)

func TestSolver_BinaryChoice(t *testing.T) {
	s := lp.NewSolver()
	x1 := s.AddColumn(lp.Binary, 0, 1, 3)
	x2 := s.AddColumn(lp.Binary, 0, 1, 5)
	s.AddRow(1, 1, []lp.Coef{{VarID: x1, Coef: 1}, {VarID: x2, Coef: 1}})

	status, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, status)
	require.InDelta(t, 3.0, s.ObjectiveValue(), 1e-6)
	require.InDelta(t, 1.0, s.Value(x1), 1e-6)
	require.InDelta(t, 0.0, s.Value(x2), 1e-6)
}

func TestSolver_Infeasible(t *testing.T) {
	s := lp.NewSolver()
	x1 := s.AddColumn(lp.Continuous, 0, 1, 1)
	s.AddRow(2, 2, []lp.Coef{{VarID: x1, Coef: 1}}) // x1 = 2 but ub is 1
	status, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, lp.StatusInfeasible, status)
}
