package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ojmakhura/hdbscan/constraint"
)

func TestNewBuildsAConstraintWithTheGivenFields(t *testing.T) {
	c := constraint.New(3, 7, constraint.CannotLink)
	require.Equal(t, 3, c.PointA)
	require.Equal(t, 7, c.PointB)
	require.Equal(t, constraint.CannotLink, c.Kind)
}

func TestKindStringNamesBothVariants(t *testing.T) {
	require.Equal(t, "must-link", constraint.MustLink.String())
	require.Equal(t, "cannot-link", constraint.CannotLink.String())
	require.Equal(t, "unknown", constraint.Kind(99).String())
}

func TestCountSatisfiedIsAlwaysZero(t *testing.T) {
	cs := []constraint.Constraint{constraint.New(0, 1, constraint.MustLink)}
	require.Zero(t, constraint.CountSatisfied(cs, []int{1, 1}))
	require.Zero(t, constraint.CountSatisfied(nil, nil))
}
