package h3go

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CoordIJKSuite exercises the IJK coordinate algebra in isolation from the
// cell-index encoding built on top of it.
type CoordIJKSuite struct {
	suite.Suite
}

func (s *CoordIJKSuite) TestNormalizeIsIdempotent() {
	ijk := CoordIJK{i: 4, j: -2, k: 9}
	ijk.Normalize()
	once := ijk
	ijk.Normalize()
	require.Equal(s.T(), once, ijk)

	m := min3(ijk.i, ijk.j, ijk.k)
	require.Zero(s.T(), m)
}

func (s *CoordIJKSuite) TestUnitVecsRoundTripThroughDigit() {
	for d := 0; d < NUM_DIGITS; d++ {
		ijk := UNIT_VECS[d]
		require.Equal(s.T(), Direction(d), ijk.UnitToDigit())
	}
}

func (s *CoordIJKSuite) TestRotate60RoundTrip() {
	for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		ijk := UNIT_VECS[d]
		ijk.Rotate60ccw()
		ijk.Rotate60cw()
		require.Equal(s.T(), UNIT_VECS[d], ijk)
	}
}

func (s *CoordIJKSuite) TestRotate60ccwSixTimesIsIdentity() {
	for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		ijk := UNIT_VECS[d]
		for i := 0; i < 6; i++ {
			ijk.Rotate60ccw()
		}
		require.Equal(s.T(), UNIT_VECS[d], ijk)
	}
}

func (s *CoordIJKSuite) TestDistanceToSelfIsZero() {
	ijk := CoordIJK{i: 3, j: 1, k: 0}
	require.Zero(s.T(), ijkDistance(&ijk, &ijk))
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func TestCoordIJKSuite(t *testing.T) {
	suite.Run(t, new(CoordIJKSuite))
}
