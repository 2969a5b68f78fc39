package h3go

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// BaseCellSuite checks the structural invariants the base-cell table must
// hold regardless of its exact numbering.
type BaseCellSuite struct {
	suite.Suite
}

func (s *BaseCellSuite) TestTableHasOneEntryPerBaseCell() {
	require.Len(s.T(), baseCellData, NUM_BASE_CELLS)
}

func (s *BaseCellSuite) TestExactlyTwelvePentagons() {
	count := 0
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPentagon(bc) {
			count++
		}
	}
	require.Equal(s.T(), NUM_PENTAGONS, count)
}

func (s *BaseCellSuite) TestRotate60cwAndCcwAreInverses() {
	for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		require.Equal(s.T(), d, _rotate60cw(_rotate60ccw(d)))
		require.Equal(s.T(), d, _rotate60ccw(_rotate60cw(d)))
	}
}

func (s *BaseCellSuite) TestRotate60ccwSixApplicationsIsIdentity() {
	for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		got := d
		for i := 0; i < 6; i++ {
			got = _rotate60ccw(got)
		}
		require.Equal(s.T(), d, got)
	}
}

func (s *BaseCellSuite) TestRotate60LeavesCenterFixed() {
	require.Equal(s.T(), CENTER_DIGIT, _rotate60ccw(CENTER_DIGIT))
	require.Equal(s.T(), CENTER_DIGIT, _rotate60cw(CENTER_DIGIT))
}

func (s *BaseCellSuite) TestRotate60PanicsOnInvalidDigit() {
	require.Panics(s.T(), func() { _rotate60ccw(INVALID_DIGIT) })
	require.Panics(s.T(), func() { _rotate60cw(INVALID_DIGIT) })
}

func TestBaseCellSuite(t *testing.T) {
	suite.Run(t, new(BaseCellSuite))
}
