package h3go_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	h3 "github.com/h3grid/h3go"
)

// CellSuite exercises the idiomatic public API end to end.
type CellSuite struct {
	suite.Suite
}

func (s *CellSuite) TestLatLngToCellRoundTripsCenter() {
	p := h3.LatLng{Lat: 37.775, Lng: -122.418}
	for res := 0; res <= 15; res++ {
		cell, err := h3.LatLngToCell(p, res)
		require.NoError(s.T(), err)
		require.True(s.T(), h3.IsValidCell(cell))
		require.Equal(s.T(), res, h3.GetResolution(cell))

		center, err := h3.CellToLatLng(cell)
		require.NoError(s.T(), err)

		back, err := h3.LatLngToCell(center, res)
		require.NoError(s.T(), err)
		require.Equal(s.T(), cell, back, "round trip through the cell center should be stable")
	}
}

func (s *CellSuite) TestLatLngToCellRejectsBadResolution() {
	p := h3.LatLng{Lat: 0, Lng: 0}

	_, err := h3.LatLngToCell(p, -1)
	require.Error(s.T(), err)

	_, err = h3.LatLngToCell(p, 16)
	require.Error(s.T(), err)
}

func (s *CellSuite) TestCellToLatLngRejectsInvalidCell() {
	_, err := h3.CellToLatLng(h3.H3Index(0))
	require.Error(s.T(), err)
}

func (s *CellSuite) TestCellToParentIsIdentityAtOwnResolution() {
	p := h3.LatLng{Lat: 51.5, Lng: -0.12}
	cell, err := h3.LatLngToCell(p, 9)
	require.NoError(s.T(), err)

	parent, err := h3.CellToParent(cell, h3.GetResolution(cell))
	require.NoError(s.T(), err)
	require.Equal(s.T(), cell, parent)
}

func (s *CellSuite) TestCellToParentWalksUpResolutions() {
	p := h3.LatLng{Lat: 51.5, Lng: -0.12}
	cell, err := h3.LatLngToCell(p, 9)
	require.NoError(s.T(), err)

	for r := 9; r >= 0; r-- {
		parent, err := h3.CellToParent(cell, r)
		require.NoError(s.T(), err)
		require.Equal(s.T(), r, h3.GetResolution(parent))
	}
}

func (s *CellSuite) TestCellToParentRejectsResolutionAboveCell() {
	p := h3.LatLng{Lat: 10, Lng: 10}
	cell, err := h3.LatLngToCell(p, 5)
	require.NoError(s.T(), err)

	_, err = h3.CellToParent(cell, 6)
	require.Error(s.T(), err)
}

func (s *CellSuite) TestCellToCenterChildAndBackToParent() {
	p := h3.LatLng{Lat: 10, Lng: 10}
	cell, err := h3.LatLngToCell(p, 3)
	require.NoError(s.T(), err)

	child, err := h3.CellToCenterChild(cell, 8)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, h3.GetResolution(child))

	parent, err := h3.CellToParent(child, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), cell, parent)
}

func (s *CellSuite) TestCellToChildrenSizeMatchesHexagonFormula() {
	p := h3.LatLng{Lat: 10, Lng: 10}
	cell, err := h3.LatLngToCell(p, 3)
	require.NoError(s.T(), err)
	require.False(s.T(), h3.IsPentagon(cell), "test fixture expects a non-pentagon cell")

	size, err := h3.CellToChildrenSize(cell, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 49, size) // 7^(5-3)
}

func (s *CellSuite) TestCellToBoundaryVertexCounts() {
	hexPoint := h3.LatLng{Lat: 10, Lng: 10}
	cell, err := h3.LatLngToCell(hexPoint, 4)
	require.NoError(s.T(), err)
	require.False(s.T(), h3.IsPentagon(cell))

	boundary, err := h3.CellToBoundary(cell)
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), len(boundary), 6)
	require.LessOrEqual(s.T(), len(boundary), 10)
}

func (s *CellSuite) TestIsResClassIIIAlternatesByResolution() {
	p := h3.LatLng{Lat: 40, Lng: 40}
	for res := 0; res <= 10; res++ {
		cell, err := h3.LatLngToCell(p, res)
		require.NoError(s.T(), err)
		require.Equal(s.T(), res%2 == 1, h3.IsResClassIII(cell))
	}
}

func (s *CellSuite) TestGetBaseCellNumberInRange() {
	p := h3.LatLng{Lat: -33.86, Lng: 151.2}
	cell, err := h3.LatLngToCell(p, 6)
	require.NoError(s.T(), err)

	bc := h3.GetBaseCellNumber(cell)
	require.GreaterOrEqual(s.T(), bc, 0)
	require.LessOrEqual(s.T(), bc, 121)
}

func (s *CellSuite) TestIsValidCellRejectsZero() {
	require.False(s.T(), h3.IsValidCell(h3.H3Index(0)))
}

func (s *CellSuite) TestCellToChildrenCountMatchesChildrenSize() {
	p := h3.LatLng{Lat: 10, Lng: 10}
	cell, err := h3.LatLngToCell(p, 3)
	require.NoError(s.T(), err)
	require.False(s.T(), h3.IsPentagon(cell), "test fixture expects a non-pentagon cell")

	children, err := h3.CellToChildren(cell, 5)
	require.NoError(s.T(), err)

	size, err := h3.CellToChildrenSize(cell, 5)
	require.NoError(s.T(), err)
	require.Len(s.T(), children, size)

	for _, child := range children {
		parent, err := h3.CellToParent(child, 3)
		require.NoError(s.T(), err)
		require.Equal(s.T(), cell, parent)
	}
}

func (s *CellSuite) TestCellToFacesWithinMaxFaceCount() {
	p := h3.LatLng{Lat: 10, Lng: 10}
	cell, err := h3.LatLngToCell(p, 4)
	require.NoError(s.T(), err)

	faces, err := h3.CellToFaces(cell)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), faces)
	for _, f := range faces {
		require.GreaterOrEqual(s.T(), f, 0)
		require.LessOrEqual(s.T(), f, 19)
	}
}

func (s *CellSuite) TestGetPentagonsReturnsTwelve() {
	pentagons, err := h3.GetPentagons(5)
	require.NoError(s.T(), err)
	require.Len(s.T(), pentagons, 12)
	for _, p := range pentagons {
		require.True(s.T(), h3.IsPentagon(p))
		require.Equal(s.T(), 5, h3.GetResolution(p))
	}
}

func (s *CellSuite) TestGetPentagonsRejectsBadResolution() {
	_, err := h3.GetPentagons(-1)
	require.Error(s.T(), err)
}

func (s *CellSuite) TestParseCellRoundTripsWithString() {
	p := h3.LatLng{Lat: 22.5, Lng: -45.25}
	cell, err := h3.LatLngToCell(p, 7)
	require.NoError(s.T(), err)

	parsed, err := h3.ParseCell(cell.String())
	require.NoError(s.T(), err)
	require.Equal(s.T(), cell, parsed)
}

func (s *CellSuite) TestParseCellRejectsGarbage() {
	_, err := h3.ParseCell("not-hex")
	require.Error(s.T(), err)
}

func TestCellSuite(t *testing.T) {
	suite.Run(t, new(CellSuite))
}
