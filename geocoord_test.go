package h3go

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDegsRadsRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 1, -45, 90, -90, 179.999} {
		rad := DegsToRads(deg)
		require.InDelta(t, deg, RadsToDegs(rad), 1e-9)
	}
}

func TestPointDistRadsZeroForSamePoint(t *testing.T) {
	var p GeoCoord
	p.setGeoDegs(12.34, 56.78)
	require.InDelta(t, 0.0, PointDistRads(&p, &p), 1e-12)
}

func TestPointDistRadsQuarterCircle(t *testing.T) {
	var a, b GeoCoord
	a.setGeoDegs(0, 0)
	b.setGeoDegs(0, 90)
	require.InDelta(t, math.Pi/2, PointDistRads(&a, &b), 1e-9)
}

func TestConstrainLngWrapsToRange(t *testing.T) {
	got := constrainLng(3 * math.Pi)
	require.True(t, got >= -math.Pi && got <= math.Pi)
}

func TestGeoAzDistanceRadsRoundTripsWithPointDistRads(t *testing.T) {
	var origin GeoCoord
	origin.setGeoDegs(10, 20)

	const distance = 0.25 // radians
	for _, az := range []float64{0, math.Pi / 4, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		dest := origin.geoAzDistanceRads(az, distance)
		require.InDelta(t, distance, PointDistRads(&origin, &dest), 1e-9)
	}
}

func TestGeoAzDistanceRadsZeroDistanceReturnsOrigin(t *testing.T) {
	var origin GeoCoord
	origin.setGeoDegs(-33, 151)
	dest := origin.geoAzDistanceRads(math.Pi/3, 0)
	require.Equal(t, origin, dest)
}
