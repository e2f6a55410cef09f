// Package geo computes geodesic path lengths along GPX track points.
package geo

import (
	"fmt"
	"math"

	"github.com/tidwall/geodesic"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/planbiir/trailmark/internal/errs"
)

// Accumulate walks the ordered point sequence and returns the total path
// length in kilometers together with a cumulative-distance slice aligned
// index-for-index with points. Entry 0 is always 0; the last entry equals
// the returned total exactly.
//
// Pairwise distances are ellipsoidal surface distances on the WGS84
// reference ellipsoid, not spherical approximations.
func Accumulate(points []gpx.GPXPoint) (float64, []float64, error) {
	if len(points) == 0 {
		return 0, nil, errs.ErrEmptyTrack
	}

	total := 0.0
	cum := make([]float64, 1, len(points))

	for i := 1; i < len(points); i++ {
		var meters float64
		geodesic.WGS84.Inverse(
			points[i-1].Latitude, points[i-1].Longitude,
			points[i].Latitude, points[i].Longitude,
			&meters, nil, nil)

		if math.IsNaN(meters) || math.IsInf(meters, 0) || meters < 0 {
			return 0, nil, fmt.Errorf("%w: between points %d and %d", errs.ErrDistanceComputation, i-1, i)
		}

		total += meters / 1000
		cum = append(cum, total)
	}

	return total, cum, nil
}
