package trail

import (
	"fmt"
	"math"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/planbiir/trailmark/internal/errs"
)

// Millimeters per kilometer. Kilometer boundaries are compared in integer
// millimeters so a total distance landing exactly on a boundary still
// produces that marker regardless of float rounding.
const mmPerKm = 1_000_000

// ExtremePoints returns the highest and lowest points of the sequence,
// considering only points that carry elevation. Ties resolve to the first
// occurrence in sequence order.
func ExtremePoints(points []gpx.GPXPoint) (highest, lowest gpx.GPXPoint, err error) {
	found := false
	for _, p := range points {
		if p.Elevation.Null() {
			continue
		}
		if !found {
			highest, lowest = p, p
			found = true
			continue
		}
		if p.Elevation.Value() > highest.Elevation.Value() {
			highest = p
		}
		if p.Elevation.Value() < lowest.Elevation.Value() {
			lowest = p
		}
	}

	if !found {
		return gpx.GPXPoint{}, gpx.GPXPoint{}, errs.ErrNoElevationData
	}

	return highest, lowest, nil
}

// HalfwayPoint returns the first point whose cumulative distance reaches
// half the total. If no point does (single-point or zero-length track) the
// last point is returned as a fallback. cumKm must be index-aligned with
// points.
func HalfwayPoint(points []gpx.GPXPoint, cumKm []float64, totalKm float64) gpx.GPXPoint {
	half := totalKm / 2
	for i, d := range cumKm {
		if d >= half {
			return points[i]
		}
	}
	return points[len(points)-1]
}

// kilometerMarkers produces one waypoint per whole-kilometer boundary from
// 1 up to floor(totalKm) inclusive, each bound to the first point whose
// cumulative distance reaches the boundary.
func kilometerMarkers(prefix string, points []gpx.GPXPoint, cumKm []float64, totalKm float64) []Waypoint {
	totalMM := int64(math.Round(totalKm * mmPerKm))

	var marks []Waypoint
	for boundary := int64(mmPerKm); boundary <= totalMM; boundary += mmPerKm {
		for i, d := range cumKm {
			if int64(math.Round(d*mmPerKm)) >= boundary {
				marks = append(marks, newWaypoint(
					fmt.Sprintf("%s_KM%d", prefix, boundary/mmPerKm), points[i]))
				break
			}
		}
	}

	return marks
}

// climbTotals sums ascent and descent over consecutive point pairs. A pair
// with a missing elevation on either side contributes zero to both.
func climbTotals(points []gpx.GPXPoint) (ascent, descent float64) {
	for i := 1; i < len(points); i++ {
		if points[i].Elevation.Null() || points[i-1].Elevation.Null() {
			continue
		}
		diff := points[i].Elevation.Value() - points[i-1].Elevation.Value()
		if diff > 0 {
			ascent += diff
		} else {
			descent -= diff
		}
	}
	return ascent, descent
}
