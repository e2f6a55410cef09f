// Package trail derives waypoints and summary telemetry from a GPX track.
//
// Only the first segment of the first track is analyzed. The generated
// waypoint list has a fixed, observable order: trailhead, trail end,
// kilometer markers ascending, highest point, lowest point, halfway point.
package trail

import (
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/planbiir/trailmark/internal/errs"
	"github.com/planbiir/trailmark/internal/geo"
)

// Annotate analyzes the first track of doc and returns the derived
// waypoints, the new track name (the prefix) and the telemetry comment.
// The input document is not modified.
func Annotate(doc *gpx.GPX, prefix string) (Annotation, error) {
	if len(doc.Tracks) == 0 || len(doc.Tracks[0].Segments) == 0 {
		return Annotation{}, errs.ErrNoTrackData
	}

	points := doc.Tracks[0].Segments[0].Points
	if len(points) == 0 {
		return Annotation{}, errs.ErrEmptyTrack
	}

	totalKm, cumKm, err := geo.Accumulate(points)
	if err != nil {
		return Annotation{}, err
	}

	waypoints := []Waypoint{
		newWaypoint(prefix+"_TH", points[0]),
		newWaypoint(prefix+"_TE", points[len(points)-1]),
	}

	waypoints = append(waypoints, kilometerMarkers(prefix, points, cumKm, totalKm)...)

	highest, lowest, err := ExtremePoints(points)
	if err != nil {
		return Annotation{}, err
	}
	waypoints = append(waypoints,
		newWaypoint(prefix+"_HGH", highest),
		newWaypoint(prefix+"_LWT", lowest))

	waypoints = append(waypoints, newWaypoint(prefix+"_HLF", HalfwayPoint(points, cumKm, totalKm)))

	ascent, descent := climbTotals(points)
	tel := Telemetry{
		DistanceKm: totalKm,
		Points:     len(points),
		AscentM:    ascent,
		DescentM:   descent,
		MinAltM:    lowest.Elevation.Value(),
		MaxAltM:    highest.Elevation.Value(),
	}

	return Annotation{
		TrackName: prefix,
		Comment:   tel.String(),
		Waypoints: waypoints,
		Telemetry: tel,
	}, nil
}
