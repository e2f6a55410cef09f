package trail

import "github.com/tkrajina/gpxgo/gpx"

// Combine builds the output document: every original track, with the first
// track renamed and carrying the telemetry comment, plus one waypoint entry
// per generated label. The input document is left untouched.
func Combine(doc *gpx.GPX, ann Annotation) *gpx.GPX {
	out := &gpx.GPX{
		Version: doc.Version,
		Creator: "trailmark",
	}

	out.Tracks = append(out.Tracks, doc.Tracks...)
	if len(out.Tracks) > 0 {
		out.Tracks[0].Name = ann.TrackName
		out.Tracks[0].Comment = ann.Comment
	}

	for _, w := range ann.Waypoints {
		wpt := gpx.GPXPoint{
			Point: gpx.Point{Latitude: w.Latitude, Longitude: w.Longitude},
			Name:  w.Name,
		}
		if w.Elevation != nil {
			wpt.Elevation = *gpx.NewNullableFloat64(*w.Elevation)
		}
		out.Waypoints = append(out.Waypoints, wpt)
	}

	return out
}
