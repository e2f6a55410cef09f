package trail

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// Waypoint is a named point of interest derived from the track. Coordinates
// are copied by value at creation time, so later edits to the track cannot
// move a generated waypoint.
type Waypoint struct {
	Name      string
	Latitude  float64
	Longitude float64
	Elevation *float64 // nil when the source point carries no elevation
}

func newWaypoint(name string, p gpx.GPXPoint) Waypoint {
	w := Waypoint{Name: name, Latitude: p.Latitude, Longitude: p.Longitude}
	if p.Elevation.NotNull() {
		ele := p.Elevation.Value()
		w.Elevation = &ele
	}
	return w
}

// Telemetry holds the summary aggregates computed over the full point
// sequence of the first segment.
type Telemetry struct {
	DistanceKm float64
	Points     int
	AscentM    float64
	DescentM   float64
	MinAltM    float64
	MaxAltM    float64
}

// String formats the telemetry as the multi-line block stored in the
// track comment.
func (t Telemetry) String() string {
	return fmt.Sprintf(
		"Total Distance: %.2f km\n"+
			"Number of Points: %d\n"+
			"Total Ascent: %.0f m\n"+
			"Total Descent: %.0f m\n"+
			"Minimum Altitude: %.0f m\n"+
			"Maximum Altitude: %.0f m",
		t.DistanceKm, t.Points, t.AscentM, t.DescentM, t.MinAltM, t.MaxAltM)
}

// Annotation is the full result of annotating a track: the new track name,
// the telemetry comment, and the ordered waypoint list. The caller applies
// name and comment when building the output document; Annotate itself never
// mutates the input.
type Annotation struct {
	TrackName string
	Comment   string
	Waypoints []Waypoint
	Telemetry Telemetry
}
