// Package errs defines the error kinds surfaced by the trailmark pipeline.
// Every stage wraps one of these sentinels with fmt.Errorf("...: %w", ...)
// so the CLI can report a specific failure without unwrapping manually.
package errs

import "errors"

var (
	// ErrInvalidPath means the input path exists but is not a regular file,
	// or could not be inspected at all.
	ErrInvalidPath = errors.New("invalid file path")

	// ErrFileNotFound means the input path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidPrefix means the waypoint prefix contains characters other
	// than letters, digits and underscores.
	ErrInvalidPrefix = errors.New("invalid prefix")

	// ErrMalformed means the input could not be parsed as a GPX document.
	ErrMalformed = errors.New("malformed GPX document")

	// ErrNoTrackData means the document carries no track or no segment.
	ErrNoTrackData = errors.New("no valid track data found in GPX file")

	// ErrEmptyTrack means the first segment has zero points.
	ErrEmptyTrack = errors.New("no track points available")

	// ErrNoElevationData means no point in the segment carries elevation,
	// so elevation extremes and telemetry cannot be computed.
	ErrNoElevationData = errors.New("no valid elevation data found")

	// ErrDistanceComputation means a pairwise geodesic distance came back
	// non-finite or negative.
	ErrDistanceComputation = errors.New("distance computation failed")

	// ErrOutputWrite means serializing or writing the output file failed.
	ErrOutputWrite = errors.New("saving combined GPX failed")
)
