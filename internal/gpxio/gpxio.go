// Package gpxio loads and writes GPX documents for the trailmark pipeline.
package gpxio

import (
	"fmt"
	"os"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/planbiir/trailmark/internal/errs"
)

// Load reads and parses a GPX file and validates that it carries at least
// one track with at least one segment.
func Load(path string) (*gpx.GPX, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading GPX file %s: %w", path, err)
	}

	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformed, err)
	}

	if len(doc.Tracks) == 0 || len(doc.Tracks[0].Segments) == 0 {
		return nil, errs.ErrNoTrackData
	}

	return doc, nil
}

// Write serializes the document as GPX 1.1 and writes it to path, creating
// or overwriting the file. A failed write leaves the file in an undefined
// state; callers must not assume atomicity.
func Write(path string, doc *gpx.GPX) error {
	xmlBytes, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrOutputWrite, err)
	}

	if err := os.WriteFile(path, xmlBytes, 0644); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrOutputWrite, err)
	}

	return nil
}
