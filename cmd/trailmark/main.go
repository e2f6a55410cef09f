package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/planbiir/trailmark/internal/errs"
	"github.com/planbiir/trailmark/internal/gpxio"
	"github.com/planbiir/trailmark/internal/trail"
)

const version = "1.0.0"

var prefixPattern = regexp.MustCompile(`^\w+$`)

func main() {
	var dryRun bool

	root := &cobra.Command{
		Use:     "trailmark <input_gpx> <output_gpx> <trail_prefix>",
		Short:   "Annotate a GPX hiking trail with derived waypoints and telemetry",
		Version: version,
		Long: `trailmark reads a single-track GPX file, derives waypoints (trailhead,
trail end, kilometer markers, highest/lowest points, halfway point) and
embeds summary telemetry into the track metadata, then writes a new GPX
file combining the original track with the generated waypoints.

examples:
  trailmark hike.gpx hike_marked.gpx RIDGE
  trailmark "My Trail.gpx" out.gpx monte_rosa --dry-run`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], args[2], dryRun)
		},
	}

	root.Flags().BoolVar(&dryRun, "dry-run", false, "Show telemetry and waypoints without writing output file")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath, prefix string, dryRun bool) error {
	// Validate path and prefix eagerly, before any parsing.
	if err := validatePath(inputPath); err != nil {
		return err
	}
	if err := validatePrefix(prefix); err != nil {
		return err
	}

	fmt.Printf("📖 Reading GPX file: %s\n", inputPath)
	doc, err := gpxio.Load(inputPath)
	if err != nil {
		return err
	}

	ann, err := trail.Annotate(doc, prefix)
	if err != nil {
		return err
	}

	fmt.Printf("📊 Generated %d waypoints over %.2f km\n", len(ann.Waypoints), ann.Telemetry.DistanceKm)

	if dryRun {
		fmt.Println(ann.Telemetry)
		for _, w := range ann.Waypoints {
			fmt.Printf("   %s (%.6f, %.6f)\n", w.Name, w.Latitude, w.Longitude)
		}
		fmt.Printf("🔍 Dry run completed - no files written\n")
		return nil
	}

	if err := gpxio.Write(outputPath, trail.Combine(doc, ann)); err != nil {
		return err
	}

	fmt.Printf("✅ GPX file with waypoints saved: %s\n", outputPath)
	return nil
}

func validatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
		}
		return fmt.Errorf("%w: %s: %v", errs.ErrInvalidPath, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", errs.ErrInvalidPath, path)
	}
	return nil
}

func validatePrefix(prefix string) error {
	if !prefixPattern.MatchString(prefix) {
		return fmt.Errorf("%w: %q (only letters, digits and underscores are allowed)", errs.ErrInvalidPrefix, prefix)
	}
	return nil
}
