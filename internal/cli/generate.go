package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seatforge/seatforge/pkg/pipeline"
	"github.com/seatforge/seatforge/pkg/venue"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output   string // output file path (stdout if "-")
	eventID  string // override the venue's event id
	capacity int    // override the requested capacity
	noCache  bool   // disable the layout cache
	refresh  bool   // recompute even when a cached layout exists
	full     bool   // write the full pipeline result instead of the manifest
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <venue.toml>",
		Short: "Generate a seat manifest from a venue definition",
		Long: `Generate a seat manifest from a venue definition.

The command loads a venue TOML file, runs the identifier and layout pipeline
for the venue's strategy, and writes the resulting manifest as JSON. General
admission venues produce capacity zones instead of individual seats.

Results are cached locally keyed on the venue definition, so regenerating an
unchanged venue is instant. Use --refresh to force recomputation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.manifest.json, \"-\" for stdout)")
	cmd.Flags().StringVar(&opts.eventID, "event", "", "override the venue's event id")
	cmd.Flags().IntVar(&opts.capacity, "capacity", 0, "override the requested capacity")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached layout exists")
	cmd.Flags().BoolVar(&opts.full, "full", false, "write the full result (places, zones, warnings, stats)")

	return cmd
}

// runGenerate loads the venue, runs the pipeline, and writes output.
func (c *CLI) runGenerate(ctx context.Context, input string, opts generateOpts) error {
	v, err := venue.Load(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %s...", v.Name))
	spinner.Start()
	prog := newProgress(c.Logger)

	res, err := runner.Execute(ctx, pipeline.Options{
		Venue:    v,
		EventID:  opts.eventID,
		Capacity: opts.capacity,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if res.Manifest != nil {
		prog.done(fmt.Sprintf("Placed %d seats", res.Stats.PlaceCount))
	} else {
		prog.done(fmt.Sprintf("Derived %d zones", res.Stats.ZoneCount))
	}

	for _, w := range res.Warnings {
		printWarning("%s", w.String())
	}

	outputPath := opts.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".manifest.json"
	} else if outputPath == "-" {
		outputPath = ""
	}

	// General admission has no per-seat manifest; the zones are the result.
	var payload any
	switch {
	case opts.full || res.Manifest == nil:
		payload = res
	default:
		payload = res.Manifest
	}
	if err := writeJSONFile(outputPath, payload); err != nil {
		return err
	}

	if res.Manifest == nil {
		printSuccess("Derived %d admission zones", len(res.Zones))
	} else {
		printSuccess("Manifest complete")
	}
	if outputPath != "" {
		printFile(outputPath)
	}
	printStats(res.Stats.PlaceCount, res.Stats.WarningCount, res.CacheInfo.Hit)
	if res.Manifest != nil && outputPath != "" {
		printNewline()
		printNextStep("Inspect", appName+" inspect "+outputPath)
	}

	return nil
}
