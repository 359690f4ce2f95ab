package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seatforge/seatforge/pkg/manifest"
)

// diffCommand creates the diff command for comparing two manifest files.
func (c *CLI) diffCommand() *cobra.Command {
	var (
		output  string
		maxShow int
	)

	cmd := &cobra.Command{
		Use:   "diff <old.json> <new.json>",
		Short: "Compare two manifests and report added and removed places",
		Long: `Compare two manifests and report added and removed places.

Both arguments are manifest JSON files produced by 'generate'. The comparison
is by place identifier only: coordinates and section tags do not participate,
so a relabeled seat shows up as one removal plus one addition.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDiff(args[0], args[1], output, maxShow)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the full diff as JSON to this file")
	cmd.Flags().IntVar(&maxShow, "max-show", 10, "maximum identifiers to list per side")

	return cmd
}

func (c *CLI) runDiff(oldPath, newPath, output string, maxShow int) error {
	oldM, err := readManifestFile(oldPath)
	if err != nil {
		return err
	}
	newM, err := readManifestFile(newPath)
	if err != nil {
		return err
	}

	d := manifest.Compare(oldM, newM)

	if !d.Changed {
		printSuccess("Manifests are identical (%d places)", len(oldM.IDs()))
		return writeDiffOutput(d, output)
	}

	printInfo("Manifest changed")
	printKeyValue("Event", d.EventID)
	printKeyValue("Added", fmt.Sprintf("%d", len(d.Added)))
	for _, id := range truncateList(d.Added, maxShow) {
		printDetail("+ %s", id)
	}
	printKeyValue("Removed", fmt.Sprintf("%d", len(d.Removed)))
	for _, id := range truncateList(d.Removed, maxShow) {
		printDetail("- %s", id)
	}

	return writeDiffOutput(d, output)
}

func writeDiffOutput(d *manifest.Diff, output string) error {
	if output == "" {
		return nil
	}
	if err := writeJSONFile(output, d); err != nil {
		return err
	}
	printFile(output)
	return nil
}

// truncateList caps a list at n entries, replacing the overflow with an
// ellipsis marker.
func truncateList(ids []string, n int) []string {
	if n <= 0 || len(ids) <= n {
		return ids
	}
	out := make([]string, 0, n+1)
	out = append(out, ids[:n]...)
	out = append(out, fmt.Sprintf("… and %d more", len(ids)-n))
	return out
}
