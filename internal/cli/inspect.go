package cli

import (
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/seatforge/seatforge/pkg/place"
)

// inspectCommand creates the inspect command for summarizing a manifest.
func (c *CLI) inspectCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect <manifest.json>",
		Short: "Summarize a manifest's sections and places",
		Long: `Summarize a manifest's sections and places.

Prints the manifest's identity (event, content hash, update time) and a
per-section breakdown. With --interactive, opens a section picker and prints
the selected section's rows.

Manifests that carry only flat identifiers (no place records) are decoded
with the best-effort identifier parser, so section names are approximate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a section interactively")

	return cmd
}

func (c *CLI) runInspect(path string, interactive bool) error {
	m, err := readManifestFile(path)
	if err != nil {
		return err
	}

	printKeyValue("Event", m.EventID)
	printKeyValue("Hash", m.UpdateHash)
	printKeyValue("Updated", m.UpdateTime.Format(time.RFC3339))
	printKeyValue("Places", fmt.Sprintf("%d", len(m.IDs())))
	printNewline()

	buckets := place.GroupBySection(m.NormalizedPlaces())
	if len(buckets) == 0 {
		printInfo("No places to summarize")
		return nil
	}

	if !interactive {
		printSectionTable(buckets)
		return nil
	}

	prog := tea.NewProgram(NewSectionListModel(buckets))
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("run section picker: %w", err)
	}
	model := final.(SectionListModel)
	if model.Selected == nil {
		return nil
	}
	printSectionDetail(*model.Selected)
	return nil
}

// printSectionTable renders the per-section summary table.
func printSectionTable(buckets []place.SectionBucket) {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Section,
			fmt.Sprintf("%d", b.Count),
			fmt.Sprintf("%d", sectionRowCount(b)),
			fmt.Sprintf("%d", sectionAvailable(b)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Section", "Places", "Rows", "Available").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
}

// printSectionDetail prints a row-by-row breakdown of one section.
func printSectionDetail(b place.SectionBucket) {
	printNewline()
	printInfo("Section %s", StyleHighlight.Render(b.Section))

	byRow := make(map[string][]place.Place)
	for _, p := range b.Places {
		byRow[p.Row] = append(byRow[p.Row], p)
	}
	rows := make([]string, 0, len(byRow))
	for r := range byRow {
		rows = append(rows, r)
	}
	sort.Strings(rows)

	for _, r := range rows {
		label := r
		if label == "" {
			label = "(no row)"
		}
		printDetail("%s: %d seats", label, len(byRow[r]))
	}
}
