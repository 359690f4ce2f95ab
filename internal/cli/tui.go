package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/seatforge/seatforge/pkg/place"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SectionListModel - Interactive section selection
// =============================================================================

// SectionListModel is the bubbletea model for browsing a manifest's sections.
type SectionListModel struct {
	Buckets  []place.SectionBucket
	Cursor   int
	Selected *place.SectionBucket
	Height   int
	Offset   int
}

// NewSectionListModel creates a new section list model.
func NewSectionListModel(buckets []place.SectionBucket) SectionListModel {
	return SectionListModel{
		Buckets: buckets,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m SectionListModel) Init() tea.Cmd {
	return nil
}

func (m SectionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Buckets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			bucket := m.Buckets[m.Cursor]
			m.Selected = &bucket
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SectionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Section"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Buckets) {
		end = len(m.Buckets)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		bucket := m.Buckets[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			bucket.Section,
			fmt.Sprintf("%d", bucket.Count),
			fmt.Sprintf("%d", sectionRowCount(bucket)),
			fmt.Sprintf("%d", sectionAvailable(bucket)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Section", "Places", "Rows", "Available").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Buckets))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// sectionRowCount counts the distinct row labels in a bucket.
func sectionRowCount(b place.SectionBucket) int {
	seen := make(map[string]struct{})
	for _, p := range b.Places {
		if p.Row != "" {
			seen[p.Row] = struct{}{}
		}
	}
	return len(seen)
}

// sectionAvailable counts the available places in a bucket.
func sectionAvailable(b place.SectionBucket) int {
	n := 0
	for _, p := range b.Places {
		if p.Available {
			n++
		}
	}
	return n
}
