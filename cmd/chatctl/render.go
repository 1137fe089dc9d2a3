package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ircx/chatframe-go/pkg/chatframe"
	"github.com/ircx/chatframe-go/pkg/com"
	"github.com/ircx/chatframe-go/pkg/logging"
)

var (
	accentColor = lipgloss.Color("#3B82F6")
	mutedColor  = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(accentColor).
			Padding(0, 1)

	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	redactedStyle = cellStyle.Foreground(mutedColor)
	redirectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

// renderProperties draws a snapshot as a table. Credential values are
// replaced with the redaction placeholder unless reveal is set.
func renderProperties(title string, values []chatframe.Value, reveal bool) string {
	rows := make([][]string, 0, len(values))
	hidden := make(map[int]bool)
	for i, v := range values {
		text := formatValue(v.Value)
		if v.Field.Sensitive && !reveal && text != `""` {
			text = logging.Placeholder()
			hidden[i] = true
		}
		rows = append(rows, []string{v.Field.Name, v.Field.Kind.String(), text})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers("PROPERTY", "KIND", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 && hidden[row]:
				return redactedStyle
			default:
				return cellStyle
			}
		})
	return titleStyle.Render(title) + "\n" + t.Render()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case com.Color:
		return fmt.Sprintf("0x%06X", uint32(x))
	case com.Flags:
		return fmt.Sprintf("0x%08X", uint32(x))
	case com.Mode:
		return fmt.Sprintf("%d", int32(x))
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprint(x)
	}
}
