package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkrenz/sshman/internal/errors"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	ruleStyle    = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	// One color per column, cycled: cyan, green, blue, yellow, magenta.
	columnColors = []lipgloss.Color{
		lipgloss.Color("6"),
		lipgloss.Color("2"),
		lipgloss.Color("4"),
		lipgloss.Color("3"),
		lipgloss.Color("5"),
	}
)

const columnGap = "  "

// RenderTable renders a Tabular view as a titled, colored table.
func RenderTable(t Tabular) string {
	header := t.TableHeader()
	rows := t.TableRows()

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	if title := t.TableTitle(); title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}

	headerCells := make([]string, len(header))
	for i, h := range header {
		headerCells[i] = headerStyle.Width(widths[i]).Render(h)
	}
	b.WriteString(strings.Join(headerCells, columnGap))
	b.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	total += len(columnGap) * (len(widths) - 1)
	b.WriteString(ruleStyle.Render(strings.Repeat("-", total)))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			style := lipgloss.NewStyle().Width(widths[i]).Foreground(columnColors[i%len(columnColors)])
			cells = append(cells, style.Render(cell))
		}
		b.WriteString(strings.Join(cells, columnGap))
		b.WriteString("\n")
	}
	return b.String()
}

// Success formats a confirmation line for the table format.
func Success(msg string) string {
	return successStyle.Render(msg)
}

// Notice formats an informational line, e.g. an empty result set.
func Notice(msg string) string {
	return noticeStyle.Render(msg)
}

// ErrorLine formats a one-line error for the table format.
func ErrorLine(oe *errors.OpError) string {
	return errStyle.Render("Error:") + " " + oe.Message + " (" + string(oe.Code) + ")"
}
