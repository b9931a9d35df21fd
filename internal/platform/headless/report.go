package headless

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const minColumnWidth = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Report renders the samples of a run as a table with a title and summary.
func Report(res Result) string {
	var sb strings.Builder

	title := fmt.Sprintf("%s: %d steps", res.Game, res.Steps)
	if res.Autopilot {
		title += " (autopilot)"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	if len(res.Samples) > 0 {
		sb.WriteString(sampleTable(res.Samples).View())
		sb.WriteString("\n\n")
	}

	status := "running"
	switch {
	case res.EndedEarly:
		status = "ended early"
	case res.Final.GameOver:
		status = "ended"
	}
	sb.WriteString(footerStyle.Render(fmt.Sprintf(
		"final score %d, %s, seed %d, %s",
		res.Final.Score, status, res.Seed, res.Elapsed.Round(time.Microsecond),
	)))
	return sb.String()
}

func sampleTable(samples []Sample) table.Model {
	columns := []table.Column{{Title: "step", Width: minColumnWidth}}
	for _, st := range samples[0].Stats {
		columns = append(columns, table.Column{Title: st.Name, Width: max(minColumnWidth, len(st.Name))})
	}

	rows := make([]table.Row, 0, len(samples))
	for _, s := range samples {
		row := table.Row{strconv.Itoa(s.Step)}
		for _, st := range s.Stats {
			row = append(row, strconv.Itoa(st.Value))
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}
