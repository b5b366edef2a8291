package ranking

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	firstStyle  = cellStyle.Foreground(lipgloss.Color("11"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render draws the first limit records as a table with a rank column.
// A non-positive limit renders everything.
func Render(records []Record, limit int) string {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Player", "Time", "Score").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return firstStyle
			default:
				return cellStyle
			}
		})
	for i, r := range records {
		t.Row(strconv.Itoa(i+1), r.Username, r.GameTime, strconv.Itoa(r.Score))
	}
	return t.String()
}
