package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/vignesh-tw/migration-analysis/internal/insights"
)

// tableStyle is StyleLight without outer border nor column separators, keeping the header case.
func tableStyle() table.Style {
	s := table.StyleLight
	s.Name = "migration"
	s.Box.PaddingLeft = "  "
	s.Box.PaddingRight = "  "
	s.Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	s.Options = table.Options{
		SeparateFooter: true,
		SeparateHeader: true,
	}
	return s
}

func renderTable(dst io.Writer, i insights.Insight) {
	t := table.NewWriter()
	t.SetOutputMirror(dst)
	t.SetStyle(tableStyle())
	t.SetTitle(fmt.Sprintf("%s vs %s (%s - %s)", i.MigrationJob, i.BaseJob, i.WindowStart, i.WindowEnd))

	t.AppendHeader(table.Row{"Duration", "Differential"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{
			Name:  "Differential",
			Align: text.AlignRight,
		},
	})

	// the order of values must match the order of the header
	t.AppendRow(table.Row{"minimum", differential(i.MinDifferential)})
	t.AppendRow(table.Row{"maximum", differential(i.MaxDifferential)})
	t.AppendRow(table.Row{"mean", differential(i.MeanDifferential)})
	t.AppendRow(table.Row{"median", differential(i.MedianDifferential)})

	_, _ = fmt.Fprintln(dst)
	t.Render()
}

// differential colors a faster migration green and a slower one red.
func differential(d float64) string {
	s := fmt.Sprintf("%+v", d)
	switch {
	case d < 0:
		return color.GreenString(s)
	case d > 0:
		return color.RedString(s)
	default:
		return fmt.Sprintf("%v", d)
	}
}
