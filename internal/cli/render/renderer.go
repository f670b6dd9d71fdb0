package render

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Renderer[T any] interface {
	Render(result T) error
}

// newTable returns a borderless light table, the layout shared by all renderers
func newTable(headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingRight = "   "
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(headers))
	configs := make([]table.ColumnConfig, len(headers))
	for i, h := range headers {
		header[i] = h
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	return t
}

// paint applies c to s when colored output is enabled
func paint(enabled bool, c *color.Color, s string) string {
	if !enabled || s == "" {
		return s
	}
	return c.Sprint(s)
}
