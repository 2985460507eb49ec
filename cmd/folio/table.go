package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// table 按列宽对齐输出 admin 命令的列表
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	writeLine := func(style lipgloss.Style, cells []string) {
		parts := make([]string, 0, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			// Width 包含左右 padding
			parts = append(parts, style.Width(widths[i]+2).Render(cell))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, ""), " "))
		sb.WriteString("\n")
	}

	writeLine(headerStyle, t.headers)
	for _, row := range t.rows {
		writeLine(cellStyle, row)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
