package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableRendersHeaderAndRows(t *testing.T) {
	tbl := newTable("ID", "TITLE", "TAGS")
	tbl.addRow("1", "Folio", "go, gin")
	tbl.addRow("1700000000000", "A much longer title")

	var buf bytes.Buffer
	require.NoError(t, tbl.render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "TITLE")
	require.Contains(t, lines[1], "Folio")
	require.Contains(t, lines[1], "go, gin")
	require.Contains(t, lines[2], "A much longer title")
	require.Equal(t, strings.Index(lines[1], "Folio"), strings.Index(lines[2], "A much"))
}
