// Package render implements the table/JSON-lines output chooser:
// an aligned table when every record in a final stream
// shares the same non-empty ordered key set, otherwise one compact
// JSON object per line. Empty streams render nothing.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vsh/internal/record"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// forcedTableKey mirrors builtins.forcedTableKey; duplicated here
// rather than imported to avoid render depending on builtins for a
// single string constant describing a wire convention between the
// "print" command and the renderer.
const forcedTableKey = "__vsh_force_table"

// Render writes stream to w. interactive selects the non-interactive
// default (JSON-lines) vs. interactive default (table when schema is
// homogeneous); a homogeneous stream flagged by "print" renders as a
// table regardless of interactive.
func Render(w io.Writer, stream record.Stream, interactive bool) error {
	if len(stream) == 0 {
		return nil
	}

	forced, stream := stripForcedTableFlag(stream)
	homogeneous := sameSchema(stream)
	if homogeneous && (forced || interactive) {
		return renderTable(w, stream, interactive)
	}
	return renderJSONLines(w, stream)
}

func stripForcedTableFlag(stream record.Stream) (bool, record.Stream) {
	if len(stream) == 0 {
		return false, stream
	}
	first := stream[0]
	if _, ok := first.Get(forcedTableKey); !ok {
		return false, stream
	}
	out := make(record.Stream, len(stream))
	copy(out, stream)
	stripped := first.Clone()
	stripped.Delete(forcedTableKey)
	out[0] = stripped
	return true, out
}

func sameSchema(stream record.Stream) bool {
	if len(stream) == 0 || stream[0].Len() == 0 {
		return false
	}
	first := stream[0]
	for _, rec := range stream[1:] {
		if !rec.SameSchema(first) {
			return false
		}
	}
	return true
}

func renderTable(w io.Writer, stream record.Stream, interactive bool) error {
	keys := stream[0].Keys()
	widths := make([]int, len(keys))
	for i, k := range keys {
		widths[i] = len(strings.ToUpper(k))
	}
	rows := make([][]string, len(stream))
	for i, rec := range stream {
		row := make([]string, len(keys))
		for j, k := range keys {
			v, _ := rec.Get(k)
			row[j] = v.Render()
			if len(row[j]) > widths[j] {
				widths[j] = len(row[j])
			}
		}
		rows[i] = row
	}

	header := make([]string, len(keys))
	for i, k := range keys {
		header[i] = padRight(strings.ToUpper(k), widths[i])
	}
	headerLine := strings.Join(header, "  ")
	if interactive {
		headerLine = headerStyle.Render(headerLine)
	}
	if _, err := fmt.Fprintln(w, headerLine); err != nil {
		return err
	}

	seps := make([]string, len(keys))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(seps, "  ")); err != nil {
		return err
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = padRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "  ")); err != nil {
			return err
		}
	}
	return nil
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func renderJSONLines(w io.Writer, stream record.Stream) error {
	for _, rec := range stream {
		data, err := record.RecordToJSON(rec)
		if err != nil {
			return fmt.Errorf("render: encode record: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	}
	return nil
}
