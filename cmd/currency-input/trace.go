package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	diffAddChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint       = lipgloss.NewStyle().Faint(true)
	tagStyle    = lipgloss.NewStyle().Bold(true)
)

const maxTraceEntries = 6

// traceEntry records what a raw edit would have produced next to what the
// field ended up showing.
type traceEntry struct {
	raw    string
	shown  string
	accept bool
	err    error
}

func (m *model) record(entry traceEntry) {
	m.trace = append(m.trace, entry)
	if len(m.trace) > maxTraceEntries {
		m.trace = m.trace[len(m.trace)-maxTraceEntries:]
	}
}

func renderTrace(entries []traceEntry) string {
	if len(entries) == 0 {
		return faint.Render("no edits yet") + "\n"
	}

	var sb strings.Builder
	for _, e := range entries {
		switch {
		case e.err != nil:
			sb.WriteString(tagStyle.Render("REFUSED "))
		case e.accept:
			sb.WriteString(tagStyle.Render("RAW     "))
		default:
			sb.WriteString(tagStyle.Render("FORMAT  "))
		}
		sb.WriteString(renderEditDiff(e.raw, e.shown))
		if e.err != nil {
			sb.WriteString("  " + faint.Render(e.err.Error()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderEditDiff highlights characters of the raw edit that were dropped and
// the ones the formatter added.
func renderEditDiff(raw, shown string) string {
	if raw == shown {
		return faint.Render(shown)
	}

	d := dmp.New()
	diffs := d.DiffMain(raw, shown, false)
	d.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(diffDelChar.Render(df.Text))
		case dmp.DiffInsert:
			sb.WriteString(diffAddChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(df.Text)
		}
	}
	return sb.String()
}
