package tui

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/pagesearch"
)

var highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

// RenderSnippet converts a search snippet to terminal text: highlight
// markup becomes a styled span and the HTML-escaped remainder is
// unescaped.
func RenderSnippet(snippet string) string {
	var b strings.Builder
	rest := snippet
	for {
		start := strings.Index(rest, pagesearch.MarkStart)
		if start < 0 {
			b.WriteString(html.UnescapeString(rest))
			break
		}
		b.WriteString(html.UnescapeString(rest[:start]))
		rest = rest[start+len(pagesearch.MarkStart):]

		end := strings.Index(rest, pagesearch.MarkEnd)
		if end < 0 {
			b.WriteString(html.UnescapeString(rest))
			break
		}
		b.WriteString(highlightStyle.Render(html.UnescapeString(rest[:end])))
		rest = rest[end+len(pagesearch.MarkEnd):]
	}
	return b.String()
}
