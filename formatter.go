package pagesearch

import (
	"fmt"
	"strings"
)

// FormatSections formats sections for display or LLM context.
// Uses title if available, falls back to the anchor.
// Sections are separated by blank lines.
func FormatSections(sections []*Section) string {
	if len(sections) == 0 {
		return ""
	}

	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		header := s.Title
		if header == "" {
			header = s.Anchor
		}
		parts = append(parts, "## Section: "+header+"\n"+s.Content)
	}

	return strings.Join(parts, "\n\n")
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}
