package pagesearch_test

import (
	"testing"

	"github.com/fwojciec/pagesearch"
	"github.com/stretchr/testify/assert"
)

func TestFormatSections(t *testing.T) {
	t.Parallel()

	t.Run("formats single section with title", func(t *testing.T) {
		t.Parallel()

		sections := []*pagesearch.Section{
			{Title: "Executive Summary", Content: "The market is growing."},
		}

		result := pagesearch.FormatSections(sections)

		expected := "## Section: Executive Summary\nThe market is growing."
		assert.Equal(t, expected, result)
	})

	t.Run("uses anchor when title is empty", func(t *testing.T) {
		t.Parallel()

		sections := []*pagesearch.Section{
			{Anchor: "resumen-ejecutivo", Content: "Some content."},
		}

		result := pagesearch.FormatSections(sections)

		expected := "## Section: resumen-ejecutivo\nSome content."
		assert.Equal(t, expected, result)
	})

	t.Run("formats multiple sections with blank line separator", func(t *testing.T) {
		t.Parallel()

		sections := []*pagesearch.Section{
			{Title: "One", Content: "First content."},
			{Title: "Two", Content: "Second content."},
		}

		result := pagesearch.FormatSections(sections)

		expected := "## Section: One\nFirst content.\n\n## Section: Two\nSecond content."
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		result := pagesearch.FormatSections([]*pagesearch.Section{})

		assert.Empty(t, result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		result := pagesearch.FormatSections(nil)

		assert.Empty(t, result)
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bytes int
		want  string
	}{
		{name: "bytes", bytes: 512, want: "512 B"},
		{name: "kilobytes", bytes: 2048, want: "2.0 KB"},
		{name: "fractional kilobytes", bytes: 1536, want: "1.5 KB"},
		{name: "megabytes", bytes: 3 * 1024 * 1024, want: "3.0 MB"},
		{name: "zero", bytes: 0, want: "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagesearch.FormatBytes(tt.bytes))
		})
	}
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens int
		want   string
	}{
		{name: "small count", tokens: 250, want: "~250 tokens"},
		{name: "rounds to thousands", tokens: 1499, want: "~1k tokens"},
		{name: "rounds up", tokens: 1500, want: "~2k tokens"},
		{name: "large count", tokens: 125000, want: "~125k tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagesearch.FormatTokens(tt.tokens))
		})
	}
}
