// Package htmltomarkdown converts extracted section HTML into Markdown,
// the text form sections are stored and searched in.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagesearch"
)

// Ensure Converter implements pagesearch.Converter at compile time.
var _ pagesearch.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms section HTML into Markdown. The output is
// normalized for storage: no surrounding whitespace, at most one blank
// line between blocks. Section content is windowed by byte offset
// during search and rendered pre-wrapped, so stray blank runs would
// surface verbatim.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagesearch.Errorf(pagesearch.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return normalize(result), nil
}

// normalize trims surrounding whitespace and collapses blank-line runs.
func normalize(md string) string {
	md = strings.TrimSpace(md)
	for strings.Contains(md, "\n\n\n") {
		md = strings.ReplaceAll(md, "\n\n\n", "\n\n")
	}
	return md
}
