// Package trafilatura provides a main-content implementation of
// pagesearch.Extractor backed by go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pagesearch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagesearch.Extractor at compile time.
var _ pagesearch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// It produces a single section and serves as the fallback for pages
// without the section or heading structure goquery.Extractor needs.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns its main content as one section.
func (e *Extractor) Extract(rawHTML string) ([]pagesearch.ExtractedSection, error) {
	if rawHTML == "" {
		return nil, pagesearch.Errorf(pagesearch.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, pagesearch.Errorf(pagesearch.EINVALID, "no usable content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	title := result.Metadata.Title
	if contentHTML == "" && title == "" {
		return nil, pagesearch.Errorf(pagesearch.EINVALID, "no usable content in document")
	}

	anchor := pagesearch.Anchorize(title)
	if anchor == "" {
		anchor = "content"
	}

	return []pagesearch.ExtractedSection{{
		Anchor:      anchor,
		Title:       title,
		ContentHTML: contentHTML,
	}}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
