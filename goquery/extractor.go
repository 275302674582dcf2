// Package goquery provides a CSS-selector based implementation of
// pagesearch.Extractor for splitting HTML pages into titled sections.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesearch"
)

// boilerplateSelectors matches elements that never carry section content.
// The site header is kept because article headers often wrap the title.
const boilerplateSelectors = "script, style, noscript, iframe, nav, footer, aside, form"

// Ensure Extractor implements pagesearch.Extractor at compile time.
var _ pagesearch.Extractor = (*Extractor)(nil)

// Extractor splits an HTML page into sections.
//
// Two strategies are tried in order:
//  1. semantic: explicit section/article elements with IDs, the shape of
//     hand-built single-page sites
//  2. headings: the main content area split on its h1-h3 headings, the
//     shape of article pages without section markup
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses HTML and returns its sections in document order.
// Returns EINVALID when the document yields no sections.
func (e *Extractor) Extract(html string) ([]pagesearch.ExtractedSection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagesearch.Errorf(pagesearch.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(boilerplateSelectors).Remove()

	sections := extractSemanticSections(doc)
	if len(sections) == 0 {
		sections = extractHeadingSections(doc)
	}
	if len(sections) == 0 {
		return nil, pagesearch.Errorf(pagesearch.EINVALID, "no sections found in document")
	}

	return dedupeAnchors(sections), nil
}

// extractSemanticSections collects section/article elements with IDs.
// Nested sections are skipped so content is not counted twice.
func extractSemanticSections(doc *goquery.Document) []pagesearch.ExtractedSection {
	var sections []pagesearch.ExtractedSection

	doc.Find("section[id], article[id]").Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered("section[id], article[id]").Length() > 0 {
			return
		}

		title := strings.TrimSpace(sel.Find("h1, h2, h3, h4, h5, h6").First().Text())
		if title == "" && strings.TrimSpace(sel.Text()) == "" {
			return
		}

		// The first heading is the title; keep sub-headings in the content.
		content := sel.Clone()
		content.Find("h1, h2, h3, h4, h5, h6").First().Remove()
		contentHTML, err := content.Html()
		if err != nil {
			return
		}

		sections = append(sections, pagesearch.ExtractedSection{
			Anchor:      sel.AttrOr("id", ""),
			Title:       title,
			ContentHTML: strings.TrimSpace(contentHTML),
		})
	})

	return sections
}

// extractHeadingSections splits the main content area on its headings.
// Each section runs from a heading to the next heading among its siblings,
// so content nested in deeper containers stays with its own heading.
func extractHeadingSections(doc *goquery.Document) []pagesearch.ExtractedSection {
	root := findContentRoot(doc)
	var sections []pagesearch.ExtractedSection

	root.Find("h1, h2, h3").Each(func(_ int, heading *goquery.Selection) {
		title := strings.TrimSpace(heading.Text())
		if title == "" {
			return
		}

		var parts []string
		heading.NextUntil("h1, h2, h3").Each(func(_ int, part *goquery.Selection) {
			if html, err := goquery.OuterHtml(part); err == nil {
				parts = append(parts, html)
			}
		})

		anchor := heading.AttrOr("id", "")
		if anchor == "" {
			anchor = pagesearch.Anchorize(title)
		}

		sections = append(sections, pagesearch.ExtractedSection{
			Anchor:      anchor,
			Title:       title,
			ContentHTML: strings.TrimSpace(strings.Join(parts, "\n")),
		})
	})

	return sections
}

// findContentRoot returns the main content area of the document,
// falling back to body when no semantic content element exists.
func findContentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"main", "article", "#content", ".content"} {
		if root := doc.Find(selector).First(); root.Length() > 0 {
			return root
		}
	}
	return doc.Find("body")
}

// dedupeAnchors suffixes repeated anchors with a counter so every section
// can be linked to uniquely.
func dedupeAnchors(sections []pagesearch.ExtractedSection) []pagesearch.ExtractedSection {
	anchorCounts := make(map[string]int)

	for i := range sections {
		base := sections[i].Anchor
		if base == "" {
			base = "section"
		}

		if count, exists := anchorCounts[base]; exists {
			sections[i].Anchor = base + "-" + strconv.Itoa(count)
			anchorCounts[base]++
		} else {
			sections[i].Anchor = base
			anchorCounts[base] = 1
		}
	}

	return sections
}
