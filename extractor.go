package pagesearch

// ExtractedSection holds one content block extracted from an HTML page.
type ExtractedSection struct {
	// Anchor is the element ID, or a slug derived from the heading when
	// the markup carries none.
	Anchor string

	// Title is the section heading text.
	Title string

	// ContentHTML is the section body as clean HTML.
	// Boilerplate (nav, footer, sidebar, scripts) has been removed.
	ContentHTML string
}

// Extractor splits an HTML page into titled sections, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns content sections in page order.
	// Returns EINVALID if the page contains no usable content.
	Extract(html string) ([]ExtractedSection, error)
}
