package echo

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/fwojciec/pagesearch"
	"github.com/labstack/echo/v4"
)

//go:embed templates
var templatesFS embed.FS

func mustPage(page string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page))
}

var (
	indexTmpl   = mustPage("index.html")
	searchTmpl  = mustPage("search.html")
	sectionTmpl = mustPage("section.html")
	errorTmpl   = mustPage("error.html")
)

// sectionView is one section prepared for rendering.
type sectionView struct {
	Slug    string
	Title   string
	Content string
}

// matchView is one search match prepared for rendering. Snippet is
// trusted markup: the engine HTML-escapes everything except the
// highlight tags it inserts itself.
type matchView struct {
	Slug    string
	Title   string
	Snippet template.HTML
}

type indexData struct {
	Title    string
	Query    string
	Sections []sectionView
}

type searchData struct {
	Title      string
	Query      string
	EmptyQuery bool
	NoMatches  bool
	Matches    []matchView
}

type sectionData struct {
	Title   string
	Query   string
	Section sectionView
}

type errorData struct {
	Title   string
	Query   string
	Status  int
	Message string
}

// renderPage executes a page template into a buffer first so a template
// error never emits a partial response.
func renderPage(c echo.Context, status int, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

func newSectionView(sec *pagesearch.Section) sectionView {
	title := sec.Title
	if title == "" {
		title = sec.Anchor
	}
	return sectionView{
		Slug:    sectionSlug(sec),
		Title:   title,
		Content: sec.Content,
	}
}

// handleIndex renders the full document: a table of contents followed by
// every section in presentation order.
func (s *Server) handleIndex(c echo.Context) error {
	sections, err := s.corpus(c.Request().Context())
	if err != nil {
		return err
	}

	data := indexData{Title: s.title}
	for _, sec := range sections {
		data.Sections = append(data.Sections, newSectionView(sec))
	}
	return renderPage(c, http.StatusOK, indexTmpl, data)
}

// handleSearchPage runs a search and renders the result, honoring all
// three outcomes: matches, an empty query, and a query with no matches.
func (s *Server) handleSearchPage(c echo.Context) error {
	sections, err := s.corpus(c.Request().Context())
	if err != nil {
		return err
	}

	query := c.QueryParam("q")
	result := s.searcher.Search(sections, query)

	data := searchData{
		Title:      s.title,
		Query:      query,
		EmptyQuery: result.Status == pagesearch.StatusEmptyQuery,
		NoMatches:  result.Status == pagesearch.StatusNoMatches,
	}
	for _, m := range result.Matches {
		view := newSectionView(m.Section)
		data.Matches = append(data.Matches, matchView{
			Slug:    view.Slug,
			Title:   view.Title,
			Snippet: template.HTML(m.Snippet),
		})
	}
	return renderPage(c, http.StatusOK, searchTmpl, data)
}

// handleSectionPage renders a single section as a deep link target.
func (s *Server) handleSectionPage(c echo.Context) error {
	sections, err := s.corpus(c.Request().Context())
	if err != nil {
		return err
	}

	sec := findSection(sections, c.Param("id"))
	if sec == nil {
		return pagesearch.Errorf(pagesearch.ENOTFOUND, "section %q not found", c.Param("id"))
	}

	data := sectionData{Title: s.title, Section: newSectionView(sec)}
	return renderPage(c, http.StatusOK, sectionTmpl, data)
}

// renderErrorPage renders a human-readable error page.
func (s *Server) renderErrorPage(c echo.Context, status int, message string) error {
	data := errorData{Title: s.title, Status: status, Message: message}
	return renderPage(c, status, errorTmpl, data)
}
