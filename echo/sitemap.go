package echo

import (
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/labstack/echo/v4"
)

// handleSitemap lists the document root and every section deep link.
// Absolute URLs use the configured base URL, falling back to the
// request host.
func (s *Server) handleSitemap(c echo.Context) error {
	sections, err := s.corpus(c.Request().Context())
	if err != nil {
		return err
	}

	base := s.base
	if base == "" {
		base = c.Scheme() + "://" + c.Request().Host
	}
	base = strings.TrimRight(base, "/")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	addLoc := func(loc string) {
		urlset.CreateElement("url").CreateElement("loc").SetText(loc)
	}
	addLoc(base + "/")
	for _, sec := range sections {
		addLoc(base + "/sections/" + sectionSlug(sec))
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXML, []byte(out))
}
