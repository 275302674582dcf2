package echo

import (
	"net/http"

	"github.com/fwojciec/pagesearch"
	"github.com/labstack/echo/v4"
)

// contactConfirmation is returned after a successful contact submission.
const contactConfirmation = "Mensaje enviado con éxito. ¡Gracias por tu interés!"

// handleAPISections returns the full corpus in presentation order.
func (s *Server) handleAPISections(c echo.Context) error {
	sections, err := s.corpus(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sections)
}

// handleAPISection returns one section by ID or anchor.
func (s *Server) handleAPISection(c echo.Context) error {
	sections, err := s.corpus(c.Request().Context())
	if err != nil {
		return err
	}
	sec := findSection(sections, c.Param("id"))
	if sec == nil {
		return pagesearch.Errorf(pagesearch.ENOTFOUND, "section %q not found", c.Param("id"))
	}
	return c.JSON(http.StatusOK, sec)
}

// handleAPISearch runs a search and returns the result as JSON. All
// three outcomes travel in the body; the HTTP status is 200 for each.
func (s *Server) handleAPISearch(c echo.Context) error {
	sections, err := s.corpus(c.Request().Context())
	if err != nil {
		return err
	}
	result := s.searcher.Search(sections, c.QueryParam("q"))
	return c.JSON(http.StatusOK, result)
}

// contactRequest is the contact form submission body.
type contactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// handleContact validates and persists a contact form submission.
func (s *Server) handleContact(c echo.Context) error {
	if s.messages == nil {
		return pagesearch.Errorf(pagesearch.EUNAVAILABLE, "contact storage not configured")
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return pagesearch.Errorf(pagesearch.EINVALID, "invalid contact submission")
	}

	msg := &pagesearch.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.messages.CreateMessage(c.Request().Context(), msg); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": contactConfirmation})
}

// handleHealth reports whether the corpus source is serving sections. A
// failing source is a load error, distinct from an empty corpus.
func (s *Server) handleHealth(c echo.Context) error {
	sections, err := s.corpus(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status": "unavailable",
			"error":  pagesearch.ErrorMessage(err),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"sections": len(sections),
	})
}
