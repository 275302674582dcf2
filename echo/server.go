// Package echo serves the sectioned document over HTTP: a server-rendered
// page with search, a JSON API mirroring it, contact form submission, and
// operational endpoints (health, sitemap).
package echo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/pagesearch"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful shutdown on interrupt.
const DefaultShutdownTimeout = 10 * time.Second

// Server serves a corpus over HTTP. Sections are loaded from the source
// once, before the first request that needs them; a failing source is
// reported as a load error on every content route rather than as an
// empty corpus.
type Server struct {
	e      *echo.Echo
	addr   string
	title  string
	base   string
	logger *slog.Logger

	source   pagesearch.CorpusSource
	searcher pagesearch.Searcher
	messages pagesearch.MessageService
	limiter  *ClientLimiter

	shutdownTimeout time.Duration

	loadOnce sync.Once
	sections []*pagesearch.Section
	loadErr  error
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to ":8080".
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithTitle sets the page title rendered on the document and used in
// search results.
func WithTitle(title string) Option {
	return func(s *Server) { s.title = title }
}

// WithBaseURL sets the absolute URL prefix used in the sitemap.
func WithBaseURL(base string) Option {
	return func(s *Server) { s.base = base }
}

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithMessageService enables contact form persistence.
func WithMessageService(svc pagesearch.MessageService) Option {
	return func(s *Server) { s.messages = svc }
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = d }
}

// WithRateLimit guards the search and contact endpoints with a
// per-client limiter of r requests per second and the given burst.
func WithRateLimit(r float64, burst int) Option {
	return func(s *Server) { s.limiter = NewClientLimiter(r, burst) }
}

// NewServer creates a Server for the given corpus source and searcher.
func NewServer(source pagesearch.CorpusSource, searcher pagesearch.Searcher, opts ...Option) *Server {
	s := &Server{
		addr:            ":8080",
		title:           "Informe Estratégico",
		source:          source,
		searcher:        searcher,
		logger:          slog.Default(),
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/healthz"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				s.logger.Info("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				s.logger.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())

	var guarded []echo.MiddlewareFunc
	if s.limiter != nil {
		guarded = append(guarded, s.limiter.Middleware())
	}

	e.GET("/", s.handleIndex)
	e.GET("/search", s.handleSearchPage, guarded...)
	e.GET("/sections/:id", s.handleSectionPage)
	e.GET("/api/sections", s.handleAPISections)
	e.GET("/api/sections/:id", s.handleAPISection)
	e.GET("/api/search", s.handleAPISearch, guarded...)
	e.POST("/api/contact", s.handleContact, guarded...)
	e.GET("/healthz", s.handleHealth)
	e.GET("/sitemap.xml", s.handleSitemap)

	s.e = e
	return s
}

// ServeHTTP implements http.Handler so the server can be driven by
// httptest without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

// Run starts the server and blocks until ctx is cancelled or the
// listener fails, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting server", "addr", s.addr)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return s.e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// corpus returns the loaded sections, loading them on first use. The
// outcome is sticky: the source is consulted exactly once.
func (s *Server) corpus(ctx context.Context) ([]*pagesearch.Section, error) {
	s.loadOnce.Do(func() {
		s.sections, s.loadErr = s.source.Load(ctx)
	})
	return s.sections, s.loadErr
}

// findSection resolves a section by ID or anchor.
func findSection(sections []*pagesearch.Section, id string) *pagesearch.Section {
	for _, sec := range sections {
		if sec.ID == id || (sec.Anchor != "" && sec.Anchor == id) {
			return sec
		}
	}
	return nil
}

// sectionSlug is the path segment a section is addressed by: the anchor
// when present, the ID otherwise.
func sectionSlug(sec *pagesearch.Section) string {
	if sec.Anchor != "" {
		return sec.Anchor
	}
	return sec.ID
}

// codeStatuses maps application error codes to HTTP status codes.
var codeStatuses = map[string]int{
	pagesearch.ECONFLICT:    http.StatusConflict,
	pagesearch.EINVALID:     http.StatusBadRequest,
	pagesearch.ENOTFOUND:    http.StatusNotFound,
	pagesearch.EUNAVAILABLE: http.StatusServiceUnavailable,
	pagesearch.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error
// code.
func ErrorStatusCode(code string) int {
	if status, ok := codeStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// handleError translates errors into responses: application errors keep
// their code and message, echo errors keep their status, anything else
// is an internal error. API routes get JSON bodies, page routes HTML.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal error."

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	} else if code := pagesearch.ErrorCode(err); code != pagesearch.EINTERNAL {
		status = ErrorStatusCode(code)
		message = pagesearch.ErrorMessage(err)
	} else {
		s.logger.Error("internal error", "path", c.Request().URL.Path, "err", err)
	}

	if isAPIPath(c.Request().URL.Path) {
		if err := c.JSON(status, map[string]string{"error": message}); err != nil {
			s.logger.Error("error response failed", "err", err)
		}
		return
	}
	if err := s.renderErrorPage(c, status, message); err != nil {
		s.logger.Error("error response failed", "err", err)
	}
}

func isAPIPath(path string) bool {
	return len(path) >= 5 && path[:5] == "/api/"
}
