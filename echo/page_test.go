package echo_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fwojciec/pagesearch"
	psecho "github.com/fwojciec/pagesearch/echo"
	"github.com/fwojciec/pagesearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexPage(t *testing.T) {
	t.Parallel()

	t.Run("renders every section with a table of contents", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(psecho.WithTitle("Informe de Prueba"))
		rec := get(srv, "/")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<title>Informe de Prueba</title>")
		assert.Contains(t, body, `href="/sections/analisis_de_mercado"`)
		assert.Contains(t, body, `<section id="resumen_ejecutivo">`)
		assert.Contains(t, body, "Resumen Ejecutivo")
		assert.Contains(t, body, "El mercado dooh seguirá expandiéndose durante 2026.")
	})

	t.Run("escapes hostile section content", func(t *testing.T) {
		t.Parallel()

		source := &mock.CorpusSource{
			LoadFn: func(ctx context.Context) ([]*pagesearch.Section, error) {
				return []*pagesearch.Section{{
					ID:      "hostil",
					Anchor:  "hostil",
					Title:   "Sección Hostil",
					Content: `5 < 6 <script>alert("x")</script>`,
				}}, nil
			},
		}
		srv := psecho.NewServer(source, pagesearch.NewEngine())
		rec := get(srv, "/")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "&lt;script&gt;")
		assert.NotContains(t, body, `<script>alert`)
	})

	t.Run("renders a load error page when the source fails", func(t *testing.T) {
		t.Parallel()

		srv := psecho.NewServer(failingSource(), pagesearch.NewEngine())
		rec := get(srv, "/")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Error 503")
		assert.Contains(t, body, "corpus offline")
	})
}

func TestSearchPage(t *testing.T) {
	t.Parallel()

	t.Run("renders highlighted snippets with section links", func(t *testing.T) {
		t.Parallel()

		rec := get(newTestServer(), "/search?q=dooh")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<mark>DOOH</mark>")
		assert.Contains(t, body, "<mark>dooh</mark>")
		assert.Contains(t, body, `href="/sections/resumen_ejecutivo"`)
		assert.Contains(t, body, "«dooh»")
	})

	t.Run("prompts for a term on an empty query", func(t *testing.T) {
		t.Parallel()

		rec := get(newTestServer(), "/search?q=+++")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ingresa un término para buscar.")
	})

	t.Run("reports when nothing matches", func(t *testing.T) {
		t.Parallel()

		rec := get(newTestServer(), "/search?q=zeppelin")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No se encontraron resultados para «zeppelin»")
	})

	t.Run("keeps the query in the search box", func(t *testing.T) {
		t.Parallel()

		rec := get(newTestServer(), "/search?q=pantallas")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="pantallas"`)
	})
}

func TestSectionPage(t *testing.T) {
	t.Parallel()

	t.Run("renders one section", func(t *testing.T) {
		t.Parallel()

		rec := get(newTestServer(), "/sections/conclusion")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Conclusión")
		assert.Contains(t, body, "El mercado dooh seguirá expandiéndose durante 2026.")
	})

	t.Run("renders a 404 page for an unknown section", func(t *testing.T) {
		t.Parallel()

		rec := get(newTestServer(), "/sections/missing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Error 404")
		assert.Contains(t, body, "not found")
	})
}
