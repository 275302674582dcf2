package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/pagesearch"
	"github.com/fwojciec/pagesearch/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() []*pagesearch.Section {
	return []*pagesearch.Section{
		{
			ID:      "resumen_ejecutivo",
			Anchor:  "resumen_ejecutivo",
			Title:   "Resumen Ejecutivo",
			Content: "La publicidad DOOH en Caracas creció de forma sostenida.",
		},
		{
			ID:      "analisis_de_mercado",
			Anchor:  "analisis_de_mercado",
			Title:   "Análisis de Mercado",
			Content: "Las pantallas digitales dominan las zonas de mayor tráfico.",
		},
		{
			ID:      "conclusion",
			Anchor:  "conclusion",
			Title:   "Conclusión",
			Content: "El mercado dooh seguirá expandiéndose durante 2026.",
		},
	}
}

// drive applies messages to the model, returning the updated model.
func drive(t *testing.T, m tui.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(tui.Model)
		require.True(t, ok)
	}
	return m
}

func typeQuery(t *testing.T, m tui.Model, query string) tui.Model {
	t.Helper()
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(query)})
	return drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func newReadyModel(t *testing.T) tui.Model {
	t.Helper()
	m := tui.New(testCorpus(), pagesearch.NewEngine(), "Informe Estratégico")
	return drive(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	t.Run("shows loading before the first window size", func(t *testing.T) {
		t.Parallel()

		m := tui.New(testCorpus(), pagesearch.NewEngine(), "Informe Estratégico")

		assert.Equal(t, "Loading...", m.View())
	})

	t.Run("renders title and section count when ready", func(t *testing.T) {
		t.Parallel()

		m := newReadyModel(t)

		view := m.View()
		assert.Contains(t, view, "Informe Estratégico")
		assert.Contains(t, view, "3 sections")
	})
}

func TestModel_Search(t *testing.T) {
	t.Parallel()

	t.Run("shows highlighted matches", func(t *testing.T) {
		t.Parallel()

		m := typeQuery(t, newReadyModel(t), "dooh")

		view := m.View()
		assert.Contains(t, view, `Results for "dooh": 2`)
		assert.Contains(t, view, "Match 1/2")
		assert.Contains(t, view, "DOOH")
	})

	t.Run("prompts on an empty query", func(t *testing.T) {
		t.Parallel()

		m := drive(t, newReadyModel(t), tea.KeyMsg{Type: tea.KeyEnter})

		assert.Contains(t, m.View(), "Type a query and press Enter.")
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		m := typeQuery(t, newReadyModel(t), "zeppelin")

		assert.Contains(t, m.View(), `No matches for "zeppelin".`)
	})
}

func TestModel_CursorCycle(t *testing.T) {
	t.Parallel()

	m := typeQuery(t, newReadyModel(t), "dooh")
	require.Contains(t, m.View(), "Match 1/2")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "Match 2/2")
	assert.Contains(t, m.View(), "Conclusión")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "Match 1/2")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Contains(t, m.View(), "Match 2/2")
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m := newReadyModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderSnippet(t *testing.T) {
	t.Parallel()

	t.Run("strips highlight markup and unescapes entities", func(t *testing.T) {
		t.Parallel()

		got := tui.RenderSnippet("…5 &lt; 6 y la <mark>DOOH</mark> crece…")

		assert.Contains(t, got, "5 < 6")
		assert.Contains(t, got, "DOOH")
		assert.NotContains(t, got, "<mark>")
		assert.NotContains(t, got, "&lt;")
	})

	t.Run("passes plain snippets through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "sin resaltado", tui.RenderSnippet("sin resaltado"))
	})

	t.Run("tolerates an unterminated highlight", func(t *testing.T) {
		t.Parallel()

		got := tui.RenderSnippet("la <mark>DOOH crece")

		assert.True(t, strings.HasPrefix(got, "la "))
		assert.Contains(t, got, "DOOH crece")
	})
}
