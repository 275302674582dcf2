package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pagesearch"
	main "github.com/fwojciec/pagesearch/cmd/pagesearch"
	"github.com/fwojciec/pagesearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func informeCorpus() *mock.CorpusService {
	return &mock.CorpusService{
		FindCorporaFn: func(_ context.Context, filter pagesearch.CorpusFilter) ([]*pagesearch.Corpus, error) {
			if filter.Name != nil && *filter.Name == "informe" {
				return []*pagesearch.Corpus{{ID: "corpus-123", Name: "informe", Title: "Informe Estratégico"}}, nil
			}
			return nil, nil
		},
	}
}

func informeSections() []*pagesearch.Section {
	return []*pagesearch.Section{
		{
			ID:       "sec-1",
			CorpusID: "corpus-123",
			Anchor:   "resumen_ejecutivo",
			Title:    "Resumen Ejecutivo",
			Content:  "La publicidad DOOH en Caracas creció de forma sostenida.",
			Position: 0,
		},
		{
			ID:       "sec-2",
			CorpusID: "corpus-123",
			Anchor:   "conclusion",
			Title:    "Conclusión",
			Content:  "El mercado dooh seguirá expandiéndose durante 2026.",
			Position: 1,
		},
	}
}

func TestSectionsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists sections in corpus order", func(t *testing.T) {
		t.Parallel()

		var gotFilter pagesearch.SectionFilter
		sections := &mock.SectionService{
			FindSectionsFn: func(_ context.Context, filter pagesearch.SectionFilter) ([]*pagesearch.Section, error) {
				gotFilter = filter
				return informeSections(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Corpora:  informeCorpus(),
			Sections: sections,
		}

		cmd := &main.SectionsCmd{Name: "informe"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.CorpusID)
		assert.Equal(t, "corpus-123", *gotFilter.CorpusID)
		assert.Equal(t, pagesearch.SortByPosition, gotFilter.SortBy)
		assert.Contains(t, stdout.String(), "Sections for informe (2 total):")
		assert.Contains(t, stdout.String(), "1. Resumen Ejecutivo")
		assert.Contains(t, stdout.String(), "#resumen_ejecutivo")
		assert.Contains(t, stdout.String(), "2. Conclusión")
	})

	t.Run("prints full content with --full", func(t *testing.T) {
		t.Parallel()

		sections := &mock.SectionService{
			FindSectionsFn: func(_ context.Context, _ pagesearch.SectionFilter) ([]*pagesearch.Section, error) {
				return informeSections(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Corpora:  informeCorpus(),
			Sections: sections,
		}

		cmd := &main.SectionsCmd{Name: "informe", Full: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "## Section: Resumen Ejecutivo")
		assert.Contains(t, stdout.String(), "La publicidad DOOH en Caracas creció de forma sostenida.")
	})

	t.Run("unknown corpus shows helpful error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Corpora: informeCorpus(),
		}

		cmd := &main.SectionsCmd{Name: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagesearch.ENOTFOUND, pagesearch.ErrorCode(err))
		assert.Contains(t, stderr.String(), `corpus "missing" not found. Use 'pagesearch list'`)
	})

	t.Run("empty corpus shows re-import hint", func(t *testing.T) {
		t.Parallel()

		sections := &mock.SectionService{
			FindSectionsFn: func(_ context.Context, _ pagesearch.SectionFilter) ([]*pagesearch.Section, error) {
				return nil, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Corpora:  informeCorpus(),
			Sections: sections,
		}

		cmd := &main.SectionsCmd{Name: "informe"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagesearch.ENOTFOUND, pagesearch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "has no sections")
	})
}
