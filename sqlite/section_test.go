package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagesearch"
	"github.com/fwojciec/pagesearch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCorpus inserts a corpus to attach sections to.
func createTestCorpus(t *testing.T, db *sqlite.DB, name string) *pagesearch.Corpus {
	t.Helper()

	corpus := &pagesearch.Corpus{Name: name, Source: name + ".json"}
	err := sqlite.NewCorpusService(db).CreateCorpus(context.Background(), corpus)
	require.NoError(t, err)
	return corpus
}

func TestSectionService_CreateSection(t *testing.T) {
	t.Parallel()

	t.Run("creates section with generated fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()
		corpus := createTestCorpus(t, db, "strategy")

		section := &pagesearch.Section{
			CorpusID: corpus.ID,
			Title:    "Resumen Ejecutivo",
			Content:  "El mercado DOOH en Caracas...",
			Position: 0,
		}

		err := svc.CreateSection(ctx, section)
		require.NoError(t, err)

		assert.NotEmpty(t, section.ID, "ID should be generated")
		assert.NotEmpty(t, section.ContentHash, "content hash should be computed")
		assert.Equal(t, "resumen-ejecutivo", section.Anchor, "anchor derived from title")
		assert.False(t, section.ImportedAt.IsZero(), "ImportedAt should be set")
	})

	t.Run("keeps explicit anchor", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()
		corpus := createTestCorpus(t, db, "strategy")

		section := &pagesearch.Section{
			CorpusID: corpus.ID,
			Anchor:   "custom-anchor",
			Title:    "Some Title",
			Content:  "text",
		}

		err := svc.CreateSection(ctx, section)
		require.NoError(t, err)
		assert.Equal(t, "custom-anchor", section.Anchor)
	})

	t.Run("identical content produces identical hashes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()
		corpus := createTestCorpus(t, db, "strategy")

		a := &pagesearch.Section{CorpusID: corpus.ID, Title: "A", Content: "same content"}
		b := &pagesearch.Section{CorpusID: corpus.ID, Title: "B", Content: "same content"}
		require.NoError(t, svc.CreateSection(ctx, a))
		require.NoError(t, svc.CreateSection(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
	})

	t.Run("returns EINVALID for invalid section", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()

		err := svc.CreateSection(ctx, &pagesearch.Section{})
		require.Error(t, err)
		assert.Equal(t, pagesearch.EINVALID, pagesearch.ErrorCode(err))
	})
}

func TestSectionService_FindSections(t *testing.T) {
	t.Parallel()

	t.Run("returns sections in position order by default", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()
		corpus := createTestCorpus(t, db, "strategy")

		// Insert out of order to prove ordering comes from position.
		titles := map[int]string{2: "Conclusión", 0: "Resumen", 1: "Análisis"}
		for pos, title := range titles {
			section := &pagesearch.Section{
				CorpusID: corpus.ID,
				Title:    title,
				Content:  "text",
				Position: pos,
			}
			require.NoError(t, svc.CreateSection(ctx, section))
		}

		sections, err := svc.FindSections(ctx, pagesearch.SectionFilter{CorpusID: &corpus.ID})
		require.NoError(t, err)
		require.Len(t, sections, 3)
		assert.Equal(t, "Resumen", sections[0].Title)
		assert.Equal(t, "Análisis", sections[1].Title)
		assert.Equal(t, "Conclusión", sections[2].Title)
	})

	t.Run("filters by anchor", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()
		corpus := createTestCorpus(t, db, "strategy")

		require.NoError(t, svc.CreateSection(ctx, &pagesearch.Section{CorpusID: corpus.ID, Title: "Resumen", Content: "a"}))
		require.NoError(t, svc.CreateSection(ctx, &pagesearch.Section{CorpusID: corpus.ID, Title: "Análisis", Content: "b"}))

		anchor := "resumen"
		sections, err := svc.FindSections(ctx, pagesearch.SectionFilter{Anchor: &anchor})
		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "Resumen", sections[0].Title)
	})

	t.Run("filters by corpus", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()
		first := createTestCorpus(t, db, "first")
		second := createTestCorpus(t, db, "second")

		require.NoError(t, svc.CreateSection(ctx, &pagesearch.Section{CorpusID: first.ID, Title: "One", Content: "a"}))
		require.NoError(t, svc.CreateSection(ctx, &pagesearch.Section{CorpusID: second.ID, Title: "Two", Content: "b"}))

		sections, err := svc.FindSections(ctx, pagesearch.SectionFilter{CorpusID: &second.ID})
		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "Two", sections[0].Title)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()
		corpus := createTestCorpus(t, db, "strategy")

		for i := 0; i < 5; i++ {
			section := &pagesearch.Section{
				CorpusID: corpus.ID,
				Title:    "Section " + string(rune('A'+i)),
				Content:  "text",
				Position: i,
			}
			require.NoError(t, svc.CreateSection(ctx, section))
		}

		sections, err := svc.FindSections(ctx, pagesearch.SectionFilter{CorpusID: &corpus.ID, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, sections, 2)
	})
}

func TestSectionService_FindSectionByID(t *testing.T) {
	t.Parallel()

	t.Run("returns section when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()
		corpus := createTestCorpus(t, db, "strategy")

		section := &pagesearch.Section{CorpusID: corpus.ID, Title: "Resumen", Content: "text"}
		require.NoError(t, svc.CreateSection(ctx, section))

		found, err := svc.FindSectionByID(ctx, section.ID)
		require.NoError(t, err)
		assert.Equal(t, section.ID, found.ID)
		assert.Equal(t, "Resumen", found.Title)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()

		_, err := svc.FindSectionByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, pagesearch.ENOTFOUND, pagesearch.ErrorCode(err))
	})
}

func TestSectionService_DeleteSection(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing section", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()
		corpus := createTestCorpus(t, db, "strategy")

		section := &pagesearch.Section{CorpusID: corpus.ID, Title: "Doomed", Content: "text"}
		require.NoError(t, svc.CreateSection(ctx, section))

		require.NoError(t, svc.DeleteSection(ctx, section.ID))

		_, err := svc.FindSectionByID(ctx, section.ID)
		assert.Equal(t, pagesearch.ENOTFOUND, pagesearch.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing section", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()

		err := svc.DeleteSection(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, pagesearch.ENOTFOUND, pagesearch.ErrorCode(err))
	})
}

func TestSectionService_DeleteSectionsByCorpus(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewSectionService(db)
	ctx := context.Background()
	keep := createTestCorpus(t, db, "keep")
	drop := createTestCorpus(t, db, "drop")

	require.NoError(t, svc.CreateSection(ctx, &pagesearch.Section{CorpusID: keep.ID, Title: "Kept", Content: "a"}))
	require.NoError(t, svc.CreateSection(ctx, &pagesearch.Section{CorpusID: drop.ID, Title: "Dropped A", Content: "b"}))
	require.NoError(t, svc.CreateSection(ctx, &pagesearch.Section{CorpusID: drop.ID, Title: "Dropped B", Content: "c"}))

	require.NoError(t, svc.DeleteSectionsByCorpus(ctx, drop.ID))

	remaining, err := svc.FindSections(ctx, pagesearch.SectionFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Kept", remaining[0].Title)
}
