package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagesearch"
	"github.com/fwojciec/pagesearch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_CreateMessage(t *testing.T) {
	t.Parallel()

	t.Run("creates message with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMessageService(db)
		ctx := context.Background()

		msg := &pagesearch.ContactMessage{
			Name:    "Ana",
			Email:   "ana@example.com",
			Message: "Me interesa el informe completo.",
		}

		err := svc.CreateMessage(ctx, msg)
		require.NoError(t, err)

		assert.NotEmpty(t, msg.ID, "ID should be generated")
		assert.False(t, msg.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns EINVALID for invalid message", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMessageService(db)
		ctx := context.Background()

		msg := &pagesearch.ContactMessage{Name: "Ana", Email: "not-an-email", Message: "hola"}

		err := svc.CreateMessage(ctx, msg)
		require.Error(t, err)
		assert.Equal(t, pagesearch.EINVALID, pagesearch.ErrorCode(err))
	})
}

func TestMessageService_FindMessages(t *testing.T) {
	t.Parallel()

	t.Run("returns messages newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMessageService(db)
		ctx := context.Background()

		// Stored timestamps have second precision, so backdate each row to
		// make the ordering unambiguous.
		base := time.Now().UTC()
		for i, body := range []string{"first", "second", "third"} {
			msg := &pagesearch.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: body}
			require.NoError(t, svc.CreateMessage(ctx, msg))
			backdated := base.Add(time.Duration(i-3) * time.Minute).Format(time.RFC3339)
			_, err := db.ExecContext(ctx, "UPDATE messages SET created_at = ? WHERE id = ?", backdated, msg.ID)
			require.NoError(t, err)
		}

		messages, err := svc.FindMessages(ctx, pagesearch.MessageFilter{})
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "third", messages[0].Message)
		assert.Equal(t, "first", messages[2].Message)
	})

	t.Run("filters by email", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMessageService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateMessage(ctx, &pagesearch.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "hola"}))
		require.NoError(t, svc.CreateMessage(ctx, &pagesearch.ContactMessage{Name: "Ben", Email: "ben@example.com", Message: "hello"}))

		email := "ben@example.com"
		messages, err := svc.FindMessages(ctx, pagesearch.MessageFilter{Email: &email})
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "Ben", messages[0].Name)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMessageService(db)
		ctx := context.Background()

		for i := 0; i < 4; i++ {
			msg := &pagesearch.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "hola"}
			require.NoError(t, svc.CreateMessage(ctx, msg))
		}

		messages, err := svc.FindMessages(ctx, pagesearch.MessageFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, messages, 2)
	})
}
