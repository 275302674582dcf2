package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/pagesearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagesearch.MessageService = (*MessageService)(nil)

// MessageService implements pagesearch.MessageService using SQLite.
type MessageService struct {
	db *DB
}

// NewMessageService creates a new MessageService.
func NewMessageService(db *DB) *MessageService {
	return &MessageService{db: db}
}

// CreateMessage stores a new contact message.
func (s *MessageService) CreateMessage(ctx context.Context, msg *pagesearch.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, msg.ID, msg.Name, msg.Email, msg.Message, msg.CreatedAt.Format(time.RFC3339))

	return err
}

// FindMessages retrieves stored messages matching the filter, newest first.
func (s *MessageService) FindMessages(ctx context.Context, filter pagesearch.MessageFilter) ([]*pagesearch.ContactMessage, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, email, message, created_at FROM messages WHERE 1=1")

	if filter.Email != nil {
		query.WriteString(" AND email = ?")
		args = append(args, *filter.Email)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*pagesearch.ContactMessage
	for rows.Next() {
		var msg pagesearch.ContactMessage
		var createdAt string

		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &createdAt); err != nil {
			return nil, err
		}

		if msg.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		msgs = append(msgs, &msg)
	}

	return msgs, rows.Err()
}
