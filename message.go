package pagesearch

import (
	"context"
	"strings"
	"time"
)

// ContactMessage represents a message submitted through the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the message contains invalid fields.
func (m *ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return Errorf(EINVALID, "contact name required")
	}
	if !strings.Contains(m.Email, "@") {
		return Errorf(EINVALID, "contact email invalid")
	}
	if strings.TrimSpace(m.Message) == "" {
		return Errorf(EINVALID, "contact message required")
	}
	return nil
}

// MessageService represents a service for storing contact messages.
type MessageService interface {
	// CreateMessage stores a new contact message.
	CreateMessage(ctx context.Context, msg *ContactMessage) error

	// FindMessages retrieves stored messages matching the filter,
	// newest first.
	FindMessages(ctx context.Context, filter MessageFilter) ([]*ContactMessage, error)
}

// MessageFilter represents a filter for FindMessages.
type MessageFilter struct {
	Email *string `json:"email"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
