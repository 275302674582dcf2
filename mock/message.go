package mock

import (
	"context"

	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.MessageService = (*MessageService)(nil)

// MessageService is a mock implementation of pagesearch.MessageService.
type MessageService struct {
	CreateMessageFn func(ctx context.Context, msg *pagesearch.ContactMessage) error
	FindMessagesFn  func(ctx context.Context, filter pagesearch.MessageFilter) ([]*pagesearch.ContactMessage, error)
}

func (s *MessageService) CreateMessage(ctx context.Context, msg *pagesearch.ContactMessage) error {
	return s.CreateMessageFn(ctx, msg)
}

func (s *MessageService) FindMessages(ctx context.Context, filter pagesearch.MessageFilter) ([]*pagesearch.ContactMessage, error) {
	return s.FindMessagesFn(ctx, filter)
}
