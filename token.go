package pagesearch

import "context"

// TokenCounter estimates model token usage for section content.
type TokenCounter interface {
	// CountTokens returns the total token count across texts.
	CountTokens(ctx context.Context, texts ...string) (int, error)
}
