package gemini

import (
	"context"

	"github.com/fwojciec/pagesearch"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ pagesearch.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally using the Gemini tokenizer.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the total token count across texts. All texts are
// tokenized in one pass; empty texts contribute nothing.
func (tc *TokenCounter) CountTokens(ctx context.Context, texts ...string) (int, error) {
	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		if text == "" {
			continue
		}
		contents = append(contents, genai.NewContentFromText(text, "user"))
	}
	if len(contents) == 0 {
		return 0, nil
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
