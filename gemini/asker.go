// Package gemini answers questions about stored corpora using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagesearch"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements pagesearch.Asker at compile time.
var _ pagesearch.Asker = (*Asker)(nil)

// Asker implements pagesearch.Asker using Google Gemini.
type Asker struct {
	client   *genai.Client
	sections pagesearch.SectionService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, sections pagesearch.SectionService) *Asker {
	return &Asker{client: client, sections: sections}
}

// Ask answers a natural language question about a corpus.
func (a *Asker) Ask(ctx context.Context, corpusID, question string) (string, error) {
	if corpusID == "" {
		return "", pagesearch.Errorf(pagesearch.EINVALID, "corpus ID required")
	}
	if question == "" {
		return "", pagesearch.Errorf(pagesearch.EINVALID, "question required")
	}

	sections, err := a.sections.FindSections(ctx, pagesearch.SectionFilter{
		CorpusID: &corpusID,
		SortBy:   pagesearch.SortByPosition,
	})
	if err != nil {
		return "", err
	}
	if len(sections) == 0 {
		return "", pagesearch.Errorf(pagesearch.ENOTFOUND, "no sections found for corpus %q", corpusID)
	}

	prompt := BuildUserPrompt(sections, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagesearch.Errorf(pagesearch.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about a sectioned report. Answer based only on the sections provided. If the answer is not in the sections, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the corpus sections
// and the question.
func BuildUserPrompt(sections []*pagesearch.Section, question string) string {
	var sb strings.Builder
	sb.WriteString("<sections>\n")
	for i, section := range sections {
		title := section.Title
		if title == "" {
			title = section.Anchor
		}
		sb.WriteString("<section>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		if section.Anchor != "" {
			fmt.Fprintf(&sb, "<anchor>%s</anchor>\n", section.Anchor)
		}
		fmt.Fprintf(&sb, "<content>%s</content>\n", section.Content)
		sb.WriteString("</section>\n")
	}
	sb.WriteString("</sections>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
