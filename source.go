package pagesearch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
)

// CorpusSource loads the sections of a corpus from a backing source.
// Implementations read JSON files, HTTP endpoints, or the database.
type CorpusSource interface {
	// Load returns the corpus sections in presentation order.
	// It is called once before the first search. A failing source must
	// surface as an error (typically EUNAVAILABLE), never as an empty
	// section list.
	Load(ctx context.Context) ([]*Section, error)
}

// sectionJSON is the interchange shape of a single section.
type sectionJSON struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DecodeSections decodes a parsed-content JSON document into sections.
//
// Two shapes are accepted: an object keyed by section ID,
//
//	{"resumen_ejecutivo": {"title": "Resumen Ejecutivo", "content": "..."}}
//
// and an array of sections,
//
//	[{"id": "resumen_ejecutivo", "title": "Resumen Ejecutivo", "content": "..."}]
//
// Either way, document order is corpus order. The object form is walked
// token by token because decoding into a map would lose key order.
func DecodeSections(r io.Reader) ([]*Section, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, errors.New("expected JSON object or array")
	}

	var sections []*Section
	switch delim {
	case '[':
		for dec.More() {
			var raw sectionJSON
			if err := dec.Decode(&raw); err != nil {
				return nil, err
			}
			sections = append(sections, decodedSection(raw.ID, raw.Title, raw.Content, len(sections)))
		}
	case '{':
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, errors.New("expected section ID key")
			}
			var raw sectionJSON
			if err := dec.Decode(&raw); err != nil {
				return nil, err
			}
			sections = append(sections, decodedSection(key, raw.Title, raw.Content, len(sections)))
		}
	default:
		return nil, errors.New("expected JSON object or array")
	}

	return sections, nil
}

func decodedSection(id, title, content string, position int) *Section {
	if id == "" {
		id = Anchorize(title)
	}
	return &Section{
		ID:       id,
		Anchor:   id,
		Title:    title,
		Content:  content,
		Position: position,
	}
}
