// Package pagesearch provides in-page search over sectioned documents.
// It loads a corpus of titled sections from JSON, HTML, or a database,
// runs literal case-insensitive substring search over section content,
// and produces highlighted, word-aligned snippets suitable for HTML,
// terminal, or API rendering.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, echo/, goquery/).
package pagesearch
