package mock

import (
	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagesearch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
