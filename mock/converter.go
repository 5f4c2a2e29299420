package mock

import "github.com/contentools/ricos"

var _ ricos.Converter = (*Converter)(nil)

// Converter is a mock implementation of ricos.Converter.
type Converter struct {
	ConvertFn func(htmlContent string, ctx *ricos.ImageContext) ([]*ricos.Node, error)
}

func (c *Converter) Convert(htmlContent string, ctx *ricos.ImageContext) ([]*ricos.Node, error) {
	return c.ConvertFn(htmlContent, ctx)
}
