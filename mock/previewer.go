package mock

import "github.com/contentools/ricos"

var _ ricos.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of ricos.Previewer.
type Previewer struct {
	PreviewFn func(htmlContent string) (string, error)
}

func (p *Previewer) Preview(htmlContent string) (string, error) {
	return p.PreviewFn(htmlContent)
}
