// Package htmltomarkdown provides a Markdown implementation of
// ricos.Previewer, used to inspect conversion input without producing a
// full node tree.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/contentools/ricos"
)

// Ensure Previewer implements ricos.Previewer at compile time.
var _ ricos.Previewer = (*Previewer)(nil)

// Previewer wraps html-to-markdown to render HTML as Markdown.
type Previewer struct {
	conv *converter.Converter
}

// NewPreviewer creates a new Previewer.
func NewPreviewer() *Previewer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Previewer{conv: conv}
}

// Preview transforms HTML content into Markdown.
func (p *Previewer) Preview(htmlContent string) (string, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return "", ricos.Errorf(ricos.EINVALID, "empty HTML input")
	}

	result, err := p.conv.ConvertString(htmlContent)
	if err != nil {
		return "", err
	}

	return result, nil
}
