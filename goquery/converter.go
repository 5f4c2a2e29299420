// Package goquery provides the goquery-based implementation of
// ricos.Converter. It parses HTML leniently (unclosed tags auto-closed,
// stray text preserved) and walks the document tree in reading order.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contentools/ricos"
	"golang.org/x/net/html"
)

// Ensure Converter implements ricos.Converter at compile time.
var _ ricos.Converter = (*Converter)(nil)

// Converter converts HTML documents into Ricos node sequences.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert parses htmlContent and emits nodes in document order. Every
// image src goes through ctx.Resolve exactly once; unresolved images
// are emitted flagged rather than dropped, so one missing image never
// aborts the rest of the document.
func (c *Converter) Convert(htmlContent string, ctx *ricos.ImageContext) ([]*ricos.Node, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return nil, ricos.Errorf(ricos.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, ricos.Errorf(ricos.EINVALID, "failed to parse HTML: %v", err)
	}

	if ctx == nil {
		ctx = &ricos.ImageContext{}
	}

	// The parser normalizes every document into html > body, so stray
	// top-level text and unclosed fragments end up under body.
	body := doc.Find("body").First()
	if len(body.Nodes) == 0 {
		return []*ricos.Node{}, nil
	}

	w := &walker{ctx: ctx}
	nodes := w.blocks(body.Nodes[0])
	if nodes == nil {
		nodes = []*ricos.Node{}
	}
	return nodes, nil
}

// walker carries the shared resolution context through one document
// traversal. The FIFO inside ctx is consumed in visit order.
type walker struct {
	ctx *ricos.ImageContext
}

// blocks converts the children of n into top-level nodes, in document
// order. Unrecognized elements are unwrapped: their children are
// converted in place so wrapper markup never hides content.
func (w *walker) blocks(n *html.Node) []*ricos.Node {
	var nodes []*ricos.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				nodes = append(nodes, ricos.NewParagraph(ricos.NewText(c.Data, ricos.TextFormat{})))
			}
		case html.ElementNode:
			nodes = append(nodes, w.element(c)...)
		}
	}
	return nodes
}

func (w *walker) element(c *html.Node) []*ricos.Node {
	switch c.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(c.Data[1] - '0')
		if txt := strings.TrimSpace(collectText(c)); txt != "" {
			return []*ricos.Node{ricos.NewHeading(txt, level)}
		}
		return nil
	case "p":
		return w.paragraph(c)
	case "ul", "ol":
		return []*ricos.Node{w.list(c, c.Data == "ol")}
	case "blockquote":
		if runs := w.inline(c, ricos.TextFormat{}); len(runs) > 0 {
			return []*ricos.Node{ricos.NewBlockquote(runs)}
		}
		return nil
	case "table":
		return []*ricos.Node{w.table(c)}
	case "img":
		if img := w.image(c); img != nil {
			return []*ricos.Node{img}
		}
		return nil
	case "script", "style", "template", "noscript":
		return nil
	default:
		return w.blocks(c)
	}
}

// paragraph converts a <p> element. A paragraph holding only images is
// hoisted: each image becomes a top-level IMAGE node. Anything else
// becomes a PARAGRAPH of inline runs.
func (w *walker) paragraph(p *html.Node) []*ricos.Node {
	if imgs := imageOnlyChildren(p); imgs != nil {
		var nodes []*ricos.Node
		for _, im := range imgs {
			if img := w.image(im); img != nil {
				nodes = append(nodes, img)
			}
		}
		return nodes
	}
	if runs := w.inline(p, ricos.TextFormat{}); len(runs) > 0 {
		return []*ricos.Node{ricos.NewParagraph(runs...)}
	}
	return nil
}

// inline extracts the text runs and inline images under n, carrying the
// accumulated formatting state through nested elements.
func (w *walker) inline(n *html.Node, f ricos.TextFormat) []*ricos.Node {
	var runs []*ricos.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				runs = append(runs, ricos.NewText(c.Data, f))
			}
		case html.ElementNode:
			switch c.Data {
			case "img":
				if img := w.image(c); img != nil {
					runs = append(runs, img)
				}
			case "a":
				href := attr(c, "href")
				if href == "" {
					runs = append(runs, w.inline(c, f)...)
					continue
				}
				// PathUnescape, not QueryUnescape: a literal + in a
				// link path must survive decoding.
				if unescaped, err := url.PathUnescape(href); err == nil {
					href = unescaped
				}
				nf := f
				nf.Link = href
				nf.Underline = true
				if txt := collectText(c); txt != "" {
					runs = append(runs, ricos.NewText(txt, nf))
				} else {
					// Textless anchors can still wrap images.
					runs = append(runs, w.inline(c, nf)...)
				}
			case "b", "strong":
				nf := f
				nf.Bold = true
				runs = append(runs, w.inline(c, nf)...)
			case "em", "i":
				nf := f
				nf.Italic = true
				runs = append(runs, w.inline(c, nf)...)
			case "u":
				nf := f
				nf.Underline = true
				runs = append(runs, w.inline(c, nf)...)
			case "br", "script", "style":
				// no run
			default:
				runs = append(runs, w.inline(c, f)...)
			}
		}
	}
	return runs
}

func (w *walker) list(n *html.Node, ordered bool) *ricos.Node {
	var items [][]*ricos.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			items = append(items, w.inline(c, ricos.TextFormat{}))
		}
	}
	return ricos.NewList(items, ordered)
}

func (w *walker) table(n *html.Node) *ricos.Node {
	var rows [][][]*ricos.Node
	for _, tr := range findAll(n, "tr") {
		var cells [][]*ricos.Node
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
				cells = append(cells, w.inline(c, ricos.TextFormat{}))
			}
		}
		rows = append(rows, cells)
	}
	return ricos.NewTable(rows)
}

// image converts an <img> element, calling the resolver exactly once
// with its src. Elements without a src attribute produce no node.
func (w *walker) image(n *html.Node) *ricos.Node {
	src, ok := lookupAttr(n, "src")
	if !ok {
		return nil
	}
	alt := attr(n, "alt")
	if resolved, ok := w.ctx.Resolve(src); ok {
		return ricos.NewImage(resolved, alt)
	}
	return ricos.NewUnresolvedImage(alt)
}

// imageOnlyChildren returns the direct img children of n if its element
// children are all images and it holds no visible text. Returns nil
// otherwise.
func imageOnlyChildren(n *html.Node) []*html.Node {
	var imgs []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return nil
			}
		case html.ElementNode:
			if c.Data != "img" {
				return nil
			}
			imgs = append(imgs, c)
		}
	}
	return imgs
}

// collectText concatenates all text under n, preserving spacing.
func collectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// findAll returns all descendant elements named tag, in document order.
func findAll(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				found = append(found, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return found
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
