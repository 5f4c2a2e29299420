package ricos

import "github.com/google/uuid"

// NodeType identifies the kind of content a Node carries.
type NodeType string

// Node types emitted by the converter.
const (
	NodeParagraph    NodeType = "PARAGRAPH"
	NodeText         NodeType = "TEXT"
	NodeHeading      NodeType = "HEADING"
	NodeBulletedList NodeType = "BULLETED_LIST"
	NodeOrderedList  NodeType = "ORDERED_LIST"
	NodeListItem     NodeType = "LIST_ITEM"
	NodeBlockquote   NodeType = "BLOCKQUOTE"
	NodeTable        NodeType = "TABLE"
	NodeTableRow     NodeType = "TABLE_ROW"
	NodeTableCell    NodeType = "TABLE_CELL"
	NodeImage        NodeType = "IMAGE"
)

// DecorationType identifies an inline text decoration.
type DecorationType string

// Decoration types applied to text runs.
const (
	DecorationBold      DecorationType = "BOLD"
	DecorationItalic    DecorationType = "ITALIC"
	DecorationColor     DecorationType = "COLOR"
	DecorationLink      DecorationType = "LINK"
	DecorationUnderline DecorationType = "UNDERLINE"
	DecorationFontSize  DecorationType = "FONT_SIZE"
)

// Node is one unit of rich content in the Ricos document model. It is a
// tagged variant: Type selects which of the data fields is populated.
// Nodes are built fresh per conversion and are not mutated after being
// emitted.
type Node struct {
	Type          NodeType       `json:"type"`
	ID            string         `json:"id"`
	Nodes         []*Node        `json:"nodes,omitempty"`
	Style         *Style         `json:"style,omitempty"`
	TextData      *TextData      `json:"textData,omitempty"`
	HeadingData   *HeadingData   `json:"headingData,omitempty"`
	ParagraphData *ParagraphData `json:"paragraphData,omitempty"`
	ImageData     *ImageData     `json:"imageData,omitempty"`
	TableData     *TableData     `json:"tableData,omitempty"`
	TableCellData *TableCellData `json:"tableCellData,omitempty"`

	// Unresolved marks an image node whose src could not be resolved to
	// a URL. The node is still emitted in document order so callers can
	// detect the gap without losing surrounding content.
	Unresolved bool `json:"unresolved,omitempty"`
}

// Style holds block-level spacing. Marshals as an empty object when no
// fields are set, matching the platform's expected shape.
type Style struct {
	PaddingTop    string `json:"paddingTop,omitempty"`
	PaddingBottom string `json:"paddingBottom,omitempty"`
}

// TextData holds the text content and decorations of a TEXT node.
type TextData struct {
	Text        string       `json:"text"`
	Decorations []Decoration `json:"decorations"`
}

// Decoration is one inline formatting attribute on a text run.
type Decoration struct {
	Type            DecorationType `json:"type"`
	FontWeightValue int            `json:"fontWeightValue,omitempty"`
	ColorData       *ColorData     `json:"colorData,omitempty"`
	LinkData        *LinkData      `json:"linkData,omitempty"`
	FontSizeData    *FontSizeData  `json:"fontSizeData,omitempty"`
}

// ColorData holds foreground and background colors for a COLOR decoration.
type ColorData struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// LinkData holds the target of a LINK decoration.
type LinkData struct {
	Link Link `json:"link"`
}

// Link describes a hyperlink target.
type Link struct {
	URL    string  `json:"url"`
	Target string  `json:"target"`
	Rel    LinkRel `json:"rel"`
}

// LinkRel holds link relation attributes.
type LinkRel struct {
	Noreferrer bool `json:"noreferrer"`
}

// FontSizeData holds the size of a FONT_SIZE decoration.
type FontSizeData struct {
	Unit  string `json:"unit"`
	Value int    `json:"value"`
}

// HeadingData holds the level and alignment of a HEADING node.
type HeadingData struct {
	Level     int       `json:"level"`
	TextStyle TextStyle `json:"textStyle"`
}

// ParagraphData holds paragraph-level text styling.
type ParagraphData struct {
	TextStyle TextStyle `json:"textStyle"`
}

// TextStyle holds alignment and line-height attributes.
type TextStyle struct {
	TextAlignment string `json:"textAlignment,omitempty"`
	LineHeight    string `json:"lineHeight,omitempty"`
}

// ImageData holds the source and layout of an IMAGE node.
type ImageData struct {
	ContainerData ContainerData `json:"containerData"`
	Image         Image         `json:"image"`
}

// ContainerData holds the layout of an embedded media node.
type ContainerData struct {
	Width     Width  `json:"width"`
	Alignment string `json:"alignment"`
	TextWrap  bool   `json:"textWrap"`
}

// Width holds the sizing mode of a media container.
type Width struct {
	Size string `json:"size"`
}

// Image holds the source URL and metadata of an image.
type Image struct {
	Src      ImageSrc      `json:"src"`
	Metadata ImageMetadata `json:"metadata"`
}

// ImageSrc holds the resolved URL of an image.
type ImageSrc struct {
	URL string `json:"url"`
}

// ImageMetadata holds descriptive attributes of an image.
type ImageMetadata struct {
	AltText string `json:"altText"`
}

// TableData holds the dimensions of a TABLE node.
type TableData struct {
	Dimensions TableDimensions `json:"dimensions"`
}

// TableDimensions holds per-column and per-row sizing.
type TableDimensions struct {
	ColsWidthRatio []int `json:"colsWidthRatio"`
	RowsHeight     []int `json:"rowsHeight"`
	ColsMinWidth   []int `json:"colsMinWidth"`
}

// TableCellData holds cell-level styling.
type TableCellData struct {
	CellStyle Style `json:"cellStyle"`
}

// NewID returns a fresh 8-character node ID.
func NewID() string {
	return uuid.NewString()[:8]
}

// TextFormat describes the inline formatting accumulated for a text run.
type TextFormat struct {
	Bold      bool
	Italic    bool
	Underline bool
	Link      string

	// Extra decorations appended after the standard set (e.g. the
	// FONT_SIZE a level-3 heading carries).
	Extra []Decoration
}

// formatDecorations builds the decoration list for a text run. The order
// is fixed: BOLD, ITALIC, COLOR (always present), LINK, UNDERLINE, then
// any extras. Linked text renders bold and blue.
func formatDecorations(f TextFormat) []Decoration {
	var dec []Decoration
	if f.Bold || f.Link != "" {
		dec = append(dec, Decoration{Type: DecorationBold, FontWeightValue: 700})
	}
	if f.Italic {
		dec = append(dec, Decoration{Type: DecorationItalic})
	}
	foreground := "rgb(0, 0, 0)"
	if f.Link != "" {
		foreground = "#084EBD"
	}
	dec = append(dec, Decoration{
		Type:      DecorationColor,
		ColorData: &ColorData{Foreground: foreground, Background: "transparent"},
	})
	if f.Link != "" {
		dec = append(dec, Decoration{
			Type: DecorationLink,
			LinkData: &LinkData{Link: Link{
				URL:    f.Link,
				Target: "BLANK",
				Rel:    LinkRel{Noreferrer: true},
			}},
		})
	}
	if f.Underline {
		dec = append(dec, Decoration{Type: DecorationUnderline})
	}
	dec = append(dec, f.Extra...)
	return dec
}

// NewText creates a TEXT node. Text nodes carry an empty ID.
func NewText(text string, format TextFormat) *Node {
	return &Node{
		Type:     NodeText,
		TextData: &TextData{Text: text, Decorations: formatDecorations(format)},
	}
}

// NewParagraph wraps inline nodes in a PARAGRAPH node.
func NewParagraph(children ...*Node) *Node {
	return &Node{
		Type:  NodeParagraph,
		ID:    NewID(),
		Nodes: children,
		Style: &Style{},
	}
}

// NewHeading creates a HEADING node with bold text at the given level.
// Level 3 headings carry a 22px font size.
func NewHeading(text string, level int) *Node {
	var extra []Decoration
	if level == 3 {
		extra = append(extra, Decoration{
			Type:         DecorationFontSize,
			FontSizeData: &FontSizeData{Unit: "PX", Value: 22},
		})
	}
	return &Node{
		Type:  NodeHeading,
		ID:    NewID(),
		Nodes: []*Node{NewText(text, TextFormat{Bold: true, Extra: extra})},
		Style: &Style{},
		HeadingData: &HeadingData{
			Level:     level,
			TextStyle: TextStyle{TextAlignment: "AUTO"},
		},
	}
}

// NewList creates a BULLETED_LIST or ORDERED_LIST node. Each entry in
// items is the inline content of one list item, wrapped in a tightly
// spaced paragraph.
func NewList(items [][]*Node, ordered bool) *Node {
	typ := NodeBulletedList
	if ordered {
		typ = NodeOrderedList
	}
	children := make([]*Node, 0, len(items))
	for _, item := range items {
		children = append(children, &Node{
			Type: NodeListItem,
			ID:   NewID(),
			Nodes: []*Node{{
				Type:          NodeParagraph,
				ID:            NewID(),
				Nodes:         item,
				Style:         &Style{PaddingTop: "0px", PaddingBottom: "0px"},
				ParagraphData: &ParagraphData{TextStyle: TextStyle{LineHeight: "2"}},
			}},
		})
	}
	return &Node{Type: typ, ID: NewID(), Nodes: children}
}

// NewBlockquote wraps inline nodes in a BLOCKQUOTE node.
func NewBlockquote(children []*Node) *Node {
	return &Node{
		Type:  NodeBlockquote,
		ID:    NewID(),
		Nodes: []*Node{NewParagraph(children...)},
	}
}

// NewTable creates a TABLE node from rows of cells. Each cell is the
// inline content extracted from the source cell; only its text runs are
// kept, re-wrapped without formatting.
func NewTable(rows [][][]*Node) *Node {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	rowNodes := make([]*Node, 0, len(rows))
	for _, row := range rows {
		cellNodes := make([]*Node, 0, len(row))
		for _, cell := range row {
			var runs []*Node
			for _, n := range cell {
				if n.Type == NodeText {
					runs = append(runs, NewText(n.TextData.Text, TextFormat{}))
				}
			}
			cellNodes = append(cellNodes, &Node{
				Type:          NodeTableCell,
				ID:            NewID(),
				Nodes:         []*Node{NewParagraph(runs...)},
				TableCellData: &TableCellData{},
			})
		}
		rowNodes = append(rowNodes, &Node{Type: NodeTableRow, ID: NewID(), Nodes: cellNodes})
	}
	return &Node{
		Type:  NodeTable,
		ID:    NewID(),
		Nodes: rowNodes,
		TableData: &TableData{Dimensions: TableDimensions{
			ColsWidthRatio: repeatInt(754, cols),
			RowsHeight:     repeatInt(47, len(rows)),
			ColsMinWidth:   repeatInt(120, cols),
		}},
	}
}

// NewImage creates an IMAGE node with a resolved URL.
func NewImage(url, alt string) *Node {
	return &Node{
		Type: NodeImage,
		ID:   NewID(),
		ImageData: &ImageData{
			ContainerData: ContainerData{
				Width:     Width{Size: "CONTENT"},
				Alignment: "CENTER",
				TextWrap:  true,
			},
			Image: Image{
				Src:      ImageSrc{URL: url},
				Metadata: ImageMetadata{AltText: alt},
			},
		},
	}
}

// NewUnresolvedImage creates an IMAGE node for a src that could not be
// resolved. The node carries an empty URL and is flagged.
func NewUnresolvedImage(alt string) *Node {
	n := NewImage("", alt)
	n.Unresolved = true
	return n
}

func repeatInt(v, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}
