package ricos

// Converter converts HTML into an ordered sequence of Ricos nodes.
type Converter interface {
	// Convert parses htmlContent and emits nodes in document order,
	// resolving every image src through ctx. Returns EINVALID for
	// empty or unparseable input. Per-element irregularities (an
	// unresolvable image, an unknown tag) never fail the call.
	Convert(htmlContent string, ctx *ImageContext) ([]*Node, error)
}

// Previewer renders HTML as Markdown for quick inspection of conversion
// input.
type Previewer interface {
	// Preview transforms HTML content into Markdown.
	Preview(htmlContent string) (string, error)
}

// UploadedImage is one {name, data} pair from a caller's uploaded_array.
// Data is the hosted URL for the named file.
type UploadedImage struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// ConversionRequest is the parsed input of one conversion: the HTML to
// convert plus the material for building its image resolution context.
// All fields except HTML are optional.
type ConversionRequest struct {
	HTML        string            `json:"html"`
	BaseURL     string            `json:"base_url"`
	ImageURLMap map[string]string `json:"image_url_map"`
	ImagesFIFO  []string          `json:"images"`
	Uploaded    []UploadedImage   `json:"uploaded_array"`
}

// Validate returns an error if the request cannot be converted.
func (r *ConversionRequest) Validate() error {
	if r.HTML == "" {
		return Errorf(EINVALID, "missing 'html' field with HTML content")
	}
	return nil
}

// ConversionResult is the outcome of a successful conversion.
type ConversionResult struct {
	Nodes []*Node `json:"nodes"`
}

// NewImageContext builds the resolution context for a request. The
// explicit map is applied first, then uploaded pairs in array order;
// the last write for a name wins. The FIFO is copied so the caller's
// slice is never mutated by the conversion.
func NewImageContext(req *ConversionRequest) *ImageContext {
	var nameToURL map[string]string
	if len(req.ImageURLMap) > 0 || len(req.Uploaded) > 0 {
		nameToURL = make(map[string]string, len(req.ImageURLMap)+len(req.Uploaded))
		for name, u := range req.ImageURLMap {
			nameToURL[name] = u
		}
		for _, up := range req.Uploaded {
			if up.Name != "" {
				nameToURL[up.Name] = up.Data
			}
		}
	}
	var fifo []string
	if len(req.ImagesFIFO) > 0 {
		fifo = make([]string, len(req.ImagesFIFO))
		copy(fifo, req.ImagesFIFO)
	}
	return &ImageContext{
		NameToURL: nameToURL,
		FIFO:      fifo,
		BaseURL:   req.BaseURL,
	}
}
