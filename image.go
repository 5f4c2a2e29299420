package ricos

import (
	"net/url"
	"strings"
)

// ImageContext carries the image resolution state for a single
// conversion. It is constructed fresh per conversion call and owned
// exclusively by it; only Resolve mutates the FIFO.
type ImageContext struct {
	// NameToURL maps image filenames (or full src strings) to hosted
	// URLs. Keys are case-sensitive. Lookups never consume.
	NameToURL map[string]string

	// FIFO is an ordered queue of fallback URLs. Each unmapped image
	// consumes exactly one entry, front to back, in document order.
	FIFO []string

	// BaseURL, when set, resolves relative src paths.
	BaseURL string
}

// Resolve maps an image src reference to a usable absolute URL. The
// tiers are checked in fixed order: the name map wins over the FIFO, the
// FIFO over absolute-URL passthrough, and base-URL resolution comes
// last. Returns false when no tier applies.
func (c *ImageContext) Resolve(ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	if len(c.NameToURL) > 0 {
		if u, ok := c.NameToURL[ref]; ok {
			return u, true
		}
		if u, ok := c.NameToURL[Basename(ref)]; ok {
			return u, true
		}
	}
	if len(c.FIFO) > 0 {
		u := c.FIFO[0]
		c.FIFO = c.FIFO[1:]
		return u, true
	}
	if isAbsoluteURL(ref) {
		return ref, true
	}
	if c.BaseURL != "" {
		if u := resolveAgainst(c.BaseURL, ref); u != "" {
			return u, true
		}
	}
	return "", false
}

// Basename returns the final path segment of a URL or file path,
// excluding directory components, query string, and fragment.
func Basename(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		ref = ref[i+1:]
	}
	return ref
}

// isAbsoluteURL reports whether ref has both a scheme and a host.
func isAbsoluteURL(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// resolveAgainst resolves ref relative to base using standard reference
// resolution. Returns empty string if either side fails to parse.
func resolveAgainst(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return b.ResolveReference(r).String()
}
