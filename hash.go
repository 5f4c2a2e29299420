package ricos

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ContentHash returns a stable hex digest of the input HTML. Callers use
// it to correlate conversions of the same document (response headers,
// log fields); it is never persisted.
func ContentHash(htmlContent string) string {
	return strconv.FormatUint(xxhash.Sum64String(htmlContent), 16)
}
