// Package ricos converts HTML documents into Ricos rich-content node
// trees, the JSON document model used by the target publishing platform.
// Image references found in the HTML are resolved to externally hosted
// URLs through a three-tier policy: an explicit filename-to-URL map, a
// consume-once FIFO of fallback URLs, and absolute/base-URL resolution.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// htmltomarkdown/, http/).
package ricos
