// Package pdftables detects tabular regions in PDF pages and extracts their
// text into structured tables.
//
// The pipeline is strictly one-way: raw vector primitives and glyphs are
// canonicalized into axis-aligned edges, snapped and joined, intersected
// into a lattice, enumerated into cells, and clustered into tables. Text is
// assembled into words independently and attributed to cells by geometric
// containment. Nothing in this package talks to a PDF backend directly —
// it consumes the PageGeometry and PageText producer interfaces defined in
// interfaces.go. See internal/pdfium for the concrete backend adapter.
package pdftables
