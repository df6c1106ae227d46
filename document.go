package pdftables

import (
	"os"

	"github.com/ivanvanderbyl/pdftables/internal/pdfium"
	"github.com/pkg/errors"
)

// ExtractTables runs the full pipeline on one page: canonicalize its vector
// primitives into edges, snap and join them, build the intersection
// lattice, enumerate cells, cluster cells into tables, assemble words from
// the glyph stream, and attribute each table's cell text.
func ExtractTables(geo PageGeometry, text PageText, settings TfSettings) []Table {
	edges := CanonicalizeEdges(geo, text, settings)
	edges = SnapAndJoin(edges, settings)
	lat := BuildLattice(edges, settings)
	cells := EnumerateCells(lat, settings)
	tables := AssembleTables(cells, settings)

	words := AssembleWords(text.Glyphs(), settings.TextSettings)
	for i, t := range tables {
		tables[i] = AttributeText(t, words, settings)
	}
	return tables
}

// Document is an opened PDF document. Close is idempotent; calling any
// method after Close returns an InvalidState error.
type Document struct {
	backend *pdfium.Document
	closed  bool
}

// OpenDocument opens a PDF file from disk. password may be empty for
// unencrypted documents.
func OpenDocument(path string, password string) (*Document, error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, notFoundErrorf("opening document %q: %v", path, statErr)
		}
		return nil, backendErrorf("opening document %q: %v", path, statErr)
	}

	lib, err := pdfium.Open()
	if err != nil {
		return nil, backendErrorf("opening pdfium backend: %v", err)
	}
	doc, err := lib.Open(path, password)
	if err != nil {
		if errors.Is(err, pdfium.ErrAuthFailed) {
			return nil, authFailedErrorf("opening document %q: %v", path, err)
		}
		return nil, backendErrorf("opening document %q: %v", path, err)
	}
	return &Document{backend: doc}, nil
}

// OpenDocumentBytes opens a PDF document already loaded into memory. There
// is no path to stat, so failures are either AuthFailed (wrong/missing
// password) or a generic BackendError, never NotFound.
func OpenDocumentBytes(data []byte, password string) (*Document, error) {
	lib, err := pdfium.Open()
	if err != nil {
		return nil, backendErrorf("opening pdfium backend: %v", err)
	}
	doc, err := lib.OpenBytes(data, password)
	if err != nil {
		if errors.Is(err, pdfium.ErrAuthFailed) {
			return nil, authFailedErrorf("opening document from memory: %v", err)
		}
		return nil, backendErrorf("opening document from memory: %v", err)
	}
	return &Document{backend: doc}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() (int, error) {
	if d.closed {
		return 0, invalidStateErrorf("document is closed")
	}
	return d.backend.PageCount()
}

// Page borrows the page at the given 0-indexed position. The returned Page
// must be closed by the caller.
func (d *Document) Page(index int) (*Page, error) {
	if d.closed {
		return nil, invalidStateErrorf("document is closed")
	}
	if index < 0 {
		return nil, usageErrorf("negative page index %d", index)
	}
	count, err := d.backend.PageCount()
	if err != nil {
		return nil, err
	}
	if index >= count {
		return nil, indexOutOfRangeErrorf("page index %d out of range [0, %d)", index, count)
	}

	backendPage, err := d.backend.Page(index)
	if err != nil {
		return nil, backendErrorf("loading page %d: %v", index, err)
	}
	return &Page{backend: backendPage, index: index}, nil
}

// Pages returns a lazy, restartable iterator over every page of the
// document. Each invocation starts a fresh iteration from page 0.
func (d *Document) Pages() func(yield func(*Page, error) bool) {
	return func(yield func(*Page, error) bool) {
		if d.closed {
			yield(nil, invalidStateErrorf("document is closed"))
			return
		}
		count, err := d.backend.PageCount()
		if err != nil {
			yield(nil, err)
			return
		}
		for i := 0; i < count; i++ {
			page, err := d.Page(i)
			if !yield(page, err) {
				if page != nil {
					_ = page.Close()
				}
				return
			}
			if page != nil {
				_ = page.Close()
			}
		}
	}
}

// Close releases the document. Calling Close more than once is a no-op.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.backend.Close()
}

// Page is a single loaded page of a Document.
type Page struct {
	backend *pdfium.Page
	index   int
	closed  bool
}

// Index returns the page's 0-indexed position within its document.
func (p *Page) Index() int { return p.index }

// ExtractTables runs the table-extraction pipeline on this page.
func (p *Page) ExtractTables(settings TfSettings) ([]Table, error) {
	if p.closed {
		return nil, invalidStateErrorf("page is closed")
	}
	adapter := backendPage{raw: p.backend}
	return ExtractTables(adapter, adapter, settings), nil
}

// Close releases the page. Idempotent.
func (p *Page) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.backend.Close()
}
