package pdfium

import (
	"sync"
	"time"

	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

const defaultInstanceTimeout = 30 * time.Second

// Document is an opened PDF document borrowed from a Library instance.
// Close is idempotent; operations on a closed Document return an error
// rather than panicking.
type Document struct {
	lib    *Library
	ref    references.FPDF_DOCUMENT
	mu     sync.Mutex
	closed bool
}

// Open opens a PDF document from a file path, optionally password
// protected.
func (l *Library) Open(path string, password string) (*Document, error) {
	inst, err := l.instance()
	if err != nil {
		return nil, err
	}

	req := &requests.OpenDocument{FilePath: &path}
	if password != "" {
		req.Password = &password
	}

	resp, err := inst.OpenDocument(req)
	if err != nil {
		return nil, classifyOpenError(err)
	}
	return &Document{lib: l, ref: resp.Document}, nil
}

// OpenBytes opens a PDF document already loaded into memory, optionally
// password protected.
func (l *Library) OpenBytes(data []byte, password string) (*Document, error) {
	inst, err := l.instance()
	if err != nil {
		return nil, err
	}

	req := &requests.OpenDocument{File: &data}
	if password != "" {
		req.Password = &password
	}

	resp, err := inst.OpenDocument(req)
	if err != nil {
		return nil, classifyOpenError(err)
	}
	return &Document{lib: l, ref: resp.Document}, nil
}

// ErrAuthFailed is the sentinel classifyOpenError wraps a failure in when
// the underlying backend reports a missing or incorrect password. Callers
// in the root package use errors.Is against this to choose an AuthFailed
// error over a generic backend error.
var ErrAuthFailed = errors.New("pdfium: incorrect or missing password")

// classifyOpenError reports a wrong/missing password as ErrAuthFailed rather
// than a generic open failure, since callers need to distinguish the two.
func classifyOpenError(err error) error {
	msg := err.Error()
	if contains(msg, "password") || contains(msg, "PASSWORD") {
		return errors.Wrap(ErrAuthFailed, err.Error())
	}
	return errors.Wrap(err, "pdfium: opening document")
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// PageCount returns the document's page count.
func (d *Document) PageCount() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return 0, errClosedDocument
	}

	inst, err := d.lib.instance()
	if err != nil {
		return 0, err
	}
	resp, err := inst.FPDF_GetPageCount(&requests.FPDF_GetPageCount{Document: d.ref})
	if err != nil {
		return 0, errors.Wrap(err, "getting page count")
	}
	return resp.PageCount, nil
}

// Page borrows the page at the given 0-indexed position. The returned
// Page must be closed by the caller.
func (d *Document) Page(index int) (*Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errClosedDocument
	}

	inst, err := d.lib.instance()
	if err != nil {
		return nil, err
	}

	resp, err := inst.FPDF_LoadPage(&requests.FPDF_LoadPage{Document: d.ref, Index: index})
	if err != nil {
		return nil, errors.Wrapf(err, "loading page %d", index)
	}

	return &Page{inst: inst, ref: resp.Page}, nil
}

// Pages returns a lazy, restartable iterator over every page in the
// document. Each call to Pages starts a fresh iteration from page 0; the
// iterator stops early (without leaking the in-flight page) if the yield
// function returns false.
func (d *Document) Pages() func(yield func(*Page, error) bool) {
	return func(yield func(*Page, error) bool) {
		count, err := d.PageCount()
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
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true

	inst, err := d.lib.instance()
	if err != nil {
		return err
	}
	_, err = inst.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: d.ref})
	return err
}

var errClosedDocument = errors.New("pdfium: operation on closed document")
