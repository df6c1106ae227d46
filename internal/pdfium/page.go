package pdfium

import (
	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
)

// Page is a single loaded PDF page, borrowed from a Document. Its
// Rects/Segments/Paths/Glyphs methods mirror the shape of the root
// package's PageGeometry/PageText producer interfaces, but return this
// package's own plain data types to avoid importing the root package.
type Page struct {
	inst   pdfium.Pdfium
	ref    references.FPDF_PAGE
	closed bool
}

// Close releases the page. Idempotent.
func (p *Page) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	_, err := p.inst.FPDF_ClosePage(&requests.FPDF_ClosePage{Page: p.ref})
	return err
}

// PageWidth reports the page's width in page-space units.
func (p *Page) PageWidth() float64 {
	resp, err := p.inst.FPDF_GetPageWidthF(&requests.FPDF_GetPageWidthF{
		Page: requests.Page{ByReference: &p.ref},
	})
	if err != nil {
		return 0
	}
	return float64(resp.PageWidth)
}

// PageHeight reports the page's height in page-space units.
func (p *Page) PageHeight() float64 {
	resp, err := p.inst.FPDF_GetPageHeightF(&requests.FPDF_GetPageHeightF{
		Page: requests.Page{ByReference: &p.ref},
	})
	if err != nil {
		return 0
	}
	return float64(resp.PageHeight)
}

// flipY converts a pdfium y-coordinate (origin bottom-left) to page-space
// (origin top-left), per the coordinate convention PageGeometry and
// PageText report against.
func (p *Page) flipY(y float64) float64 {
	return p.PageHeight() - y
}

// rotationDegrees reports the page's rotation as one of 0, 90, 180, 270.
// Pages that fail to report a rotation are treated as unrotated.
func (p *Page) rotationDegrees() int {
	resp, err := p.inst.FPDFPage_GetRotation(&requests.FPDFPage_GetRotation{
		Page: requests.Page{ByReference: &p.ref},
	})
	if err != nil {
		return 0
	}
	switch resp.PageRotation {
	case 1:
		return 90
	case 2:
		return 180
	case 3:
		return 270
	default:
		return 0
	}
}

// flipX additionally flips the x-axis using page width, for rotations 90
// and 270 only: the coordinate convention a 90/270-rotated page's content
// stream needs on top of the universal y-flip.
func (p *Page) flipX(x float64) float64 {
	switch p.rotationDegrees() {
	case 90, 270:
		return p.PageWidth() - x
	default:
		return x
	}
}
