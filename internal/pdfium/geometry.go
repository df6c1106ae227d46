package pdfium

import (
	"github.com/klippa-app/go-pdfium/enums"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
)

// Color is a plain RGBA tuple. This package has no dependency on the root
// module's public types; the root package's backend adapter converts
// these into pdftables.Color.
type Color struct {
	R, G, B, A uint8
}

// Rect is a filled rectangle primitive in page-space coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
	Color          Color
}

// Segment is a single stroked line segment in page-space coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          Color
}

// PathOpKind distinguishes path construction operators, mirroring the
// public pdftables.PathOpKind values one-for-one.
type PathOpKind int

const (
	PathMoveTo PathOpKind = iota
	PathLineTo
	PathClose
)

// PathOp is one operator in a path's construction stream. X/Y are only
// meaningful for MoveTo/LineTo.
type PathOp struct {
	Kind PathOpKind
	X, Y float64
}

// Path is a path primitive: a stream of move/line/close operators that may
// contain multiple independent subpaths.
type Path struct {
	Ops   []PathOp
	Width float64
	Color Color
}

// Rects always returns nil: pdfium reports every vector primitive (filled
// rectangles included) as a path object, so rectangle detection happens in
// Paths via the operator stream instead of a separate code path.
func (p *Page) Rects() []Rect { return nil }

// Segments always returns nil, for the same reason as Rects: a simple
// two-point stroke is just a path with one MoveTo and one LineTo, handled
// uniformly by Paths.
func (p *Page) Segments() []Segment { return nil }

// Paths walks every path object on the page and reports its segment
// stream, preserving subpath boundaries exactly as pdfium reports them.
// This is the fix for the bounding-box-only approach: a path with several
// independent MoveTo/LineTo/Close runs sharing one bounding box is
// decomposed into its real segments, not flattened into a single box.
func (p *Page) Paths() []Path {
	countResp, err := p.inst.FPDFPage_CountObjects(&requests.FPDFPage_CountObjects{
		Page: requests.Page{ByReference: &p.ref},
	})
	if err != nil {
		return nil
	}

	var paths []Path
	for i := 0; i < countResp.Count; i++ {
		objResp, err := p.inst.FPDFPage_GetObject(&requests.FPDFPage_GetObject{
			Page:  requests.Page{ByReference: &p.ref},
			Index: i,
		})
		if err != nil {
			continue
		}

		typeResp, err := p.inst.FPDFPageObj_GetType(&requests.FPDFPageObj_GetType{
			PageObject: objResp.PageObject,
		})
		if err != nil || typeResp.Type != enums.FPDF_PAGEOBJ_PATH {
			continue
		}

		path, ok := p.pathFromObject(objResp.PageObject)
		if ok {
			paths = append(paths, path)
		}
	}
	return paths
}

func (p *Page) pathFromObject(obj references.FPDF_PAGEOBJECT) (Path, bool) {
	segCountResp, err := p.inst.FPDFPath_CountSegments(&requests.FPDFPath_CountSegments{
		PageObject: obj,
	})
	if err != nil || segCountResp.Count == 0 {
		return Path{}, false
	}

	color := p.pathColor(obj)
	width := p.pathWidth(obj)

	var ops []PathOp
	for s := 0; s < segCountResp.Count; s++ {
		segResp, err := p.inst.FPDFPath_GetPathSegment(&requests.FPDFPath_GetPathSegment{
			PageObject: obj,
			Index:      s,
		})
		if err != nil {
			continue
		}

		typeResp, err := p.inst.FPDFPathSegment_GetType(&requests.FPDFPathSegment_GetType{
			PathSegment: segResp.PathSegment,
		})
		if err != nil {
			continue
		}

		pointResp, err := p.inst.FPDFPathSegment_GetPoint(&requests.FPDFPathSegment_GetPoint{
			PathSegment: segResp.PathSegment,
		})
		if err != nil {
			continue
		}

		x, y := p.flipX(float64(pointResp.X)), p.flipY(float64(pointResp.Y))

		switch typeResp.Type {
		case enums.FPDF_SEGMENT_MOVETO:
			ops = append(ops, PathOp{Kind: PathMoveTo, X: x, Y: y})
		case enums.FPDF_SEGMENT_LINETO:
			ops = append(ops, PathOp{Kind: PathLineTo, X: x, Y: y})
		default:
			// Curves (FPDF_SEGMENT_BEZIERTO) are not representable as an
			// edge; approximate with a straight line to the control
			// endpoint so a curved border doesn't silently vanish.
			ops = append(ops, PathOp{Kind: PathLineTo, X: x, Y: y})
		}

		closeResp, err := p.inst.FPDFPathSegment_GetClose(&requests.FPDFPathSegment_GetClose{
			PathSegment: segResp.PathSegment,
		})
		if err == nil && closeResp.IsClose {
			ops = append(ops, PathOp{Kind: PathClose})
		}
	}

	if len(ops) == 0 {
		return Path{}, false
	}
	return Path{Ops: ops, Width: width, Color: color}, true
}

func (p *Page) pathColor(obj references.FPDF_PAGEOBJECT) Color {
	fillResp, err := p.inst.FPDFPageObj_GetFillColor(&requests.FPDFPageObj_GetFillColor{
		PageObject: obj,
	})
	if err == nil {
		return Color{R: uint8(fillResp.R), G: uint8(fillResp.G), B: uint8(fillResp.B), A: uint8(fillResp.A)}
	}

	strokeResp, err := p.inst.FPDFPageObj_GetStrokeColor(&requests.FPDFPageObj_GetStrokeColor{
		PageObject: obj,
	})
	if err == nil {
		return Color{R: uint8(strokeResp.R), G: uint8(strokeResp.G), B: uint8(strokeResp.B), A: uint8(strokeResp.A)}
	}

	return Color{A: 255}
}

func (p *Page) pathWidth(obj references.FPDF_PAGEOBJECT) float64 {
	resp, err := p.inst.FPDFPageObj_GetStrokeWidth(&requests.FPDFPageObj_GetStrokeWidth{
		PageObject: obj,
	})
	if err != nil {
		return 0
	}
	return float64(resp.StrokeWidth)
}
