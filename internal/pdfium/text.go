package pdfium

import (
	"github.com/klippa-app/go-pdfium/requests"
)

// Glyph is a single character as reported by pdfium, with position already
// flipped to page-space coordinates (origin top-left, y down). This
// package has no dependency on the root module's public Glyph type; the
// root package's backend adapter converts between the two.
type Glyph struct {
	Text           rune
	X0, Y0, X1, Y1 float64
	FontSize       float64
	Rotation       int
	Upright        bool
}

// Glyphs reports every character on the page, in PDF text-stream order, with
// positions already flipped to page-space coordinates.
func (p *Page) Glyphs() []Glyph {
	textPageResp, err := p.inst.FPDFText_LoadPage(&requests.FPDFText_LoadPage{
		Page: requests.Page{ByReference: &p.ref},
	})
	if err != nil {
		return nil
	}
	defer p.inst.FPDFText_ClosePage(&requests.FPDFText_ClosePage{TextPage: textPageResp.TextPage})

	countResp, err := p.inst.FPDFText_CountChars(&requests.FPDFText_CountChars{
		TextPage: textPageResp.TextPage,
	})
	if err != nil {
		return nil
	}

	glyphs := make([]Glyph, 0, countResp.Count)
	for i := 0; i < countResp.Count; i++ {
		unicodeResp, err := p.inst.FPDFText_GetUnicode(&requests.FPDFText_GetUnicode{
			TextPage: textPageResp.TextPage,
			Index:    i,
		})
		if err != nil || unicodeResp.Unicode == 0 {
			continue
		}

		boxResp, err := p.inst.FPDFText_GetCharBox(&requests.FPDFText_GetCharBox{
			TextPage: textPageResp.TextPage,
			Index:    i,
		})
		if err != nil {
			continue
		}

		top := p.flipY(boxResp.Top)
		bottom := p.flipY(boxResp.Bottom)
		left := p.flipX(boxResp.Left)
		right := p.flipX(boxResp.Right)

		fontSize := 0.0
		if sizeResp, err := p.inst.FPDFText_GetFontSize(&requests.FPDFText_GetFontSize{
			TextPage: textPageResp.TextPage,
			Index:    i,
		}); err == nil {
			fontSize = sizeResp.FontSize
		}

		rotation := 0
		upright := true
		if angleResp, err := p.inst.FPDFText_GetCharAngle(&requests.FPDFText_GetCharAngle{
			TextPage: textPageResp.TextPage,
			Index:    i,
		}); err == nil {
			rotation = quantizeRotation(float64(angleResp.CharAngle))
			upright = rotation == 0
		}

		glyphs = append(glyphs, Glyph{
			Text:     rune(unicodeResp.Unicode),
			X0:       left,
			Y0:       bottom,
			X1:       right,
			Y1:       top,
			FontSize: fontSize,
			Rotation: rotation,
			Upright:  upright,
		})
	}

	return glyphs
}

// quantizeRotation buckets a character angle (radians) into the nearest
// quadrant: 0, 90, 180, or 270 degrees.
func quantizeRotation(radians float64) int {
	const pi = 3.14159265358979323846
	degrees := radians * 180 / pi
	for degrees < 0 {
		degrees += 360
	}
	for degrees >= 360 {
		degrees -= 360
	}

	switch {
	case degrees < 45 || degrees >= 315:
		return 0
	case degrees < 135:
		return 90
	case degrees < 225:
		return 180
	default:
		return 270
	}
}
