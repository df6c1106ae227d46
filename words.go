package pdftables

import (
	"sort"
	"strings"
)

// Word is a run of glyphs assembled into a single token, with the union of
// its member glyphs' boxes and the rotation shared by its member glyphs
// (0, 90, 180, or 270).
type Word struct {
	Text     string
	BBox     BBox
	Rotation int
}

// ligatureMap expands single-glyph typographic ligatures into their
// component letters.
var ligatureMap = map[rune]string{
	0xFB00: "ff",
	0xFB01: "fi",
	0xFB02: "fl",
	0xFB03: "ffi",
	0xFB04: "ffl",
	0xFB05: "ft",
	0xFB06: "st",
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// quadrant buckets a glyph's rotation into the axis along which its line
// runs (reading axis) and whether that axis runs in increasing or
// decreasing coordinate order.
type quadrant struct {
	vertical  bool // true: reading axis is Y, line-grouping axis is X
	ascending bool
}

func quadrantFor(rotation int, clockwise bool) quadrant {
	switch rotation {
	case 90:
		return quadrant{vertical: true, ascending: clockwise}
	case 270:
		return quadrant{vertical: true, ascending: !clockwise}
	case 180:
		return quadrant{vertical: false, ascending: false}
	default:
		return quadrant{vertical: false, ascending: true}
	}
}

// AssembleWords clusters a page's glyph stream into words. Glyphs are first
// split by rotation quadrant (upright text, 180-degree text, and the two
// vertical orientations never share a word), then within each quadrant
// grouped into lines along the axis perpendicular to the reading direction,
// and finally split into words along the reading axis using XTolerance (or
// YTolerance for vertical quadrants), blank characters, and punctuation
// boundaries. With UseTextFlow, the quadrant split and line grouping are
// skipped: the whole glyph stream is split into words in stream order.
func AssembleWords(glyphs []Glyph, settings WordsExtractSettings) []Word {
	if len(glyphs) == 0 {
		return nil
	}

	if settings.ExpandLigatures {
		glyphs = expandLigatureGlyphs(glyphs)
	}

	var splitSet map[rune]bool
	if settings.SplitAtPunctuation != nil {
		set := *settings.SplitAtPunctuation
		if set == "all" {
			set = defaultPunctuationSet
		}
		splitSet = make(map[rune]bool, len(set))
		for _, r := range set {
			splitSet[r] = true
		}
	}

	if settings.UseTextFlow {
		return wordsFromRun(glyphs, settings, splitSet, quadrant{vertical: false, ascending: true})
	}

	byQuadrant := make(map[quadrant][]Glyph)
	var order []quadrant
	for _, g := range glyphs {
		q := quadrantFor(g.Rotation, settings.TextReadInClockwise)
		if _, ok := byQuadrant[q]; !ok {
			order = append(order, q)
		}
		byQuadrant[q] = append(byQuadrant[q], g)
	}

	var words []Word
	for _, q := range order {
		for _, line := range groupIntoLines(byQuadrant[q], q, settings) {
			words = append(words, wordsFromRun(line, settings, splitSet, q)...)
		}
	}
	return words
}

// groupIntoLines clusters glyphs sharing a quadrant into reading lines: two
// glyphs belong to the same line when their centers along the
// line-grouping axis (Y for horizontal quadrants, X for vertical ones) lie
// within the matching tolerance of each other, applied transitively via a
// single sorted sweep.
func groupIntoLines(glyphs []Glyph, q quadrant, settings WordsExtractSettings) [][]Glyph {
	sorted := make([]Glyph, len(glyphs))
	copy(sorted, glyphs)

	lineAxis := func(g Glyph) float64 {
		if q.vertical {
			return g.Box.CenterX()
		}
		return g.Box.CenterY()
	}
	tol := settings.YTolerance
	if q.vertical {
		tol = settings.XTolerance
	}

	sort.SliceStable(sorted, func(i, j int) bool { return lineAxis(sorted[i]) < lineAxis(sorted[j]) })

	var lines [][]Glyph
	var current []Glyph
	var currentAxis float64
	for _, g := range sorted {
		if len(current) == 0 {
			current = []Glyph{g}
			currentAxis = lineAxis(g)
			continue
		}
		if lineAxis(g)-currentAxis <= tol {
			current = append(current, g)
			currentAxis = lineAxis(g)
			continue
		}
		lines = append(lines, current)
		current = []Glyph{g}
		currentAxis = lineAxis(g)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// wordsFromRun orders one line's glyphs along the reading axis (or, with
// UseTextFlow, keeps them in stream order) and splits them into words
// wherever a blank character, a punctuation boundary, or a gap larger than
// the reading-axis tolerance occurs.
func wordsFromRun(glyphs []Glyph, settings WordsExtractSettings, splitSet map[rune]bool, q quadrant) []Word {
	sorted := make([]Glyph, len(glyphs))
	copy(sorted, glyphs)

	readingAxisMin := func(g Glyph) float64 {
		if q.vertical {
			return g.Box.Y0
		}
		return g.Box.X0
	}
	readingAxisMax := func(g Glyph) float64 {
		if q.vertical {
			return g.Box.Y1
		}
		return g.Box.X1
	}

	// trailingEdge is where a glyph ends in reading order: its max
	// coordinate when reading ascends, its min when reading descends.
	trailingEdge := func(g Glyph) float64 {
		if q.ascending {
			return readingAxisMax(g)
		}
		return readingAxisMin(g)
	}

	// In text-flow mode the glyphs keep their stream order.
	if !settings.UseTextFlow {
		sort.SliceStable(sorted, func(i, j int) bool {
			if q.ascending {
				return readingAxisMin(sorted[i]) < readingAxisMin(sorted[j])
			}
			return readingAxisMin(sorted[i]) > readingAxisMin(sorted[j])
		})
	}

	tol := settings.XTolerance
	if q.vertical {
		tol = settings.YTolerance
	}

	var words []Word
	var current []Glyph
	var lastEnd float64
	haveLast := false

	flush := func() {
		if len(current) == 0 {
			return
		}
		words = append(words, buildWord(current))
		current = nil
		haveLast = false
	}

	for _, g := range sorted {
		if isBlank(g.Text) {
			if settings.KeepBlankChars {
				current = append(current, g)
				lastEnd = trailingEdge(g)
				haveLast = true
				continue
			}
			flush()
			continue
		}
		if splitSet != nil && splitSet[g.Text] {
			flush()
			words = append(words, buildWord([]Glyph{g}))
			continue
		}
		gap := 0.0
		if haveLast {
			gap = readingAxisMin(g) - lastEnd
			if !q.ascending {
				gap = lastEnd - readingAxisMax(g)
			}
		}
		// A jump backwards in stream order (e.g. a wrap to a new line)
		// also ends the word in text-flow mode.
		if haveLast && (gap > tol || (settings.UseTextFlow && gap < -tol)) {
			flush()
		}
		current = append(current, g)
		lastEnd = trailingEdge(g)
		haveLast = true
	}
	flush()

	return words
}

func buildWord(glyphs []Glyph) Word {
	var sb strings.Builder
	boxes := make([]BBox, len(glyphs))
	for i, g := range glyphs {
		sb.WriteRune(g.Text)
		boxes[i] = g.Box
	}
	return Word{Text: sb.String(), BBox: unionBBoxes(boxes), Rotation: glyphs[0].Rotation}
}

// expandLigatureGlyphs replaces each ligature glyph with one synthetic
// glyph per component letter, splitting the original box's width (or
// height, for vertical glyphs) evenly across the expansion.
func expandLigatureGlyphs(glyphs []Glyph) []Glyph {
	result := make([]Glyph, 0, len(glyphs))
	for _, g := range glyphs {
		expansion, ok := ligatureMap[g.Text]
		if !ok {
			result = append(result, g)
			continue
		}
		runes := []rune(expansion)
		n := float64(len(runes))
		vertical := g.Rotation == 90 || g.Rotation == 270
		for i, r := range runes {
			box := g.Box
			if vertical {
				step := g.Box.Height() / n
				box.Y0 = g.Box.Y0 + step*float64(i)
				box.Y1 = box.Y0 + step
			} else {
				step := g.Box.Width() / n
				box.X0 = g.Box.X0 + step*float64(i)
				box.X1 = box.X0 + step
			}
			result = append(result, Glyph{
				Text:     r,
				Box:      box,
				FontSize: g.FontSize,
				Rotation: g.Rotation,
				Upright:  g.Upright,
			})
		}
	}
	return result
}
