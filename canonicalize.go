package pdftables

import (
	"math"
	"sort"
)

// slopeTolerance bounds |dy/length| (or |dx/length|) for a stroked segment
// to be accepted as horizontal or vertical.
const slopeTolerance = 1e-3

// CanonicalizeEdges converts a page's raw vector primitives (and, for the
// "text" strategy, its word stream) into a set of horizontal and vertical
// edges, honoring settings.VerticalStrategy/HorizontalStrategy
// independently per axis:
//
//   - lines (default): vector-graphics edges are prefiltered against
//     EdgeMinLengthPrefilter; short fragments that pass it may still be
//     stitched into a longer edge by the later join pass.
//   - lines_strict: edges are prefiltered against EdgeMinLength (the
//     stricter, post-join threshold) before snap/join ever sees them, so a
//     run of short fragments can never be joined into an artificially long
//     edge.
//   - text: edges are derived from word bounding boxes instead of vector
//     graphics — see textStrategyEdges.
func CanonicalizeEdges(geo PageGeometry, text PageText, settings TfSettings) []Edge {
	var vectorEdges []Edge
	for _, r := range geo.Rects() {
		vectorEdges = append(vectorEdges, rectToEdges(r)...)
	}
	for _, s := range geo.Segments() {
		if e, ok := segmentToEdge(s); ok {
			vectorEdges = append(vectorEdges, e)
		}
	}
	for _, p := range geo.Paths() {
		vectorEdges = append(vectorEdges, pathToEdges(p)...)
	}

	var hEdges, vEdges []Edge
	for _, e := range vectorEdges {
		if e.Orientation == Horizontal {
			hEdges = append(hEdges, e)
		} else {
			vEdges = append(vEdges, e)
		}
	}

	textH, textV := textStrategyEdges(text, settings)

	var edges []Edge
	switch settings.HorizontalStrategy {
	case StrategyText:
		edges = append(edges, textH...)
	case StrategyLinesStrict:
		edges = append(edges, filterByLength(hEdges, settings.EdgeMinLength)...)
	default:
		edges = append(edges, filterByLength(hEdges, settings.EdgeMinLengthPrefilter)...)
	}
	switch settings.VerticalStrategy {
	case StrategyText:
		edges = append(edges, textV...)
	case StrategyLinesStrict:
		edges = append(edges, filterByLength(vEdges, settings.EdgeMinLength)...)
	default:
		edges = append(edges, filterByLength(vEdges, settings.EdgeMinLengthPrefilter)...)
	}

	return edges
}

// textStrategyEdges derives candidate H/V edges from word boundaries
// instead of vector graphics, for the "text" strategy. Words are assembled
// with settings.TextSettings, then grouped into lines (by vertical
// overlap) and columns (by horizontal overlap). A line's top/bottom only
// becomes an H-edge candidate if at least MinWordsHorizontal words agree
// on it; a column's left/right only becomes a V-edge candidate if at
// least MinWordsVertical words agree on it. With the default
// min_words_*=0, every line/column boundary qualifies.
func textStrategyEdges(text PageText, settings TfSettings) (hEdges, vEdges []Edge) {
	if text == nil {
		return nil, nil
	}
	words := AssembleWords(text.Glyphs(), settings.TextSettings)
	if len(words) == 0 {
		return nil, nil
	}

	lines := groupWordsByOverlap(words, func(w Word) (float64, float64) { return w.BBox.Y0, w.BBox.Y1 })
	for _, line := range lines {
		if len(line) < settings.MinWordsHorizontal {
			continue
		}
		top, bottom, left, right := wordBoundsExtent(line)
		hEdges = append(hEdges, NewHEdge(left, right, top, 0, Color{A: 255}))
		hEdges = append(hEdges, NewHEdge(left, right, bottom, 0, Color{A: 255}))
	}

	cols := groupWordsByOverlap(words, func(w Word) (float64, float64) { return w.BBox.X0, w.BBox.X1 })
	for _, col := range cols {
		if len(col) < settings.MinWordsVertical {
			continue
		}
		top, bottom, left, right := wordBoundsExtent(col)
		vEdges = append(vEdges, NewVEdge(top, bottom, left, 0, Color{A: 255}))
		vEdges = append(vEdges, NewVEdge(top, bottom, right, 0, Color{A: 255}))
	}

	return hEdges, vEdges
}

// groupWordsByOverlap buckets words by their [lo, hi) extent (as reported
// by axis), in one left-to-right sweep over words sorted by lo: each word
// joins the first group whose most recently added word it overlaps, or
// starts a new group.
func groupWordsByOverlap(words []Word, axis func(Word) (lo, hi float64)) [][]Word {
	type bounded struct {
		w      Word
		lo, hi float64
	}
	bs := make([]bounded, len(words))
	for i, w := range words {
		lo, hi := axis(w)
		bs[i] = bounded{w: w, lo: lo, hi: hi}
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].lo < bs[j].lo })

	var groups [][]bounded
	for _, b := range bs {
		placed := false
		for g := range groups {
			last := groups[g][len(groups[g])-1]
			if b.lo < last.hi {
				groups[g] = append(groups[g], b)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []bounded{b})
		}
	}

	out := make([][]Word, len(groups))
	for i, g := range groups {
		ws := make([]Word, len(g))
		for j, b := range g {
			ws[j] = b.w
		}
		out[i] = ws
	}
	return out
}

// wordBoundsExtent returns the union bbox edges of a group of words.
func wordBoundsExtent(words []Word) (top, bottom, left, right float64) {
	box := words[0].BBox
	for _, w := range words[1:] {
		box = box.Union(w.BBox)
	}
	return box.Y0, box.Y1, box.X0, box.X1
}

// rectToEdges turns a filled rectangle into edges. A rectangle whose width
// or height is below defaultEpsilon degenerates to a single edge along its
// long axis.
func rectToEdges(r RawRect) []Edge {
	b := r.BBox
	width, height := b.Width(), b.Height()

	if width < defaultEpsilon && height < defaultEpsilon {
		return nil
	}
	if height < defaultEpsilon {
		return []Edge{NewHEdge(b.X0, b.X1, b.Y0, 0, r.Color)}
	}
	if width < defaultEpsilon {
		return []Edge{NewVEdge(b.Y0, b.Y1, b.X0, 0, r.Color)}
	}

	return []Edge{
		NewHEdge(b.X0, b.X1, b.Y0, 0, r.Color),
		NewHEdge(b.X0, b.X1, b.Y1, 0, r.Color),
		NewVEdge(b.Y0, b.Y1, b.X0, 0, r.Color),
		NewVEdge(b.Y0, b.Y1, b.X1, 0, r.Color),
	}
}

// segmentToEdge converts a stroked line segment into an edge iff it is
// horizontal or vertical within slopeTolerance.
func segmentToEdge(s RawSegment) (Edge, bool) {
	return segmentPointsToEdge(s.P1, s.P2, s.Width, s.Color)
}

// segmentPointsToEdge is the shared slope check used both for stroked
// segments and for the line segments implied by path operators.
func segmentPointsToEdge(p1, p2 Point, width float64, color Color) (Edge, bool) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Edge{}, false
	}

	if math.Abs(dy/length) <= slopeTolerance {
		return NewHEdge(p1.X, p2.X, (p1.Y+p2.Y)/2, width, color), true
	}
	if math.Abs(dx/length) <= slopeTolerance {
		return NewVEdge(p1.Y, p2.Y, (p1.X+p2.X)/2, width, color), true
	}
	// Diagonal: discarded.
	return Edge{}, false
}

// pathToEdges walks a path's move/line/close operator stream and emits one
// edge per constituent line segment that is horizontal or vertical. Each
// MoveTo starts a fresh subpath, resetting the current point; each subpath's
// Close draws a final segment back to that subpath's own start point and
// does not affect the point any sibling subpath started from. A single path
// containing several MoveTo/LineTo/Close runs
// is therefore handled correctly: losing this reset silently drops edges,
// which is exactly the defect the bbox-only approach has.
func pathToEdges(p RawPath) []Edge {
	var edges []Edge

	var current, subpathStart Point
	haveCurrent := false
	var subpathStartSet bool

	for _, op := range p.Ops {
		switch op.Kind {
		case PathMoveTo:
			current = op.Point
			subpathStart = op.Point
			haveCurrent = true
			subpathStartSet = true
		case PathLineTo:
			if haveCurrent {
				if e, ok := segmentPointsToEdge(current, op.Point, p.Width, p.Color); ok {
					edges = append(edges, e)
				}
			}
			current = op.Point
			haveCurrent = true
		case PathClose:
			if haveCurrent && subpathStartSet {
				if e, ok := segmentPointsToEdge(current, subpathStart, p.Width, p.Color); ok {
					edges = append(edges, e)
				}
			}
			current = subpathStart
			// haveCurrent remains true; a subsequent LineTo without a
			// MoveTo continues from the subpath's start point.
		}
	}

	return edges
}

// filterByLength drops edges shorter than minLength. minLength <= 0 is a
// no-op (the prefilter and post-filter share this helper).
func filterByLength(edges []Edge, minLength float64) []Edge {
	if minLength <= 0 {
		return edges
	}
	result := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Length() >= minLength {
			result = append(result, e)
		}
	}
	return result
}
