package pdftables

import "sort"

// EnumerateCells derives the minimal axis-aligned rectangles whose four
// corners are lattice points and whose four sides lie on witnessed edge
// segments. Duplicate cells (identical bbox under
// tolerance) are coalesced; the result is sorted top-to-bottom, then
// left-to-right.
func EnumerateCells(lat lattice, settings TfSettings) []BBox {
	eps := maxFloat(settings.IntersectionXTolerance, settings.IntersectionYTolerance)
	if eps == 0 {
		eps = defaultEpsilon
	}

	points := make([]Point, 0, len(lat))
	for _, lp := range lat {
		points = append(points, lp.Point)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	byY := make(map[int64][]float64) // rounded y -> sorted x's
	byX := make(map[int64][]float64) // rounded x -> sorted y's
	for _, p := range points {
		byY[roundToGrid(p.Y)] = append(byY[roundToGrid(p.Y)], p.X)
		byX[roundToGrid(p.X)] = append(byX[roundToGrid(p.X)], p.Y)
	}
	for k := range byY {
		sort.Float64s(byY[k])
	}
	for k := range byX {
		sort.Float64s(byX[k])
	}

	var cells []BBox
	for _, p := range points {
		lp, ok := lat.pointAt(p)
		if !ok {
			continue
		}

		rowXs := byY[roundToGrid(p.Y)]
		colYs := byX[roundToGrid(p.X)]

		var cell *BBox
		for _, qx := range rowXs {
			if qx <= p.X+eps {
				continue
			}
			if !hEdgeSpans(lp, p.X, qx, eps) {
				continue
			}
			for _, ry := range colYs {
				if ry <= p.Y+eps {
					continue
				}
				if !vEdgeSpans(lp, p.Y, ry, eps) {
					continue
				}

				bottomLeft, ok := lat.pointAt(Point{X: p.X, Y: ry})
				if !ok || !hEdgeSpans(bottomLeft, p.X, qx, eps) {
					continue
				}
				topRight, ok := lat.pointAt(Point{X: qx, Y: p.Y})
				if !ok || !vEdgeSpans(topRight, p.Y, ry, eps) {
					continue
				}
				if _, ok := lat.pointAt(Point{X: qx, Y: ry}); !ok {
					continue
				}

				b := NewBBox(p.X, p.Y, qx, ry)
				cell = &b
				break
			}
			if cell != nil {
				break
			}
		}

		if cell != nil {
			cells = append(cells, *cell)
		}
	}

	return coalesceCells(cells, eps)
}

// coalesceCells removes duplicate bboxes (equal under eps) and sorts the
// survivors top-to-bottom then left-to-right.
func coalesceCells(cells []BBox, eps float64) []BBox {
	var result []BBox
	for _, c := range cells {
		dup := false
		for _, existing := range result {
			if c.ApproxEqual(existing, eps) {
				dup = true
				break
			}
		}
		if !dup {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Y0 != result[j].Y0 {
			return result[i].Y0 < result[j].Y0
		}
		return result[i].X0 < result[j].X0
	})
	return result
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
