package slide

import (
	"fmt"

	"github.com/jordanro2/edgeslide/pkg/geometry"
	"github.com/jordanro2/edgeslide/pkg/mesh"
)

// Analyze validates the selected edges as a loop (repairing the
// selection by chain tracing if needed), measures the directional slide
// range of every slideable loop edge, and aggregates the ranges
// according to opts.Method.
//
// The mesh is only read; Analyze is pure given its inputs.
func Analyze(m mesh.Mesh, selected []int, opts Options) (*Analysis, error) {
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	loop := selected
	repaired := false
	if !isValidLoop(m, selected) {
		loop = repairLoop(m, selected)
		if loop == nil {
			return nil, fmt.Errorf("%w: no connected chain longer than 2 edges", ErrNoValidLoop)
		}
		repaired = true
	}

	ranges := make([]EdgeRange, 0, len(loop))
	for _, e := range loop {
		if r, ok := edgeSlideRange(m, e, opts); ok {
			ranges = append(ranges, r)
		}
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: no loop edge has two adjacent faces", ErrNoValidLoop)
	}

	width := 0.0
	for _, r := range ranges {
		width += r.Positive + r.Negative
	}
	width /= float64(len(ranges))

	return &Analysis{
		Loop:      loop,
		Ranges:    ranges,
		Distance:  Aggregate(ranges, opts.Method),
		LoopWidth: width,
		Repaired:  repaired,
	}, nil
}

// isValidLoop reports whether every vertex touched by the selection is
// touched by exactly two selected edges. This is a necessary condition
// for a simple closed loop and is accepted as the membership test.
func isValidLoop(m mesh.Mesh, selected []int) bool {
	degree := make(map[int]int, len(selected)*2)
	for _, e := range selected {
		v1, v2 := m.EdgeVertices(e)
		degree[v1]++
		degree[v2]++
	}
	for _, d := range degree {
		if d != 2 {
			return false
		}
	}
	return true
}

// repairLoop traces connected chains through the selection and returns
// the first chain longer than two edges, or nil if none exists.
//
// Starting from each unprocessed seed edge the chain grows outward from
// both endpoints, consuming at every step the lowest-indexed unprocessed
// selected edge incident to the chain end.
func repairLoop(m mesh.Mesh, selected []int) []int {
	incident := make(map[int][]int, len(selected)*2)
	for _, e := range selected {
		v1, v2 := m.EdgeVertices(e)
		incident[v1] = append(incident[v1], e)
		incident[v2] = append(incident[v2], e)
	}

	processed := make(map[int]bool, len(selected))

	nextAt := func(v int) (int, bool) {
		best := -1
		for _, e := range incident[v] {
			if !processed[e] && (best < 0 || e < best) {
				best = e
			}
		}
		return best, best >= 0
	}

	for _, seed := range selected {
		if processed[seed] {
			continue
		}
		processed[seed] = true
		chain := []int{seed}

		v1, v2 := m.EdgeVertices(seed)
		for _, end := range []int{v1, v2} {
			at := end
			for {
				e, ok := nextAt(at)
				if !ok {
					break
				}
				processed[e] = true
				chain = append(chain, e)

				a, b := m.EdgeVertices(e)
				if a == at {
					at = b
				} else {
					at = a
				}
			}
		}

		if len(chain) > 2 {
			return chain
		}
	}
	return nil
}

// edgeSlideRange measures how far an edge can travel toward each of its
// two flanking boundaries. Edges without exactly two adjacent faces have
// no defined slide range and report ok=false.
func edgeSlideRange(m mesh.Mesh, e int, opts Options) (EdgeRange, bool) {
	faces := m.EdgeFaces(e)
	if len(faces) != 2 {
		return EdgeRange{}, false
	}

	mid := mesh.EdgeMidpoint(m, e)

	if len(m.FaceVertices(faces[0])) == 4 && len(m.FaceVertices(faces[1])) == 4 {
		pos, okPos := oppositeEdgeDistance(m, faces[0], e, mid)
		neg, okNeg := oppositeEdgeDistance(m, faces[1], e, mid)

		switch {
		case okPos && okNeg:
			return EdgeRange{Edge: e, Positive: pos, Negative: neg}, true
		case opts.MirrorMissingOpposite && okPos:
			return EdgeRange{Edge: e, Positive: pos, Negative: pos}, true
		case opts.MirrorMissingOpposite && okNeg:
			return EdgeRange{Edge: e, Positive: neg, Negative: neg}, true
		}
		// No usable opposite edge: estimate from the corners instead.
	}

	return EdgeRange{
		Edge:     e,
		Positive: cornerDistance(m, faces[0], e, mid) * opts.NonQuadScale,
		Negative: cornerDistance(m, faces[1], e, mid) * opts.NonQuadScale,
	}, true
}

// oppositeEdgeDistance finds the edge of face f sharing no vertex with
// edge e and returns the distance between the two edge midpoints
func oppositeEdgeDistance(m mesh.Mesh, f, e int, mid geometry.Vector3) (float64, bool) {
	ev1, ev2 := m.EdgeVertices(e)
	for _, fe := range m.FaceEdges(f) {
		if fe == e {
			continue
		}
		a, b := m.EdgeVertices(fe)
		if a == ev1 || a == ev2 || b == ev1 || b == ev2 {
			continue
		}
		return mid.Distance(mesh.EdgeMidpoint(m, fe)), true
	}
	return 0, false
}

// cornerDistance returns the maximum distance from the edge midpoint to
// any vertex of face f that is not an endpoint of edge e
func cornerDistance(m mesh.Mesh, f, e int, mid geometry.Vector3) float64 {
	ev1, ev2 := m.EdgeVertices(e)
	maxDist := 0.0
	for _, v := range m.FaceVertices(f) {
		if v == ev1 || v == ev2 {
			continue
		}
		if d := mid.Distance(m.VertexPosition(v)); d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}

// Aggregate combines per-edge ranges component-wise under the given
// statistic. It panics on an empty slice; Analyze never produces one.
func Aggregate(ranges []EdgeRange, method Method) LoopDistance {
	switch method {
	case Minimum:
		d := LoopDistance{Positive: ranges[0].Positive, Negative: ranges[0].Negative}
		for _, r := range ranges[1:] {
			if r.Positive < d.Positive {
				d.Positive = r.Positive
			}
			if r.Negative < d.Negative {
				d.Negative = r.Negative
			}
		}
		return d

	case Maximum:
		d := LoopDistance{Positive: ranges[0].Positive, Negative: ranges[0].Negative}
		for _, r := range ranges[1:] {
			if r.Positive > d.Positive {
				d.Positive = r.Positive
			}
			if r.Negative > d.Negative {
				d.Negative = r.Negative
			}
		}
		return d

	case First:
		return LoopDistance{Positive: ranges[0].Positive, Negative: ranges[0].Negative}

	default: // Average
		d := LoopDistance{}
		for _, r := range ranges {
			d.Positive += r.Positive
			d.Negative += r.Negative
		}
		d.Positive /= float64(len(ranges))
		d.Negative /= float64(len(ranges))
		return d
	}
}
