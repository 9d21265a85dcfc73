// Package contact implements the spatially-indexed contact matcher: given
// two surface patches and a tolerance configuration, it pairs each face of
// one patch with at most one face of the other (spec §4.3).
package contact

import (
	"sync"

	"hexcontact/geom"
	"hexcontact/log"
	"hexcontact/mesh"
	"hexcontact/spatial"
	"hexcontact/surface"
)

// parallelMatchThreshold is the per-invocation A-face count above which
// A's faces may be matched concurrently (§4.3.4).
const parallelMatchThreshold = 1000

// Pair is a matched (A-face, B-face) with its signed gap, normal
// misalignment, and projected contact point (§3 "Contact pair").
type Pair struct {
	FaceA        int
	FaceB        int
	Distance     float64
	NormalAngle  float64
	ContactPoint mesh.Point
}

// Result is the outcome of matching patch A against patch B under Criteria.
type Result struct {
	Pairs     []Pair
	UnpairedA []int
	UnpairedB []int
	Criteria  Criteria
}

// DetectContactPairs pairs each face of a with at most one face of b.
// A B-face may be selected by more than one A-face; this is allowed
// (§4.3.3, §9 open question 2).
func DetectContactPairs(a, b surface.Patch, criteria Criteria, logger log.Logger) (Result, error) {
	if err := criteria.Validate(); err != nil {
		return Result{}, err
	}

	log.Infof(logger, "detecting contact pairs between %q and %q", a.PartName, b.PartName)

	index := spatial.NewGrid(b.FaceCentroids, criteria.SearchRadius())
	radiusSq := criteria.SearchRadius() * criteria.SearchRadius()

	matches := make([]*Pair, len(a.Faces))

	match := func(i int) {
		matches[i] = findBestMatch(i, a, b, index, radiusSq, criteria)
	}

	if len(a.Faces) < parallelMatchThreshold {
		for i := range a.Faces {
			match(i)
		}
	} else {
		parallelRange(len(a.Faces), match)
	}

	var result Result
	result.Criteria = criteria
	paired := make(map[int]bool)
	for i, m := range matches {
		if m == nil {
			result.UnpairedA = append(result.UnpairedA, i)
			continue
		}
		result.Pairs = append(result.Pairs, *m)
		paired[m.FaceB] = true
	}
	for j := range b.Faces {
		if !paired[j] {
			result.UnpairedB = append(result.UnpairedB, j)
		}
	}

	log.Infof(logger, "found %d contact pairs, %d unpaired on A, %d unpaired on B",
		len(result.Pairs), len(result.UnpairedA), len(result.UnpairedB))
	return result, nil
}

// findBestMatch returns the lowest-|distance| acceptable candidate on b for
// face i of a, or nil if none survive the criteria (§4.3.3).
func findBestMatch(i int, a, b surface.Patch, index *spatial.Grid, radiusSq float64, criteria Criteria) *Pair {
	centroidA := a.FaceCentroids[i]
	normalA := a.FaceNormals[i]

	candidates := index.QueryRadius(centroidA, radiusSq)

	var best *Pair
	bestAbs := -1.0
	for _, j := range candidates {
		centroidB := b.FaceCentroids[j]
		normalB := b.FaceNormals[j]

		d := geom.SignedDistanceToPlane(centroidB, centroidA, normalA)
		if !criteria.InRange(d) {
			continue
		}

		angle := geom.AngleBetween(normalA, normalB)
		if !criteria.AngleOK(angle) {
			continue
		}

		contactPoint := geom.ProjectToPlane(centroidA, centroidB, normalB)

		absD := d
		if absD < 0 {
			absD = -absD
		}
		if best == nil || absD < bestAbs {
			bestAbs = absD
			best = &Pair{FaceA: i, FaceB: j, Distance: d, NormalAngle: angle, ContactPoint: contactPoint}
		}
	}
	return best
}

// parallelRange fans calls to fn(i) out over a fixed worker count, each
// worker taking a contiguous index range — the same chunk-by-worker
// pattern as surface.parallelCompute, grounded on
// akmonengine-feather/spatialgrid.go's FindPairsParallel. Writes land at
// position i in the caller's pre-sized slice, so the result is identical
// to the sequential path regardless of scheduling (§4.3.4, §5).
func parallelRange(n int, fn func(i int)) {
	workers := 8
	if workers > n {
		workers = n
	}
	chunk := n / workers
	if chunk == 0 {
		chunk = 1
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if w == workers-1 {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
