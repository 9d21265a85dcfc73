// Package surface implements the topological surface extractor: skin
// extraction by shared-face cancellation, block assignment, and
// edge-connected/coplanar patch segmentation (spec §4.2).
package surface

import (
	"sort"
	"sync"

	"hexcontact/errs"
	"hexcontact/geom"
	"hexcontact/log"
	"hexcontact/mesh"
)

// coplanarAngleDeg is the maximum angle, in degrees, between a candidate
// face's normal and its patch seed's normal for the candidate to join the
// patch (§4.2.3).
const coplanarAngleDeg = 10.0

// parallelGeomThreshold is the per-patch face count above which per-face
// geometry may be computed concurrently (§4.2.4).
const parallelGeomThreshold = 5000

// Patch is a maximal edge-connected, seed-coplanar set of boundary faces
// within one block, together with its per-face geometry (§3 "Surface patch").
type Patch struct {
	PartName      string
	Faces         []mesh.QuadFace
	FaceNormals   []mesh.Vec
	FaceCentroids []mesh.Point
	FaceAreas     []float64
	Nodes         []mesh.Point
}

// ExtractSurface reduces a volume mesh to its boundary and segments each
// block's boundary into locally-planar patches, in discovery order.
func ExtractSurface(m mesh.Mesh, logger log.Logger) ([]Patch, error) {
	log.Infof(logger, "extracting surface from mesh with %d elements", len(m.Elements))

	faceElems, faceOrder, err := buildFaceAdjacency(m)
	if err != nil {
		return nil, err
	}

	boundary, err := boundaryFaces(faceElems, faceOrder)
	if err != nil {
		return nil, err
	}
	log.Infof(logger, "found %d boundary faces", len(boundary))

	blockFaces, err := groupByBlock(m, boundary)
	if err != nil {
		return nil, err
	}

	var patches []Patch
	// iterate blocks in a stable order so patch discovery is reproducible
	blockNames := make([]string, 0, len(blockFaces))
	for name := range blockFaces {
		blockNames = append(blockNames, name)
	}
	sort.Strings(blockNames)
	for _, block := range blockNames {
		faces := blockFaces[block]
		log.Infof(logger, "subdividing block %q with %d faces into patches", block, len(faces))
		subPatches, err := subdivideIntoPatches(block, faces, m.Nodes)
		if err != nil {
			return nil, err
		}
		log.Infof(logger, "block %q subdivided into %d patches", block, len(subPatches))
		patches = append(patches, subPatches...)
	}
	return patches, nil
}

// faceRecord records the elements that contain a face and the order it was
// first discovered in, so downstream iteration stays deterministic.
type faceRecord struct {
	elems []int
	order int
}

// buildFaceAdjacency maps each face's canonical key to the element indices
// that contain it, preserving original winding for the first occurrence.
func buildFaceAdjacency(m mesh.Mesh) (map[mesh.QuadFace]*faceRecord, map[mesh.QuadFace]mesh.QuadFace, error) {
	adjacency := make(map[mesh.QuadFace]*faceRecord)
	winding := make(map[mesh.QuadFace]mesh.QuadFace) // canonical -> original winding (first seen)
	order := 0
	for elemIdx, el := range m.Elements {
		for _, f := range el.Faces() {
			key := f.Canonical()
			if _, ok := winding[key]; !ok {
				winding[key] = f
			}
			rec, ok := adjacency[key]
			if !ok {
				rec = &faceRecord{order: order}
				order++
				adjacency[key] = rec
			}
			rec.elems = append(rec.elems, elemIdx)
			if len(rec.elems) > 2 {
				return nil, nil, errs.New(errs.InvalidMeshTopology, "face with nodes %v is shared by more than 2 elements", f)
			}
		}
	}
	return adjacency, winding, nil
}

// boundaryFaces returns, in discovery order, the faces owned by exactly one
// element, each paired with that owning element index.
func boundaryFaces(adjacency map[mesh.QuadFace]*faceRecord, winding map[mesh.QuadFace]mesh.QuadFace) ([]struct {
	Face mesh.QuadFace
	Elem int
}, error) {
	type entry struct {
		Face  mesh.QuadFace
		Elem  int
		order int
	}
	var entries []entry
	for key, rec := range adjacency {
		if len(rec.elems) == 1 {
			entries = append(entries, entry{Face: winding[key], Elem: rec.elems[0], order: rec.order})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].order < entries[j].order })

	out := make([]struct {
		Face mesh.QuadFace
		Elem int
	}, len(entries))
	for i, e := range entries {
		out[i] = struct {
			Face mesh.QuadFace
			Elem int
		}{e.Face, e.Elem}
	}
	return out, nil
}

// groupByBlock partitions boundary faces by the block owning their element,
// preserving discovery order within each block.
func groupByBlock(m mesh.Mesh, boundary []struct {
	Face mesh.QuadFace
	Elem int
}) (map[string][]mesh.QuadFace, error) {
	elemToBlock := make(map[int]string, len(m.Elements))
	for block, idxs := range m.Blocks {
		for _, ei := range idxs {
			elemToBlock[ei] = block
		}
	}

	grouped := make(map[string][]mesh.QuadFace)
	for _, b := range boundary {
		block, ok := elemToBlock[b.Elem]
		if !ok {
			return nil, errs.New(errs.InvalidMeshTopology, "element %d not found in any block", b.Elem)
		}
		grouped[block] = append(grouped[block], b.Face)
	}
	return grouped, nil
}

// subdivideIntoPatches splits a block's boundary faces into maximal
// edge-connected, seed-coplanar patches by BFS flood fill (§4.2.3).
func subdivideIntoPatches(block string, faces []mesh.QuadFace, nodes []mesh.Point) ([]Patch, error) {
	if len(faces) == 0 {
		return nil, nil
	}

	adjacency := buildEdgeAdjacency(faces)

	normals := make([]mesh.Vec, len(faces))
	for i, f := range faces {
		n, err := geom.FaceNormal(f, nodes)
		if err != nil {
			return nil, err
		}
		normals[i] = n
	}

	visited := make([]bool, len(faces))
	var patches []Patch
	for seedIdx := range faces {
		if visited[seedIdx] {
			continue
		}
		seedNormal := normals[seedIdx]
		var patchFaces []mesh.QuadFace
		queue := []int{seedIdx}
		visited[seedIdx] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			patchFaces = append(patchFaces, faces[cur])
			for _, adj := range adjacency[cur] {
				if visited[adj] {
					continue
				}
				if geom.AngleBetween(seedNormal, normals[adj]) <= coplanarAngleDeg {
					visited[adj] = true
					queue = append(queue, adj)
				}
			}
		}

		name := partName(block, len(patches))
		p, err := buildPatch(name, patchFaces, nodes)
		if err != nil {
			return nil, err
		}
		patches = append(patches, p)
	}
	return patches, nil
}

func partName(block string, idx int) string {
	return block + ":patch_" + itoa(idx)
}

// itoa avoids pulling in strconv just for a monotonically increasing index
// label; kept tiny and local like the small helpers scattered through
// shp/algos.go.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// buildEdgeAdjacency maps each face index to the indices of faces sharing
// an edge with it (§4.2.3).
func buildEdgeAdjacency(faces []mesh.QuadFace) map[int][]int {
	edgeToFaces := make(map[[2]int][]int)
	for idx, f := range faces {
		for _, e := range f.Edges() {
			edgeToFaces[e] = append(edgeToFaces[e], idx)
		}
	}
	adjacency := make(map[int][]int)
	for _, idxs := range edgeToFaces {
		for x := 0; x < len(idxs); x++ {
			for y := x + 1; y < len(idxs); y++ {
				a, b := idxs[x], idxs[y]
				adjacency[a] = append(adjacency[a], b)
				adjacency[b] = append(adjacency[b], a)
			}
		}
	}
	return adjacency
}

// buildPatch computes per-face geometry for a patch, in parallel above
// parallelGeomThreshold faces. Output order always matches input order
// regardless of which path ran (§4.2.4, §5).
func buildPatch(name string, faces []mesh.QuadFace, nodes []mesh.Point) (Patch, error) {
	normals := make([]mesh.Vec, len(faces))
	centroids := make([]mesh.Point, len(faces))
	areas := make([]float64, len(faces))

	compute := func(i int) error {
		n, err := geom.FaceNormal(faces[i], nodes)
		if err != nil {
			return err
		}
		c, err := geom.FaceCentroid(faces[i], nodes)
		if err != nil {
			return err
		}
		a, err := geom.FaceArea(faces[i], nodes)
		if err != nil {
			return err
		}
		normals[i], centroids[i], areas[i] = n, c, a
		return nil
	}

	if len(faces) < parallelGeomThreshold {
		for i := range faces {
			if err := compute(i); err != nil {
				return Patch{}, err
			}
		}
	} else {
		if err := parallelCompute(len(faces), compute); err != nil {
			return Patch{}, err
		}
	}

	return Patch{
		PartName:      name,
		Faces:         faces,
		FaceNormals:   normals,
		FaceCentroids: centroids,
		FaceAreas:     areas,
		Nodes:         nodes,
	}, nil
}

// parallelCompute fans work out over a fixed worker count, each worker
// taking a contiguous index range and writing directly into the caller's
// pre-sized slices — grounded on akmonengine-feather/spatialgrid.go's
// FindPairsParallel, which chunks bodies across numWorkers goroutines
// rather than using a job queue, since the item count is known up front.
func parallelCompute(n int, fn func(i int) error) error {
	workers := 8
	if workers > n {
		workers = n
	}
	chunk := n / workers
	if chunk == 0 {
		chunk = 1
	}

	var wg sync.WaitGroup
	errsCh := make(chan error, workers)
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
				if err := fn(i); err != nil {
					errsCh <- err
					return
				}
			}
		}(start, end)
	}
	wg.Wait()
	close(errsCh)
	for err := range errsCh {
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateClosure walks a patch's edges and checks that every edge appears
// in exactly two faces. It never aborts the pipeline: failures are reported
// through logger.Warnf (§4.2.5).
func ValidateClosure(p Patch, logger log.Logger) bool {
	count := make(map[[2]int]int)
	for _, f := range p.Faces {
		for _, e := range f.Edges() {
			count[e]++
		}
	}
	closed := true
	for _, c := range count {
		if c != 2 {
			closed = false
			break
		}
	}
	if !closed {
		log.Warnf(logger, "surface %q is not closed: some edges are not shared by exactly 2 faces", p.PartName)
	}
	return closed
}
