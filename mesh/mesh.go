// Package mesh holds the volume-mesh data model: points, hexahedral
// elements, quad faces and their canonical form, and the mesh container
// that groups elements into named blocks.
package mesh

import (
	"github.com/cpmech/gosl/utl"

	"hexcontact/errs"
)

// Point is a triple of double-precision coordinates.
type Point struct {
	X, Y, Z float64
}

// Vec is a free vector with the same shape as Point.
type Vec struct {
	X, Y, Z float64
}

// Hex is an ordered tuple of eight node indices in canonical hex ordering:
// 0..3 are one face in a fixed winding, 4..7 are the opposing face, with
// node k+4 the neighbor of node k along the sixth axis.
type Hex [8]int

// QuadFace is an ordered 4-tuple of distinct node indices, winding preserved.
type QuadFace [4]int

// Faces returns the six quad faces of a hex element: bottom, top, front,
// right, back, left, each wound counter-clockwise as seen from outside.
func (h Hex) Faces() [6]QuadFace {
	n := h
	return [6]QuadFace{
		{n[0], n[3], n[2], n[1]}, // bottom (z-)
		{n[4], n[5], n[6], n[7]}, // top (z+)
		{n[0], n[1], n[5], n[4]}, // front (y-)
		{n[1], n[2], n[6], n[5]}, // right (x+)
		{n[2], n[3], n[7], n[6]}, // back (y+)
		{n[3], n[0], n[4], n[7]}, // left (x-)
	}
}

// Canonical returns the rotation/reflection-normalized form of a face, used
// as the hash key wherever face identity is compared. Two faces with the
// same node set, regardless of winding, canonicalize to the same value.
func (f QuadFace) Canonical() QuadFace {
	minIdx := 0
	for i := 1; i < 4; i++ {
		if f[i] < f[minIdx] {
			minIdx = i
		}
	}
	var rot QuadFace
	for i := 0; i < 4; i++ {
		rot[i] = f[(minIdx+i)%4]
	}
	rev := QuadFace{rot[0], rot[3], rot[2], rot[1]}
	if less(rev, rot) {
		return rev
	}
	return rot
}

// less compares the tails (indices 1..3) of two same-headed rotations
// lexicographically, matching the canonicalization rule of §3/§4.1.
func less(a, b QuadFace) bool {
	for i := 1; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Edges returns the four unordered (min, max) node-index pairs of a face.
func (f QuadFace) Edges() [4][2]int {
	var e [4][2]int
	for i := 0; i < 4; i++ {
		a, b := f[i], f[(i+1)%4]
		if a > b {
			a, b = b, a
		}
		e[i] = [2]int{a, b}
	}
	return e
}

// Mesh is a volume mesh: nodes, elements, and the block partition.
type Mesh struct {
	Nodes    []Point
	Elements []Hex
	// Blocks maps a block name to the ordered list of element indices
	// belonging to it.
	Blocks map[string][]int
	// NodeSets and SideSets are passed through unchanged by the core.
	NodeSets map[string][]int
	SideSets map[string][][2]int
}

// Validate checks the mesh invariants of §3: every node/element index
// referenced is in range, and the block lists partition the full element
// index set exactly (no gaps, no duplicates).
func (m Mesh) Validate() error {
	nn := len(m.Nodes)
	for ei, el := range m.Elements {
		for _, nid := range el {
			if nid < 0 || nid >= nn {
				return errs.New(errs.InvalidMeshTopology, "element %d references out-of-range node %d", ei, nid)
			}
		}
	}
	seen := make([]bool, len(m.Elements))
	count := 0
	for block, idxs := range m.Blocks {
		for _, ei := range idxs {
			if ei < 0 || ei >= len(m.Elements) {
				return errs.New(errs.InvalidMeshTopology, "block %q references out-of-range element %d", block, ei)
			}
			if seen[ei] {
				return errs.New(errs.InvalidMeshTopology, "element %d assigned to more than one block", ei)
			}
			seen[ei] = true
			count++
		}
	}
	if count != len(m.Elements) {
		return errs.New(errs.InvalidMeshTopology, "block element-lists (%d) do not cover all %d elements", count, len(m.Elements))
	}
	return nil
}

// BoundingBox returns the axis-aligned min/max corners of the mesh's node
// array, tracked the way out/topology.go accumulates Umin/Umax: a running
// min/max comparison per coordinate rather than a sort.
func (m Mesh) BoundingBox() (min, max Point) {
	if len(m.Nodes) == 0 {
		return
	}
	min, max = m.Nodes[0], m.Nodes[0]
	for _, p := range m.Nodes[1:] {
		min.X, max.X = utl.Min(min.X, p.X), utl.Max(max.X, p.X)
		min.Y, max.Y = utl.Min(min.Y, p.Y), utl.Max(max.Y, p.Y)
		min.Z, max.Z = utl.Min(min.Z, p.Z), utl.Max(max.Z, p.Z)
	}
	return
}

// ElementBlock returns the block name owning the given element index, or an
// ElementBlockNotFound error if no block claims it.
func (m Mesh) ElementBlock(elemIdx int) (string, error) {
	for block, idxs := range m.Blocks {
		for _, ei := range idxs {
			if ei == elemIdx {
				return block, nil
			}
		}
	}
	return "", errs.New(errs.ElementBlockNotFound, "element %d is not owned by any block", elemIdx)
}
