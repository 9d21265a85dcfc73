package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_canon01(tst *testing.T) {

	chk.PrintTitle("canon01")

	// idempotence
	f := QuadFace{3, 7, 1, 9}
	c := f.Canonical()
	chk.IntAssert(len(c), 4)
	if c.Canonical() != c {
		chk.Panic("canonical form is not idempotent: %v -> %v", c, c.Canonical())
	}

	// winding invariance: every rotation and the reversal must canonicalize
	// to the same key
	base := QuadFace{2, 5, 8, 11}
	want := base.Canonical()
	rotations := []QuadFace{
		{2, 5, 8, 11},
		{5, 8, 11, 2},
		{8, 11, 2, 5},
		{11, 2, 5, 8},
	}
	for _, r := range rotations {
		if r.Canonical() != want {
			chk.Panic("rotation %v did not canonicalize to %v, got %v", r, want, r.Canonical())
		}
	}
	reversed := QuadFace{base[0], base[3], base[2], base[1]}
	if reversed.Canonical() != want {
		chk.Panic("reversed winding %v did not canonicalize to %v, got %v", reversed, want, reversed.Canonical())
	}
}

func Test_hexfaces01(tst *testing.T) {

	chk.PrintTitle("hexfaces01")

	// unit cube, standard node ordering
	h := Hex{0, 1, 2, 3, 4, 5, 6, 7}
	faces := h.Faces()
	chk.IntAssert(len(faces), 6)

	// every face must have 4 distinct node indices
	for i, f := range faces {
		seen := map[int]bool{}
		for _, n := range f {
			if seen[n] {
				chk.Panic("face %d has duplicate node %d", i, n)
			}
			seen[n] = true
		}
	}
}

func Test_edges01(tst *testing.T) {

	chk.PrintTitle("edges01")

	f := QuadFace{0, 1, 2, 3}
	e := f.Edges()
	chk.IntAssert(len(e), 4)
	want := [4][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}
	for i := range want {
		if e[i] != want[i] {
			chk.Panic("edge %d: got %v, want %v", i, e[i], want[i])
		}
	}
}

func Test_validate01(tst *testing.T) {

	chk.PrintTitle("validate01")

	m := Mesh{
		Nodes:    make([]Point, 8),
		Elements: []Hex{{0, 1, 2, 3, 4, 5, 6, 7}},
		Blocks:   map[string][]int{"B": {0}},
	}
	if err := m.Validate(); err != nil {
		chk.Panic("expected valid mesh, got %v", err)
	}

	bad := m
	bad.Elements = []Hex{{0, 1, 2, 3, 4, 5, 6, 99}}
	if err := bad.Validate(); err == nil {
		chk.Panic("expected InvalidMeshTopology for out-of-range node")
	}

	block, err := m.ElementBlock(0)
	if err != nil {
		chk.Panic("expected element 0 to be in a block: %v", err)
	}
	chk.StrAssert(block, "B")

	if _, err := m.ElementBlock(99); err == nil {
		chk.Panic("expected ElementBlockNotFound for element 99")
	}
}

func Test_boundingbox01(tst *testing.T) {

	chk.PrintTitle("boundingbox01")

	m := Mesh{
		Nodes: []Point{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
	}
	min, max := m.BoundingBox()
	chk.Scalar(tst, "min.x", 1e-15, min.X, 0)
	chk.Scalar(tst, "min.y", 1e-15, min.Y, 0)
	chk.Scalar(tst, "min.z", 1e-15, min.Z, 0)
	chk.Scalar(tst, "max.x", 1e-15, max.X, 1)
	chk.Scalar(tst, "max.y", 1e-15, max.Y, 1)
	chk.Scalar(tst, "max.z", 1e-15, max.Z, 1)
}
