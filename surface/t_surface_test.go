package surface

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"hexcontact/mesh"
)

func unitCubeMesh() mesh.Mesh {
	nodes := []mesh.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	return mesh.Mesh{
		Nodes:    nodes,
		Elements: []mesh.Hex{{0, 1, 2, 3, 4, 5, 6, 7}},
		Blocks:   map[string][]int{"B": {0}},
	}
}

// Test_surfS1 is scenario S1: a unit cube, single hex, one block "B" must
// yield six single-face patches named B:patch_0..B:patch_5, each area 1.0.
func Test_surfS1(tst *testing.T) {

	chk.PrintTitle("surfS1")

	m := unitCubeMesh()
	patches, err := ExtractSurface(m, nil)
	if err != nil {
		chk.Panic("unexpected error: %v", err)
	}
	chk.IntAssert(len(patches), 6)

	for k, p := range patches {
		chk.StrAssert(p.PartName, "B:patch_"+itoa(k))
		chk.IntAssert(len(p.Faces), 1)
		chk.Scalar(tst, "area", 1e-12, p.FaceAreas[0], 1.0)
		chk.Scalar(tst, "|normal|", 1e-10, len2(p.FaceNormals[0]), 1.0)
	}
}

func twoStackedCubesMesh() mesh.Mesh {
	nodes := []mesh.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		{X: 0, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 2}, {X: 1, Y: 1, Z: 2}, {X: 0, Y: 1, Z: 2},
	}
	return mesh.Mesh{
		Nodes: nodes,
		Elements: []mesh.Hex{
			{0, 1, 2, 3, 4, 5, 6, 7},
			{4, 5, 6, 7, 8, 9, 10, 11},
		},
		Blocks: map[string][]int{"B": {0, 1}},
	}
}

// Test_surfS2 is scenario S2: two stacked unit cubes sharing their z=1
// face, single block "B". The skin has 10 boundary faces, but the
// seed-coplanar BFS merges each pair of edge-sharing, equal-normal side
// halves (e.g. bottom-cube front {0,1,5,4} and top-cube front {4,5,9,8}
// share edge {4,5} and both have normal (0,-1,0), 0 degrees apart), so
// patch count is 6: 4 side patches of 2 faces each, plus top and bottom.
// Total area across all faces is still 10.0.
func Test_surfS2(tst *testing.T) {

	chk.PrintTitle("surfS2")

	m := twoStackedCubesMesh()
	patches, err := ExtractSurface(m, nil)
	if err != nil {
		chk.Panic("unexpected error: %v", err)
	}
	chk.IntAssert(len(patches), 6)

	var totalFaces int
	var totalArea float64
	for _, p := range patches {
		totalFaces += len(p.Faces)
		for _, a := range p.FaceAreas {
			totalArea += a
		}
	}
	chk.IntAssert(totalFaces, 10)
	chk.Scalar(tst, "total area", 1e-10, totalArea, 10.0)
}

func Test_invalidtopology01(tst *testing.T) {

	chk.PrintTitle("invalidtopology01")

	// three hexes sharing the same face is malformed: build three
	// coincident hexes (degenerate but topologically triple-shared)
	nodes := []mesh.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		{X: 0, Y: 0, Z: -1}, {X: 1, Y: 0, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 0, Y: 1, Z: -1},
		{X: 0, Y: 0, Z: -2}, {X: 1, Y: 0, Z: -2}, {X: 1, Y: 1, Z: -2}, {X: 0, Y: 1, Z: -2},
	}
	m := mesh.Mesh{
		Nodes: nodes,
		Elements: []mesh.Hex{
			{0, 1, 2, 3, 4, 5, 6, 7},
			{8, 9, 10, 11, 0, 1, 2, 3},
			{12, 13, 14, 15, 0, 1, 2, 3},
		},
		Blocks: map[string][]int{"B": {0, 1, 2}},
	}
	_, err := ExtractSurface(m, nil)
	if err == nil {
		chk.Panic("expected InvalidMeshTopology for a face shared by 3 elements")
	}
}

func len2(v mesh.Vec) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Test_closure01 checks property 2: for a closed manifold patch, every edge
// is shared by exactly 2 faces within the patch's own boundary (here, a
// single cube face is open on its own four edges, so closure must fail;
// the full 6-patch skin of a cube is closed edge-for-edge only across
// patches, which ValidateClosure does not see by design — it checks one
// patch in isolation).
func Test_closure01(tst *testing.T) {

	chk.PrintTitle("closure01")

	m := unitCubeMesh()
	patches, err := ExtractSurface(m, nil)
	if err != nil {
		chk.Panic("unexpected error: %v", err)
	}
	// a single-face patch has each of its 4 edges appearing once, not
	// twice, so ValidateClosure must report it as not closed.
	if ValidateClosure(patches[0], nil) {
		chk.Panic("expected single-face patch to be reported as not closed")
	}
}

// Test_closure02 builds an open two-quad patch (two quads folded into an
// open book, sharing one edge): its shared edge is covered twice while its
// outer edges are not, so it is not closed, since 6 of its 7 distinct edges
// appear once.
func Test_closure02(tst *testing.T) {

	chk.PrintTitle("closure02")

	p := Patch{
		PartName: "open",
		Faces: []mesh.QuadFace{
			{0, 1, 2, 3},
			{1, 4, 5, 2},
		},
	}
	if ValidateClosure(p, nil) {
		chk.Panic("expected two-quad open patch to be reported as not closed")
	}
}
