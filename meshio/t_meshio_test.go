package meshio

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"hexcontact/mesh"
)

// Test_roundtrip01 mirrors original_source's test_json_roundtrip.
func Test_roundtrip01(tst *testing.T) {

	chk.PrintTitle("roundtrip01")

	m := mesh.Mesh{
		Nodes: []mesh.Point{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		Elements: []mesh.Hex{{0, 1, 2, 3, 4, 5, 6, 7}},
		Blocks:   map[string][]int{"Block1": {0}},
	}

	dir := os.TempDir()
	fn := "hexcontact_test_mesh.json"
	if err := Write(dir, fn, m); err != nil {
		chk.Panic("write failed: %v", err)
	}
	defer os.Remove(dir + "/" + fn)

	loaded, err := Read(dir, fn)
	if err != nil {
		chk.Panic("read failed: %v", err)
	}
	chk.IntAssert(len(loaded.Nodes), 8)
	chk.IntAssert(len(loaded.Elements), 1)
	chk.IntAssert(len(loaded.Blocks), 1)
}
