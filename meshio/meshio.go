// Package meshio reads and writes the JSON mesh exchange format: the
// pluggable collaborator standing in for the binary finite-element reader
// the core treats as external (spec §6 "Mesh ingestion contract"). It
// follows inp/msh.go's json.Unmarshal-into-a-plain-struct convention rather
// than a schema-validating decoder.
package meshio

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/io"

	"hexcontact/errs"
	"hexcontact/mesh"
)

// jsonMesh mirrors the on-disk schema: zero-based node/element indices,
// node coordinate triples, and named block/set tables.
type jsonMesh struct {
	Nodes    [][3]float64        `json:"nodes"`
	Elements [][8]int            `json:"elements"`
	Blocks   map[string][]int    `json:"blocks"`
	NodeSets map[string][]int    `json:"node_sets"`
	SideSets map[string][][2]int `json:"side_sets"`
}

// Read loads a mesh from a JSON file at dir/fn, validating it against the
// core's invariants before returning (§3, §6: index-convention violations
// must fail before the core ever sees them).
func Read(dir, fn string) (mesh.Mesh, error) {
	b, err := io.ReadFile(fullPath(dir, fn))
	if err != nil {
		return mesh.Mesh{}, errs.New(errs.InvalidMeshTopology, "cannot read mesh file %q: %v", fn, err)
	}

	var jm jsonMesh
	if err := json.Unmarshal(b, &jm); err != nil {
		return mesh.Mesh{}, errs.New(errs.InvalidMeshTopology, "cannot parse mesh file %q: %v", fn, err)
	}

	m := mesh.Mesh{
		Nodes:    make([]mesh.Point, len(jm.Nodes)),
		Elements: make([]mesh.Hex, len(jm.Elements)),
		Blocks:   jm.Blocks,
		NodeSets: jm.NodeSets,
		SideSets: jm.SideSets,
	}
	for i, c := range jm.Nodes {
		m.Nodes[i] = mesh.Point{X: c[0], Y: c[1], Z: c[2]}
	}
	for i, e := range jm.Elements {
		m.Elements[i] = mesh.Hex(e)
	}
	if m.Blocks == nil {
		m.Blocks = map[string][]int{}
	}

	if err := m.Validate(); err != nil {
		return mesh.Mesh{}, err
	}
	return m, nil
}

// Write serializes a mesh to dir/fn as JSON, the inverse of Read.
func Write(dir, fn string, m mesh.Mesh) error {
	jm := jsonMesh{
		Nodes:    make([][3]float64, len(m.Nodes)),
		Elements: make([][8]int, len(m.Elements)),
		Blocks:   m.Blocks,
		NodeSets: m.NodeSets,
		SideSets: m.SideSets,
	}
	for i, p := range m.Nodes {
		jm.Nodes[i] = [3]float64{p.X, p.Y, p.Z}
	}
	for i, e := range m.Elements {
		jm.Elements[i] = [8]int(e)
	}

	b, err := json.MarshalIndent(jm, "", "  ")
	if err != nil {
		return errs.New(errs.InvalidMeshTopology, "cannot serialize mesh: %v", err)
	}
	var buf bytes.Buffer
	buf.Write(b)
	io.WriteFile(fullPath(dir, fn), &buf)
	return nil
}

func fullPath(dir, fn string) string {
	if dir == "" {
		return fn
	}
	return dir + "/" + fn
}
