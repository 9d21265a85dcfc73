// Package vtuwriter exports a surface.Patch (optionally projected against a
// contact.Result) as a VTK unstructured-grid (.vtu) file — the
// visualization collaborator of spec §6 "Surface export contract". It
// follows tools/Msh2vtu.go's header/geometry/data buffer assembly, written
// through io.Ff and flushed with io.WriteFileVD.
package vtuwriter

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"hexcontact/contact"
	"hexcontact/surface"
)

const vtkQuadCode = 9

// WritePatch writes p (and, if result is non-nil, per-face contact scalars
// projected over p's faces as the A-side patch) to dir/key.vtu.
func WritePatch(dir, key string, p surface.Patch, result *contact.Result) error {
	geo := new(bytes.Buffer)
	dat := new(bytes.Buffer)

	writeGeometry(geo, p)
	writeCellData(dat, p, result)

	nv := len(p.Nodes)
	nc := len(p.Faces)
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dir, key+".vtu", &hdr, geo, dat, &foo)
	return nil
}

func writeGeometry(buf *bytes.Buffer, p surface.Patch) {
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, n := range p.Nodes {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", n.X, n.Y, n.Z)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, f := range p.Faces {
		io.Ff(buf, "%d %d %d %d ", f[0], f[1], f[2], f[3])
	}

	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	offset := 0
	for range p.Faces {
		offset += 4
		io.Ff(buf, "%d ", offset)
	}

	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for range p.Faces {
		io.Ff(buf, "%d ", vtkQuadCode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}

// writeCellData attaches the canonical per-face scalars the export
// contract requires: outward normal, area, and — when result is attached —
// pair index (-1 for unpaired), signed distance, and normal angle.
func writeCellData(buf *bytes.Buffer, p surface.Patch, result *contact.Result) {
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")

	io.Ff(buf, "<DataArray type=\"Float64\" Name=\"normal\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, n := range p.FaceNormals {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", n.X, n.Y, n.Z)
	}
	io.Ff(buf, "\n</DataArray>\n")

	io.Ff(buf, "<DataArray type=\"Float64\" Name=\"area\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, a := range p.FaceAreas {
		io.Ff(buf, "%23.15e ", a)
	}
	io.Ff(buf, "\n</DataArray>\n")

	if result != nil {
		pairIdx := make([]int, len(p.Faces))
		distance := make([]float64, len(p.Faces))
		angle := make([]float64, len(p.Faces))
		for i := range pairIdx {
			pairIdx[i] = -1
		}
		for pi, pair := range result.Pairs {
			pairIdx[pair.FaceA] = pi
			distance[pair.FaceA] = pair.Distance
			angle[pair.FaceA] = pair.NormalAngle
		}

		io.Ff(buf, "<DataArray type=\"Int32\" Name=\"pair_index\" NumberOfComponents=\"1\" format=\"ascii\">\n")
		for _, v := range pairIdx {
			io.Ff(buf, "%d ", v)
		}
		io.Ff(buf, "\n</DataArray>\n")

		io.Ff(buf, "<DataArray type=\"Float64\" Name=\"distance\" NumberOfComponents=\"1\" format=\"ascii\">\n")
		for _, v := range distance {
			io.Ff(buf, "%23.15e ", v)
		}
		io.Ff(buf, "\n</DataArray>\n")

		io.Ff(buf, "<DataArray type=\"Float64\" Name=\"normal_angle\" NumberOfComponents=\"1\" format=\"ascii\">\n")
		for _, v := range angle {
			io.Ff(buf, "%23.15e ", v)
		}
		io.Ff(buf, "\n</DataArray>\n")
	}

	io.Ff(buf, "</CellData>\n")
}
