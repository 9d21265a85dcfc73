package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"hexcontact/mesh"
)

func unitSquareNodes() []mesh.Point {
	return []mesh.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
}

func Test_facegeom01(tst *testing.T) {

	chk.PrintTitle("facegeom01")

	nodes := unitSquareNodes()
	f := mesh.QuadFace{0, 1, 2, 3}

	n, err := FaceNormal(f, nodes)
	if err != nil {
		chk.Panic("unexpected error: %v", err)
	}
	chk.Scalar(tst, "nx", 1e-15, n.X, 0)
	chk.Scalar(tst, "ny", 1e-15, n.Y, 0)
	chk.Scalar(tst, "|nz|", 1e-15, abs(n.Z), 1)

	c, err := FaceCentroid(f, nodes)
	if err != nil {
		chk.Panic("unexpected error: %v", err)
	}
	chk.Scalar(tst, "cx", 1e-15, c.X, 0.5)
	chk.Scalar(tst, "cy", 1e-15, c.Y, 0.5)

	area, err := FaceArea(f, nodes)
	if err != nil {
		chk.Panic("unexpected error: %v", err)
	}
	chk.Scalar(tst, "area", 1e-15, area, 1.0)
}

func Test_degenerate01(tst *testing.T) {

	chk.PrintTitle("degenerate01")

	nodes := []mesh.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
	}
	f := mesh.QuadFace{0, 1, 2, 3}
	if _, err := FaceNormal(f, nodes); err == nil {
		chk.Panic("expected GeometryError for degenerate face")
	}
	if _, err := FaceArea(f, nodes); err == nil {
		chk.Panic("expected GeometryError for degenerate face")
	}
}

func Test_signeddist01(tst *testing.T) {

	// property 9: signed distance is sign-symmetric about the plane
	chk.PrintTitle("signeddist01")

	p := mesh.Point{X: 1, Y: 2, Z: 5}
	anchor := mesh.Point{X: 0, Y: 0, Z: 0}
	n := mesh.Vec{X: 0, Y: 0, Z: 1}
	nFlip := mesh.Vec{X: 0, Y: 0, Z: -1}

	d := SignedDistanceToPlane(p, anchor, n)
	dFlip := SignedDistanceToPlane(p, anchor, nFlip)
	chk.Scalar(tst, "d", 1e-15, d, 5)
	chk.Scalar(tst, "-d", 1e-15, dFlip, -d)
}

func Test_angle01(tst *testing.T) {

	// S6: angle between directions
	chk.PrintTitle("angle01")

	chk.Scalar(tst, "perp", 1e-10, AngleBetween(mesh.Vec{X: 1}, mesh.Vec{Y: 1}), 90)
	chk.Scalar(tst, "opposite", 1e-10, AngleBetween(mesh.Vec{X: 1}, mesh.Vec{X: -1}), 180)
	chk.Scalar(tst, "same", 1e-10, AngleBetween(mesh.Vec{X: 1}, mesh.Vec{X: 1}), 0)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
