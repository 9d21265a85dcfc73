// Package geom implements the stateless geometry primitives shared by the
// surface extractor and the contact matcher: face normal/centroid/area,
// signed point-plane distance, and angle between directions.
package geom

import (
	"math"

	"github.com/cpmech/gosl/la"

	"hexcontact/errs"
	"hexcontact/mesh"
)

// degenTol is the minimum acceptable length of a face's diagonal cross
// product; below it the face is considered degenerate.
const degenTol = 1e-12

func sub(a, b mesh.Point) mesh.Vec { return mesh.Vec{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z} }

func cross(a, b mesh.Vec) mesh.Vec {
	return mesh.Vec{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func dot(a, b mesh.Vec) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// norm uses la.VecNorm over a 3-slice view, the way the teacher computes
// face Jacobians (e.g. shp/shp.go's la.VecNorm(o.Jvec3d)).
func norm(v mesh.Vec) float64 { return la.VecNorm([]float64{v.X, v.Y, v.Z}) }

func scale(v mesh.Vec, s float64) mesh.Vec { return mesh.Vec{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

func nodeAt(nodes []mesh.Point, idx int) (mesh.Point, error) {
	if idx < 0 || idx >= len(nodes) {
		return mesh.Point{}, errs.New(errs.InvalidMeshTopology, "node index %d out of bounds", idx)
	}
	return nodes[idx], nil
}

// diagonals returns the two face diagonals (v2-v0) and (v3-v1) as described
// in §4.1.
func diagonals(f mesh.QuadFace, nodes []mesh.Point) (d1, d2 mesh.Vec, err error) {
	v0, err := nodeAt(nodes, f[0])
	if err != nil {
		return
	}
	v1, err := nodeAt(nodes, f[1])
	if err != nil {
		return
	}
	v2, err := nodeAt(nodes, f[2])
	if err != nil {
		return
	}
	v3, err := nodeAt(nodes, f[3])
	if err != nil {
		return
	}
	d1 = sub(v2, v0)
	d2 = sub(v3, v1)
	return
}

// FaceNormal computes the outward unit normal of a quad face from the cross
// product of its diagonals. Fails with GeometryError if the face is
// degenerate (cross-product length below 1e-12).
func FaceNormal(f mesh.QuadFace, nodes []mesh.Point) (mesh.Vec, error) {
	d1, d2, err := diagonals(f, nodes)
	if err != nil {
		return mesh.Vec{}, err
	}
	c := cross(d1, d2)
	n := norm(c)
	if n < degenTol {
		return mesh.Vec{}, errs.New(errs.GeometryError, "degenerate face (zero normal)")
	}
	return scale(c, 1.0/n), nil
}

// FaceCentroid returns the arithmetic mean of a face's four vertex positions.
func FaceCentroid(f mesh.QuadFace, nodes []mesh.Point) (mesh.Point, error) {
	var sum mesh.Point
	for _, idx := range f {
		p, err := nodeAt(nodes, idx)
		if err != nil {
			return mesh.Point{}, err
		}
		sum.X += p.X
		sum.Y += p.Y
		sum.Z += p.Z
	}
	return mesh.Point{X: sum.X / 4, Y: sum.Y / 4, Z: sum.Z / 4}, nil
}

// FaceArea returns half the length of the diagonal cross product. Exact for
// planar quads; accepted as the definition for non-planar quads (§9 open
// question 3). Fails with GeometryError below 1e-12.
func FaceArea(f mesh.QuadFace, nodes []mesh.Point) (float64, error) {
	d1, d2, err := diagonals(f, nodes)
	if err != nil {
		return 0, err
	}
	area := norm(cross(d1, d2)) / 2
	if area < degenTol {
		return 0, errs.New(errs.GeometryError, "degenerate face (zero area)")
	}
	return area, nil
}

// SignedDistanceToPlane returns (p - anchor) . normal: positive on the side
// the normal points to.
func SignedDistanceToPlane(p, anchor mesh.Point, normal mesh.Vec) float64 {
	return dot(sub(p, anchor), normal)
}

// ProjectToPlane projects p onto the plane (anchor, normal) along normal.
func ProjectToPlane(p, anchor mesh.Point, normal mesh.Vec) mesh.Point {
	d := SignedDistanceToPlane(p, anchor, normal)
	return mesh.Point{X: p.X - d*normal.X, Y: p.Y - d*normal.Y, Z: p.Z - d*normal.Z}
}

// AngleBetween returns the unsigned angle between u and v in degrees,
// in [0, 180]. Returns 0 if either vector has near-zero length.
func AngleBetween(u, v mesh.Vec) float64 {
	nu, nv := norm(u), norm(v)
	prod := nu * nv
	if prod < degenTol {
		return 0
	}
	cos := dot(u, v) / prod
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}
