package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshData is CPU-side geometry ready to be uploaded as separate vertex streams.
// Faces holds triangle indices, three per triangle.
type MeshData struct {
	Coords  []mgl32.Vec3
	Normals []mgl32.Vec3
	UVs     []mgl32.Vec2
	Faces   []uint32
}

func (md MeshData) NumTriangles() int { return len(md.Faces) / 3 }

// Validate checks stream lengths and index bounds.
func (md MeshData) Validate() error {
	n := len(md.Coords)
	if n == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if md.Normals != nil && len(md.Normals) != n {
		return fmt.Errorf("mesh has %d normals for %d vertices", len(md.Normals), n)
	}
	if md.UVs != nil && len(md.UVs) != n {
		return fmt.Errorf("mesh has %d uvs for %d vertices", len(md.UVs), n)
	}
	if len(md.Faces)%3 != 0 {
		return fmt.Errorf("mesh index count %d is not a multiple of 3", len(md.Faces))
	}
	for i, idx := range md.Faces {
		if int(idx) >= n {
			return fmt.Errorf("mesh index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Complete returns md with every vertex stream present: missing normals are
// computed by averaging the area-weighted normals of adjacent faces and
// missing texture coordinates are zero. The input slices are not modified.
func (md MeshData) Complete() MeshData {
	n := len(md.Coords)
	if len(md.Normals) != n {
		md.Normals = md.smoothNormals()
	}
	if len(md.UVs) != n {
		md.UVs = make([]mgl32.Vec2, n)
	}
	return md
}

func (md MeshData) smoothNormals() []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(md.Coords))
	for i := 0; i+2 < len(md.Faces); i += 3 {
		a, b, c := md.Faces[i], md.Faces[i+1], md.Faces[i+2]
		// The cross product's length is twice the face area.
		fn := md.Coords[b].Sub(md.Coords[a]).Cross(md.Coords[c].Sub(md.Coords[a]))
		normals[a] = normals[a].Add(fn)
		normals[b] = normals[b].Add(fn)
		normals[c] = normals[c].Add(fn)
	}
	for i, v := range normals {
		if v.Len() == 0 {
			normals[i] = mgl32.Vec3{0, 1, 0}
			continue
		}
		normals[i] = v.Normalize()
	}
	return normals
}

// Sphere builds a UV sphere of the given diameter centered at the origin.
func Sphere(diameter float32, nlong, nlat int) MeshData {
	if nlong < 3 {
		nlong = 3
	}
	if nlat < 2 {
		nlat = 2
	}
	r := diameter * 0.5
	var md MeshData
	for j := 0; j <= nlat; j++ {
		v := float32(j) / float32(nlat)
		phi := float64(v) * math.Pi
		for i := 0; i <= nlong; i++ {
			u := float32(i) / float32(nlong)
			theta := float64(u) * 2 * math.Pi
			n := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			md.Coords = append(md.Coords, n.Mul(r))
			md.Normals = append(md.Normals, n)
			md.UVs = append(md.UVs, mgl32.Vec2{u, v})
		}
	}
	row := uint32(nlong + 1)
	for j := 0; j < nlat; j++ {
		for i := 0; i < nlong; i++ {
			a := uint32(j)*row + uint32(i)
			b := a + row
			md.Faces = append(md.Faces, a, a+1, b, a+1, b+1, b)
		}
	}
	return md
}

// Cube builds an axis-aligned box with flat per-face normals.
func Cube(wx, wy, wz float32) MeshData {
	h := mgl32.Vec3{wx * 0.5, wy * 0.5, wz * 0.5}
	faces := [6]struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	corners := [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	var md MeshData
	for _, f := range faces {
		base := uint32(len(md.Coords))
		for _, c := range corners {
			p := f.n.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			md.Coords = append(md.Coords, mgl32.Vec3{p[0] * h[0], p[1] * h[1], p[2] * h[2]})
			md.Normals = append(md.Normals, f.n)
			md.UVs = append(md.UVs, mgl32.Vec2{(c[0] + 1) * 0.5, (c[1] + 1) * 0.5})
		}
		md.Faces = append(md.Faces, base, base+1, base+2, base, base+2, base+3)
	}
	return md
}

// Quad builds a w x h plane in the XY plane facing +Z.
func Quad(w, h float32) MeshData {
	hw, hh := w*0.5, h*0.5
	n := mgl32.Vec3{0, 0, 1}
	return MeshData{
		Coords:  []mgl32.Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}},
		Normals: []mgl32.Vec3{n, n, n, n},
		UVs:     []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Faces:   []uint32{0, 1, 2, 0, 2, 3},
	}
}
