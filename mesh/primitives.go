package mesh

import "github.com/go-gl/mathgl/mgl32"

// Cube builds an axis aligned cube of the given edge length centred on the origin.
// Each face has its own four vertices so normals stay flat.
func Cube(size float32) *Mesh {
	h := size / 2
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-h, h, -h}, {h, h, -h}, {h, -h, -h}, {-h, -h, -h}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, -h}, {h, h, -h}, {h, h, h}, {h, -h, h}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, h}, {-h, h, h}, {-h, h, -h}, {-h, -h, -h}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{h, h, -h}, {-h, h, -h}, {-h, h, h}, {h, h, h}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{h, -h, h}, {-h, -h, h}, {-h, -h, -h}, {h, -h, -h}}},
	}

	positions := make([]mgl32.Vec3, 0, 24)
	normals := make([]mgl32.Vec3, 0, 24)
	uvs := make([]mgl32.Vec2, 0, 24)
	indices := make([]uint32, 0, 36)
	faceUV := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		base := uint32(len(positions))
		for i, c := range f.corners {
			positions = append(positions, c)
			normals = append(normals, f.normal)
			uvs = append(uvs, faceUV[i])
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	m := New()
	m.SetAttribute(AttributePosition, Float32x3(positions))
	m.SetAttribute(AttributeNormal, Float32x3(normals))
	m.SetAttribute(AttributeUV, Float32x2(uvs))
	m.SetIndices(indices)
	return m
}

// FromPositions wraps a bare point cloud. The slice is not copied.
func FromPositions(positions []mgl32.Vec3) *Mesh {
	m := New()
	m.SetAttribute(AttributePosition, Float32x3(positions))
	return m
}
