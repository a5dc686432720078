package sprite

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the per-vertex input of the sprite stage. Normal is carried by
// the vertex format but not consumed by the transform.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Camera holds the view-projection matrix shared by every draw in a pass.
type Camera struct {
	ViewProj mgl32.Mat4
}

// Transform holds the per-instance world matrix.
type Transform struct {
	Model mgl32.Mat4
}

// UvRect is a sub-rectangle in normalized texture space, e.g. an atlas cell.
// Min > Max is legal and flips the sprite; the remap never clamps.
type UvRect struct {
	Min, Max mgl32.Vec2
}

// FullRect covers the whole texture.
var FullRect = UvRect{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}}

// RemapUV linearly interpolates uv into r: Min + uv*(Max-Min), componentwise.
func RemapUV(uv mgl32.Vec2, r UvRect) mgl32.Vec2 {
	return mgl32.Vec2{
		r.Min[0] + uv[0]*(r.Max[0]-r.Min[0]),
		r.Min[1] + uv[1]*(r.Max[1]-r.Min[1]),
	}
}

// TransformVertex is the sprite vertex stage as a pure function: scale the
// unit-quad position by size on x/y (z passes through), transform by Model
// then ViewProj to clip space, and remap the UV into r.
//
// Inputs are assumed well-formed; degenerate matrices propagate (NaN and
// friends included) exactly as they would through a hardware vertex stage.
func TransformVertex(v Vertex, cam Camera, t Transform, size mgl32.Vec2, r UvRect) (clip mgl32.Vec4, uv mgl32.Vec2) {
	scaled := mgl32.Vec4{
		v.Position[0] * size[0],
		v.Position[1] * size[1],
		v.Position[2],
		1,
	}
	clip = cam.ViewProj.Mul4(t.Model).Mul4x1(scaled)
	return clip, RemapUV(v.UV, r)
}

// Unit quad: corners at (0,0) (0,1) (1,1) (1,0),
// UVs matching xy, normals facing +Z.
var QuadVertices = [4]Vertex{
	{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}},
	{Position: mgl32.Vec3{0, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}},
	{Position: mgl32.Vec3{1, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 1}},
	{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 0}},
}

var QuadIndices = [6]uint32{0, 1, 2, 0, 2, 3}
