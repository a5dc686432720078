package sprite

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Stenodyon/FlipFlop/engine/colors"
	"github.com/Stenodyon/FlipFlop/engine/core"
)

// quad vertex: pos3 + normal3 + uv2 => 8 floats
const quadStride = 8

var quadLayout = core.VertexLayout{
	Stride: quadStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 3, Type: core.AttribFloat32, Offset: 3 * 4}, // normal
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
	},
}

// QuadRenderer draws one sprite per call through the uniform-block shader.
// Suited to large singleton quads (the board); batched sprites go through
// Batch instead.
type QuadRenderer struct {
	r        core.Renderer
	pipe     core.Pipeline
	mesh     core.Mesh
	uniforms map[string]any
	samplers map[string]core.Texture
}

func NewQuadRenderer(r core.Renderer) (*QuadRenderer, error) {
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   UvSpriteVertexSrc,
		FragmentSource: UvSpriteFragmentSrc,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return nil, err
	}

	verts := make([]float32, 0, len(QuadVertices)*quadStride)
	for _, v := range QuadVertices {
		verts = append(verts,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		)
	}
	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: verts,
		Indices:  QuadIndices[:],
		Layout:   quadLayout,
	})
	if err != nil {
		return nil, err
	}

	return &QuadRenderer{
		r: r, pipe: pipe, mesh: mesh,
		uniforms: make(map[string]any, 6),
		samplers: make(map[string]core.Texture, 1),
	}, nil
}

// Rebuild recompiles the pipeline from new sources, keeping the mesh. On
// compile failure the old pipeline stays active.
func (q *QuadRenderer) Rebuild(vertSrc, fragSrc string) error {
	pipe, err := q.r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return err
	}
	q.r.DestroyPipeline(q.pipe)
	q.pipe = pipe
	return nil
}

// Draw submits the unit quad with the sprite uniform blocks bound.
func (q *QuadRenderer) Draw(cam Camera, t Transform, size mgl32.Vec2, rect UvRect, tex core.Texture, tint colors.Color) {
	q.uniforms["uViewProj"] = [16]float32(cam.ViewProj)
	q.uniforms["uModel"] = [16]float32(t.Model)
	q.uniforms["uSize"] = [2]float32(size)
	q.uniforms["uMinUV"] = [2]float32(rect.Min)
	q.uniforms["uMaxUV"] = [2]float32(rect.Max)
	q.uniforms["uTint"] = [4]float32(tint)
	q.samplers["uTex"] = tex

	q.r.Draw(core.DrawCmd{
		Pipe:     q.pipe,
		Mesh:     q.mesh,
		Uniforms: q.uniforms,
		Samplers: q.samplers,
	})
}
