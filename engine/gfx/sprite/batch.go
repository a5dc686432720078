package sprite

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Stenodyon/FlipFlop/engine/colors"
	"github.com/Stenodyon/FlipFlop/engine/core"
)

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// Batch vertex: pos3 + color4 + uv2 + texIndex1 => 10 floats
const vStride = 10
const vertsPerQuad = 4
const indsPerQuad = 6

var batchLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 3 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 7 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 9 * 4}, // texIndex
	},
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Batch accumulates sprite quads on the CPU and flushes them in as few draw
// calls as texture slots allow.
type Batch struct {
	r      core.Renderer
	pipe   core.Pipeline
	white  core.Texture // 1x1 white (slot 0)
	texArr [maxTexSlots]core.Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	mesh     core.Mesh
	samplers map[string]core.Texture
	uniforms map[string]any
	texNames [maxTexSlots]string

	cam   Camera
	stats Statistics
}

// NewBatch creates the batch and compiles its shader pipeline.
func NewBatch(r core.Renderer, maxQuads int) (*Batch, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   BatchVertexSrc,
		FragmentSource: BatchFragmentSrc,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return nil, err
	}

	// build 1x1 white texture
	whitePix := []byte{255, 255, 255, 255}
	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    whitePix,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, err
	}

	b := &Batch{
		r: r, pipe: pipe, white: white, maxQuads: maxQuads,
		verts: make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:  make([]uint32, 0, maxQuads*indsPerQuad),
	}

	// Create a reusable mesh large enough for the biggest batch.
	initialVerts := make([]float32, maxQuads*vertsPerQuad*vStride)
	initialInds := make([]uint32, maxQuads*indsPerQuad)
	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: initialVerts,
		Indices:  initialInds,
		Layout:   batchLayout,
	})
	if err != nil {
		return nil, err
	}
	b.mesh = mesh

	b.samplers = make(map[string]core.Texture, maxTexSlots)
	b.uniforms = make(map[string]any, 1)
	for i := 0; i < maxTexSlots; i++ {
		b.texNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}

	return b, nil
}

func (b *Batch) BeginScene(cam Camera) {
	b.cam = cam
	b.stats = Statistics{}
	b.resetBatch()
}

func (b *Batch) EndScene() { b.flush() }

// Stats returns the current frame statistics snapshot.
func (b *Batch) Stats() Statistics { return b.stats }

// DrawQuad draws a solid color quad centered at (x,y) (white texture, slot 0).
func (b *Batch) DrawQuad(x, y, z, w, h float32, color colors.Color, rotationRad float32) {
	b.ensureQuadCapacity()
	b.drawQuadInternal(x, y, z, w, h, color, rotationRad, b.texSlot(b.white), FullRect)
}

// DrawTexturedQuad draws a textured quad centered at (x,y) with a tint.
func (b *Batch) DrawTexturedQuad(x, y, z, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32) {
	b.ensureQuadCapacity()
	slot := b.texSlot(tex)
	b.drawQuadInternal(x, y, z, w, h, tint, rotationRad, slot, FullRect)
}

// DrawUVQuad draws a textured quad mapped to an explicit UV rect.
func (b *Batch) DrawUVQuad(x, y, z, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, rect UvRect) {
	b.ensureQuadCapacity()
	slot := b.texSlot(tex)
	b.drawQuadInternal(x, y, z, w, h, tint, rotationRad, slot, rect)
}

// DrawSub draws a quad sampling a SubTexture (atlas cell).
func (b *Batch) DrawSub(x, y, z, w, h float32, sub SubTexture, tint colors.Color, rotationRad float32) {
	b.ensureQuadCapacity()
	slot := b.texSlot(sub.Texture)
	b.drawQuadInternal(x, y, z, w, h, tint, rotationRad, slot, sub.Rect)
}

// White returns the built-in 1x1 white texture (slot 0).
func (b *Batch) White() core.Texture { return b.white }

// DrawSprite pushes the unit quad through the sprite vertex transform with an
// identity camera, so vertices land in the batch world space; the scene
// view-projection is applied on the GPU at flush. A nil texture means the
// white texture (solid tint).
func (b *Batch) DrawSprite(t Transform, size mgl32.Vec2, rect UvRect, tex core.Texture, tint colors.Color) {
	b.ensureQuadCapacity()
	if tex == nil {
		tex = b.white
	}
	slot := b.texSlot(tex)
	ident := Camera{ViewProj: mgl32.Ident4()}

	startVertex := uint32(len(b.verts) / vStride)
	for _, v := range QuadVertices {
		world, uv := TransformVertex(v, ident, t, size, rect)
		b.verts = append(b.verts,
			world[0], world[1], world[2],
			tint[0], tint[1], tint[2], tint[3],
			uv[0], uv[1],
			slot,
		)
	}
	b.pushQuadIndices(startVertex)
}

// --- internals ---

func (b *Batch) texSlot(t core.Texture) float32 {
	// already in array?
	for i := 0; i < b.texCnt; i++ {
		if b.texArr[i] == t {
			return float32(i)
		}
	}
	// need a new slot
	if b.texCnt >= maxTexSlots {
		// flush and reset texture bindings
		b.flush()
	}
	b.texArr[b.texCnt] = t
	b.texCnt++
	b.stats.TextureCount = b.texCnt
	return float32(b.texCnt - 1)
}

func (b *Batch) drawQuadInternal(x, y, z, w, h float32, color colors.Color, rotationRad float32, texIndex float32, rect UvRect) {
	halfW := w * 0.5
	halfH := h * 0.5

	// corners (BL, TL, TR, BR) around the center, matching the unit quad order.
	corners := [4][4]float32{
		{-halfW, -halfH, rect.Min[0], rect.Min[1]},
		{-halfW, halfH, rect.Min[0], rect.Max[1]},
		{halfW, halfH, rect.Max[0], rect.Max[1]},
		{halfW, -halfH, rect.Max[0], rect.Min[1]},
	}
	c, s := float32(math.Cos(float64(rotationRad))), float32(math.Sin(float64(rotationRad)))

	startVertex := uint32(len(b.verts) / vStride)

	for _, p := range corners {
		rx := p[0]*c - p[1]*s + x
		ry := p[0]*s + p[1]*c + y
		u, v := p[2], p[3]
		b.verts = append(b.verts,
			rx, ry, z,
			color[0], color[1], color[2], color[3],
			u, v,
			texIndex,
		)
	}
	b.pushQuadIndices(startVertex)
}

func (b *Batch) pushQuadIndices(startVertex uint32) {
	for _, i := range QuadIndices {
		b.inds = append(b.inds, startVertex+i)
	}
	b.quadCount++
	b.stats.QuadCount++
}

func (b *Batch) flush() {
	if b.quadCount == 0 {
		return
	}

	if err := b.r.UpdateMesh(b.mesh, b.verts, b.inds); err != nil {
		panic(err)
	}

	for k := range b.samplers {
		delete(b.samplers, k)
	}
	for i := 0; i < b.texCnt; i++ {
		b.samplers[b.texNames[i]] = b.texArr[i]
	}

	b.uniforms["uVP"] = [16]float32(b.cam.ViewProj)

	b.r.Draw(core.DrawCmd{
		Pipe:       b.pipe,
		Mesh:       b.mesh,
		IndexCount: len(b.inds),
		Uniforms:   b.uniforms,
		Samplers:   b.samplers,
	})
	b.stats.DrawCalls++

	b.resetBatch()
}

func (b *Batch) resetBatch() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	b.quadCount = 0
	for i := range b.texArr {
		b.texArr[i] = nil
	}
	b.texArr[0] = b.white
	b.texCnt = 1
}

func (b *Batch) ensureQuadCapacity() {
	if b.quadCount >= b.maxQuads {
		b.flush()
	}
}
