package sprite

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stenodyon/FlipFlop/engine/colors"
	"github.com/Stenodyon/FlipFlop/engine/core"
)

// --- fake renderer for driving the batch without a GL context ---

type fakePipeline struct{ destroyed bool }

type fakeTexture struct{ name string }

type fakeMesh struct{}

type fakeDraw struct {
	verts      []float32
	inds       []uint32
	indexCount int
	uniforms   map[string]any
	samplers   map[string]core.Texture
}

type fakeRenderer struct {
	pipelines []*fakePipeline
	lastVerts []float32
	lastInds  []uint32
	draws     []fakeDraw
}

func (f *fakeRenderer) Init() error              { return nil }
func (f *fakeRenderer) Resize(w, h int)          {}
func (f *fakeRenderer) Clear(r, g, b, a float32) {}
func (f *fakeRenderer) Shutdown()                {}
func (f *fakeRenderer) GPUVendor() string        { return "fake" }
func (f *fakeRenderer) GPURenderer() string      { return "fake" }
func (f *fakeRenderer) GPUVersion() string       { return "0.0" }

func (f *fakeRenderer) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) {
	p := &fakePipeline{}
	f.pipelines = append(f.pipelines, p)
	return p, nil
}

func (f *fakeRenderer) DestroyPipeline(p core.Pipeline) {
	p.(*fakePipeline).destroyed = true
}

func (f *fakeRenderer) CreateTexture(core.TextureDesc) (core.Texture, error) {
	return &fakeTexture{}, nil
}

func (f *fakeRenderer) CreateMesh(core.MeshDesc) (core.Mesh, error) {
	return &fakeMesh{}, nil
}

func (f *fakeRenderer) UpdateMesh(_ core.Mesh, vertices []float32, indices []uint32) error {
	f.lastVerts = append([]float32(nil), vertices...)
	f.lastInds = append([]uint32(nil), indices...)
	return nil
}

func (f *fakeRenderer) Draw(cmd core.DrawCmd) {
	d := fakeDraw{
		verts:      f.lastVerts,
		inds:       f.lastInds,
		indexCount: cmd.IndexCount,
		uniforms:   map[string]any{},
		samplers:   map[string]core.Texture{},
	}
	for k, v := range cmd.Uniforms {
		d.uniforms[k] = v
	}
	for k, v := range cmd.Samplers {
		d.samplers[k] = v
	}
	f.draws = append(f.draws, d)
}

// --- tests ---

func newTestBatch(t *testing.T, maxQuads int) (*Batch, *fakeRenderer) {
	t.Helper()
	r := &fakeRenderer{}
	b, err := NewBatch(r, maxQuads)
	require.NoError(t, err)
	return b, r
}

func TestBatch(t *testing.T) {
	cam := Camera{ViewProj: mgl32.Ident4()}

	t.Run("empty scene flushes nothing", func(t *testing.T) {
		b, r := newTestBatch(t, 10)
		b.BeginScene(cam)
		b.EndScene()
		assert.Empty(t, r.draws)
		assert.Equal(t, 0, b.Stats().DrawCalls)
	})

	t.Run("sprite corners land at model position plus size", func(t *testing.T) {
		b, r := newTestBatch(t, 10)
		b.BeginScene(cam)
		b.DrawSprite(
			Transform{Model: mgl32.Translate3D(2, 3, -0.5)},
			mgl32.Vec2{2, 3},
			FullRect,
			nil,
			colors.White,
		)
		b.EndScene()

		require.Len(t, r.draws, 1)
		verts := r.draws[0].verts
		require.Len(t, verts, 4*vStride)

		want := [4][3]float32{{2, 3, -0.5}, {2, 6, -0.5}, {4, 6, -0.5}, {4, 3, -0.5}}
		for i, w := range want {
			assert.InDelta(t, w[0], verts[i*vStride+0], 1e-5, "vertex %d x", i)
			assert.InDelta(t, w[1], verts[i*vStride+1], 1e-5, "vertex %d y", i)
			assert.InDelta(t, w[2], verts[i*vStride+2], 1e-5, "vertex %d z", i)
		}
	})

	t.Run("sprite uvs come from the rect", func(t *testing.T) {
		b, r := newTestBatch(t, 10)
		rect := UvRect{Min: mgl32.Vec2{0.25, 0.25}, Max: mgl32.Vec2{0.75, 0.75}}
		b.BeginScene(cam)
		b.DrawSprite(Transform{Model: mgl32.Ident4()}, mgl32.Vec2{1, 1}, rect, nil, colors.White)
		b.EndScene()

		verts := r.draws[0].verts
		// corner order follows the unit quad: (0,0) (0,1) (1,1) (1,0)
		wantUV := [4][2]float32{{0.25, 0.25}, {0.25, 0.75}, {0.75, 0.75}, {0.75, 0.25}}
		for i, w := range wantUV {
			assert.InDelta(t, w[0], verts[i*vStride+7], 1e-6, "vertex %d u", i)
			assert.InDelta(t, w[1], verts[i*vStride+8], 1e-6, "vertex %d v", i)
		}
	})

	t.Run("scene camera reaches the gpu as uVP", func(t *testing.T) {
		vp := mgl32.Ortho(-10, 10, -10, 10, -1, 1)
		b, r := newTestBatch(t, 10)
		b.BeginScene(Camera{ViewProj: vp})
		b.DrawQuad(0, 0, 0, 1, 1, colors.Red, 0)
		b.EndScene()

		require.Len(t, r.draws, 1)
		assert.Equal(t, [16]float32(vp), r.draws[0].uniforms["uVP"])
	})

	t.Run("quads share one draw call and texture slots", func(t *testing.T) {
		b, r := newTestBatch(t, 10)
		tex, _ := (&fakeRenderer{}).CreateTexture(core.TextureDesc{})
		b.BeginScene(cam)
		b.DrawQuad(0, 0, 0, 1, 1, colors.Red, 0)
		b.DrawTexturedQuad(2, 2, 0, 1, 1, tex, colors.White, 0)
		b.DrawTexturedQuad(4, 4, 0, 1, 1, tex, colors.White, 0)
		b.EndScene()

		require.Len(t, r.draws, 1)
		st := b.Stats()
		assert.Equal(t, 1, st.DrawCalls)
		assert.Equal(t, 3, st.QuadCount)
		assert.Equal(t, 2, st.TextureCount) // white + tex
		assert.Equal(t, 12, st.TotalVertexCount())
		assert.Equal(t, 18, st.TotalIndexCount())
	})

	t.Run("capacity overflow forces an extra flush", func(t *testing.T) {
		b, r := newTestBatch(t, 2)
		b.BeginScene(cam)
		for i := 0; i < 3; i++ {
			b.DrawQuad(float32(i), 0, 0, 1, 1, colors.Red, 0)
		}
		b.EndScene()

		assert.Len(t, r.draws, 2)
		assert.Equal(t, 2, b.Stats().DrawCalls)
	})

	t.Run("indices walk quads in submission order", func(t *testing.T) {
		b, r := newTestBatch(t, 10)
		b.BeginScene(cam)
		b.DrawQuad(0, 0, 0, 1, 1, colors.Red, 0)
		b.DrawQuad(1, 0, 0, 1, 1, colors.Red, 0)
		b.EndScene()

		inds := r.draws[0].inds
		assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, inds)
	})
}

func TestQuadRenderer(t *testing.T) {
	t.Run("draw binds every sprite uniform", func(t *testing.T) {
		r := &fakeRenderer{}
		q, err := NewQuadRenderer(r)
		require.NoError(t, err)

		vp := mgl32.Ortho(-1, 1, -1, 1, -1, 1)
		model := mgl32.Translate3D(1, 2, 3)
		rect := UvRect{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{4, 4}}
		tex := &fakeTexture{name: "board"}

		q.Draw(Camera{ViewProj: vp}, Transform{Model: model}, mgl32.Vec2{8, 9}, rect, tex, colors.Gray)

		require.Len(t, r.draws, 1)
		u := r.draws[0].uniforms
		assert.Equal(t, [16]float32(vp), u["uViewProj"])
		assert.Equal(t, [16]float32(model), u["uModel"])
		assert.Equal(t, [2]float32{8, 9}, u["uSize"])
		assert.Equal(t, [2]float32{0, 0}, u["uMinUV"])
		assert.Equal(t, [2]float32{4, 4}, u["uMaxUV"])
		assert.Equal(t, [4]float32(colors.Gray), u["uTint"])
		assert.Equal(t, core.Texture(tex), r.draws[0].samplers["uTex"])
	})

	t.Run("rebuild swaps the pipeline and destroys the old one", func(t *testing.T) {
		r := &fakeRenderer{}
		q, err := NewQuadRenderer(r)
		require.NoError(t, err)
		require.Len(t, r.pipelines, 1)

		require.NoError(t, q.Rebuild(UvSpriteVertexSrc, UvSpriteFragmentSrc))
		require.Len(t, r.pipelines, 2)
		assert.True(t, r.pipelines[0].destroyed)
		assert.False(t, r.pipelines[1].destroyed)
	})
}
