package core

import (
	"time"

	"go.uber.org/zap"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Log      *zap.Logger
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// PushLayer pushes l and attaches it.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// PopLayer detaches and removes the top layer.
func (e *Engine) PopLayer() {
	if l, ok := e.Layers.Pop(); ok {
		l.OnDetach(e)
	}
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Pipeline, Texture and Mesh are opaque handles owned by the Renderer
// backend that created them.
type Pipeline interface{}
type Texture interface{}
type Mesh interface{}

// AttribType enumerates vertex attribute component types.
type AttribType int

const (
	AttribFloat32 AttribType = iota
)

// VertexAttrib describes one attribute inside an interleaved vertex buffer.
type VertexAttrib struct {
	Location int
	Size     int // component count (1..4)
	Type     AttribType
	Offset   int // bytes from vertex start
}

// VertexLayout describes an interleaved vertex buffer.
type VertexLayout struct {
	Stride     int // bytes per vertex
	Attributes []VertexAttrib
}

// TextureFormat enumerates texel formats.
type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes an immutable 2D texture upload.
// Filters are "nearest" or "linear"; wrap modes are "clamp" or "repeat".
type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string
	MagFilter     string
	WrapU, WrapV  string
}

// PipelineDesc describes a shader pipeline.
type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

// MeshDesc describes an indexed mesh with a dynamic vertex/index store.
type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd submits one draw of a mesh with a pipeline, uniforms and samplers.
// Uniform values may be float32, int32, [2]float32, [4]float32 or [16]float32.
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int // 0 = all indices
	Uniforms   map[string]any
	Samplers   map[string]Texture
}

// Renderer abstraction implemented by graphics backends.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	DestroyPipeline(p Pipeline)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

// Event model (can expand over time).
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyJ
	KeyF3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}
