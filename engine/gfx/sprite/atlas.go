package sprite

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Stenodyon/FlipFlop/engine/core"
)

// SubTexture pairs a texture with the UV rect of one atlas cell.
type SubTexture struct {
	Texture core.Texture
	Rect    UvRect
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
func FromPixels(tex core.Texture, x, y, w, h, atlasW, atlasH int) SubTexture {
	return SubTexture{
		Texture: tex,
		Rect: UvRect{
			Min: mgl32.Vec2{float32(x) / float32(atlasW), float32(y) / float32(atlasH)},
			Max: mgl32.Vec2{float32(x+w) / float32(atlasW), float32(y+h) / float32(atlasH)},
		},
	}
}

// FromGrid builds a subtexture from tile grid coordinates (cx,cy) of cell size (cw,ch).
func FromGrid(tex core.Texture, cx, cy, cw, ch, atlasW, atlasH int) SubTexture {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch, atlasW, atlasH)
}
