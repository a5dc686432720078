package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Stenodyon/FlipFlop/engine/assets"
	"github.com/Stenodyon/FlipFlop/engine/core"
	"github.com/Stenodyon/FlipFlop/engine/gfx/sprite"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	Rect     sprite.UvRect
}

type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Texture                  core.Texture
	AtlasW, AtlasH           int
	Face                     font.Face
	closeFace                func()
}

func (f *Font) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

// LoadTTF builds a monochrome (white) glyph atlas (alpha coverage) and uploads it as RGBA texture.
func LoadTTF(r core.Renderer, ttfRelPath string, sizePx float32) (*Font, error) {
	path := filepath.Join(assets.Root, "fonts", ttfRelPath)
	ttfData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	// Target rune set (latin-1 printable range).
	var runes []rune
	for r := rune(32); r <= rune(255); r++ {
		runes = append(runes, r)
	}

	// Measure all glyph bounds/advances to pack a simple shelf atlas
	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, len(runes))
	for _, rr := range runes {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Round(),
			h:   (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()), // distance from baseline to top
		})
	}

	// Very simple shelf packer (rows). Start with 512^2 atlas and grow until everything fits.
	const padding = 4
	atlasSize := 512
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	// Build atlas RGBA: white glyphs with alpha coverage
	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		if g.w == 0 || g.h == 0 {
			glyphs[g.r] = Glyph{
				Rune: g.r, Advance: g.adv,
				BearingX: g.bx, BearingY: g.by,
				W: g.w, H: g.h,
			}
			continue
		}
		p := pos[g.r]

		// Drawer expects a dot at the baseline; shift left by bearingX.
		drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
		drawer.DrawString(string(g.r))

		glyphs[g.r] = Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
			Rect: sprite.UvRect{
				Min: mgl32.Vec2{float32(p.X) / float32(atlasSize), float32(p.Y) / float32(atlasSize)},
				Max: mgl32.Vec2{float32(p.X+g.w) / float32(atlasSize), float32(p.Y+g.h) / float32(atlasSize)},
			},
		}
	}

	// Upload atlas
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: atlasSize, Height: atlasSize,
		Format:    core.TextureRGBA8,
		Pixels:    dst.Pix,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return nil, err
	}

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:  glyphs,
		Texture: tex,
		AtlasW:  atlasSize, AtlasH: atlasSize,
		Face:      face,
		closeFace: func() { _ = face.Close() },
	}, nil
}
