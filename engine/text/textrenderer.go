package text

import (
	"github.com/Stenodyon/FlipFlop/engine/colors"
	"github.com/Stenodyon/FlipFlop/engine/gfx/sprite"
)

// DrawText draws s with top-left origin (x,y) into a Y-down pixel-space scene
// (overlay projection: ortho 0..w left-right, 0..h top-bottom).
func DrawText(b *sprite.Batch, font *Font, x, y float32, s string, color colors.Color) {
	penX := x
	baseY := y + font.Ascent // move origin to baseline
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += LineHeight(font)
			prev = -1
			continue
		}
		if r == '\t' {
			if sp, ok := font.Glyphs[' ']; ok {
				penX += sp.Advance * 4
			}
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				penX += sp.Advance
			}
			prev = r
			continue
		}

		// Apply kerning between prev and current
		if prev >= 0 && font.Face != nil {
			penX += float32(font.Face.Kern(prev, r)) / 64.0
		}

		// Baseline-aligned quad center (Y-down space): top = baseline - BearingY
		left := penX + g.BearingX
		top := baseY - g.BearingY
		cx := left + float32(g.W)*0.5
		cy := top + float32(g.H)*0.5

		b.DrawUVQuad(cx, cy, 0, float32(g.W), float32(g.H), font.Texture, color, 0, g.Rect)

		penX += g.Advance
		prev = r
	}
}

// MeasureText reports the pixel extent of s at the font's native size.
func MeasureText(font *Font, s string) (width, height float32) {
	var lineW float32
	var prev rune = -1
	height = LineHeight(font)

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += LineHeight(font)
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 && font.Face != nil {
			lineW += float32(font.Face.Kern(prev, r)) / 64.0
		}

		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	return width, height
}

func LineHeight(font *Font) float32 { return font.Ascent - font.Descent + font.LineGap }
