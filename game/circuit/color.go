package circuit

import "github.com/Stenodyon/FlipFlop/engine/colors"

// WireColor selects the tint for powered and unpowered wire sprites.
type WireColor struct {
	Off colors.Color
	On  colors.Color
}

// DefaultWireColor is black when off, red when powered.
func DefaultWireColor() WireColor {
	return WireColor{Off: colors.Black, On: colors.WireOn}
}

// Pick returns the tint for the given power state.
func (wc WireColor) Pick(powered bool) colors.Color {
	if powered {
		return wc.On
	}
	return wc.Off
}
