package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stenodyon/FlipFlop/game/circuit"
	"github.com/Stenodyon/FlipFlop/game/grid"
)

func TestPowerPropagation(t *testing.T) {
	t.Run("source powers its own wire", func(t *testing.T) {
		s := New()
		id := s.AddWire(circuit.Wire{Start: grid.NewTile(0, 0), Dir: grid.Right, Length: 3})
		s.SetSource(id, true)
		s.Step()

		w, ok := s.Wire(id)
		require.True(t, ok)
		assert.True(t, w.Powered)
	})

	t.Run("touching wires share power", func(t *testing.T) {
		s := New()
		a := s.AddWire(circuit.Wire{Start: grid.NewTile(0, 0), Dir: grid.Right, Length: 2})
		b := s.AddWire(circuit.Wire{Start: grid.NewTile(2, 0), Dir: grid.Up, Length: 2})
		s.SetSource(a, true)
		s.Step()

		w, _ := s.Wire(b)
		assert.True(t, w.Powered, "wire b touches wire a at (2,0)")
	})

	t.Run("disjoint wires stay dark", func(t *testing.T) {
		s := New()
		a := s.AddWire(circuit.Wire{Start: grid.NewTile(0, 0), Dir: grid.Right, Length: 1})
		b := s.AddWire(circuit.Wire{Start: grid.NewTile(5, 5), Dir: grid.Right, Length: 1})
		s.SetSource(a, true)
		s.Step()

		w, _ := s.Wire(b)
		assert.False(t, w.Powered)
	})

	t.Run("pin bridges two wires", func(t *testing.T) {
		s := New()
		// both wires and the pin meet at (1,0)
		a := s.AddWire(circuit.Wire{Start: grid.NewTile(0, 0), Dir: grid.Right, Length: 1})
		b := s.AddWire(circuit.Wire{Start: grid.NewTile(1, 0), Dir: grid.Up, Length: 2})
		p := s.AddPin(circuit.Pin{Position: grid.NewTile(1, 0)})
		s.SetSource(a, true)
		s.Step()

		bw, _ := s.Wire(b)
		pp, _ := s.Pin(p)
		assert.True(t, bw.Powered)
		assert.True(t, pp.Powered)
	})

	t.Run("unpowering the source darkens the net", func(t *testing.T) {
		s := New()
		id := s.AddWire(circuit.Wire{Start: grid.NewTile(0, 0), Dir: grid.Down, Length: 3})
		s.SetSource(id, true)
		s.Step()
		s.SetSource(id, false)
		s.Step()

		w, _ := s.Wire(id)
		assert.False(t, w.Powered)
	})

	t.Run("removing the bridge splits the net", func(t *testing.T) {
		s := New()
		a := s.AddWire(circuit.Wire{Start: grid.NewTile(0, 0), Dir: grid.Right, Length: 1})
		bridge := s.AddWire(circuit.Wire{Start: grid.NewTile(1, 0), Dir: grid.Right, Length: 1})
		b := s.AddWire(circuit.Wire{Start: grid.NewTile(2, 0), Dir: grid.Right, Length: 1})
		s.SetSource(a, true)
		s.Step()

		w, _ := s.Wire(b)
		require.True(t, w.Powered)

		s.Remove(bridge)
		s.Step()

		w, _ = s.Wire(b)
		assert.False(t, w.Powered)
	})

	t.Run("toggle all flips every entity", func(t *testing.T) {
		s := New()
		a := s.AddWire(circuit.Wire{Start: grid.NewTile(0, 0), Dir: grid.Right, Length: 1})
		s.ToggleAll()
		s.Step()
		w, _ := s.Wire(a)
		assert.True(t, w.Powered)

		s.ToggleAll()
		s.Step()
		w, _ = s.Wire(a)
		assert.False(t, w.Powered)
	})

	t.Run("powered lookup by tile", func(t *testing.T) {
		s := New()
		id := s.AddWire(circuit.Wire{Start: grid.NewTile(1, 1), Dir: grid.Down, Length: 3})
		s.SetSource(id, true)
		s.Step()

		assert.True(t, s.PoweredAt(grid.NewTile(1, -1)))
		assert.False(t, s.PoweredAt(grid.NewTile(0, 0)))
	})
}
