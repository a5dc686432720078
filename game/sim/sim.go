package sim

import (
	"github.com/Stenodyon/FlipFlop/game/circuit"
	"github.com/Stenodyon/FlipFlop/game/grid"
)

// ID identifies a wire or pin registered with the simulation.
type ID int

// Simulation propagates power through the circuit. Wires and pins that share
// a tile belong to the same net; a net is powered while at least one of its
// members is a source.
type Simulation struct {
	nextID  ID
	wires   map[ID]*circuit.Wire
	pins    map[ID]*circuit.Pin
	sources map[ID]bool
	dirty   bool
}

func New() *Simulation {
	return &Simulation{
		wires:   map[ID]*circuit.Wire{},
		pins:    map[ID]*circuit.Pin{},
		sources: map[ID]bool{},
	}
}

func (s *Simulation) AddWire(w circuit.Wire) ID {
	id := s.alloc()
	s.wires[id] = &w
	return id
}

func (s *Simulation) AddPin(p circuit.Pin) ID {
	id := s.alloc()
	s.pins[id] = &p
	return id
}

func (s *Simulation) alloc() ID {
	id := s.nextID
	s.nextID++
	s.dirty = true
	return id
}

func (s *Simulation) Remove(id ID) {
	delete(s.wires, id)
	delete(s.pins, id)
	delete(s.sources, id)
	s.dirty = true
}

// SetSource marks an entity as feeding power into its net.
func (s *Simulation) SetSource(id ID, on bool) {
	if on {
		s.sources[id] = true
	} else {
		delete(s.sources, id)
	}
	s.dirty = true
}

func (s *Simulation) ToggleSource(id ID) {
	s.SetSource(id, !s.sources[id])
}

// ToggleAll flips every registered source candidate: entities currently
// sourcing stop, all others start. Debug helper bound to a key in the app.
func (s *Simulation) ToggleAll() {
	for id := range s.wires {
		s.ToggleSource(id)
	}
	for id := range s.pins {
		s.ToggleSource(id)
	}
}

// Wire returns the simulated wire state for id.
func (s *Simulation) Wire(id ID) (circuit.Wire, bool) {
	w, ok := s.wires[id]
	if !ok {
		return circuit.Wire{}, false
	}
	return *w, true
}

// Pin returns the simulated pin state for id.
func (s *Simulation) Pin(id ID) (circuit.Pin, bool) {
	p, ok := s.pins[id]
	if !ok {
		return circuit.Pin{}, false
	}
	return *p, true
}

// EachWire visits all wires with their current power state.
func (s *Simulation) EachWire(f func(ID, circuit.Wire)) {
	for id, w := range s.wires {
		f(id, *w)
	}
}

// EachPin visits all pins with their current power state.
func (s *Simulation) EachPin(f func(ID, circuit.Pin)) {
	for id, p := range s.pins {
		f(id, *p)
	}
}

// PoweredAt reports whether any powered entity occupies the tile.
func (s *Simulation) PoweredAt(t grid.Tile) bool {
	for _, w := range s.wires {
		if !w.Powered {
			continue
		}
		for _, wt := range w.Tiles() {
			if wt == t {
				return true
			}
		}
	}
	for _, p := range s.pins {
		if p.Powered && p.Position == t {
			return true
		}
	}
	return false
}

// Step recomputes nets and power states. Cheap no-op when nothing changed.
func (s *Simulation) Step() {
	if !s.dirty {
		return
	}
	s.dirty = false

	uf := newUnionFind()

	// Union entities through shared tiles.
	occupant := map[grid.Tile]ID{}
	join := func(id ID, tiles []grid.Tile) {
		uf.add(id)
		for _, t := range tiles {
			if other, ok := occupant[t]; ok {
				uf.union(id, other)
			} else {
				occupant[t] = id
			}
		}
	}
	for id, w := range s.wires {
		join(id, w.Tiles())
	}
	for id, p := range s.pins {
		join(id, []grid.Tile{p.Position})
	}

	// A net is powered if any member sources it.
	powered := map[ID]bool{}
	for id := range s.sources {
		if _, ok := s.wires[id]; !ok {
			if _, ok := s.pins[id]; !ok {
				continue
			}
		}
		powered[uf.find(id)] = true
	}

	for id, w := range s.wires {
		w.Powered = powered[uf.find(id)]
	}
	for id, p := range s.pins {
		p.Powered = powered[uf.find(id)]
	}
}

// --- union-find over IDs ---

type unionFind struct {
	parent map[ID]ID
}

func newUnionFind() *unionFind {
	return &unionFind{parent: map[ID]ID{}}
}

func (uf *unionFind) add(id ID) {
	if _, ok := uf.parent[id]; !ok {
		uf.parent[id] = id
	}
}

func (uf *unionFind) find(id ID) ID {
	uf.add(id)
	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// path compression
	for uf.parent[id] != root {
		uf.parent[id], id = root, uf.parent[id]
	}
	return root
}

func (uf *unionFind) union(a, b ID) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}
