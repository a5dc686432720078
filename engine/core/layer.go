package core

// Layer is one slice of the application: the game world, the debug overlay.
// Layers update and render bottom-up; events visit them top-down so overlays
// can intercept input before the world sees it.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true = handled, propagation stops
}

// LayerStack orders layers bottom (index 0) to top.
type LayerStack struct {
	layers []Layer
}

func (ls *LayerStack) Len() int { return len(ls.layers) }

func (ls *LayerStack) Push(l Layer) { ls.layers = append(ls.layers, l) }

func (ls *LayerStack) Pop() (Layer, bool) {
	n := len(ls.layers)
	if n == 0 {
		return nil, false
	}
	l := ls.layers[n-1]
	ls.layers[n-1] = nil
	ls.layers = ls.layers[:n-1]
	return l, true
}

// ForEach visits layers bottom-up (update/render order).
func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.layers {
		f(l)
	}
}

// ForEachReverse visits layers top-down (event order) until f returns true.
func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.layers) - 1; i >= 0; i-- {
		if f(ls.layers[i]) {
			return
		}
	}
}
