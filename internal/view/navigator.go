package view

import "sync"

// Navigator holds the current State of one kiosk and applies events to it.
type Navigator struct {
	mu    sync.RWMutex
	state State
}

func NewNavigator() *Navigator {
	return &Navigator{state: Initial()}
}

func (n *Navigator) Current() State {
	n.mu.RLock()
	defer n.mu.RUnlock()
	s := n.state
	s.Payload = s.Payload.clone()
	return s
}

func (n *Navigator) Navigate(v View, payload Payload) Transition {
	return n.Apply(Navigate{View: v, Payload: payload})
}

func (n *Navigator) Apply(ev Event) Transition {
	n.mu.Lock()
	defer n.mu.Unlock()

	t := Next(n.state, ev)
	n.state = t.To
	return t
}
