// Package overlay implements the open/close/dismiss-on-outside-press behavior
// shared by the dashboard's modal panels.
//
// A Panel holds a subscription on a Registry exactly while it is open. The
// registry plays the role of a screen-wide pointer listener: every left press
// is dispatched to the current subscribers, and an open panel closes itself
// when the press lands outside its rendered bounds.
package overlay

import (
	"fmt"
	"sort"
)

// State is the visibility of a panel.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Kind identifies one of the dashboard panels.
type Kind int

const (
	Withdraw Kind = iota
	PayNow
	Profile
)

// Kinds lists every panel kind in display order.
var Kinds = []Kind{Withdraw, PayNow, Profile}

func (k Kind) String() string {
	switch k {
	case Withdraw:
		return "withdraw"
	case PayNow:
		return "pay-now"
	case Profile:
		return "profile"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Rect is a screen region in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PointerEvent is a pointer-down at a screen cell.
type PointerEvent struct {
	X, Y int
}

// Registry fans pointer-down events out to subscribers.
// It is not safe for concurrent use; Bubble Tea drives it from Update only.
type Registry struct {
	nextID int
	subs   map[int]func(PointerEvent)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[int]func(PointerEvent))}
}

// Subscribe registers fn and returns its release func. Release is idempotent.
func (r *Registry) Subscribe(fn func(PointerEvent)) func() {
	r.nextID++
	id := r.nextID
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

// Dispatch delivers ev to every subscriber registered at the time of the call,
// in subscription order. Subscribers may release themselves while handling.
func (r *Registry) Dispatch(ev PointerEvent) {
	ids := make([]int, 0, len(r.subs))
	for id := range r.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := r.subs[id]; ok {
			fn(ev)
		}
	}
}

// Len returns the number of live subscriptions.
func (r *Registry) Len() int {
	return len(r.subs)
}

// Panel is the visibility state machine for one overlay.
type Panel struct {
	kind     Kind
	reg      *Registry
	state    State
	bounds   Rect
	release  func()
	onChange func(Kind, State)
}

// NewPanel returns a closed panel that subscribes to reg while open.
func NewPanel(kind Kind, reg *Registry) *Panel {
	return &Panel{kind: kind, reg: reg}
}

// OnChange sets a hook called after every state transition.
func (p *Panel) OnChange(fn func(Kind, State)) {
	p.onChange = fn
}

// Kind returns the panel's kind.
func (p *Panel) Kind() Kind { return p.kind }

// State returns the current state.
func (p *Panel) State() State { return p.state }

// IsOpen reports whether the panel is visible.
func (p *Panel) IsOpen() bool { return p.state == Open }

// Bounds returns the last rendered bounds.
func (p *Panel) Bounds() Rect { return p.bounds }

// SetBounds records where the panel was laid out. Presses outside it dismiss the panel.
func (p *Panel) SetBounds(r Rect) {
	p.bounds = r
}

// Open shows the panel and acquires its pointer subscription.
// It reports whether the state changed.
func (p *Panel) Open() bool {
	if p.state == Open {
		return false
	}
	p.state = Open
	p.release = p.reg.Subscribe(p.handlePointer)
	p.notify()
	return true
}

// Close hides the panel and releases its pointer subscription.
// It reports whether the state changed.
func (p *Panel) Close() bool {
	if p.state == Closed {
		return false
	}
	p.state = Closed
	p.releaseSub()
	p.notify()
	return true
}

// Teardown releases the subscription regardless of state. Safe to call repeatedly.
func (p *Panel) Teardown() {
	p.releaseSub()
	p.state = Closed
}

func (p *Panel) releaseSub() {
	if p.release != nil {
		p.release()
		p.release = nil
	}
}

func (p *Panel) handlePointer(ev PointerEvent) {
	if !p.bounds.Contains(ev.X, ev.Y) {
		p.Close()
	}
}

func (p *Panel) notify() {
	if p.onChange != nil {
		p.onChange(p.kind, p.state)
	}
}

// Set groups one independent panel per Kind over a shared registry.
type Set struct {
	reg    *Registry
	panels map[Kind]*Panel
}

// NewSet creates a closed panel for every kind.
func NewSet() *Set {
	reg := NewRegistry()
	s := &Set{reg: reg, panels: make(map[Kind]*Panel, len(Kinds))}
	for _, k := range Kinds {
		s.panels[k] = NewPanel(k, reg)
	}
	return s
}

// Registry returns the shared pointer registry.
func (s *Set) Registry() *Registry { return s.reg }

// Panel returns the panel for k.
func (s *Set) Panel(k Kind) *Panel { return s.panels[k] }

// OnChange installs fn on every panel.
func (s *Set) OnChange(fn func(Kind, State)) {
	for _, p := range s.panels {
		p.OnChange(fn)
	}
}

// Top returns the open panel drawn on top, if any. Later kinds draw above earlier ones.
func (s *Set) Top() (*Panel, bool) {
	for i := len(Kinds) - 1; i >= 0; i-- {
		if p := s.panels[Kinds[i]]; p.IsOpen() {
			return p, true
		}
	}
	return nil, false
}

// AnyOpen reports whether any panel is visible.
func (s *Set) AnyOpen() bool {
	_, ok := s.Top()
	return ok
}

// Press dispatches a pointer-down to the open panels.
func (s *Set) Press(x, y int) {
	s.reg.Dispatch(PointerEvent{X: x, Y: y})
}

// Teardown releases every panel's subscription.
func (s *Set) Teardown() {
	for _, k := range Kinds {
		s.panels[k].Teardown()
	}
}
