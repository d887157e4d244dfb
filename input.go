package spritekit

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventQueue collects the input events for one frame. Injected events take
// priority: while any are queued, one is delivered per Poll and live input
// is ignored for that frame. A zero EventQueue has no live input source.
type EventQueue struct {
	injected []Event
	events   []Event
	live     func(dst []Event) []Event
}

// NewEventQueue returns a queue that polls Ebitengine's mouse, keyboard and
// window-close state. Poll must then be called from ebiten.Game.Update.
func NewEventQueue() *EventQueue {
	p := &livePoller{}
	ebiten.SetWindowClosingHandled(true)
	return &EventQueue{live: p.poll}
}

// Poll returns this frame's events in arrival order. The returned slice is
// reused by the next call.
func (q *EventQueue) Poll() []Event {
	q.events = q.events[:0]
	if len(q.injected) > 0 {
		q.events = append(q.events, q.injected[0])
		copy(q.injected, q.injected[1:])
		q.injected = q.injected[:len(q.injected)-1]
		return q.events
	}
	if q.live != nil {
		q.events = q.live(q.events)
	}
	return q.events
}

// Pending returns the number of injected events not yet delivered.
func (q *EventQueue) Pending() int {
	return len(q.injected)
}

// livePoller turns Ebitengine's per-frame input state into discrete events.
type livePoller struct {
	lastX, lastY int
	seen         bool
	keys         []ebiten.Key
}

var pollButtons = [...]struct {
	eb ebiten.MouseButton
	mb MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

func (p *livePoller) poll(dst []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, Event{Type: EventQuit})
	}

	x, y := ebiten.CursorPosition()
	if !p.seen || x != p.lastX || y != p.lastY {
		dst = append(dst, Event{Type: EventPointerMove, X: x, Y: y})
		p.lastX, p.lastY, p.seen = x, y, true
	}

	for _, b := range pollButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			dst = append(dst, Event{Type: EventPointerDown, X: x, Y: y, Button: b.mb})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			dst = append(dst, Event{Type: EventPointerUp, X: x, Y: y, Button: b.mb})
		}
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		dst = append(dst, Event{Type: EventKeyDown, Key: k, X: x, Y: y})
	}
	return dst
}
