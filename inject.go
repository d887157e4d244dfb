package spritekit

import "github.com/hajimehoshi/ebiten/v2"

// InjectMove queues a pointer move to (x, y). Injected events are consumed
// one per Poll, in the order they were queued.
func (q *EventQueue) InjectMove(x, y int) {
	q.Inject(Event{Type: EventPointerMove, X: x, Y: y})
}

// InjectPress queues a left-button press at (x, y).
func (q *EventQueue) InjectPress(x, y int) {
	q.Inject(Event{Type: EventPointerDown, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at (x, y).
func (q *EventQueue) InjectRelease(x, y int) {
	q.Inject(Event{Type: EventPointerUp, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (q *EventQueue) InjectClick(x, y int) {
	q.InjectPress(x, y)
	q.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves
// and a release at (toX, toY). The sequence consumes frames frames; fewer
// than 2 is treated as 2.
func (q *EventQueue) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		q.InjectMove(x, y)
	}
	q.InjectRelease(toX, toY)
}

// InjectKey queues a key press.
func (q *EventQueue) InjectKey(k ebiten.Key) {
	q.Inject(Event{Type: EventKeyDown, Key: k})
}

// InjectQuit queues a quit request.
func (q *EventQueue) InjectQuit() {
	q.Inject(Event{Type: EventQuit})
}

// Inject queues an arbitrary event.
func (q *EventQueue) Inject(e Event) {
	q.injected = append(q.injected, e)
}
