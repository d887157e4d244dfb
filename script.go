package spritekit

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Key    string `json:"key,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected input events and screenshots across frames,
// for automated demo runs. Actions: move, press, release, click, key, wait,
// screenshot, quit.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("spritekit: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("spritekit: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "move", "press", "release", "click", "wait", "screenshot", "quit":
		case "key":
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("spritekit: parse script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("spritekit: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// Step advances the script by one frame, queueing input on q and screenshot
// requests on shots (which may be nil). It waits while q has pending
// injections.
func (s *Script) Step(q *EventQueue, shots *Screenshots) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if q.Pending() > 0 {
		return
	}
	// Count down wait frames.
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "move":
		q.InjectMove(st.X, st.Y)
	case "press":
		q.InjectPress(st.X, st.Y)
	case "release":
		q.InjectRelease(st.X, st.Y)
	case "click":
		q.InjectClick(st.X, st.Y)
	case "key":
		var k ebiten.Key
		if k.UnmarshalText([]byte(st.Key)) == nil {
			q.InjectKey(k)
		}
	case "quit":
		q.InjectQuit()
	case "screenshot":
		if shots != nil {
			shots.Queue(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if s.cursor >= len(s.steps) && s.waitCount == 0 && q.Pending() == 0 {
		s.done = true
	}
}
