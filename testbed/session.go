package testbed

import (
	"fmt"

	"github.com/spaghettifunk/navigator/engine"
	"github.com/spaghettifunk/navigator/engine/core"
)

type step struct {
	name string
	do   func(input *core.InputState)
}

// TestSession replays a scripted mouse and keyboard session through a Tracker
// into a Navigator, one step per Update.
type TestSession struct {
	Navigator *engine.Navigator

	input   *core.InputState
	tracker *core.Tracker
	script  []step
	cursor  int
}

func NewTestSession(nav *engine.Navigator, width, height uint16) *TestSession {
	input := core.NewInputState()
	return &TestSession{
		Navigator: nav,
		input:     input,
		tracker:   core.NewTracker(input, width, height, nav.HandleTrackerState),
		script:    defaultScript(width, height),
	}
}

func (s *TestSession) Boot() error {
	core.LogInfo("booting testbed...")
	if !s.tracker.Attach() {
		return fmt.Errorf("failed to attach the tracker to the event system")
	}
	return nil
}

// Update plays the next step. It returns false once the script is over.
func (s *TestSession) Update() bool {
	if s.cursor >= len(s.script) {
		return false
	}
	st := s.script[s.cursor]
	s.cursor++

	st.do(s.input)
	core.LogInfo("%-14s %s", st.name, s.Navigator.Status())
	return true
}

// Finished reports whether every step was played.
func (s *TestSession) Finished() bool {
	return s.cursor >= len(s.script)
}

func (s *TestSession) Shutdown() {
	s.tracker.Detach()
}

func defaultScript(width, height uint16) []step {
	cx, cy := width/2, height/2
	dx, dy := width/20, height/20

	moveTo := func(x, y uint16) func(*core.InputState) {
		return func(in *core.InputState) { in.ProcessMouseMove(x, y) }
	}
	button := func(pressed bool) func(*core.InputState) {
		return func(in *core.InputState) { in.ProcessButton(core.BUTTON_LEFT, pressed) }
	}
	ctrl := func(pressed bool) func(*core.InputState) {
		return func(in *core.InputState) { in.ProcessKey(core.KEY_LCONTROL, pressed) }
	}
	wheel := func(clicks int8) func(*core.InputState) {
		return func(in *core.InputState) { in.ProcessMouseWheel(clicks) }
	}

	return []step{
		{"center", moveTo(cx, cy)},
		{"press", button(true)},
		{"pan up", moveTo(cx, cy-dy)},
		{"pan left", moveTo(cx+dx, cy-dy)},
		{"release", button(false)},
		{"wheel in", wheel(-3)},
		{"wheel out", wheel(1)},
		{"ctrl", ctrl(true)},
		{"press", button(true)},
		{"zoom out", moveTo(cx+dx, cy-2*dy)},
		{"release", button(false)},
		{"ctrl up", ctrl(false)},
	}
}
