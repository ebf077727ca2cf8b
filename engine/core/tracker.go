package core

import "github.com/spaghettifunk/navigator/engine/math"

// ActionType is the kind of device action a TrackerState describes.
type ActionType uint8

const (
	ACTION_NONE ActionType = iota
	ACTION_PRESS
	ACTION_DRAG
	ACTION_RELEASE
	ACTION_WHEEL
)

func (a ActionType) String() string {
	switch a {
	case ACTION_PRESS:
		return "press"
	case ACTION_DRAG:
		return "drag"
	case ACTION_RELEASE:
		return "release"
	case ACTION_WHEEL:
		return "wheel"
	default:
		return "none"
	}
}

// TrackerState is a snapshot of the pointing device at one sample instant.
// DevicePos is in normalized device coordinates, [-1, 1] on each axis with Y up.
type TrackerState struct {
	DevicePos     [3]float32
	ActionType    ActionType
	CtrlModifier  bool
	ShiftModifier bool
	AltModifier   bool
	WheelClicks   int32
}

// TrackerHandler consumes tracker states produced by a Tracker.
type TrackerHandler func(state *TrackerState)

// Tracker turns raw mouse and keyboard events into TrackerStates. Drags are
// only reported while NavigationButton is held.
type Tracker struct {
	NavigationButton Button

	input   *InputState
	width   uint16
	height  uint16
	handler TrackerHandler
	state   TrackerState
}

func NewTracker(input *InputState, width, height uint16, handler TrackerHandler) *Tracker {
	return &Tracker{
		NavigationButton: BUTTON_LEFT,
		input:            input,
		width:            width,
		height:           height,
		handler:          handler,
	}
}

// Attach registers the tracker on the event system.
func (t *Tracker) Attach() bool {
	ok := EventRegister(EVENT_CODE_BUTTON_PRESSED, t, t.onButton)
	ok = EventRegister(EVENT_CODE_BUTTON_RELEASED, t, t.onButton) && ok
	ok = EventRegister(EVENT_CODE_MOUSE_MOVED, t, t.onMouseMove) && ok
	ok = EventRegister(EVENT_CODE_MOUSE_WHEEL, t, t.onWheel) && ok
	ok = EventRegister(EVENT_CODE_RESIZED, t, t.onResize) && ok
	return ok
}

// Detach removes every registration made by Attach.
func (t *Tracker) Detach() {
	EventUnregister(EVENT_CODE_BUTTON_PRESSED, t)
	EventUnregister(EVENT_CODE_BUTTON_RELEASED, t)
	EventUnregister(EVENT_CODE_MOUSE_MOVED, t)
	EventUnregister(EVENT_CODE_MOUSE_WHEEL, t)
	EventUnregister(EVENT_CODE_RESIZED, t)
}

// Resize updates the viewport used to normalize pixel coordinates.
func (t *Tracker) Resize(width, height uint16) {
	t.width = width
	t.height = height
}

// DevicePosition maps a pixel position to normalized device coordinates.
func (t *Tracker) DevicePosition(x, y uint16) [3]float32 {
	if t.width == 0 || t.height == 0 {
		return [3]float32{}
	}
	nx := 2*float32(x)/float32(t.width) - 1
	ny := 1 - 2*float32(y)/float32(t.height)
	return [3]float32{
		math.Clamp(nx, -1, 1),
		math.Clamp(ny, -1, 1),
		0,
	}
}

func (t *Tracker) emit(action ActionType, x, y uint16, clicks int32) {
	t.state = TrackerState{
		DevicePos:     t.DevicePosition(x, y),
		ActionType:    action,
		CtrlModifier:  t.input.IsCtrlDown(),
		ShiftModifier: t.input.IsShiftDown(),
		AltModifier:   t.input.IsAltDown(),
		WheelClicks:   clicks,
	}
	state := t.state
	t.handler(&state)
}

func (t *Tracker) onButton(ctx EventContext) bool {
	e, ok := ctx.Data.(*MouseEvent)
	if !ok || e.Button != t.NavigationButton {
		return false
	}
	action := ACTION_RELEASE
	if ctx.Type == EVENT_CODE_BUTTON_PRESSED {
		action = ACTION_PRESS
	}
	t.emit(action, e.PosX, e.PosY, 0)
	return false
}

func (t *Tracker) onMouseMove(ctx EventContext) bool {
	e, ok := ctx.Data.(*MouseEvent)
	if !ok || !t.input.IsButtonDown(t.NavigationButton) {
		return false
	}
	t.emit(ACTION_DRAG, e.PosX, e.PosY, 0)
	return false
}

func (t *Tracker) onWheel(ctx EventContext) bool {
	e, ok := ctx.Data.(*MouseEvent)
	if !ok || e.Scroll == 0 {
		return false
	}
	t.emit(ACTION_WHEEL, e.PosX, e.PosY, int32(e.Scroll))
	return false
}

func (t *Tracker) onResize(ctx EventContext) bool {
	if size, ok := ctx.Data.(*ResizeEvent); ok {
		t.Resize(size.Width, size.Height)
	}
	return false
}
