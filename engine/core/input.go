package core

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions. Only the keys the navigation host reacts to are listed.
type KeyCode uint16

const (
	KEY_ESCAPE   KeyCode = 0x1B
	KEY_SPACE    KeyCode = 0x20
	KEY_LEFT     KeyCode = 0x25
	KEY_UP       KeyCode = 0x26
	KEY_RIGHT    KeyCode = 0x27
	KEY_DOWN     KeyCode = 0x28
	KEY_LSHIFT   KeyCode = 0xA0
	KEY_RSHIFT   KeyCode = 0xA1
	KEY_LCONTROL KeyCode = 0xA2
	KEY_RCONTROL KeyCode = 0xA3
	KEY_LMENU    KeyCode = 0xA4
	KEY_RMENU    KeyCode = 0xA5

	KEYS_MAX_KEYS KeyCode = 0x100
)

// Mouse state structure
type MouseState struct {
	X       uint16
	Y       uint16
	Buttons [BUTTON_MAX_BUTTONS]bool // button states (pressed/released)
}

// Keyboard state structure
type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

// InputState holds the current keyboard and mouse state.
// It is driven by the host window layer and fires events on every change.
type InputState struct {
	KeyboardCurrent KeyboardState
	MouseCurrent    MouseState
}

func NewInputState() *InputState {
	return &InputState{}
}

// keyboard input
func (is *InputState) IsKeyDown(key KeyCode) bool {
	return is.KeyboardCurrent.Keys[key]
}

func (is *InputState) IsKeyUp(key KeyCode) bool {
	return !is.KeyboardCurrent.Keys[key]
}

func (is *InputState) IsCtrlDown() bool {
	return is.IsKeyDown(KEY_LCONTROL) || is.IsKeyDown(KEY_RCONTROL)
}

func (is *InputState) IsShiftDown() bool {
	return is.IsKeyDown(KEY_LSHIFT) || is.IsKeyDown(KEY_RSHIFT)
}

func (is *InputState) IsAltDown() bool {
	return is.IsKeyDown(KEY_LMENU) || is.IsKeyDown(KEY_RMENU)
}

func (is *InputState) ProcessKey(key KeyCode, pressed bool) {
	// Only handle this if the state actually changed.
	if is.KeyboardCurrent.Keys[key] == pressed {
		return
	}
	is.KeyboardCurrent.Keys[key] = pressed

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	EventFire(EventContext{
		Type: code,
		Data: &KeyEvent{
			KeyCode: key,
		},
	})
}

// mouse input
func (is *InputState) IsButtonDown(button Button) bool {
	return is.MouseCurrent.Buttons[button]
}

func (is *InputState) ProcessButton(button Button, pressed bool) {
	// If the state changed, fire an event.
	if is.MouseCurrent.Buttons[button] == pressed {
		return
	}
	is.MouseCurrent.Buttons[button] = pressed

	code := EVENT_CODE_BUTTON_RELEASED
	if pressed {
		code = EVENT_CODE_BUTTON_PRESSED
	}
	EventFire(EventContext{
		Type: code,
		Data: &MouseEvent{
			Button: button,
			PosX:   is.MouseCurrent.X,
			PosY:   is.MouseCurrent.Y,
		},
	})
}

func (is *InputState) ProcessMouseMove(x uint16, y uint16) {
	// Only process if actually different
	if is.MouseCurrent.X == x && is.MouseCurrent.Y == y {
		return
	}
	is.MouseCurrent.X = x
	is.MouseCurrent.Y = y

	EventFire(EventContext{
		Type: EVENT_CODE_MOUSE_MOVED,
		Data: &MouseEvent{
			PosX: x,
			PosY: y,
		},
	})
}

func (is *InputState) ProcessMouseWheel(zDelta int8) {
	EventFire(EventContext{
		Type: EVENT_CODE_MOUSE_WHEEL,
		Data: &MouseEvent{
			PosX:   is.MouseCurrent.X,
			PosY:   is.MouseCurrent.Y,
			Scroll: zDelta,
		},
	})
}
