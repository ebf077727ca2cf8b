package core

import "sync"

// System internal event codes. Application should use codes beyond 255.
type EventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed.
	/* Context usage:
	 * key := ctx.Data.(*KeyEvent).KeyCode
	 */
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Mouse button pressed.
	/* Context usage:
	 * button := ctx.Data.(*MouseEvent).Button
	 */
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04

	// Mouse button released.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05

	// Mouse moved.
	/* Context usage:
	 * x, y := ctx.Data.(*MouseEvent).PosX, ctx.Data.(*MouseEvent).PosY
	 */
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06

	// Mouse wheel.
	/* Context usage:
	 * clicks := ctx.Data.(*MouseEvent).Scroll
	 */
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07

	// Resized/resolution changed from the OS.
	/* Context usage:
	 * w, h := ctx.Data.(*ResizeEvent).Width, ctx.Data.(*ResizeEvent).Height
	 */
	EVENT_CODE_RESIZED EventCode = 0x08

	// Viewpoint transform committed by a navigation mode.
	/* Context usage:
	 * m := ctx.Data.(*ViewMatrixEvent).Matrix
	 */
	EVENT_CODE_VIEW_MATRIX_CHANGED EventCode = 0x10

	// Orthographic clip planes changed.
	/* Context usage:
	 * params := ctx.Data.(*OrthoParamsEvent).Params
	 */
	EVENT_CODE_ORTHO_PARAMS_CHANGED EventCode = 0x11

	// Configuration file reloaded from disk.
	EVENT_CODE_CONFIG_RELOADED EventCode = 0x12

	MAX_EVENT_CODE EventCode = 0xFF
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 16384

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

type ResizeEvent struct {
	Width  uint16
	Height uint16
}

type ViewMatrixEvent struct {
	EntityID uint32
	Matrix   [16]float32
}

type OrthoParamsEvent struct {
	EntityID uint32
	Params   [4]float64
}

// Should return true if handled.
type FnOnEvent func(ctx EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// State structure.
type eventSystemState struct {
	mu sync.RWMutex
	// Lookup table for event codes.
	registered map[EventCode][]*registeredEvent
}

var onceEvent sync.Once
var eventState *eventSystemState = nil

func EventInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[EventCode][]*registeredEvent),
		}
	})
	return true
}

// EventShutdown drops every registration. The system stays usable.
func EventShutdown() error {
	if eventState == nil {
		return nil
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	eventState.registered = make(map[EventCode][]*registeredEvent)
	return nil
}

/**
 * Register to listen for when events are sent with the provided code. A listener
 * can only be registered once per code; a duplicate returns false.
 * @param code The event code to listen for.
 * @param listener The listener instance, used as the registration key.
 * @param onEvent The callback invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func EventRegister(code EventCode, listener interface{}, onEvent FnOnEvent) bool {
	if eventState == nil || code < 0 || code >= MAX_MESSAGE_CODES {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code.
 * @returns true if the listener was found and removed; otherwise false.
 */
func EventUnregister(code EventCode, listener interface{}) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * @returns true if handled, otherwise false.
 */
func EventFire(ctx EventContext) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.RLock()
	events := append([]*registeredEvent(nil), eventState.registered[ctx.Type]...)
	eventState.mu.RUnlock()

	for _, e := range events {
		if e.callback(ctx) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}
