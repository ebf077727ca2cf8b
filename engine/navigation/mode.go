package navigation

import "github.com/spaghettifunk/navigator/engine/core"

// NavigationMode translates tracker input into viewpoint changes.
// The host drives a mode with Start once per gesture, Move for every sample,
// and Finish when the gesture ends. A mode is not safe for concurrent use.
type NavigationMode interface {
	// Name returns the text identifier of this mode.
	Name() string

	// Start initializes the gesture state.
	//
	// Parameters:
	//   - state: the device sample that began the gesture
	Start(state *core.TrackerState)

	// Move processes one device sample.
	//
	// Parameters:
	//   - state: the current device sample
	Move(state *core.TrackerState)

	// Finish terminates the gesture.
	//
	// Parameters:
	//   - state: the device sample that ended the gesture
	Finish(state *core.TrackerState)

	// CenterOfRotation copies the center of rotation into cor and returns it.
	// A nil or undersized cor is replaced by a newly allocated slice.
	//
	// Parameters:
	//   - cor: destination buffer, may be nil
	//
	// Returns:
	//   - []float32: the buffer holding x, y, z
	CenterOfRotation(cor []float32) []float32

	// SetCenterOfRotation stores up to three components of cor.
	//
	// Parameters:
	//   - cor: x, y, z
	SetCenterOfRotation(cor []float32)
}
