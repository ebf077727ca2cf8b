package navigation

import (
	"math"

	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/core"
)

const (
	// DefaultOrthoZoomScalar is the clip plane multiplier of one orthographic zoom step.
	DefaultOrthoZoomScalar = 1.1
	// DefaultPanStep converts perspective pan device deltas to world units.
	DefaultPanStep float32 = 16
	// DefaultZoomStep converts perspective zoom deltas to world units.
	DefaultZoomStep float32 = 16
	// DefaultWheelStep is the zoom delta of a single wheel click.
	DefaultWheelStep float32 = 0.1
	// DefaultFloorHeight is the exclusive lower bound of the perspective eye height.
	DefaultFloorHeight float32 = 0
)

type controllerOptions struct {
	status      StatusManager
	zoomScalar  float64
	panStep     float32
	zoomStep    float32
	wheelStep   float32
	floorHeight float32
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		zoomScalar:  DefaultOrthoZoomScalar,
		panStep:     DefaultPanStep,
		zoomStep:    DefaultZoomStep,
		wheelStep:   DefaultWheelStep,
		floorHeight: DefaultFloorHeight,
	}
}

// ControllerOption configures a PanZoomController.
type ControllerOption func(*controllerOptions)

// WithStatusManager sets the observer notified of committed view matrices.
// Without it no notification is sent.
func WithStatusManager(status StatusManager) ControllerOption {
	return func(o *controllerOptions) {
		o.status = status
	}
}

// WithZoomScalar sets the orthographic zoom multiplier. Values not greater
// than one are ignored.
func WithZoomScalar(scalar float64) ControllerOption {
	return func(o *controllerOptions) {
		o.setZoomScalar(scalar)
	}
}

// WithPanStep sets the perspective pan step. Non-positive steps are ignored.
func WithPanStep(step float32) ControllerOption {
	return func(o *controllerOptions) {
		setStep(&o.panStep, "pan", step)
	}
}

// WithZoomStep sets the perspective zoom step. Non-positive steps are ignored.
func WithZoomStep(step float32) ControllerOption {
	return func(o *controllerOptions) {
		setStep(&o.zoomStep, "zoom", step)
	}
}

// WithWheelStep sets the zoom delta of one wheel click. Non-positive steps are ignored.
func WithWheelStep(step float32) ControllerOption {
	return func(o *controllerOptions) {
		setStep(&o.wheelStep, "wheel", step)
	}
}

// WithFloorHeight sets the perspective floor plane.
func WithFloorHeight(height float32) ControllerOption {
	return func(o *controllerOptions) {
		o.floorHeight = height
	}
}

// WithParameters applies every tuning constant of a navigation config section,
// with the same checks as the individual options.
func WithParameters(cfg config.NavigationConfig) ControllerOption {
	return func(o *controllerOptions) {
		o.setZoomScalar(cfg.OrthoZoomScalar)
		setStep(&o.panStep, "pan", cfg.PanStep)
		setStep(&o.zoomStep, "zoom", cfg.ZoomStep)
		setStep(&o.wheelStep, "wheel", cfg.WheelStep)
		o.floorHeight = cfg.FloorHeight
	}
}

func (o *controllerOptions) setZoomScalar(scalar float64) {
	if !(scalar > 1) || math.IsInf(scalar, 1) {
		core.LogWarn("navigation: ignoring zoom scalar %v, keeping %v", scalar, o.zoomScalar)
		return
	}
	o.zoomScalar = scalar
}

func setStep(dst *float32, name string, step float32) {
	if !(step > 0) || math.IsInf(float64(step), 1) {
		core.LogWarn("navigation: ignoring %s step %v, keeping %v", name, step, *dst)
		return
	}
	*dst = step
}
