package navigation

import (
	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/engine/math"
)

// dollyZoom moves the eye along the in axis. The wheel zooms by clicks,
// a ctrl-drag by vertical device motion.
type dollyZoom struct {
	wheelStep float32
	step      float32
}

func (z *dollyZoom) triggered(state *core.TrackerState) bool {
	return state.ActionType == core.ACTION_WHEEL || state.CtrlModifier
}

func (z *dollyZoom) zoom(c *PanZoomController, state *core.TrackerState) (candidate, bool) {
	var dz float32
	if state.ActionType == core.ACTION_WHEEL {
		dz = float32(state.WheelClicks) * z.wheelStep
	} else {
		dz = c.currentPosition[1] - c.startPosition[1]
	}
	if dz == 0 {
		return candidate{}, false
	}
	dz *= z.step

	start := c.data.ViewTransform()
	eye := start.Translation().Add(start.In().MulScalar(dz))
	return candidate{start: start, eye: eye}, true
}

// NewPanZoomController creates the Pan-Zoom mode for a perspective viewpoint.
// Dragging pans, ctrl-drag and the wheel move the eye along the view
// direction. Moves that would put the eye at or below the floor are dropped.
//
// Parameters:
//   - data: source of the viewpoint transform
//   - commands: executes the view matrix changes
//   - entityID: the viewpoint entity the commands target
//   - collision: vetoes obstructed moves
//   - options: functional options
//
// Returns:
//   - *PanZoomController: the mode
func NewPanZoomController(
	data ViewpointData,
	commands CommandController,
	entityID uint32,
	collision CollisionManager,
	options ...ControllerOption) *PanZoomController {

	o := defaultControllerOptions()
	for _, option := range options {
		option(&o)
	}

	floor := o.floorHeight
	panStep := o.panStep
	return &PanZoomController{
		entityID:  entityID,
		data:      data,
		commands:  commands,
		collision: collision,
		status:    o.status,
		zoomer: &dollyZoom{
			wheelStep: o.wheelStep,
			step:      o.zoomStep,
		},
		panScale: func() (float32, float32) {
			return panStep, panStep
		},
		// stay above the floor
		floorGuard: func(eye math.Vec3) bool {
			return eye.Y > floor
		},
	}
}
