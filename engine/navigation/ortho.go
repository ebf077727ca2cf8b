package navigation

import (
	"github.com/spaghettifunk/navigator/engine/core"
)

// frustumZoom scales the orthographic clip planes around the origin.
type frustumZoom struct {
	env    ViewEnvironment
	scalar float64
}

func (z *frustumZoom) triggered(state *core.TrackerState) bool {
	return state.CtrlModifier
}

// zoom multiplies the clip planes by the scalar when the device moved up and
// by its reciprocal when it moved down. Changing the clip planes cannot
// collide, so the change is committed directly.
func (z *frustumZoom) zoom(c *PanZoomController, state *core.TrackerState) (candidate, bool) {
	delta := c.currentPosition[1] - c.startPosition[1]
	if delta == 0 {
		return candidate{}, false
	}

	// TODO: derive the scalar from the drag distance instead of a fixed step.
	scale := z.scalar
	if delta < 0 {
		scale = 1 / scale
	}

	frustum := z.env.ViewFrustum().Scale(scale)
	z.env.SetOrthoParams(frustum.Left, frustum.Right, frustum.Bottom, frustum.Top)

	c.commands.Execute(NewChangePropertyTransientCommand(
		c.entityID,
		DefaultEntityProperties,
		PropertyOrthoParams,
		frustum.OrthoParams(),
		nil))
	return candidate{}, false
}

// NewOrthoPanZoomController creates the Pan-Zoom mode for an orthographic
// viewpoint. Dragging pans by an amount proportional to the visible extent,
// ctrl-drag scales the clip planes.
//
// Parameters:
//   - data: source of the viewpoint transform
//   - env: the clip planes to read and scale
//   - commands: executes the view matrix and ortho parameter changes
//   - entityID: the viewpoint entity the commands target
//   - collision: vetoes obstructed pans
//   - options: functional options
//
// Returns:
//   - *PanZoomController: the mode
func NewOrthoPanZoomController(
	data ViewpointData,
	env ViewEnvironment,
	commands CommandController,
	entityID uint32,
	collision CollisionManager,
	options ...ControllerOption) *PanZoomController {

	o := defaultControllerOptions()
	for _, option := range options {
		option(&o)
	}

	return &PanZoomController{
		entityID:  entityID,
		data:      data,
		commands:  commands,
		collision: collision,
		status:    o.status,
		zoomer: &frustumZoom{
			env:    env,
			scalar: o.zoomScalar,
		},
		panScale: func() (float32, float32) {
			f := env.ViewFrustum()
			return float32(f.Width()), float32(f.Height())
		},
	}
}
