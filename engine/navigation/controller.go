package navigation

import (
	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/engine/math"
)

// PanZoomName is the mode name reported by both Pan-Zoom variants.
const PanZoomName = "Pan-Zoom"

// candidate is a proposed eye position computed from a baseline transform.
type candidate struct {
	start math.Mat4
	eye   math.Vec3
}

// zoomStrategy is the part of the Pan-Zoom behavior that differs between
// projections.
type zoomStrategy interface {
	// triggered reports whether the sample is a zoom rather than a pan.
	triggered(state *core.TrackerState) bool
	// zoom handles one zoom sample. It returns a candidate when the zoom moves
	// the eye; false means nothing is left to commit.
	zoom(c *PanZoomController, state *core.TrackerState) (candidate, bool)
}

// PanZoomController pans the viewpoint in its view plane and zooms it,
// either by moving the eye (perspective) or by scaling the clip planes
// (orthographic). Use NewPanZoomController or NewOrthoPanZoomController.
type PanZoomController struct {
	entityID  uint32
	data      ViewpointData
	commands  CommandController
	collision CollisionManager
	status    StatusManager

	zoomer zoomStrategy
	// panScale converts device deltas to world units on the x and y axes.
	panScale func() (float32, float32)
	// floorGuard, when set, must accept the eye for a move to be committed.
	floorGuard func(eye math.Vec3) bool

	startPosition    [3]float32
	currentPosition  [3]float32
	centerOfRotation [3]float32
	active           bool
}

var _ NavigationMode = &PanZoomController{}

func (c *PanZoomController) Name() string {
	return PanZoomName
}

// Active reports whether a gesture is in progress.
func (c *PanZoomController) Active() bool {
	return c.active
}

func (c *PanZoomController) Start(state *core.TrackerState) {
	c.startPosition = state.DevicePos
	c.active = true
}

func (c *PanZoomController) Move(state *core.TrackerState) {
	c.currentPosition = state.DevicePos

	var next candidate
	var ok bool
	if c.zoomer.triggered(state) {
		next, ok = c.zoomer.zoom(c, state)
	} else {
		next, ok = c.pan()
	}
	if ok {
		c.commit(next)
	}

	c.startPosition = c.currentPosition
}

func (c *PanZoomController) Finish(state *core.TrackerState) {
	c.active = false
	core.LogDebug("pan-zoom: gesture finished on entity %d", c.entityID)
}

func (c *PanZoomController) CenterOfRotation(cor []float32) []float32 {
	if len(cor) < 3 {
		cor = make([]float32, 3)
	}
	copy(cor, c.centerOfRotation[:])
	return cor
}

func (c *PanZoomController) SetCenterOfRotation(cor []float32) {
	copy(c.centerOfRotation[:], cor)
}

// pan moves the eye along the up and right axes of the baseline transform.
// Horizontal device motion is inverted so the scene follows the pointer.
func (c *PanZoomController) pan() (candidate, bool) {
	dx := c.startPosition[0] - c.currentPosition[0]
	dy := c.currentPosition[1] - c.startPosition[1]
	if dx == 0 && dy == 0 {
		return candidate{}, false
	}
	sx, sy := c.panScale()
	dx *= sx
	dy *= sy

	start := c.data.ViewTransform()
	eye := start.Translation().
		Add(start.Up().MulScalar(dy)).
		Add(start.Right().MulScalar(dx))
	return candidate{start: start, eye: eye}, true
}

// commit applies the floor guard and the collision veto, then issues the
// view matrix change.
func (c *PanZoomController) commit(next candidate) {
	if c.floorGuard != nil && !c.floorGuard(next.eye) {
		core.LogDebug("pan-zoom: eye %.3f below floor, move dropped", next.eye.Y)
		return
	}

	dest := next.start
	dest.SetTranslation(next.eye)

	if c.collision.CheckCollision(next.start, dest) {
		core.LogDebug("pan-zoom: collision, move dropped")
		return
	}

	c.commands.Execute(NewChangePropertyTransientCommand(
		c.entityID,
		DefaultEntityProperties,
		PropertyViewMatrix,
		dest.Data,
		nil))
	if c.status != nil {
		c.status.FireViewMatrixChanged(dest)
	}
}
