package navigation

import (
	"github.com/spaghettifunk/navigator/engine/math"
)

type fakeViewpoint struct {
	matrix  math.Mat4
	frustum math.Frustum
}

func newFakeViewpoint(eye math.Vec3) *fakeViewpoint {
	return &fakeViewpoint{
		matrix:  math.NewMat4Translation(eye),
		frustum: math.NewFrustum(-1, 1, -1, 1, 0.1, 100),
	}
}

func (f *fakeViewpoint) ViewTransform() math.Mat4 {
	return f.matrix
}

func (f *fakeViewpoint) ViewFrustum() math.Frustum {
	return f.frustum
}

func (f *fakeViewpoint) SetOrthoParams(left, right, bottom, top float64) {
	f.frustum = f.frustum.WithOrthoParams(left, right, bottom, top)
}

type fakeCommands struct {
	executed []*ChangePropertyTransientCommand
}

func (f *fakeCommands) Execute(cmd Command) {
	f.executed = append(f.executed, cmd.(*ChangePropertyTransientCommand))
}

type fakeCollision struct {
	blocked bool
	calls   int
	start   math.Mat4
	dest    math.Mat4
}

func (f *fakeCollision) CheckCollision(start, dest math.Mat4) bool {
	f.calls++
	f.start = start
	f.dest = dest
	return f.blocked
}

type fakeStatus struct {
	matrices []math.Mat4
}

func (f *fakeStatus) FireViewMatrixChanged(m math.Mat4) {
	f.matrices = append(f.matrices, m)
}

type harness struct {
	viewpoint *fakeViewpoint
	commands  *fakeCommands
	collision *fakeCollision
	status    *fakeStatus
}

func newHarness(eye math.Vec3) *harness {
	return &harness{
		viewpoint: newFakeViewpoint(eye),
		commands:  &fakeCommands{},
		collision: &fakeCollision{},
		status:    &fakeStatus{},
	}
}

func (h *harness) perspective(options ...ControllerOption) *PanZoomController {
	options = append([]ControllerOption{WithStatusManager(h.status)}, options...)
	return NewPanZoomController(h.viewpoint, h.commands, 7, h.collision, options...)
}

func (h *harness) ortho(options ...ControllerOption) *PanZoomController {
	options = append([]ControllerOption{WithStatusManager(h.status)}, options...)
	return NewOrthoPanZoomController(h.viewpoint, h.viewpoint, h.commands, 7, h.collision, options...)
}
