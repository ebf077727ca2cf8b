package navigation

import (
	"testing"

	"github.com/spaghettifunk/navigator/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerspectiveWheelZoom(t *testing.T) {
	h := newHarness(math.NewVec3(0, 5, 10))
	c := h.perspective()

	c.Start(wheel(0))
	c.Move(wheel(-3))

	require.Len(t, h.commands.executed, 1)
	got := viewMatrixOf(t, h.commands.executed[0])
	// -3 clicks * 0.1 * 16 = -4.8 along the in axis (+Z)
	assert.True(t, got.Translation().Compare(math.NewVec3(0, 5, 5.2), eps), "eye %v", got.Translation())

	require.Len(t, h.status.matrices, 1)
	assert.Equal(t, got, h.status.matrices[0])
	assert.Equal(t, 1, h.collision.calls)
}

func TestPerspectiveWheelWinsOverCtrl(t *testing.T) {
	h := newHarness(math.NewVec3(0, 5, 10))
	c := h.perspective()

	c.Start(drag(0, 0))
	s := wheel(1)
	s.CtrlModifier = true
	s.DevicePos = [3]float32{0, 0.5, 0}
	c.Move(s)

	require.Len(t, h.commands.executed, 1)
	// clicks, not the vertical drag, decide the distance
	assert.InDelta(t, 11.6, viewMatrixOf(t, h.commands.executed[0]).Translation().Z, eps)
}

func TestPerspectiveCtrlDragZoom(t *testing.T) {
	rotated := math.NewMat4EulerY(math.K_HALF_PI)
	rotated.SetTranslation(math.NewVec3(0, 2, 0))

	h := newHarness(math.NewVec3Zero())
	h.viewpoint.matrix = rotated
	c := h.perspective()

	c.Start(drag(0.3, 0))
	c.Move(ctrlDrag(0.7, 0.25))

	require.Len(t, h.commands.executed, 1)
	// in axis is +X after a quarter turn; 0.25 * 16 = 4
	got := viewMatrixOf(t, h.commands.executed[0]).Translation()
	assert.True(t, got.Compare(math.NewVec3(4, 2, 0), eps), "eye %v", got)
}

func TestPerspectiveFloorGuard(t *testing.T) {
	tilted := math.NewMat4EulerX(0.5) // in axis points down
	tilted.SetTranslation(math.NewVec3(0, 1, 0))

	tests := []struct {
		name   string
		matrix math.Mat4
		state  [2]float32
		ctrl   bool
	}{
		{"pan below floor", math.NewMat4Translation(math.NewVec3(0, 1, 0)), [2]float32{0, -0.5}, false},
		{"pan onto floor", math.NewMat4Translation(math.NewVec3(0, 1, 0)), [2]float32{0, -0.0625}, false},
		{"zoom through floor", tilted, [2]float32{0, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(math.NewVec3Zero())
			h.viewpoint.matrix = tt.matrix
			c := h.perspective()

			c.Start(drag(0, 0))
			s := drag(tt.state[0], tt.state[1])
			s.CtrlModifier = tt.ctrl
			c.Move(s)

			assert.Zero(t, h.collision.calls, "the oracle is never consulted")
			assert.Empty(t, h.commands.executed)
			assert.Empty(t, h.status.matrices)
		})
	}
}

func TestPerspectiveOptions(t *testing.T) {
	h := newHarness(math.NewVec3(0, 5, 0))
	c := h.perspective(WithZoomStep(1), WithWheelStep(1), WithPanStep(4), WithFloorHeight(-10))

	c.Start(drag(0, 0))
	c.Move(wheel(2))
	c.Move(drag(0, -2.5))

	require.Len(t, h.commands.executed, 2)
	assert.InDelta(t, 2, viewMatrixOf(t, h.commands.executed[0]).Translation().Z, eps)
	// below zero but above the configured floor
	assert.InDelta(t, -5, viewMatrixOf(t, h.commands.executed[1]).Translation().Y, eps)
}
