package testbed

import (
	"testing"

	"github.com/spaghettifunk/navigator/engine"
	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, cfg *config.Config) *engine.Navigator {
	t.Helper()
	nav, err := engine.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = nav.Shutdown()
		_ = core.EventShutdown()
	})

	s := NewTestSession(nav, 1280, 720)
	require.NoError(t, s.Boot())
	t.Cleanup(s.Shutdown)

	steps := 0
	for s.Update() {
		steps++
	}
	assert.Equal(t, len(defaultScript(1280, 720)), steps)
	assert.True(t, s.Finished())
	assert.False(t, s.Update())
	return nav
}

func TestPerspectiveScript(t *testing.T) {
	nav := runScript(t, nil)

	// pan: up 0.1 * 16, left 0.1 * 16; wheel: (-3 + 1) * 0.1 * 16; ctrl-drag: 0.1 * 16
	want := math.NewVec3(-1.6, 3.2, 10-3.2+1.6)
	assert.True(t, nav.Viewpoint().GetPosition().Compare(want, 1e-3), "eye %v", nav.Viewpoint().GetPosition())
	assert.Len(t, nav.History(), 4)
}

func TestOrthographicScript(t *testing.T) {
	cfg := config.Default()
	cfg.Viewpoint.Projection = config.ProjectionOrthographic
	nav := runScript(t, cfg)

	// the pan is scaled by the 2x2 clip area, the wheel does nothing
	assert.True(t, nav.Viewpoint().GetPosition().Compare(math.NewVec3(-0.2, 1.8, 10), 1e-3), "eye %v", nav.Viewpoint().GetPosition())
	assert.InDelta(t, 1.1, nav.Viewpoint().Frustum.Right, 1e-9)
	assert.Len(t, nav.History(), 2)
}
