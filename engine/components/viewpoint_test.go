package components

import (
	"testing"

	"github.com/spaghettifunk/navigator/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjection(t *testing.T) {
	p, err := ParseProjection("orthographic")
	require.NoError(t, err)
	assert.Equal(t, PROJECTION_ORTHOGRAPHIC, p)
	assert.Equal(t, "orthographic", p.String())

	p, err = ParseProjection("perspective")
	require.NoError(t, err)
	assert.Equal(t, PROJECTION_PERSPECTIVE, p)

	_, err = ParseProjection("fisheye")
	assert.Error(t, err)
}

func TestViewpointSetters(t *testing.T) {
	vp := NewViewpoint(3, "top", PROJECTION_ORTHOGRAPHIC)
	assert.Equal(t, math.NewMat4Identity(), vp.ViewTransform())
	assert.Zero(t, vp.Version)

	vp.SetPosition(math.NewVec3(1, 2, 3))
	assert.Equal(t, math.NewVec3(1, 2, 3), vp.GetPosition())

	vp.SetOrthoParams(-4, 4, -3, 3)
	f := vp.ViewFrustum()
	assert.Equal(t, [4]float64{-4, 4, -3, 3}, f.OrthoParams())
	assert.Equal(t, 0.1, f.Near)
	assert.Equal(t, uint64(2), vp.Version)

	m := math.NewMat4EulerY(0.2)
	vp.SetViewTransform(m)
	assert.Equal(t, m, vp.ViewTransform())
	assert.Equal(t, uint64(3), vp.Version)

	vp.Reset()
	assert.Zero(t, vp.Version)
	assert.Equal(t, math.NewVec3Zero(), vp.GetPosition())
}

func TestViewpointViewAndAxes(t *testing.T) {
	vp := NewViewpoint(1, DEFAULT_VIEWPOINT_NAME, PROJECTION_PERSPECTIVE)
	vp.SetPosition(math.NewVec3(0, 0, 5))

	assert.True(t, vp.Forward().Compare(math.NewVec3(0, 0, -1), 1e-6))
	assert.True(t, vp.Right().Compare(math.NewVec3(1, 0, 0), 1e-6))
	assert.True(t, vp.Up().Compare(math.NewVec3(0, 1, 0), 1e-6))

	// the view moves the eye to the camera origin
	assert.True(t, vp.GetView().Translation().Compare(math.NewVec3(0, 0, -5), 1e-5))
}

func TestViewpointProjection(t *testing.T) {
	vp := NewViewpoint(1, "p", PROJECTION_PERSPECTIVE)
	assert.Equal(t, vp.Frustum.PerspectiveMatrix(), vp.GetProjection())

	vp.Projection = PROJECTION_ORTHOGRAPHIC
	assert.Equal(t, vp.Frustum.ProjectionMatrix(), vp.GetProjection())
}
