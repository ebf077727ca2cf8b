package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrustumScale(t *testing.T) {
	f := NewFrustum(-1, 1, -2, 2, 0.1, 100)

	scaled := f.Scale(1.1)
	assert.InDelta(t, -1.1, scaled.Left, 1e-12)
	assert.InDelta(t, 1.1, scaled.Right, 1e-12)
	assert.InDelta(t, -2.2, scaled.Bottom, 1e-12)
	assert.InDelta(t, 2.2, scaled.Top, 1e-12)
	assert.Equal(t, 0.1, scaled.Near)
	assert.Equal(t, 100.0, scaled.Far)

	back := scaled.Scale(1 / 1.1)
	for i, v := range f.Array() {
		assert.InDelta(t, v, back.Array()[i], 1e-12)
	}
}

func TestFrustumExtent(t *testing.T) {
	f := NewFrustumFromSlice([]float64{-3, 1, -1, 4})
	assert.Equal(t, 4.0, f.Width())
	assert.Equal(t, 5.0, f.Height())
	assert.Equal(t, [4]float64{-3, 1, -1, 4}, f.OrthoParams())
	assert.Equal(t, 0.0, f.Far)

	g := f.WithOrthoParams(-1, 1, -1, 1)
	assert.Equal(t, 2.0, g.Width())
}

func TestFrustumProjectionMatrix(t *testing.T) {
	p := NewFrustum(-2, 2, -1, 1, 1, 11).ProjectionMatrix()

	// the right/top corner of the near plane maps to (1, 1)
	ndc := transformPoint(p, NewVec3(2, 1, -1))
	assert.InDelta(t, 1, ndc.X, 1e-5)
	assert.InDelta(t, 1, ndc.Y, 1e-5)
}
