package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-5

// transformPoint applies mt to the homogeneous point (v, 1), dividing by w.
func transformPoint(mt Mat4, v Vec3) Vec3 {
	in := [4]float32{v.X, v.Y, v.Z, 1}
	var out [4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r] += mt.Data[r*4+c] * in[c]
		}
	}
	if out[3] != 0 {
		return NewVec3(out[0]/out[3], out[1]/out[3], out[2]/out[3])
	}
	return NewVec3(out[0], out[1], out[2])
}

func TestBasisVectorsAreColumns(t *testing.T) {
	mt := NewMat4Identity()
	mt.Data[0], mt.Data[4], mt.Data[8] = 2, 0, 0
	mt.Data[1], mt.Data[5], mt.Data[9] = 0, 3, 0
	mt.Data[2], mt.Data[6], mt.Data[10] = 0, 0, 4

	assert.True(t, mt.Right().Compare(NewVec3(1, 0, 0), tolerance))
	assert.True(t, mt.Up().Compare(NewVec3(0, 1, 0), tolerance))
	assert.True(t, mt.In().Compare(NewVec3(0, 0, 1), tolerance))
}

func TestBasisOfRotatedMatrix(t *testing.T) {
	mt := NewMat4EulerY(K_HALF_PI)

	assert.True(t, mt.Right().Compare(NewVec3(0, 0, -1), tolerance), "right %v", mt.Right())
	assert.True(t, mt.Up().Compare(NewVec3(0, 1, 0), tolerance))
	assert.True(t, mt.In().Compare(NewVec3(1, 0, 0), tolerance), "in %v", mt.In())
}

func TestTranslationRoundTrip(t *testing.T) {
	mt := NewMat4EulerX(0.3)
	mt.SetTranslation(NewVec3(1, 2, 3))

	assert.Equal(t, NewVec3(1, 2, 3), mt.Translation())
	assert.True(t, transformPoint(mt, NewVec3Zero()).Compare(NewVec3(1, 2, 3), tolerance))

	// rotation untouched
	rx := NewMat4EulerX(0.3)
	assert.Equal(t, rx.Data[5], mt.Data[5])
	assert.Equal(t, rx.Data[6], mt.Data[6])
}

func TestNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, NewVec3Zero(), NewVec3Zero().Normalize())
	assert.InDelta(t, 1.0, NewVec3(3, 4, 12).Normalize().Length(), tolerance)
}

func TestMulIdentity(t *testing.T) {
	mt := NewMat4EulerY(0.7)
	mt.SetTranslation(NewVec3(4, 5, 6))

	assert.True(t, mt.Mul(NewMat4Identity()).Compare(mt, tolerance))
	assert.True(t, NewMat4Identity().Mul(mt).Compare(mt, tolerance))
}

func TestDotOfBasis(t *testing.T) {
	mt := NewMat4EulerY(0.4)

	assert.InDelta(t, 0, mt.Right().Dot(mt.In()), tolerance)
	assert.InDelta(t, 1, mt.Up().Dot(NewVec3Up()), tolerance)
	assert.InDelta(t, 32, NewVec3(1, 2, 3).Dot(NewVec3(4, 5, 6)), tolerance)
}

func TestVec3FromSlice(t *testing.T) {
	assert.Equal(t, NewVec3(1, 2, 3), NewVec3FromSlice([]float32{1, 2, 3, 4}))
	assert.Equal(t, NewVec3(1, 0, 0), NewVec3FromSlice([]float32{1}))
	assert.Equal(t, NewVec3Zero(), NewVec3FromSlice(nil))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(3), -1, 1))
	assert.Equal(t, -1, Clamp(-5, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
}
