package orient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastPrecision(t *testing.T) {

	e := NewEuler(0.3, -1.1, 2.4)

	q64 := e.ToQuaternion()
	q32 := CastQuaternion[float32](q64)

	assert.IsType(t, Quaternion[float32]{}, q32)
	assert.InDelta(t, q64.S, float64(q32.S), 1e-7)
	assertQuaternion(t, QuaternionFromEuler(CastEuler[float32](e)), q32)

	m32 := CastMatrix3[float32](e.ToMatrix3())
	assert.True(t, m32.Equals(q32.ToMatrix3()))
	assert.Equal(t, float32(e.ToMatrix3()[2][1]), m32[2][1])

	aa := CastAxisAngle[float32](q64.ToAxisAngle())
	assert.True(t, aa.ToQuaternion().Equals(q32))

	// Widening is exact.
	v := NewVector3[float32](0.1, -2, 3.5)
	assert.Equal(t, NewVector3(float64(float32(0.1)), -2, 3.5), CastVector3[float64](v))
	assert.Equal(t, v, CastVector3[float32](CastVector3[float64](v)))

}
