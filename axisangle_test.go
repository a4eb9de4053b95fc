package orient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisAngleRotateVector(t *testing.T) {

	// The example given in RotateVector's documentation
	aa := NewAxisAngle(UnitY[float64](), math.Pi/2)
	assertVector(t, NewVector3[float64](0, 0, -1), aa.RotateVector(UnitX[float64]()))
	assertVector(t, NewVector3[float64](0, 0, -1), aa.ToMatrix3().MultVec(UnitX[float64]()))

}

func TestAxisAngleNormalizes(t *testing.T) {

	aa := NewAxisAngle(NewVector3[float64](0, 0, 4), 1)
	assert.Equal(t, UnitZ[float64](), aa.Axis)

	// A struct literal is used as-is.
	raw := AxisAngle[float64]{Axis: NewVector3[float64](0, 0, 4), Angle: 1}
	assert.InDelta(t, 4*math.Sin(0.5), raw.ToQuaternion().V.Z, 1e-12)
	assert.InDelta(t, 1, aa.ToQuaternion().Magnitude(), 1e-12)

	// Short axes are normalized too.
	short := NewAxisAngle(NewVector3[float32](0, 0, 1e-5), 1)
	assertVector(t, UnitZ[float32](), short.Axis)
	assertQuaternion(t, QuaternionFromAngleZ[float32](1), QuaternionFromAxisAngle(NewVector3[float32](0, 0, 1e-5), 1))

}

func TestAxisAngleAddSub(t *testing.T) {

	a := NewAxisAngle(UnitZ[float64](), 0.5)
	b := NewAxisAngle(UnitZ[float64](), 0.25)

	sum := a.Add(b)
	assert.True(t, NewAxisAngle(UnitZ[float64](), 0.75).Equals(sum), "got %v", sum)

	diff := a.Sub(b)
	assert.True(t, NewAxisAngle(UnitZ[float64](), 0.25).Equals(diff), "got %v", diff)

	// Different axes: b is applied after a.
	x := NewAxisAngle(UnitX[float64](), math.Pi/2)
	y := NewAxisAngle(UnitY[float64](), math.Pi/2)
	v := NewVector3[float64](0, 1, 0)
	assertVector(t, y.RotateVector(x.RotateVector(v)), x.Add(y).RotateVector(v))

}

func TestAxisAngleThroughQuaternion(t *testing.T) {

	aa := NewAxisAngle(NewVector3(1, 1, 1.0), 2*math.Pi/3)
	q := aa.ToQuaternion()

	// A third of a turn around the diagonal cycles the basis axes.
	assertVector(t, UnitY[float64](), q.RotateVector(UnitX[float64]()))
	assertVector(t, UnitZ[float64](), q.RotateVector(UnitY[float64]()))
	assertVector(t, UnitX[float64](), q.RotateVector(UnitZ[float64]()))

	back := q.ToAxisAngle()
	assert.True(t, aa.Equals(back), "expected %v, got %v", aa, back)
	assert.True(t, aa.ToMatrix3().Equals(q.ToMatrix3()))

}
