package orient

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorBasics(t *testing.T) {

	a := NewVector3[float64](1, 2, 3)
	b := NewVector3[float64](-4, 5, 0.5)

	assert.Equal(t, NewVector3[float64](-3, 7, 3.5), a.Add(b))
	assert.Equal(t, NewVector3[float64](5, -3, 2.5), a.Sub(b))
	assert.Equal(t, NewVector3[float64](-1, -2, -3), a.Invert())
	assert.Equal(t, NewVector3[float64](2, 4, 6), a.Scale(2))
	assert.Equal(t, NewVector3[float64](0.5, 1, 1.5), a.Divide(2))
	assert.Equal(t, 7.5, a.Dot(b))
	assert.Equal(t, [3]float64{1, 2, 3}, a.Floats())

	assert.Equal(t, 14.0, a.MagnitudeSquared())
	assert.InDelta(t, math.Sqrt(14), a.Magnitude(), 1e-12)

	// Method chaining works off copies; the original is untouched.
	assert.Equal(t, NewVector3[float64](1, 2, 3), a)

}

func TestVectorCross(t *testing.T) {

	assert.Equal(t, UnitZ[float64](), UnitX[float64]().Cross(UnitY[float64]()))
	assert.Equal(t, UnitX[float64](), UnitY[float64]().Cross(UnitZ[float64]()))
	assert.Equal(t, UnitY[float64](), UnitZ[float64]().Cross(UnitX[float64]()))
	assert.Equal(t, UnitZ[float64]().Invert(), UnitY[float64]().Cross(UnitX[float64]()))

	a := NewVector3[float64](1, 2, 3)
	b := NewVector3[float64](-4, 5, 0.5)
	c := a.Cross(b)

	assert.InDelta(t, 0, c.Dot(a), 1e-12)
	assert.InDelta(t, 0, c.Dot(b), 1e-12)
	assert.Equal(t, NewVector3[float64](2*0.5-3*5, 3*-4-1*0.5, 1*5-2*-4), c)

}

func TestVectorUnit(t *testing.T) {

	v := NewVector3[float32](3, 0, 4).Unit()
	assertVector(t, NewVector3[float32](0.6, 0, 0.8), v)
	assert.InDelta(t, 1, v.Magnitude(), 1e-6)

	// Short vectors still have a direction.
	assertVector(t, NewVector3[float32](0.6, 0, 0.8), NewVector3[float32](3e-5, 0, 4e-5).Unit())
	assertVector(t, NewVector3(0.6, 0, -0.8), NewVector3(3e-9, 0, -4e-9).Unit())
	assertVector(t, UnitY[float32](), NewVector3[float32](0, 1e-30, 0).Unit())

	// Zero-length vectors have no direction and are returned as they are.
	assert.Equal(t, Vector3[float32]{}, Vector3[float32]{}.Unit())

	assert.True(t, Vector3[float64]{X: 1e-13}.IsZero())
	assert.False(t, Vector3[float64]{X: 1e-3}.IsZero())

}

func TestVectorAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, UnitX[float64]().Angle(NewVector3[float64](0, 7, 0)), 1e-12)
	assert.InDelta(t, math.Pi, UnitX[float64]().Angle(NewVector3[float64](-2, 0, 0)), 1e-12)
	assert.InDelta(t, 0, UnitX[float64]().Angle(UnitX[float64]()), 1e-6)
}

func TestVectorEquals(t *testing.T) {

	a := NewVector3[float32](1, 2, 3)

	assert.True(t, a.Equals(NewVector3[float32](1, 2, 3.00001)))
	assert.False(t, a.Equals(NewVector3[float32](1, 2, 3.01)))
	assert.True(t, a.EqualsEps(NewVector3[float32](1, 2, 3.01), 0.1))

}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "{1, -2.5, 0.1}", NewVector3[float32](1, -2.5, 0.1).String())
	assert.Equal(t, "{1, -2.5, 0.1}", NewVector3[float64](1, -2.5, 0.1).String())
}

func BenchmarkAllocateArraysF64(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vecs := make([][3]float64, 0, 100)
		vecs = append(vecs, [3]float64{0, 0, 0})
		_ = vecs
	}

}

func BenchmarkAllocateVectorStructs(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vecs := make([]Vector3[float64], 0, 100)
		vecs = append(vecs, Vector3[float64]{0, 0, 0})
		_ = vecs
	}

}

func BenchmarkMathInternalVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector3[float64], 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector3[float64]{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()})
	}

	b.ReportAllocs()
	b.StartTimer()

	// Main point of benchmarking
	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i+1])
		}
	}

}

func BenchmarkMathInternalVectorF32(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector3[float32], 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector3[float32]{X: rand.Float32(), Y: rand.Float32(), Z: rand.Float32()})
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i+1])
		}
	}

}
