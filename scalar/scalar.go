// scalar is a stand-in for the built-in math package, but the functions are generic over the two floating-point widths that orient's
// rotation types can be built on. float32 values go through github.com/chewxy/math32 so they stay in single precision;
// float64 values go through the standard math package.
package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the element type of every rotation representation in orient.
type Float interface {
	float32 | float64
}

// Pi returns pi at the precision of F.
func Pi[F Float]() F {
	return F(math.Pi)
}

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in orient use).
func ToRadians[F Float](degrees F) F {
	return Pi[F]() * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees[F Float](radians F) F {
	return radians / Pi[F]() * 180
}

// Epsilon returns the threshold below which a value of type F is treated as zero when branching on degenerate input
// (parallel vectors, zero-length axes, identity rotations).
func Epsilon[F Float]() F {
	var f F
	if _, ok := any(f).(float32); ok {
		return F(1e-6)
	}
	return F(1e-12)
}

// Tolerance returns the default tolerance used by the Equals functions for values of type F.
func Tolerance[F Float]() F {
	var f F
	if _, ok := any(f).(float32); ok {
		return F(1e-4)
	}
	return F(1e-8)
}

// Min returns the minimum value out of two provided values.
func Min[F Float](x, y F) F {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[F Float](x, y F) F {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[F Float](value, min, max F) F {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Abs(v))
	}
	return F(math.Abs(float64(x)))
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Sqrt(v))
	}
	return F(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Sin(v))
	}
	return F(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Cos(v))
	}
	return F(math.Cos(float64(x)))
}

// Sincos returns Sin(x), Cos(x).
func Sincos[F Float](x F) (F, F) {
	if v, ok := any(x).(float32); ok {
		s, c := math32.Sincos(v)
		return F(s), F(c)
	}
	s, c := math.Sincos(float64(x))
	return F(s), F(c)
}

// Acos returns the arccosine, in radians, of x. Unlike math.Acos, x is clamped to [-1, 1] first,
// so round-off just outside the domain never produces NaN.
func Acos[F Float](x F) F {
	x = Clamp(x, -1, 1)
	if v, ok := any(x).(float32); ok {
		return F(math32.Acos(v))
	}
	return F(math.Acos(float64(x)))
}

// Asin returns the arcsine, in radians, of x. x is clamped to [-1, 1] first.
func Asin[F Float](x F) F {
	x = Clamp(x, -1, 1)
	if v, ok := any(x).(float32); ok {
		return F(math32.Asin(v))
	}
	return F(math.Asin(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using
// the signs of the two to determine the quadrant
// of the return value.
//
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +Pi
//	Atan2(-0, x<=-0) = -Pi
//	Atan2(y>0, 0) = +Pi/2
//	Atan2(y<0, 0) = -Pi/2
func Atan2[F Float](y, x F) F {
	if v, ok := any(y).(float32); ok {
		return F(math32.Atan2(v, float32(x)))
	}
	return F(math.Atan2(float64(y), float64(x)))
}

// IsFinite returns true if x is neither NaN nor an infinity.
func IsFinite[F Float](x F) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
