// Package interop converts orient's rotation types to and from the vector, matrix, and quaternion types of other Go math libraries:
// golang.org/x/image/math/f32 and f64, github.com/go-gl/mathgl's mgl32 and mgl64, and gonum's num/quat.
//
// Every function is generic over the precision of the orient side, so a Quaternion[float64] can be handed to mgl32 (or the other
// way around) without an intermediate cast.
package interop

import (
	"github.com/solarlune/orient"
	"github.com/solarlune/orient/numcast"
	"github.com/solarlune/orient/scalar"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Vec3F32 returns the Vector3 as an f32.Vec3.
func Vec3F32[F scalar.Float](vec orient.Vector3[F]) f32.Vec3 {
	floats := vec.Floats()
	return f32.Vec3(numcast.CastSlice[float32](floats[:]))
}

// Vec3F64 returns the Vector3 as an f64.Vec3.
func Vec3F64[F scalar.Float](vec orient.Vector3[F]) f64.Vec3 {
	floats := vec.Floats()
	return f64.Vec3(numcast.CastSlice[float64](floats[:]))
}

// Vector3FromF32 returns the f32.Vec3 as a Vector3.
func Vector3FromF32[F scalar.Float](vec f32.Vec3) orient.Vector3[F] {
	return orient.NewVector3(numcast.Cast[F](vec[0]), numcast.Cast[F](vec[1]), numcast.Cast[F](vec[2]))
}

// Vector3FromF64 returns the f64.Vec3 as a Vector3.
func Vector3FromF64[F scalar.Float](vec f64.Vec3) orient.Vector3[F] {
	return orient.NewVector3(numcast.Cast[F](vec[0]), numcast.Cast[F](vec[1]), numcast.Cast[F](vec[2]))
}

// Mat3F32 returns the Matrix3 as an f32.Mat3. f32.Mat3 is row-major (m[3*r + c]), so the elements are transposed on the way over;
// the matrix itself is the same.
func Mat3F32[F scalar.Float](matrix orient.Matrix3[F]) f32.Mat3 {
	var out f32.Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[3*r+c] = numcast.Cast[float32](matrix[c][r])
		}
	}
	return out
}

// Mat3F64 returns the Matrix3 as a row-major f64.Mat3.
func Mat3F64[F scalar.Float](matrix orient.Matrix3[F]) f64.Mat3 {
	var out f64.Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[3*r+c] = numcast.Cast[float64](matrix[c][r])
		}
	}
	return out
}

// Matrix3FromF32 returns the row-major f32.Mat3 as a Matrix3.
func Matrix3FromF32[F scalar.Float](matrix f32.Mat3) orient.Matrix3[F] {
	var out orient.Matrix3[F]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c][r] = numcast.Cast[F](matrix[3*r+c])
		}
	}
	return out
}

// Matrix3FromF64 returns the row-major f64.Mat3 as a Matrix3.
func Matrix3FromF64[F scalar.Float](matrix f64.Mat3) orient.Matrix3[F] {
	var out orient.Matrix3[F]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c][r] = numcast.Cast[F](matrix[3*r+c])
		}
	}
	return out
}
