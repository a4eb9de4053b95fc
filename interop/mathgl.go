package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/orient"
	"github.com/solarlune/orient/numcast"
	"github.com/solarlune/orient/scalar"
)

// mathgl quaternions keep the scalar part in W and the vector part in V, the same split orient uses.
// mathgl matrices are column-major like orient's, but flattened: m[3*c + r].

// Mgl32Quat returns the Quaternion as an mgl32.Quat.
func Mgl32Quat[F scalar.Float](quat orient.Quaternion[F]) mgl32.Quat {
	return mgl32.Quat{W: numcast.Cast[float32](quat.S), V: Mgl32Vec3(quat.V)}
}

// Mgl64Quat returns the Quaternion as an mgl64.Quat.
func Mgl64Quat[F scalar.Float](quat orient.Quaternion[F]) mgl64.Quat {
	return mgl64.Quat{W: numcast.Cast[float64](quat.S), V: Mgl64Vec3(quat.V)}
}

// QuaternionFromMgl32 returns the mgl32.Quat as a Quaternion.
func QuaternionFromMgl32[F scalar.Float](quat mgl32.Quat) orient.Quaternion[F] {
	return orient.QuaternionFromSV(numcast.Cast[F](quat.W), Vector3FromMgl32[F](quat.V))
}

// QuaternionFromMgl64 returns the mgl64.Quat as a Quaternion.
func QuaternionFromMgl64[F scalar.Float](quat mgl64.Quat) orient.Quaternion[F] {
	return orient.QuaternionFromSV(numcast.Cast[F](quat.W), Vector3FromMgl64[F](quat.V))
}

// Mgl32Vec3 returns the Vector3 as an mgl32.Vec3.
func Mgl32Vec3[F scalar.Float](vec orient.Vector3[F]) mgl32.Vec3 {
	return mgl32.Vec3(Vec3F32(vec))
}

// Mgl64Vec3 returns the Vector3 as an mgl64.Vec3.
func Mgl64Vec3[F scalar.Float](vec orient.Vector3[F]) mgl64.Vec3 {
	return mgl64.Vec3(Vec3F64(vec))
}

// Vector3FromMgl32 returns the mgl32.Vec3 as a Vector3.
func Vector3FromMgl32[F scalar.Float](vec mgl32.Vec3) orient.Vector3[F] {
	return orient.NewVector3(numcast.Cast[F](vec.X()), numcast.Cast[F](vec.Y()), numcast.Cast[F](vec.Z()))
}

// Vector3FromMgl64 returns the mgl64.Vec3 as a Vector3.
func Vector3FromMgl64[F scalar.Float](vec mgl64.Vec3) orient.Vector3[F] {
	return orient.NewVector3(numcast.Cast[F](vec.X()), numcast.Cast[F](vec.Y()), numcast.Cast[F](vec.Z()))
}

// Mgl32Mat3 returns the Matrix3 as an mgl32.Mat3.
func Mgl32Mat3[F scalar.Float](matrix orient.Matrix3[F]) mgl32.Mat3 {
	return mgl32.Mat3FromCols(Mgl32Vec3(matrix.Col(0)), Mgl32Vec3(matrix.Col(1)), Mgl32Vec3(matrix.Col(2)))
}

// Mgl64Mat3 returns the Matrix3 as an mgl64.Mat3.
func Mgl64Mat3[F scalar.Float](matrix orient.Matrix3[F]) mgl64.Mat3 {
	return mgl64.Mat3FromCols(Mgl64Vec3(matrix.Col(0)), Mgl64Vec3(matrix.Col(1)), Mgl64Vec3(matrix.Col(2)))
}

// Matrix3FromMgl32 returns the mgl32.Mat3 as a Matrix3.
func Matrix3FromMgl32[F scalar.Float](matrix mgl32.Mat3) orient.Matrix3[F] {
	return orient.Matrix3FromColumns(
		Vector3FromMgl32[F](matrix.Col(0)),
		Vector3FromMgl32[F](matrix.Col(1)),
		Vector3FromMgl32[F](matrix.Col(2)),
	)
}

// Matrix3FromMgl64 returns the mgl64.Mat3 as a Matrix3.
func Matrix3FromMgl64[F scalar.Float](matrix mgl64.Mat3) orient.Matrix3[F] {
	return orient.Matrix3FromColumns(
		Vector3FromMgl64[F](matrix.Col(0)),
		Vector3FromMgl64[F](matrix.Col(1)),
		Vector3FromMgl64[F](matrix.Col(2)),
	)
}
