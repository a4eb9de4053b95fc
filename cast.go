package orient

import (
	"github.com/solarlune/orient/numcast"
	"github.com/solarlune/orient/scalar"
)

// CastVector3 converts a Vector3 to another float precision.
func CastVector3[G, F scalar.Float](vec Vector3[F]) Vector3[G] {
	return Vector3[G]{
		X: numcast.Cast[G](vec.X),
		Y: numcast.Cast[G](vec.Y),
		Z: numcast.Cast[G](vec.Z),
	}
}

// CastQuaternion converts a Quaternion to another float precision.
func CastQuaternion[G, F scalar.Float](quat Quaternion[F]) Quaternion[G] {
	return QuaternionFromSV(numcast.Cast[G](quat.S), CastVector3[G](quat.V))
}

// CastEuler converts Euler angles to another float precision.
func CastEuler[G, F scalar.Float](e Euler[F]) Euler[G] {
	return Euler[G]{
		X: numcast.Cast[G](e.X),
		Y: numcast.Cast[G](e.Y),
		Z: numcast.Cast[G](e.Z),
	}
}

// CastAxisAngle converts an AxisAngle to another float precision.
func CastAxisAngle[G, F scalar.Float](aa AxisAngle[F]) AxisAngle[G] {
	return AxisAngle[G]{Axis: CastVector3[G](aa.Axis), Angle: numcast.Cast[G](aa.Angle)}
}

// CastMatrix3 converts a Matrix3 to another float precision.
func CastMatrix3[G, F scalar.Float](matrix Matrix3[F]) Matrix3[G] {
	var out Matrix3[G]
	for c := 0; c < 3; c++ {
		out[c] = [3]G(numcast.CastSlice[G](matrix[c][:]))
	}
	return out
}
