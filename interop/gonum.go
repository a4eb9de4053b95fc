package interop

import (
	"github.com/solarlune/orient"
	"github.com/solarlune/orient/numcast"
	"github.com/solarlune/orient/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Number returns the Quaternion as a gonum quat.Number. The scalar part becomes Real, and the vector part becomes Imag, Jmag, and Kmag.
func Number[F scalar.Float](q orient.Quaternion[F]) quat.Number {
	return quat.Number{
		Real: numcast.Cast[float64](q.S),
		Imag: numcast.Cast[float64](q.V.X),
		Jmag: numcast.Cast[float64](q.V.Y),
		Kmag: numcast.Cast[float64](q.V.Z),
	}
}

// QuaternionFromNumber returns the gonum quat.Number as a Quaternion.
func QuaternionFromNumber[F scalar.Float](n quat.Number) orient.Quaternion[F] {
	return orient.NewQuaternion(numcast.Cast[F](n.Real), numcast.Cast[F](n.Imag), numcast.Cast[F](n.Jmag), numcast.Cast[F](n.Kmag))
}

// RotationVector returns the rotation vector of the unit Quaternion: its axis scaled by its angle in radians, or twice the
// vector part of the quaternion logarithm. The identity rotation gives the zero vector.
func RotationVector[F scalar.Float](q orient.Quaternion[F]) orient.Vector3[F] {
	log := quat.Log(Number(q))
	return orient.NewVector3(numcast.Cast[F](2*log.Imag), numcast.Cast[F](2*log.Jmag), numcast.Cast[F](2*log.Kmag))
}

// QuaternionFromRotationVector returns the unit Quaternion rotating around vec's direction by vec's length in radians; the inverse
// of RotationVector.
func QuaternionFromRotationVector[F scalar.Float](vec orient.Vector3[F]) orient.Quaternion[F] {
	half := vec.Scale(0.5)
	return QuaternionFromNumber[F](quat.Exp(Number(orient.QuaternionFromSV(0, half))))
}
