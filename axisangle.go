package orient

import "github.com/solarlune/orient/scalar"

// AxisAngle represents a rotation in radians around a given 3D axis. This being the case, an AxisAngle can easily also be stored
// in a 4-dimensional vector; it's separated here into a Vector3 and angle for simplicity and readability.
// The Axis should be of unit length; an AxisAngle built as a struct literal with a longer or shorter axis is converted as-is.
type AxisAngle[F scalar.Float] struct {
	Axis  Vector3[F] // 3 dimensional axis for rotating
	Angle F          // Rotation in radians
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation. The axis is normalized.
func NewAxisAngle[F scalar.Float](axis Vector3[F], angle F) AxisAngle[F] {
	return AxisAngle[F]{
		Axis:  axis.Unit(),
		Angle: angle,
	}
}

// ToQuaternion returns the Quaternion representing the AxisAngle's rotation. The Axis is not normalized first.
func (aa AxisAngle[F]) ToQuaternion() Quaternion[F] {
	s, c := scalar.Sincos(aa.Angle / 2)
	return QuaternionFromSV(c, aa.Axis.Scale(s))
}

// ToMatrix3 returns the rotation Matrix3 for the AxisAngle.
func (aa AxisAngle[F]) ToMatrix3() Matrix3[F] {
	return Matrix3FromAxisAngle(aa.Axis, aa.Angle)
}

// RotateVector rotates the given Vector3 by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of [0, 1, 0] (+Y, or "Up") and an Angle of pi / 2, axisAngle.RotateVector(Vector3{1, 0, 0}) would return Vector3{0, 0, -1}.
func (aa AxisAngle[F]) RotateVector(vec Vector3[F]) Vector3[F] {
	return aa.ToQuaternion().RotateVector(vec)
}

// Add returns the AxisAngle for applying the other AxisAngle after this one.
func (aa AxisAngle[F]) Add(otherAngle AxisAngle[F]) AxisAngle[F] {
	return otherAngle.ToQuaternion().Mul(aa.ToQuaternion()).ToAxisAngle()
}

// Sub returns the AxisAngle for applying this one and then undoing the other.
func (aa AxisAngle[F]) Sub(otherAngle AxisAngle[F]) AxisAngle[F] {
	oa := otherAngle
	oa.Angle *= -1
	return aa.Add(oa)
}

// Equals returns true if both AxisAngles have the same axis and angle within the default tolerance for F.
func (aa AxisAngle[F]) Equals(other AxisAngle[F]) bool {
	eps := scalar.Tolerance[F]()
	return aa.Axis.EqualsEps(other.Axis, eps) && scalar.Abs(aa.Angle-other.Angle) <= eps
}
