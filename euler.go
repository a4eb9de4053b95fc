package orient

import "github.com/solarlune/orient/scalar"

// Euler represents a rotation as three angles in radians around the X, Y, and Z axes.
// The rotations are intrinsic and applied X first, then Y, then Z in the rotated frame; as a matrix that's Rx * Ry * Rz.
// Several Euler triples describe the same rotation once Y reaches ±90 degrees (gimbal lock), so converting to another
// representation and back won't necessarily return the same three angles there.
type Euler[F scalar.Float] struct {
	X F // Rotation around the X axis, in radians
	Y F // Rotation around the Y axis, in radians
	Z F // Rotation around the Z axis, in radians
}

// NewEuler creates a new Euler out of the three angles given in radians.
func NewEuler[F scalar.Float](x, y, z F) Euler[F] {
	return Euler[F]{X: x, Y: y, Z: z}
}

// EulerDegrees creates a new Euler out of the three angles given in degrees.
func EulerDegrees[F scalar.Float](x, y, z F) Euler[F] {
	return Euler[F]{X: scalar.ToRadians(x), Y: scalar.ToRadians(y), Z: scalar.ToRadians(z)}
}

// ToQuaternion returns the Quaternion representing the same rotation as the Euler angles.
func (e Euler[F]) ToQuaternion() Quaternion[F] {
	return QuaternionFromEuler(e)
}

// ToMatrix3 returns the rotation Matrix3 representing the same rotation as the Euler angles.
func (e Euler[F]) ToMatrix3() Matrix3[F] {
	return Matrix3FromEuler(e)
}

// RotateVector rotates the given vector by the Euler angles.
func (e Euler[F]) RotateVector(vec Vector3[F]) Vector3[F] {
	return e.ToQuaternion().RotateVector(vec)
}

// Degrees returns the three angles converted to degrees, as a Vector3.
func (e Euler[F]) Degrees() Vector3[F] {
	return Vector3[F]{X: scalar.ToDegrees(e.X), Y: scalar.ToDegrees(e.Y), Z: scalar.ToDegrees(e.Z)}
}

// Equals returns true if the three angles of both Eulers are within the default tolerance for F.
// Angles are compared as they are; no wrapping around 2*pi happens.
func (e Euler[F]) Equals(other Euler[F]) bool {
	return e.EqualsEps(other, scalar.Tolerance[F]())
}

// EqualsEps returns true if every angle of the two Eulers differs by no more than eps.
func (e Euler[F]) EqualsEps(other Euler[F], eps F) bool {
	return scalar.Abs(e.X-other.X) <= eps &&
		scalar.Abs(e.Y-other.Y) <= eps &&
		scalar.Abs(e.Z-other.Z) <= eps
}

func (e Euler[F]) String() string {
	return "Euler{" + formatFloat(e.X) + ", " + formatFloat(e.Y) + ", " + formatFloat(e.Z) + "}"
}
