package orient

import (
	"strconv"

	"github.com/solarlune/orient/scalar"
)

// UnitX returns a unit vector in the global direction of +X (right).
func UnitX[F scalar.Float]() Vector3[F] { return Vector3[F]{X: 1} }

// UnitY returns a unit vector in the global direction of +Y (up).
func UnitY[F scalar.Float]() Vector3[F] { return Vector3[F]{Y: 1} }

// UnitZ returns a unit vector in the global direction of +Z (backwards, towards you).
func UnitZ[F scalar.Float]() Vector3[F] { return Vector3[F]{Z: 1} }

// Vector3 represents a 3D Vector, used here as the axis of rotations and as the vector part of a Quaternion.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
type Vector3[F scalar.Float] struct {
	X F // The X (1st) component of the Vector3
	Y F // The Y (2nd) component of the Vector3
	Z F // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3[F scalar.Float](x, y, z F) Vector3[F] {
	return Vector3[F]{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3[F]) Add(other Vector3[F]) Vector3[F] {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3[F]) Sub(other Vector3[F]) Vector3[F] {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3[F]) Cross(other Vector3[F]) Vector3[F] {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector3 pointing the opposite way.
func (vec Vector3[F]) Invert() Vector3[F] {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3[F]) Magnitude() F {
	return scalar.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids the square root.
func (vec Vector3[F]) MagnitudeSquared() F {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A zero-length Vector3 is returned unchanged.
func (vec Vector3[F]) Unit() Vector3[F] {
	l := vec.Magnitude()
	if l < scalar.Epsilon[F]() {
		// Squaring tiny components loses precision (or underflows), so bring them up to around 1 first.
		m := scalar.Max(scalar.Abs(vec.X), scalar.Max(scalar.Abs(vec.Y), scalar.Abs(vec.Z)))
		if m == 0 {
			return vec
		}
		vec.X, vec.Y, vec.Z = vec.X/m, vec.Y/m, vec.Z/m
		l = vec.Magnitude()
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales a Vector3 by the given scalar.
func (vec Vector3[F]) Scale(scalar F) Vector3[F] {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector3 by the given scalar.
func (vec Vector3[F]) Divide(scalar F) Vector3[F] {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3[F]) Dot(other Vector3[F]) F {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Angle returns the angle between the calling Vector3 and the provided other Vector3.
func (vec Vector3[F]) Angle(other Vector3[F]) F {
	return scalar.Acos(vec.Unit().Dot(other.Unit()))
}

// Floats returns a [3]F array consisting of the Vector3's contents.
func (vec Vector3[F]) Floats() [3]F {
	return [3]F{vec.X, vec.Y, vec.Z}
}

// Equals returns true if the two Vectors are close enough in all values, using the default tolerance for F.
func (vec Vector3[F]) Equals(other Vector3[F]) bool {
	return vec.EqualsEps(other, scalar.Tolerance[F]())
}

// EqualsEps returns true if every component of the two Vectors differs by no more than eps.
func (vec Vector3[F]) EqualsEps(other Vector3[F], eps F) bool {
	return scalar.Abs(vec.X-other.X) <= eps &&
		scalar.Abs(vec.Y-other.Y) <= eps &&
		scalar.Abs(vec.Z-other.Z) <= eps
}

// IsZero returns true if the values in the Vector3 are extremely close to 0.
func (vec Vector3[F]) IsZero() bool {
	eps := scalar.Epsilon[F]()
	return scalar.Abs(vec.X) <= eps && scalar.Abs(vec.Y) <= eps && scalar.Abs(vec.Z) <= eps
}

// isNull returns true only if every component is exactly zero; unlike IsZero, a very short Vector3 still has a direction.
func (vec Vector3[F]) isNull() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

func (vec Vector3[F]) String() string {
	return "{" + formatFloat(vec.X) + ", " + formatFloat(vec.Y) + ", " + formatFloat(vec.Z) + "}"
}

func formatFloat[F scalar.Float](f F) string {
	bits := 64
	if _, ok := any(f).(float32); ok {
		bits = 32
	}
	return strconv.FormatFloat(float64(f), 'f', -1, bits)
}
