package orient

import (
	"github.com/solarlune/orient/scalar"
)

// Quaternion represents a rotation as a scalar part S and a vector part V. Unit quaternions (S² + |V|² = 1) represent
// rotations; any other Quaternion is still a valid value for the algebra below (sums, scaled values, and so on).
// Both q and -q represent the same rotation.
type Quaternion[F scalar.Float] struct {
	S F          // The scalar (real) part
	V Vector3[F] // The vector (imaginary) part
}

// NewQuaternion creates a new Quaternion out of the scalar part s and the vector part x, y, z.
func NewQuaternion[F scalar.Float](s, x, y, z F) Quaternion[F] {
	return Quaternion[F]{S: s, V: Vector3[F]{X: x, Y: y, Z: z}}
}

// QuaternionFromSV creates a new Quaternion out of a scalar part and a vector part.
func QuaternionFromSV[F scalar.Float](s F, v Vector3[F]) Quaternion[F] {
	return Quaternion[F]{S: s, V: v}
}

// IdentityQuaternion returns the Quaternion representing no rotation, (1, 0, 0, 0).
func IdentityQuaternion[F scalar.Float]() Quaternion[F] {
	return Quaternion[F]{S: 1}
}

// QuaternionFromAxisAngle returns a Quaternion rotating by angle radians (counter-clockwise) around the axis given.
// The axis is normalized first.
func QuaternionFromAxisAngle[F scalar.Float](axis Vector3[F], angle F) Quaternion[F] {
	s, c := scalar.Sincos(angle / 2)
	return QuaternionFromSV(c, axis.Unit().Scale(s))
}

// QuaternionFromAngleX returns a Quaternion rotating by angle radians around the X axis.
func QuaternionFromAngleX[F scalar.Float](angle F) Quaternion[F] {
	s, c := scalar.Sincos(angle / 2)
	return NewQuaternion(c, s, 0, 0)
}

// QuaternionFromAngleY returns a Quaternion rotating by angle radians around the Y axis.
func QuaternionFromAngleY[F scalar.Float](angle F) Quaternion[F] {
	s, c := scalar.Sincos(angle / 2)
	return NewQuaternion(c, 0, s, 0)
}

// QuaternionFromAngleZ returns a Quaternion rotating by angle radians around the Z axis.
func QuaternionFromAngleZ[F scalar.Float](angle F) Quaternion[F] {
	s, c := scalar.Sincos(angle / 2)
	return NewQuaternion(c, 0, 0, s)
}

// QuaternionFromEuler returns the Quaternion for the Euler angles given. This is the product X * Y * Z of the three single-axis
// rotations, expanded, so that rotating a vector by the result rotates it around X first, then Y, then Z in the rotated frame.
func QuaternionFromEuler[F scalar.Float](euler Euler[F]) Quaternion[F] {

	sx, cx := scalar.Sincos(euler.X / 2)
	sy, cy := scalar.Sincos(euler.Y / 2)
	sz, cz := scalar.Sincos(euler.Z / 2)

	return NewQuaternion(
		cx*cy*cz-sx*sy*sz,
		sx*cy*cz+cx*sy*sz,
		cx*sy*cz-sx*cy*sz,
		cx*cy*sz+sx*sy*cz,
	)

}

// QuaternionFromMatrix3 returns the Quaternion for the rotation Matrix3 given.
//
// The conversion picks one of four formulas by looking at the diagonal of the matrix: when the trace is non-negative the scalar
// part is large enough to divide by; otherwise the formula is pivoted around whichever of the X, Y, or Z diagonal elements is the largest,
// which keeps the divisor away from zero. All four give the same rotation where their domains overlap.
func QuaternionFromMatrix3[F scalar.Float](mat Matrix3[F]) Quaternion[F] {

	const half = 0.5

	switch mat.quaternionBranch() {

	case branchTrace:
		s := scalar.Sqrt(1 + mat.Trace())
		w := half * s
		s = half / s
		return NewQuaternion(
			w,
			(mat[1][2]-mat[2][1])*s,
			(mat[2][0]-mat[0][2])*s,
			(mat[0][1]-mat[1][0])*s,
		)

	case branchXX:
		s := scalar.Sqrt((mat[0][0] - mat[1][1] - mat[2][2]) + 1)
		x := half * s
		s = half / s
		return NewQuaternion(
			(mat[1][2]-mat[2][1])*s,
			x,
			(mat[1][0]+mat[0][1])*s,
			(mat[0][2]+mat[2][0])*s,
		)

	case branchYY:
		s := scalar.Sqrt((mat[1][1] - mat[0][0] - mat[2][2]) + 1)
		y := half * s
		s = half / s
		return NewQuaternion(
			(mat[2][0]-mat[0][2])*s,
			(mat[1][0]+mat[0][1])*s,
			y,
			(mat[2][1]+mat[1][2])*s,
		)

	default: // branchZZ
		s := scalar.Sqrt((mat[2][2] - mat[0][0] - mat[1][1]) + 1)
		z := half * s
		s = half / s
		return NewQuaternion(
			(mat[0][1]-mat[1][0])*s,
			(mat[0][2]+mat[2][0])*s,
			(mat[2][1]+mat[1][2])*s,
			z,
		)

	}

}

type matrixBranch int

const (
	branchTrace matrixBranch = iota // trace >= 0
	branchXX                        // [0][0] is the largest diagonal element
	branchYY                        // [1][1] is the largest diagonal element
	branchZZ                        // [2][2] is the largest diagonal element
)

func (matrix Matrix3[F]) quaternionBranch() matrixBranch {
	if matrix.Trace() >= 0 {
		return branchTrace
	} else if matrix[0][0] > matrix[1][1] && matrix[0][0] > matrix[2][2] {
		return branchXX
	} else if matrix[1][1] > matrix[2][2] {
		return branchYY
	}
	return branchZZ
}

// QuaternionFromArc returns the shortest-arc unit Quaternion rotating the direction of src onto the direction of dst. Neither vector
// needs to be of unit length.
//
// If src and dst point in opposite directions, any axis perpendicular to them works; fallback is used as that axis if it isn't nil,
// and otherwise one perpendicular to src is picked. If src and dst already point the same way (or either is exactly zero), the identity
// Quaternion is returned. Short vectors are fine; only their direction is used.
func QuaternionFromArc[F scalar.Float](src, dst Vector3[F], fallback *Vector3[F]) Quaternion[F] {

	eps := scalar.Epsilon[F]()

	if src.isNull() || dst.isNull() {
		return IdentityQuaternion[F]()
	}

	src = src.Unit()
	dst = dst.Unit()

	dot := scalar.Clamp(src.Dot(dst), -1, 1)

	if dot >= 1-eps {
		return IdentityQuaternion[F]()
	}

	if dot <= -1+eps {
		var axis Vector3[F]
		if fallback != nil && !fallback.isNull() {
			axis = fallback.Unit()
		} else {
			axis = perpendicular(src)
		}
		return QuaternionFromAxisAngle(axis, scalar.Pi[F]())
	}

	return QuaternionFromAxisAngle(src.Cross(dst), scalar.Acos(dot))

}

// perpendicular returns a unit vector perpendicular to the unit vector given, built off the basis axis least aligned with it.
func perpendicular[F scalar.Float](vec Vector3[F]) Vector3[F] {

	x, y, z := scalar.Abs(vec.X), scalar.Abs(vec.Y), scalar.Abs(vec.Z)

	basis := UnitZ[F]()
	if x <= y && x <= z {
		basis = UnitX[F]()
	} else if y <= z {
		basis = UnitY[F]()
	}

	return vec.Cross(basis).Unit()

}

// Add returns the component-wise sum of the two Quaternions.
func (quat Quaternion[F]) Add(other Quaternion[F]) Quaternion[F] {
	return QuaternionFromSV(quat.S+other.S, quat.V.Add(other.V))
}

// Sub returns the component-wise difference of the two Quaternions.
func (quat Quaternion[F]) Sub(other Quaternion[F]) Quaternion[F] {
	return QuaternionFromSV(quat.S-other.S, quat.V.Sub(other.V))
}

// Neg returns the Quaternion with every component negated. It represents the same rotation.
func (quat Quaternion[F]) Neg() Quaternion[F] {
	return QuaternionFromSV(-quat.S, quat.V.Invert())
}

// Scale returns the Quaternion multiplied by the scalar given (quat * k).
func (quat Quaternion[F]) Scale(k F) Quaternion[F] {
	return QuaternionFromSV(quat.S*k, quat.V.Scale(k))
}

// ScalarMul returns the scalar given multiplied by the Quaternion (k * quat). Scalar multiplication commutes,
// so this always equals quat.Scale(k).
func ScalarMul[F scalar.Float](k F, quat Quaternion[F]) Quaternion[F] {
	return QuaternionFromSV(k*quat.S, Vector3[F]{X: k * quat.V.X, Y: k * quat.V.Y, Z: k * quat.V.Z})
}

// DivScalar returns the Quaternion with every component divided by the scalar given (quat / k).
func (quat Quaternion[F]) DivScalar(k F) Quaternion[F] {
	return QuaternionFromSV(quat.S/k, quat.V.Divide(k))
}

// ScalarDiv returns the scalar given divided by every component of the Quaternion (k / quat), component-wise.
// This is not the inverse of DivScalar and is not k times the Quaternion's inverse.
func ScalarDiv[F scalar.Float](k F, quat Quaternion[F]) Quaternion[F] {
	return QuaternionFromSV(k/quat.S, Vector3[F]{X: k / quat.V.X, Y: k / quat.V.Y, Z: k / quat.V.Z})
}

// Mul returns the Hamilton product quat * other. As rotations, the result applies other first and quat second.
func (quat Quaternion[F]) Mul(other Quaternion[F]) Quaternion[F] {
	return QuaternionFromSV(
		quat.S*other.S-quat.V.Dot(other.V),
		other.V.Scale(quat.S).Add(quat.V.Scale(other.S)).Add(quat.V.Cross(other.V)),
	)
}

// Conjugate returns the Quaternion with its vector part negated. For a unit Quaternion this is the reverse rotation.
func (quat Quaternion[F]) Conjugate() Quaternion[F] {
	return QuaternionFromSV(quat.S, quat.V.Invert())
}

// Inverse returns the multiplicative inverse of the Quaternion: its conjugate divided by its squared magnitude.
func (quat Quaternion[F]) Inverse() Quaternion[F] {
	return quat.Conjugate().DivScalar(quat.MagnitudeSquared())
}

// Dot returns the 4D dot product of the two Quaternions.
func (quat Quaternion[F]) Dot(other Quaternion[F]) F {
	return quat.S*other.S + quat.V.Dot(other.V)
}

// Magnitude returns the norm of the Quaternion.
func (quat Quaternion[F]) Magnitude() F {
	return scalar.Sqrt(quat.MagnitudeSquared())
}

// MagnitudeSquared returns the squared norm of the Quaternion.
func (quat Quaternion[F]) MagnitudeSquared() F {
	return quat.Dot(quat)
}

// Normalize returns the Quaternion scaled to unit length. Normalizing the zero Quaternion is a caller error;
// the result is not finite.
func (quat Quaternion[F]) Normalize() Quaternion[F] {
	return quat.DivScalar(quat.Magnitude())
}

// RotateVector rotates the given Vector3 by the Quaternion, which should be of unit length. This is the vector part of
// quat * (0, vec) * quat⁻¹, computed with two cross products.
func (quat Quaternion[F]) RotateVector(vec Vector3[F]) Vector3[F] {
	t := quat.V.Cross(vec).Scale(2)
	return vec.Add(t.Scale(quat.S)).Add(quat.V.Cross(t))
}

// ToMatrix3 returns the rotation Matrix3 for the (unit) Quaternion.
func (quat Quaternion[F]) ToMatrix3() Matrix3[F] {

	x2 := quat.V.X + quat.V.X
	y2 := quat.V.Y + quat.V.Y
	z2 := quat.V.Z + quat.V.Z

	xx2 := x2 * quat.V.X
	xy2 := x2 * quat.V.Y
	xz2 := x2 * quat.V.Z

	yy2 := y2 * quat.V.Y
	yz2 := y2 * quat.V.Z
	zz2 := z2 * quat.V.Z

	sx2 := x2 * quat.S
	sy2 := y2 * quat.S
	sz2 := z2 * quat.S

	return Matrix3[F]{
		{1 - yy2 - zz2, xy2 + sz2, xz2 - sy2},
		{xy2 - sz2, 1 - xx2 - zz2, yz2 + sx2},
		{xz2 + sy2, yz2 - sx2, 1 - xx2 - yy2},
	}

}

// ToEuler returns the Euler angles for the Quaternion. When Y sits at ±90 degrees (gimbal lock) X is reported as 0 and Z carries
// the combined rotation around the shared axis.
func (quat Quaternion[F]) ToEuler() Euler[F] {

	qw, qx, qy, qz := quat.S, quat.V.X, quat.V.Y, quat.V.Z
	sqw, sqx, sqy, sqz := qw*qw, qx*qx, qy*qy, qz*qz

	unit := sqx + sqy + sqz + sqw

	// cos(Y)sin(X) and cos(Y)cos(X), scaled by unit like every other term here.
	sx := 2 * (qx*qw - qy*qz)
	cx := unit - 2*(sqx+sqy)

	cy := scalar.Sqrt(sx*sx + cx*cx)
	y := scalar.Atan2(2*(qx*qz+qy*qw), cy)

	if cy < scalar.Tolerance[F]()*unit {
		return Euler[F]{
			X: 0,
			Y: y,
			Z: scalar.Atan2(2*(qx*qy+qz*qw), unit-2*(sqx+sqz)),
		}
	}

	return Euler[F]{
		X: scalar.Atan2(sx, cx),
		Y: y,
		Z: scalar.Atan2(2*(qz*qw-qx*qy), unit-2*(sqy+sqz)),
	}

}

// ToAxisAngle returns the axis and angle (in [0, 2*pi]) of the Quaternion's rotation. A rotation too small to have a
// meaningful axis comes back as an angle of 0 around +X.
func (quat Quaternion[F]) ToAxisAngle() AxisAngle[F] {

	quat = quat.Normalize()

	angle := 2 * scalar.Acos(quat.S)
	sinHalf := scalar.Sqrt(scalar.Max(0, 1-quat.S*quat.S))

	if sinHalf < scalar.Epsilon[F]() {
		return AxisAngle[F]{Axis: UnitX[F](), Angle: 0}
	}

	return AxisAngle[F]{Axis: quat.V.Divide(sinHalf), Angle: angle}

}

// Slerp spherically interpolates from the Quaternion to the other by the percent given (clamped to 0 - 1), following
// the shortest path between the two rotations. Nearly identical rotations fall back to Nlerp.
func (quat Quaternion[F]) Slerp(other Quaternion[F], percent F) Quaternion[F] {

	if percent <= 0 {
		return quat
	} else if percent >= 1 {
		return other
	}

	angle := quat.Dot(other)

	if angle < 0 {
		other = other.Neg()
		angle = -angle
	}

	if angle >= 1-scalar.Tolerance[F]() {
		return quat.Nlerp(other, percent)
	}

	halfTheta := scalar.Acos(angle)
	sinHalfTheta := scalar.Sqrt(1 - angle*angle)

	ratioA := scalar.Sin((1-percent)*halfTheta) / sinHalfTheta
	ratioB := scalar.Sin(percent*halfTheta) / sinHalfTheta

	return quat.Scale(ratioA).Add(other.Scale(ratioB))

}

// Nlerp linearly interpolates from the Quaternion to the other by the percent given and normalizes the result.
// It takes the shortest path, like Slerp, but doesn't move at a constant angular speed.
func (quat Quaternion[F]) Nlerp(other Quaternion[F], percent F) Quaternion[F] {
	if quat.Dot(other) < 0 {
		other = other.Neg()
	}
	return quat.Add(other.Sub(quat).Scale(percent)).Normalize()
}

// Floats returns the Quaternion's contents as [s, x, y, z].
func (quat Quaternion[F]) Floats() [4]F {
	return [4]F{quat.S, quat.V.X, quat.V.Y, quat.V.Z}
}

// Equals returns true if every component of the two Quaternions is within the default tolerance for F.
// q and -q describe the same rotation but are not Equal; see SameRotation.
func (quat Quaternion[F]) Equals(other Quaternion[F]) bool {
	return quat.EqualsEps(other, scalar.Tolerance[F]())
}

// EqualsEps returns true if every component of the two Quaternions differs by no more than eps.
func (quat Quaternion[F]) EqualsEps(other Quaternion[F], eps F) bool {
	return scalar.Abs(quat.S-other.S) <= eps && quat.V.EqualsEps(other.V, eps)
}

// SameRotation returns true if the two unit Quaternions represent the same rotation (that is, they're Equal, or one is the
// negation of the other).
func (quat Quaternion[F]) SameRotation(other Quaternion[F]) bool {
	return quat.Equals(other) || quat.Equals(other.Neg())
}

func (quat Quaternion[F]) String() string {
	return "Quaternion{" + formatFloat(quat.S) + ", " + quat.V.String() + "}"
}
