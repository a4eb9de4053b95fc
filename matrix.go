package orient

import (
	"github.com/solarlune/orient/scalar"
)

// Matrix3 represents a 3x3 rotation matrix. A Matrix3 in orient is column-major: matrix[c] is column c, which is where the
// rotation sends basis axis c (so the X axis of the rotated frame is matrix[0]), and matrix[c][r] is the element at row r.
// A Matrix3 represents a valid rotation only while it is orthonormal with a determinant of +1; the conversions assume this.
type Matrix3[F scalar.Float] [3][3]F

// NewMatrix3 returns a new identity Matrix3.
func NewMatrix3[F scalar.Float]() Matrix3[F] {
	return Matrix3[F]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Matrix3FromColumns creates a Matrix3 out of the three column vectors given.
func Matrix3FromColumns[F scalar.Float](x, y, z Vector3[F]) Matrix3[F] {
	return Matrix3[F]{
		{x.X, x.Y, x.Z},
		{y.X, y.Y, y.Z},
		{z.X, z.Y, z.Z},
	}
}

// Matrix3FromEuler creates a rotation Matrix3 from the Euler angles given (Rx * Ry * Rz).
func Matrix3FromEuler[F scalar.Float](euler Euler[F]) Matrix3[F] {

	sx, cx := scalar.Sincos(euler.X)
	sy, cy := scalar.Sincos(euler.Y)
	sz, cz := scalar.Sincos(euler.Z)

	return Matrix3[F]{
		{cy * cz, cx*sz + sx*sy*cz, sx*sz - cx*sy*cz},
		{-cy * sz, cx*cz - sx*sy*sz, sx*cz + cx*sy*sz},
		{sy, -sx * cy, cx * cy},
	}

}

// Matrix3FromAxisAngle returns a new Matrix3 designed to rotate by the angle given (in radians) along the axis given.
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians. The axis is expected to be of unit length.
func Matrix3FromAxisAngle[F scalar.Float](axis Vector3[F], angle F) Matrix3[F] {

	s, c := scalar.Sincos(angle)
	m := 1 - c

	return Matrix3[F]{
		{
			m*axis.X*axis.X + c,
			m*axis.X*axis.Y + axis.Z*s,
			m*axis.Z*axis.X - axis.Y*s,
		},
		{
			m*axis.X*axis.Y - axis.Z*s,
			m*axis.Y*axis.Y + c,
			m*axis.Y*axis.Z + axis.X*s,
		},
		{
			m*axis.Z*axis.X + axis.Y*s,
			m*axis.Y*axis.Z - axis.X*s,
			m*axis.Z*axis.Z + c,
		},
	}

}

// ToQuaternion returns a Quaternion representative of the Matrix3's rotation.
func (matrix Matrix3[F]) ToQuaternion() Quaternion[F] {
	return QuaternionFromMatrix3(matrix)
}

// ToEuler returns the Euler angles (Rx * Ry * Rz) that produce the Matrix3's rotation. When the Y angle sits at ±90 degrees,
// X and Z rotate around the same axis, so X is reported as 0 and Z carries the whole rotation.
func (matrix Matrix3[F]) ToEuler() Euler[F] {

	cy := scalar.Sqrt(matrix[2][1]*matrix[2][1] + matrix[2][2]*matrix[2][2])
	y := scalar.Atan2(matrix[2][0], cy)

	if cy < scalar.Tolerance[F]() {
		return Euler[F]{
			X: 0,
			Y: y,
			Z: scalar.Atan2(matrix[0][1], matrix[1][1]),
		}
	}

	return Euler[F]{
		X: scalar.Atan2(-matrix[2][1], matrix[2][2]),
		Y: y,
		Z: scalar.Atan2(-matrix[1][0], matrix[0][0]),
	}

}

// Col returns the indiced column from the Matrix3 as a Vector3.
func (matrix Matrix3[F]) Col(columnIndex int) Vector3[F] {
	return Vector3[F]{
		X: matrix[columnIndex][0],
		Y: matrix[columnIndex][1],
		Z: matrix[columnIndex][2],
	}
}

// Row returns the indiced row from the Matrix3 as a Vector3.
func (matrix Matrix3[F]) Row(rowIndex int) Vector3[F] {
	return Vector3[F]{
		X: matrix[0][rowIndex],
		Y: matrix[1][rowIndex],
		Z: matrix[2][rowIndex],
	}
}

// Right returns the right-facing rotational component of the Matrix3. For an identity matrix, this would be [1, 0, 0], or +X.
func (matrix Matrix3[F]) Right() Vector3[F] {
	return matrix.Col(0)
}

// Up returns the upward rotational component of the Matrix3. For an identity matrix, this would be [0, 1, 0], or +Y.
func (matrix Matrix3[F]) Up() Vector3[F] {
	return matrix.Col(1)
}

// Forward returns the forward rotational component of the Matrix3. For an identity matrix, this would be [0, 0, 1], or +Z (towards camera).
func (matrix Matrix3[F]) Forward() Vector3[F] {
	return matrix.Col(2)
}

// Trace returns the sum of the Matrix3's diagonal.
func (matrix Matrix3[F]) Trace() F {
	return matrix[0][0] + matrix[1][1] + matrix[2][2]
}

// Determinant returns the determinant of the Matrix3; +1 for a proper rotation.
func (matrix Matrix3[F]) Determinant() F {
	return matrix.Col(0).Dot(matrix.Col(1).Cross(matrix.Col(2)))
}

// Transposed transposes a Matrix3, switching rows and columns. For orthonormal matrices (like rotation matrices),
// this is equivalent to inverting it.
func (matrix Matrix3[F]) Transposed() Matrix3[F] {

	var new Matrix3[F]

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			new[i][j] = matrix[j][i]
		}
	}

	return new

}

// Mult multiplies a Matrix3 by another provided Matrix3, giving matrix * other; the resulting rotation applies other first.
func (matrix Matrix3[F]) Mult(other Matrix3[F]) Matrix3[F] {

	var newMat Matrix3[F]

	for c := 0; c < 3; c++ {
		newMat[c] = matrix.MultVec(other.Col(c)).Floats()
	}

	return newMat

}

// MultVec multiplies the vector provided by the Matrix3, giving a vector that has been rotated as desired.
func (matrix Matrix3[F]) MultVec(vect Vector3[F]) Vector3[F] {
	return Vector3[F]{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z,
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z,
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z,
	}
}

// IsOrthonormal returns true if the columns of the Matrix3 are of unit length, perpendicular to each other, and form a
// right-handed basis (so the Matrix3 is a proper rotation), within the default tolerance for F.
func (matrix Matrix3[F]) IsOrthonormal() bool {
	eps := scalar.Tolerance[F]() * 10
	x, y, z := matrix.Col(0), matrix.Col(1), matrix.Col(2)
	return scalar.Abs(x.MagnitudeSquared()-1) <= eps &&
		scalar.Abs(y.MagnitudeSquared()-1) <= eps &&
		scalar.Abs(z.MagnitudeSquared()-1) <= eps &&
		scalar.Abs(x.Dot(y)) <= eps &&
		scalar.Abs(y.Dot(z)) <= eps &&
		scalar.Abs(z.Dot(x)) <= eps &&
		scalar.Abs(matrix.Determinant()-1) <= eps
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix3[F]) IsIdentity() bool {
	return matrix.Equals(NewMatrix3[F]())
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix3, within the default tolerance for F.
func (matrix Matrix3[F]) Equals(other Matrix3[F]) bool {
	return matrix.EqualsEps(other, scalar.Tolerance[F]())
}

// EqualsEps returns true if every element of the two matrices differs by no more than eps.
func (matrix Matrix3[F]) EqualsEps(other Matrix3[F], eps F) bool {
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if scalar.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// Lerp lerps a matrix to another, destination Matrix3 by the percent given. It does this by converting both
// Matrices to Quaternions, slerping them, then converting the result back to a Matrix3.
func (matrix Matrix3[F]) Lerp(other Matrix3[F], percent F) Matrix3[F] {
	q1 := matrix.ToQuaternion()
	q2 := other.ToQuaternion()
	return q1.Slerp(q2, percent).ToMatrix3()
}

func (matrix Matrix3[F]) String() string {
	s := "{"
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			s += formatFloat(matrix[c][r])
			if c < 2 {
				s += ", "
			}
		}
		if r < 2 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
