// Package numcast allows for the easy casting between each of the built in numeric types. It's handy in generic functions
// when you need to mix floating point and integer values without branching on the kind at every call site.
//
// Every conversion follows Go's own conversion rules: integers truncate when narrowing, signed and unsigned values are
// reinterpreted when crossing over, floats are truncated toward zero when converted to integers, and integers are rounded
// to the nearest representable float. Nothing here reports an error; every cast produces a value.
package numcast

//go:generate go run gen.go

// Number is every numeric kind NumCast is implemented for. Go has no platform-width float, so float64 fills that role.
type Number interface {
	uint8 | uint16 | uint32 | uint64 | uint |
		int8 | int16 | int32 | int64 | int |
		float32 | float64
}

// NumCast is implemented by a value of each of the twelve numeric kinds, and converts it into any of them.
type NumCast interface {
	ToUint8() uint8
	ToUint16() uint16
	ToUint32() uint32
	ToUint64() uint64
	ToUint() uint

	ToInt8() int8
	ToInt16() int16
	ToInt32() int32
	ToInt64() int64
	ToInt() int

	ToFloat32() float32
	ToFloat64() float64
}

// Of returns the NumCast for the value given.
func Of[T Number](n T) NumCast {
	switch v := any(n).(type) {
	case uint8:
		return Uint8(v)
	case uint16:
		return Uint16(v)
	case uint32:
		return Uint32(v)
	case uint64:
		return Uint64(v)
	case uint:
		return Uint(v)
	case int8:
		return Int8(v)
	case int16:
		return Int16(v)
	case int32:
		return Int32(v)
	case int64:
		return Int64(v)
	case int:
		return Int(v)
	case float32:
		return Float32(v)
	default:
		return Float64(any(n).(float64))
	}
}

// From converts n into the kind K by calling n's dedicated To method for K.
func From[K Number](n NumCast) K {
	var k K
	switch any(k).(type) {
	case uint8:
		return any(n.ToUint8()).(K)
	case uint16:
		return any(n.ToUint16()).(K)
	case uint32:
		return any(n.ToUint32()).(K)
	case uint64:
		return any(n.ToUint64()).(K)
	case uint:
		return any(n.ToUint()).(K)
	case int8:
		return any(n.ToInt8()).(K)
	case int16:
		return any(n.ToInt16()).(K)
	case int32:
		return any(n.ToInt32()).(K)
	case int64:
		return any(n.ToInt64()).(K)
	case int:
		return any(n.ToInt()).(K)
	case float32:
		return any(n.ToFloat32()).(K)
	default:
		return any(n.ToFloat64()).(K)
	}
}

// Cast converts the value n of kind T into the kind U.
func Cast[U, T Number](n T) U {
	return From[U](Of(n))
}

// CastSlice converts every value in the slice given into the kind U, returning a new slice.
func CastSlice[U, T Number](values []T) []U {
	out := make([]U, len(values))
	for i, v := range values {
		out[i] = Cast[U](v)
	}
	return out
}
