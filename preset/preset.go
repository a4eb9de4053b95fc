// Package preset reads named rotations authored in YAML. Each rotation is written in whichever representation is most
// convenient (Euler angles, an axis and angle, a raw quaternion, or the arc between two directions) and resolved to a Quaternion:
//
//	degrees: true
//	rotations:
//	  door_open:
//	    axis_angle: {axis: [0, 1, 0], angle: 90}
//	  tilt:
//	    euler: [10, 0, -5]
//	  aim:
//	    arc: {from: [0, 0, 1], to: [1, 0, 0]}
//	  upright:
//	    quaternion: [1, 0, 0, 0] # s, x, y, z
//	    degrees: false
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/solarlune/orient"
	"github.com/solarlune/orient/scalar"
)

var (
	ErrNoRepresentation        = errors.New("no rotation given")
	ErrMultipleRepresentations = errors.New("more than one rotation given")
	ErrZeroAxis                = errors.New("axis has zero length")
	ErrZeroQuaternion          = errors.New("quaternion has zero length")
)

// File is the layout of a preset file.
type File struct {
	Degrees   bool              `yaml:"degrees,omitempty"` // If angles are given in degrees rather than radians, for every Preset that doesn't say otherwise
	Rotations map[string]Preset `yaml:"rotations"`
}

// Preset is a single named rotation. Exactly one of Euler, AxisAngle, Quaternion, or Arc should be set.
type Preset struct {
	Euler      *[3]float64 `yaml:"euler,omitempty"`      // X, Y, and Z angles
	AxisAngle  *AxisAngle  `yaml:"axis_angle,omitempty"` // The axis is normalized
	Quaternion *[4]float64 `yaml:"quaternion,omitempty"` // S, X, Y, and Z; normalized
	Arc        *Arc        `yaml:"arc,omitempty"`
	Degrees    *bool       `yaml:"degrees,omitempty"` // Overrides File.Degrees for this Preset
}

type AxisAngle struct {
	Axis  [3]float64 `yaml:"axis"`
	Angle float64    `yaml:"angle"`
}

// Arc is the shortest rotation taking the From direction to the To direction. Fallback is the axis to turn around
// if the two point in opposite directions.
type Arc struct {
	From     [3]float64  `yaml:"from"`
	To       [3]float64  `yaml:"to"`
	Fallback *[3]float64 `yaml:"fallback,omitempty"`
}

// Set maps names to their resolved rotations.
type Set[F scalar.Float] map[string]orient.Quaternion[F]

// Names returns the names of every rotation in the Set, sorted.
func (set Set[F]) Names() []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile reads and resolves the preset file at the path given.
func LoadFile[F scalar.Float](path string) (Set[F], error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return Load[F](f)

}

// Parse resolves the preset file contents given.
func Parse[F scalar.Float](data []byte) (Set[F], error) {
	return Load[F](bytes.NewReader(data))
}

// Load reads and resolves a preset file from the reader given. Unknown keys are an error; an empty file gives an empty Set.
func Load[F scalar.Float](r io.Reader) (Set[F], error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return Resolve[F](&file)
}

// Resolve returns the rotation of every Preset in the File.
func Resolve[F scalar.Float](file *File) (Set[F], error) {

	set := Set[F]{}

	for name, p := range file.Rotations {

		degrees := file.Degrees
		if p.Degrees != nil {
			degrees = *p.Degrees
		}

		q, err := p.quaternion(degrees)
		if err != nil {
			return nil, fmt.Errorf("rotation %q: %w", name, err)
		}

		set[name] = orient.CastQuaternion[F](q)

	}

	return set, nil

}

// Write writes the Set out as a preset file, each rotation as a quaternion.
func Write[F scalar.Float](w io.Writer, set Set[F]) error {

	file := File{Rotations: map[string]Preset{}}

	for name, q := range set {
		floats := orient.CastQuaternion[float64](q).Floats()
		file.Rotations[name] = Preset{Quaternion: &floats}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(&file); err != nil {
		return err
	}

	return enc.Close()

}

func (p Preset) quaternion(degrees bool) (orient.Quaternion[float64], error) {

	given := 0
	for _, ok := range []bool{p.Euler != nil, p.AxisAngle != nil, p.Quaternion != nil, p.Arc != nil} {
		if ok {
			given++
		}
	}

	if given == 0 {
		return orient.Quaternion[float64]{}, ErrNoRepresentation
	} else if given > 1 {
		return orient.Quaternion[float64]{}, ErrMultipleRepresentations
	}

	angle := func(a float64) float64 {
		if degrees {
			return scalar.ToRadians(a)
		}
		return a
	}

	switch {

	case p.Euler != nil:
		return orient.NewEuler(angle(p.Euler[0]), angle(p.Euler[1]), angle(p.Euler[2])).ToQuaternion(), nil

	case p.AxisAngle != nil:
		axis := vector(p.AxisAngle.Axis)
		if axis.IsZero() {
			return orient.Quaternion[float64]{}, ErrZeroAxis
		}
		return orient.QuaternionFromAxisAngle(axis, angle(p.AxisAngle.Angle)), nil

	case p.Quaternion != nil:
		q := orient.NewQuaternion(p.Quaternion[0], p.Quaternion[1], p.Quaternion[2], p.Quaternion[3])
		if q.MagnitudeSquared() < scalar.Epsilon[float64]() {
			return orient.Quaternion[float64]{}, ErrZeroQuaternion
		}
		return q.Normalize(), nil

	default:
		from, to := vector(p.Arc.From), vector(p.Arc.To)
		if from.IsZero() || to.IsZero() {
			return orient.Quaternion[float64]{}, ErrZeroAxis
		}
		var fallback *orient.Vector3[float64]
		if p.Arc.Fallback != nil {
			fb := vector(*p.Arc.Fallback)
			fallback = &fb
		}
		return orient.QuaternionFromArc(from, to, fallback), nil

	}

}

func vector(v [3]float64) orient.Vector3[float64] {
	return orient.NewVector3(v[0], v[1], v[2])
}
