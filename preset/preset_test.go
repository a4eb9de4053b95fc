package preset

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarlune/orient"
)

const presets = `
degrees: true
rotations:
  door_open:
    axis_angle: {axis: [0, 2, 0], angle: 90}
  tilt:
    euler: [90, 0, 0]
  aim:
    arc: {from: [0, 0, 1], to: [1, 0, 0]}
  flip:
    arc: {from: [0, 1, 0], to: [0, -3, 0], fallback: [0, 0, 1]}
  upright:
    quaternion: [2, 0, 0, 0]
  quarter:
    axis_angle: {axis: [0, 0, 1], angle: 1.5707963267948966}
    degrees: false
`

func TestParse(t *testing.T) {

	set, err := Parse[float64]([]byte(presets))
	require.NoError(t, err)

	assert.Equal(t, []string{"aim", "door_open", "flip", "quarter", "tilt", "upright"}, set.Names())

	assert.True(t, orient.QuaternionFromAngleY(math.Pi/2).Equals(set["door_open"]))
	assert.True(t, orient.QuaternionFromAngleX(math.Pi/2).Equals(set["tilt"]))
	assert.True(t, orient.QuaternionFromAngleY(math.Pi/2).Equals(set["aim"]))
	assert.True(t, orient.QuaternionFromAngleZ(math.Pi).Equals(set["flip"]))
	assert.Equal(t, orient.IdentityQuaternion[float64](), set["upright"])
	assert.True(t, orient.QuaternionFromAngleZ(math.Pi/2).Equals(set["quarter"]))

}

func TestLoadFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(presets), 0644))

	set, err := LoadFile[float32](path)
	require.NoError(t, err)
	assert.Len(t, set, 6)
	assert.True(t, orient.QuaternionFromAngleX[float32](math.Pi/2).Equals(set["tilt"]))

	_, err = LoadFile[float32](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

}

func TestEmpty(t *testing.T) {

	set, err := Parse[float64](nil)
	require.NoError(t, err)
	assert.Empty(t, set)

	set, err = Load[float64](strings.NewReader("rotations: {}\n"))
	require.NoError(t, err)
	assert.Empty(t, set.Names())

}

func TestErrors(t *testing.T) {

	for name, c := range map[string]struct {
		yaml string
		err  error
	}{
		"nothing":       {"rotations: {a: {}}", ErrNoRepresentation},
		"only degrees":  {"rotations: {a: {degrees: true}}", ErrNoRepresentation},
		"two":           {"rotations: {a: {euler: [0, 0, 0], quaternion: [1, 0, 0, 0]}}", ErrMultipleRepresentations},
		"zero axis":     {"rotations: {a: {axis_angle: {axis: [0, 0, 0], angle: 1}}}", ErrZeroAxis},
		"zero arc":      {"rotations: {a: {arc: {from: [0, 0, 0], to: [1, 0, 0]}}}", ErrZeroAxis},
		"zero rotation": {"rotations: {a: {quaternion: [0, 0, 0, 0]}}", ErrZeroQuaternion},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse[float64]([]byte(c.yaml))
			assert.ErrorIs(t, err, c.err)
			assert.ErrorContains(t, err, `rotation "a"`)
		})
	}

	// Malformed files fail in the decoder.
	for name, yaml := range map[string]string{
		"short euler":   "rotations: {a: {euler: [0, 0]}}",
		"unknown key":   "rotations: {a: {eular: [0, 0, 0]}}",
		"not a mapping": "rotations: [1, 2, 3]",
		"not yaml":      "rotations: {a: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse[float64]([]byte(yaml))
			assert.Error(t, err)
		})
	}

}

func TestWriteRoundTrip(t *testing.T) {

	set := Set[float64]{
		"spin": orient.QuaternionFromEuler(orient.NewEuler(0.2, -1.1, 2.9)),
		"flat": orient.IdentityQuaternion[float64](),
	}

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, set))
	assert.Contains(t, buf.String(), "quaternion:")

	back, err := Load[float64](buf)
	require.NoError(t, err)
	require.Equal(t, set.Names(), back.Names())

	for _, name := range set.Names() {
		assert.True(t, set[name].Equals(back[name]), "%s: expected %s, got %s", name, set[name], back[name])
	}

}
