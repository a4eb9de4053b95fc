// Package gltfio reads and writes the rotations stored in glTF documents: the rotation of each node (given either as a quaternion
// or as part of a transform matrix), and animation tracks targeting node rotations.
package gltfio

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/solarlune/orient"
	"github.com/solarlune/orient/scalar"
)

var (
	ErrNodeIndex          = errors.New("node index out of range")
	ErrEmptyTrack         = errors.New("rotation track has no keyframes")
	ErrUnexpectedAccessor = errors.New("unexpected accessor contents")
	ErrKeyframeCount      = errors.New("keyframe times and rotations differ in count")
	ErrAnimationIndex     = errors.New("animation index out of range")
	ErrSamplerIndex       = errors.New("animation sampler index out of range")
	ErrAccessorIndex      = errors.New("accessor index out of range")
)

// LoadOptions alters how rotations are read out of a glTF document.
type LoadOptions struct {
	// Logger receives warnings about nodes and tracks that are skipped while loading. Defaults to a no-op logger; a nil Logger
	// is treated the same way.
	Logger *zap.Logger
	// If nodes that carry a transform matrix instead of a rotation should have their rotation extracted from the matrix.
	// The scale is divided out of the matrix first; matrices that are sheared, mirrored, or collapsed along an axis are skipped.
	ReadMatrices bool
	// If every rotation read should be normalized. Exporters write quaternions as 32-bit floats, so they're rarely exactly of unit length.
	Normalize bool
}

// DefaultLoadOptions creates an instance of LoadOptions with some sensible defaults.
func DefaultLoadOptions() *LoadOptions {
	return &LoadOptions{
		Logger:       zap.NewNop(),
		ReadMatrices: true,
		Normalize:    true,
	}
}

func (options *LoadOptions) logger() *zap.Logger {
	if options.Logger == nil {
		return zap.NewNop()
	}
	return options.Logger
}

// Library holds the rotations read out of a glTF document.
type Library[F scalar.Float] struct {
	// Nodes is indexed the same way as the document's nodes. A node whose rotation couldn't be read is nil.
	Nodes      []*Node[F]
	Animations map[string]*Animation[F]
}

// NodeByName returns the first Node with the given name, or nil if there's none.
func (lib *Library[F]) NodeByName(name string) *Node[F] {
	for _, node := range lib.Nodes {
		if node != nil && node.Name == name {
			return node
		}
	}
	return nil
}

// Node is the local rotation of a single glTF node.
type Node[F scalar.Float] struct {
	Index      int
	Name       string
	Rotation   orient.Quaternion[F]
	FromMatrix bool // If the rotation was extracted from the node's transform matrix
}

// LoadFile loads a .gltf or .glb file from the filepath given, using a provided LoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options.
func LoadFile[F scalar.Float](path string, loadOptions *LoadOptions) (*Library[F], error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadData[F](fileData, loadOptions)

}

// LoadData loads a .gltf or .glb file from the byte data given, using a provided LoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options.
func LoadData[F scalar.Float](data []byte, loadOptions *LoadOptions) (*Library[F], error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	err := decoder.Decode(doc)

	if err != nil {
		return nil, err
	}

	return ReadDocument[F](doc, loadOptions)

}

// ReadDocument reads the node rotations and rotation tracks out of an already decoded glTF document.
func ReadDocument[F scalar.Float](doc *gltf.Document, loadOptions *LoadOptions) (*Library[F], error) {

	if loadOptions == nil {
		loadOptions = DefaultLoadOptions()
	}

	library := &Library[F]{
		Nodes:      ReadNodeRotations[F](doc, loadOptions),
		Animations: map[string]*Animation[F]{},
	}

	for i := range doc.Animations {

		anim, err := ReadRotationTracks[F](doc, i, loadOptions)

		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", doc.Animations[i].Name, err)
		}

		library.Animations[anim.Name] = anim

	}

	return library, nil

}

// ReadNodeRotations returns the local rotation of every node in the document, indexed the same way as doc.Nodes.
// Nodes with a transform matrix that doesn't hold a usable rotation are logged and left nil.
func ReadNodeRotations[F scalar.Float](doc *gltf.Document, loadOptions *LoadOptions) []*Node[F] {

	if loadOptions == nil {
		loadOptions = DefaultLoadOptions()
	}

	logger := loadOptions.logger()

	nodes := make([]*Node[F], len(doc.Nodes))

	for i, gltfNode := range doc.Nodes {

		node := &Node[F]{
			Index: i,
			Name:  gltfNode.Name,
		}

		if loadOptions.ReadMatrices && hasMatrix(gltfNode.Matrix) {

			matrix, ok := rotationFromTransform[F](gltfNode.Matrix)

			if !ok {
				logger.Warn("node transform matrix holds no rotation; skipping", zap.Int("node", i), zap.String("name", gltfNode.Name))
				continue
			}

			node.Rotation = orient.QuaternionFromMatrix3(matrix)
			node.FromMatrix = true

		} else {
			node.Rotation = quaternionFromGLTF[F](gltfNode.Rotation)
		}

		if loadOptions.Normalize {
			if node.Rotation.MagnitudeSquared() < scalar.Epsilon[F]() {
				logger.Warn("node rotation is zero; using identity", zap.Int("node", i), zap.String("name", gltfNode.Name))
				node.Rotation = orient.IdentityQuaternion[F]()
			} else {
				node.Rotation = node.Rotation.Normalize()
			}
		}

		nodes[i] = node

	}

	return nodes

}

// SetNodeRotation sets the rotation of the node at the given index in the document. If the node was positioned with a transform
// matrix, the matrix is split into translation, rotation, and scale first so that the new rotation takes effect.
func SetNodeRotation[F scalar.Float](doc *gltf.Document, nodeIndex int, rotation orient.Quaternion[F]) error {

	if nodeIndex < 0 || nodeIndex >= len(doc.Nodes) {
		return fmt.Errorf("%w: %d", ErrNodeIndex, nodeIndex)
	}

	node := doc.Nodes[nodeIndex]

	if hasMatrix(node.Matrix) {
		m := node.Matrix
		node.Translation = [3]float64{m[12], m[13], m[14]}
		node.Scale = [3]float64{
			orient.NewVector3(m[0], m[1], m[2]).Magnitude(),
			orient.NewVector3(m[4], m[5], m[6]).Magnitude(),
			orient.NewVector3(m[8], m[9], m[10]).Magnitude(),
		}
		node.Matrix = identityMatrix
	}

	node.Rotation = quaternionToGLTF(rotation)

	return nil

}

var identityMatrix = [16]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// hasMatrix returns if the glTF node matrix given is set to something other than the identity. Nodes built in code
// rather than decoded may leave it zeroed, which counts as unset too.
func hasMatrix(matrix [16]float64) bool {
	return matrix != identityMatrix && matrix != [16]float64{}
}

// rotationFromTransform returns the rotation part of a column-major glTF transform matrix, with its scale divided out.
func rotationFromTransform[F scalar.Float](matrix [16]float64) (orient.Matrix3[F], bool) {

	columns := [3]orient.Vector3[float64]{
		orient.NewVector3(matrix[0], matrix[1], matrix[2]),
		orient.NewVector3(matrix[4], matrix[5], matrix[6]),
		orient.NewVector3(matrix[8], matrix[9], matrix[10]),
	}

	for i, col := range columns {
		if col.MagnitudeSquared() < scalar.Epsilon[float64]() {
			return orient.Matrix3[F]{}, false
		}
		columns[i] = col.Unit()
	}

	rotation := orient.Matrix3FromColumns(columns[0], columns[1], columns[2])

	if !orient.CastMatrix3[float32](rotation).IsOrthonormal() {
		return orient.Matrix3[F]{}, false
	}

	return orient.CastMatrix3[F](rotation), true

}

// glTF stores quaternions as [x, y, z, w].

func quaternionFromGLTF[F scalar.Float](rotation [4]float64) orient.Quaternion[F] {
	if rotation == [4]float64{} {
		return orient.IdentityQuaternion[F]()
	}
	return orient.CastQuaternion[F](orient.NewQuaternion(rotation[3], rotation[0], rotation[1], rotation[2]))
}

func quaternionToGLTF[F scalar.Float](quat orient.Quaternion[F]) [4]float64 {
	q := orient.CastQuaternion[float64](quat)
	return [4]float64{q.V.X, q.V.Y, q.V.Z, q.S}
}
