package gltfio

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/solarlune/orient"
	"github.com/solarlune/orient/numcast"
	"github.com/solarlune/orient/scalar"
)

// Animation holds the rotation tracks of a single glTF animation, keyed by the index of the node each one targets.
type Animation[F scalar.Float] struct {
	Name   string
	Tracks map[int]*Track[F]
	Length F // Length of the animation in seconds
}

// TrackByName returns the Track targeting the first node with the given name, or nil if there's none.
func (anim *Animation[F]) TrackByName(name string) *Track[F] {
	var found *Track[F]
	for _, track := range anim.Tracks {
		if track.NodeName == name && (found == nil || track.Node < found.Node) {
			found = track
		}
	}
	return found
}

// Keyframe is a rotation at a point in time, in seconds.
type Keyframe[F scalar.Float] struct {
	Time     F
	Rotation orient.Quaternion[F]
}

// Track is a sequence of rotation keyframes for a single node, sorted by time.
type Track[F scalar.Float] struct {
	Node          int // Index of the targeted node in the document
	NodeName      string
	Interpolation gltf.Interpolation
	Keyframes     []Keyframe[F]
}

// AddKeyframe appends a keyframe to the Track. Keyframes must be added in order of time.
func (track *Track[F]) AddKeyframe(time F, rotation orient.Quaternion[F]) {
	track.Keyframes = append(track.Keyframes, Keyframe[F]{Time: time, Rotation: rotation})
}

// Sample returns the Track's rotation at the given time. Times before the first keyframe or after the last are clamped to them.
// Step tracks hold each keyframe until the next one; linear and cubic spline tracks slerp between keyframes (cubic spline tangents
// aren't kept when reading). An empty Track gives the identity rotation.
func (track *Track[F]) Sample(time F) orient.Quaternion[F] {

	if len(track.Keyframes) == 0 {
		return orient.IdentityQuaternion[F]()
	}

	if first := track.Keyframes[0]; time <= first.Time {
		return first.Rotation
	} else if last := track.Keyframes[len(track.Keyframes)-1]; time >= last.Time {
		return last.Rotation
	}

	var first, last Keyframe[F]

	for _, k := range track.Keyframes {

		if k.Time <= time {
			first = k
		} else {
			last = k
			break
		}

	}

	if time == first.Time || track.Interpolation == gltf.InterpolationStep {
		return first.Rotation
	}

	t := (time - first.Time) / (last.Time - first.Time)

	return first.Rotation.Slerp(last.Rotation, t)

}

// ReadRotationTracks reads the rotation channels of the animation at the given index in the document. Channels that
// target translation, scale, or morph weights are ignored, as are rotation channels that don't target a node.
// Rotations may be stored as floats or as normalized integers.
func ReadRotationTracks[F scalar.Float](doc *gltf.Document, animationIndex int, loadOptions *LoadOptions) (*Animation[F], error) {

	if loadOptions == nil {
		loadOptions = DefaultLoadOptions()
	}

	logger := loadOptions.logger()

	if animationIndex < 0 || animationIndex >= len(doc.Animations) {
		return nil, fmt.Errorf("%w: %d", ErrAnimationIndex, animationIndex)
	}

	gltfAnim := doc.Animations[animationIndex]

	anim := &Animation[F]{
		Name:   gltfAnim.Name,
		Tracks: map[int]*Track[F]{},
	}

	for _, channel := range gltfAnim.Channels {

		if channel.Target.Path != gltf.TRSRotation {
			continue
		}

		if channel.Target.Node == nil {
			logger.Warn("rotation channel has no target node; skipping", zap.String("animation", gltfAnim.Name))
			continue
		}

		nodeIndex := *channel.Target.Node

		if nodeIndex < 0 || nodeIndex >= len(doc.Nodes) {
			return nil, fmt.Errorf("%w: %d", ErrNodeIndex, nodeIndex)
		}

		if channel.Sampler < 0 || channel.Sampler >= len(gltfAnim.Samplers) {
			return nil, fmt.Errorf("%w: %d", ErrSamplerIndex, channel.Sampler)
		}

		sampler := gltfAnim.Samplers[channel.Sampler]

		id, err := readAccessor(doc, sampler.Input)

		if err != nil {
			return nil, err
		}

		inputData, ok := id.([]float32)

		if !ok {
			return nil, fmt.Errorf("%w: keyframe times are %T", ErrUnexpectedAccessor, id)
		}

		od, err := readAccessor(doc, sampler.Output)

		if err != nil {
			return nil, err
		}

		outputData, err := rotationData(od, doc.Accessors[sampler.Output].Normalized)

		if err != nil {
			return nil, err
		}

		// Cubic spline samplers store an in-tangent, the value, and an out-tangent per keyframe.
		stride, offset := 1, 0
		if sampler.Interpolation == gltf.InterpolationCubicSpline {
			stride, offset = 3, 1
		}

		if len(outputData) != len(inputData)*stride {
			return nil, fmt.Errorf("%w: %d times, %d rotations", ErrKeyframeCount, len(inputData), len(outputData))
		}

		track := &Track[F]{
			Node:          nodeIndex,
			NodeName:      doc.Nodes[nodeIndex].Name,
			Interpolation: sampler.Interpolation,
		}

		for i := 0; i < len(inputData); i++ {
			t := numcast.Cast[F](inputData[i])
			p := outputData[i*stride+offset]
			rotation := orient.CastQuaternion[F](orient.NewQuaternion(p[3], p[0], p[1], p[2]))
			if loadOptions.Normalize && rotation.MagnitudeSquared() > scalar.Epsilon[F]() {
				rotation = rotation.Normalize()
			}
			track.AddKeyframe(t, rotation)
			if t > anim.Length {
				anim.Length = t
			}
		}

		if _, exists := anim.Tracks[nodeIndex]; exists {
			logger.Warn("multiple rotation tracks target the same node; keeping the last", zap.String("animation", gltfAnim.Name), zap.Int("node", nodeIndex))
		}

		anim.Tracks[nodeIndex] = track

	}

	return anim, nil

}

func readAccessor(doc *gltf.Document, index int) (any, error) {
	if index < 0 || index >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: %d", ErrAccessorIndex, index)
	}
	return modeler.ReadAccessor(doc, doc.Accessors[index], nil)
}

// rotationData returns the rotation sampler output given as floats. Integer outputs must be normalized, and are mapped
// back to [-1, 1] (signed) or [0, 1] (unsigned) the way glTF specifies.
func rotationData(data any, normalized bool) ([][4]float32, error) {

	if floats, ok := data.([][4]float32); ok {
		return floats, nil
	}

	if !normalized {
		return nil, fmt.Errorf("%w: rotations are %T", ErrUnexpectedAccessor, data)
	}

	switch d := data.(type) {
	case [][4]int8:
		return denormalize(d, math.MaxInt8), nil
	case [][4]uint8:
		return denormalize(d, math.MaxUint8), nil
	case [][4]int16:
		return denormalize(d, math.MaxInt16), nil
	case [][4]uint16:
		return denormalize(d, math.MaxUint16), nil
	}

	return nil, fmt.Errorf("%w: rotations are %T", ErrUnexpectedAccessor, data)

}

func denormalize[T int8 | uint8 | int16 | uint16](data [][4]T, limit float32) [][4]float32 {
	out := make([][4]float32, len(data))
	for i, v := range data {
		for c := 0; c < 4; c++ {
			out[i][c] = max(float32(v[c])/limit, -1)
		}
	}
	return out
}

// AddRotationTrack writes the Track into the document as a rotation channel of the named animation, creating the animation
// if the document doesn't have one by that name yet. The keyframe data is appended to the document's buffers.
func AddRotationTrack[F scalar.Float](doc *gltf.Document, animationName string, track *Track[F]) error {

	if len(track.Keyframes) == 0 {
		return ErrEmptyTrack
	}

	if track.Node < 0 || track.Node >= len(doc.Nodes) {
		return fmt.Errorf("%w: %d", ErrNodeIndex, track.Node)
	}

	times := make([]float32, 0, len(track.Keyframes))
	rotations := make([][4]float32, 0, len(track.Keyframes))

	for _, k := range track.Keyframes {
		times = append(times, numcast.Cast[float32](k.Time))
		q := orient.CastQuaternion[float32](k.Rotation)
		rotations = append(rotations, [4]float32{q.V.X, q.V.Y, q.V.Z, q.S})
	}

	var anim *gltf.Animation

	for _, a := range doc.Animations {
		if a.Name == animationName {
			anim = a
			break
		}
	}

	if anim == nil {
		anim = &gltf.Animation{Name: animationName}
		doc.Animations = append(doc.Animations, anim)
	}

	interpolation := track.Interpolation
	if interpolation == gltf.InterpolationCubicSpline {
		// Tangents aren't kept, so the track is written as the linear track it samples as.
		interpolation = gltf.InterpolationLinear
	}

	anim.Samplers = append(anim.Samplers, &gltf.AnimationSampler{
		Input:         modeler.WriteAccessor(doc, gltf.TargetNone, times),
		Output:        modeler.WriteAccessor(doc, gltf.TargetNone, rotations),
		Interpolation: interpolation,
	})

	anim.Channels = append(anim.Channels, &gltf.AnimationChannel{
		Sampler: len(anim.Samplers) - 1,
		Target: gltf.AnimationChannelTarget{
			Node: gltf.Index(track.Node),
			Path: gltf.TRSRotation,
		},
	})

	return nil

}
