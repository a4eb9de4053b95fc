// Package tween animates a rotation from one orientation to another over time, following an easing curve from
// github.com/tanema/gween/ease.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/solarlune/orient"
	"github.com/solarlune/orient/numcast"
	"github.com/solarlune/orient/scalar"
)

// RotationTween eases a rotation from one Quaternion to another along the shortest path. The easing curve decides how far along the
// path the rotation is at any time; easings that overshoot (like ease.OutBack or ease.OutElastic) are clamped at either end.
// A RotationTween holds its own progress, so it shouldn't be updated from multiple goroutines at once.
type RotationTween[F scalar.Float] struct {
	From, To orient.Quaternion[F]
	progress *gween.Tween
	current  orient.Quaternion[F]
	done     bool
}

// New returns a RotationTween that rotates from one Quaternion to the other over duration seconds with the given easing
// function. A nil easing function moves at a constant rate (ease.Linear).
func New[F scalar.Float](from, to orient.Quaternion[F], duration float32, easing ease.TweenFunc) *RotationTween[F] {

	if easing == nil {
		easing = ease.Linear
	}

	return &RotationTween[F]{
		From:     from,
		To:       to,
		progress: gween.New(0, 1, duration, easing),
		current:  from,
	}

}

// Update advances the RotationTween by dt seconds, returning the current rotation and whether the tween has finished.
func (rt *RotationTween[F]) Update(dt float32) (orient.Quaternion[F], bool) {
	return rt.apply(rt.progress.Update(dt))
}

// Set moves the RotationTween to the given time in seconds, returning the current rotation and whether the tween has finished.
func (rt *RotationTween[F]) Set(time float32) (orient.Quaternion[F], bool) {
	return rt.apply(rt.progress.Set(time))
}

// Reset moves the RotationTween back to its starting rotation.
func (rt *RotationTween[F]) Reset() {
	rt.progress.Reset()
	rt.current = rt.From
	rt.done = false
}

// Current returns the rotation as of the last Update or Set.
func (rt *RotationTween[F]) Current() orient.Quaternion[F] {
	return rt.current
}

// Done returns true if the RotationTween has reached its end.
func (rt *RotationTween[F]) Done() bool {
	return rt.done
}

func (rt *RotationTween[F]) apply(percent float32, finished bool) (orient.Quaternion[F], bool) {
	rt.current = rt.From.Slerp(rt.To, numcast.Cast[F](percent))
	rt.done = finished
	return rt.current, finished
}
