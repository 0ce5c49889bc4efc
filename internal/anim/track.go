package anim

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"quat-renderer/internal/mathutil"
)

// Keyframe pins a rotation to a point in normalized time.
type Keyframe struct {
	Time     float64
	Rotation mathutil.Quat
}

// Track is an ordered set of rotation keyframes sampled with SLERP.
type Track struct {
	keys []Keyframe
}

var errNoKeys = errors.New("anim: track needs at least one keyframe")

// NewTrack sorts keys by time and renormalizes every rotation.
// Two keys at the same time are rejected.
func NewTrack(keys []Keyframe) (*Track, error) {
	if len(keys) == 0 {
		return nil, errNoKeys
	}

	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	for i := range sorted {
		q, err := mathutil.Renormalize(sorted[i].Rotation)
		if err != nil {
			return nil, fmt.Errorf("anim: keyframe %d: %w", i, err)
		}
		sorted[i].Rotation = q
		if i > 0 && sorted[i].Time == sorted[i-1].Time {
			return nil, fmt.Errorf("anim: duplicate keyframe time %g", sorted[i].Time)
		}
	}

	return &Track{keys: sorted}, nil
}

// Len returns the number of keyframes.
func (tr *Track) Len() int {
	return len(tr.keys)
}

// Span returns the first and last keyframe times.
func (tr *Track) Span() (float64, float64) {
	return tr.keys[0].Time, tr.keys[len(tr.keys)-1].Time
}

// Sample returns the rotation at time t, clamped to the track span.
// Each segment takes the shorter arc: when the pair's dot product is
// negative the second key is negated, which encodes the same rotation.
func (tr *Track) Sample(t float64) mathutil.Quat {
	first, last := tr.keys[0], tr.keys[len(tr.keys)-1]
	if t <= first.Time {
		return first.Rotation
	}
	if t >= last.Time {
		return last.Rotation
	}

	// First key strictly after t; t is inside (first, last), so 0 < i < len.
	i := sort.Search(len(tr.keys), func(i int) bool { return tr.keys[i].Time > t })
	a, b := tr.keys[i-1], tr.keys[i]

	qb := b.Rotation
	if mathutil.Dot(a.Rotation, qb) < 0 {
		qb = qb.Neg()
	}

	local := (t - a.Time) / (b.Time - a.Time)
	return mathutil.Slerp(a.Rotation, qb, local)
}

// Frames returns n evenly spaced samples covering the whole span.
func (tr *Track) Frames(n int) []mathutil.Quat {
	if n <= 0 {
		return nil
	}
	start, end := tr.Span()
	if n == 1 {
		return []mathutil.Quat{tr.Sample(start)}
	}

	out := make([]mathutil.Quat, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		t := start + float64(i)*step
		if i == n-1 {
			t = end
		}
		out[i] = tr.Sample(t)
	}
	return out
}

// MaxStep returns the largest rotation angle (radians) between
// consecutive poses; useful to check an animation is smooth.
func MaxStep(poses []mathutil.Quat) float64 {
	var m float64
	for i := 1; i < len(poses); i++ {
		m = math.Max(m, mathutil.Angle(poses[i-1], poses[i]))
	}
	return m
}
