package stack

import "github.com/plus3/ziggurat/physics"

// Stability is the discrete classification of a piece's kinematic state.
type Stability int

const (
	StabilityStable Stability = iota
	StabilityWarning
	StabilityUnstable
)

func (s Stability) String() string {
	switch s {
	case StabilityStable:
		return "stable"
	case StabilityWarning:
		return "warning"
	case StabilityUnstable:
		return "unstable"
	default:
		return "unknown"
	}
}

// Classifier maps an instantaneous velocity sample to a stability level.
// Classification is pure; callers that need transition edges (one-shot
// feedback, settling progress) remember the previous level themselves,
// which keeps noisy frame-to-frame velocity from re-triggering feedback
// while a piece hovers near a threshold.
type Classifier struct {
	// Tau1 is the combined linear speed below which a piece is Stable.
	Tau1 float64
	// Tau2 is the speed at and above which a piece is Unstable.
	// Speeds in [Tau1, Tau2) classify as Warning.
	Tau2 float64
}

// Classify returns the stability level for a velocity sample.
func (c Classifier) Classify(vel physics.Vec2) Stability {
	speed := vel.Len()
	switch {
	case speed < c.Tau1:
		return StabilityStable
	case speed < c.Tau2:
		return StabilityWarning
	default:
		return StabilityUnstable
	}
}
