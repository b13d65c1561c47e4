package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/ziggurat/physics"
	"github.com/plus3/ziggurat/stack"
)

func TestClassify(t *testing.T) {
	c := stack.Classifier{Tau1: 0.35, Tau2: 1.60}

	tests := []struct {
		name string
		vel  physics.Vec2
		want stack.Stability
	}{
		{"at rest", physics.Vec2{}, stack.StabilityStable},
		{"slow drift", physics.Vec2{X: 0.2}, stack.StabilityStable},
		{"just under tau1", physics.Vec2{X: 0.34}, stack.StabilityStable},
		{"at tau1", physics.Vec2{X: 0.35}, stack.StabilityWarning},
		{"wobbling", physics.Vec2{X: 1.0}, stack.StabilityWarning},
		{"just under tau2", physics.Vec2{Y: 1.59}, stack.StabilityWarning},
		{"at tau2", physics.Vec2{Y: 1.60}, stack.StabilityUnstable},
		{"fast", physics.Vec2{X: 3, Y: 4}, stack.StabilityUnstable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.vel))
		})
	}
}

func TestClassifyUsesCombinedSpeed(t *testing.T) {
	c := stack.Classifier{Tau1: 0.35, Tau2: 1.60}

	// Each axis alone is under the warning threshold; together they are
	// not. |(0.3, 0.3)| ≈ 0.42.
	assert.Equal(t, stack.StabilityWarning, c.Classify(physics.Vec2{X: 0.3, Y: 0.3}))
}

func TestStabilityString(t *testing.T) {
	assert.Equal(t, "stable", stack.StabilityStable.String())
	assert.Equal(t, "warning", stack.StabilityWarning.String())
	assert.Equal(t, "unstable", stack.StabilityUnstable.String())
}
