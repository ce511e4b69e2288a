package rl

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQLearningUpdateArithmetic(t *testing.T) {
	q := NewQTable(0)
	actions := []Action{testAction("a0"), testAction("a1")}
	strategy := NewEGreedy(q, actions, 0)
	learner := NewQLearning(q, strategy, 0.5, 0.9)

	s, next := testState("s"), testState("s'")
	if err := learner.Learn(s, testAction("a0"), 1, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Q(s,a) = 0 + 0.5*(1 + 0.9*0 - 0) = 0.5
	if val := q.Get(s, testAction("a0")); !almostEqual(val, 0.5) {
		t.Errorf("expected 0.5, got %f", val)
	}
}

func TestQLearningUsesGreedyNextAction(t *testing.T) {
	q := NewQTable(0)
	actions := []Action{testAction("a1"), testAction("a2")}
	strategy := NewEGreedy(q, actions, 0)
	learner := NewQLearning(q, strategy, 0.5, 0.9)

	s, next := testState("s"), testState("s'")
	q.Set(next, testAction("a1"), 2)
	q.Set(next, testAction("a2"), 5)

	if err := learner.Learn(s, testAction("a1"), 1, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// target uses max_a' Q(s',a') = 5: Q(s,a1) = 0.5*(1 + 0.9*5) = 2.75
	if val := q.Get(s, testAction("a1")); !almostEqual(val, 2.75) {
		t.Errorf("off-policy update must use the greedy next value, expected 2.75, got %f", val)
	}
}

func TestSarsaUsesSuppliedNextAction(t *testing.T) {
	q := NewQTable(0)
	learner := NewSarsa(q, 0.5, 0.9)

	s, next := testState("s"), testState("s'")
	q.Set(next, testAction("a1"), 2)
	q.Set(next, testAction("a2"), 5)

	if err := learner.LearnOnPolicy(s, testAction("a1"), 1, next, testAction("a1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// target uses Q(s',a1) = 2, not the maximizing 5: Q(s,a1) = 0.5*(1 + 0.9*2) = 1.4
	if val := q.Get(s, testAction("a1")); !almostEqual(val, 1.4) {
		t.Errorf("on-policy update must use the supplied next action, expected 1.4, got %f", val)
	}
}

func TestSarsaRejectsLearnWithoutNextAction(t *testing.T) {
	q := NewQTable(0)
	learner := NewSarsa(q, 0.5, 0.9)
	err := learner.Learn(testState("s"), testAction("a0"), 1, testState("s'"))
	if !errors.Is(err, ErrNextActionRequired) {
		t.Errorf("expected ErrNextActionRequired, got %v", err)
	}
}
