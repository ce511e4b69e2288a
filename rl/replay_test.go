package rl

import "testing"

func transitionAt(i int) Transition {
	return Transition{
		State:     testState("s"),
		Action:    testAction("a"),
		Reward:    float64(i),
		NextState: testState("s'"),
	}
}

func TestExperienceBufferFIFOEviction(t *testing.T) {
	b := NewExperienceBuffer(2)
	b.Append(transitionAt(1))
	b.Append(transitionAt(2))
	b.Append(transitionAt(3))

	if b.Len() != 2 {
		t.Fatalf("expected size 2, got %d", b.Len())
	}
	present := make(map[float64]bool)
	for _, tr := range b.Sample(2) {
		present[tr.Reward] = true
	}
	if present[1] {
		t.Errorf("oldest transition must be evicted")
	}
	if !present[2] || !present[3] {
		t.Errorf("expected transitions 2 and 3 present, got %v", present)
	}
}

func TestExperienceBufferShortSample(t *testing.T) {
	b := NewExperienceBuffer(10)
	b.Append(transitionAt(1))
	b.Append(transitionAt(2))

	samples := b.Sample(5)
	if len(samples) != 2 {
		t.Errorf("sampling more than present returns the current size, got %d", len(samples))
	}
}

func TestExperienceBufferEmptySample(t *testing.T) {
	b := NewExperienceBuffer(10)
	if samples := b.Sample(3); len(samples) != 0 {
		t.Errorf("empty buffer yields zero samples, got %d", len(samples))
	}
}

func TestExperienceBufferSampleWithoutReplacement(t *testing.T) {
	b := NewExperienceBuffer(10)
	for i := 0; i < 5; i++ {
		b.Append(transitionAt(i))
	}
	seen := make(map[float64]bool)
	for _, tr := range b.Sample(5) {
		if seen[tr.Reward] {
			t.Fatalf("transition %f sampled twice", tr.Reward)
		}
		seen[tr.Reward] = true
	}
}

func TestQMEReplaysFromBuffer(t *testing.T) {
	q := NewQTable(0)
	actions := []Action{testAction("a")}
	strategy := NewEGreedy(q, actions, 0)
	learner := NewQME(q, strategy, 0.5, 0, 3, 10)

	s, next := testState("s"), testState("s'")
	if err := learner.Learn(s, testAction("a"), 1, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// buffer holds one transition, so only one replay happens despite
	// numSim 3: 0.5 then 0.75
	if val := q.Get(s, testAction("a")); !almostEqual(val, 0.75) {
		t.Errorf("expected 0.75 after real + 1 replayed update, got %f", val)
	}
}
