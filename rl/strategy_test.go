package rl

import "testing"

func TestBestActionPicksMax(t *testing.T) {
	q := NewQTable(0)
	actions := []Action{testAction("a0"), testAction("a1"), testAction("a2")}
	strategy := NewEGreedy(q, actions, 0)

	s := testState("s")
	q.Set(s, testAction("a0"), 1)
	q.Set(s, testAction("a1"), 5)
	q.Set(s, testAction("a2"), 3)

	for i := 0; i < 100; i++ {
		if best := strategy.BestAction(s, actions); best.Hash() != "a1" {
			t.Fatalf("expected a1, got %s", best.Hash())
		}
	}
}

func TestBestActionTieBreakUniform(t *testing.T) {
	q := NewQTable(0)
	actions := []Action{testAction("a0"), testAction("a1")}
	strategy := NewEGreedy(q, actions, 0)

	s := testState("s")
	counts := make(map[string]int)
	trials := 10000
	for i := 0; i < trials; i++ {
		counts[strategy.BestAction(s, actions).Hash()]++
	}
	for _, a := range actions {
		frac := float64(counts[a.Hash()]) / float64(trials)
		if frac < 0.4 || frac > 0.6 {
			t.Errorf("tie-break biased: action %s selected with frequency %f", a.Hash(), frac)
		}
	}
}

func TestSelectActionGreedyWhenEpsilonZero(t *testing.T) {
	q := NewQTable(0)
	actions := []Action{testAction("a0"), testAction("a1")}
	strategy := NewEGreedy(q, actions, 0)

	s := testState("s")
	q.Set(s, testAction("a1"), 1)
	for i := 0; i < 100; i++ {
		if a := strategy.SelectAction(s); a.Hash() != "a1" {
			t.Fatalf("epsilon 0 must always exploit, got %s", a.Hash())
		}
	}
}

func TestSelectActionExploresWhenEpsilonOne(t *testing.T) {
	q := NewQTable(0)
	actions := []Action{testAction("a0"), testAction("a1")}
	strategy := NewEGreedy(q, actions, 1)

	s := testState("s")
	q.Set(s, testAction("a1"), 100)
	counts := make(map[string]int)
	trials := 10000
	for i := 0; i < trials; i++ {
		counts[strategy.SelectAction(s).Hash()]++
	}
	// exploration may legally re-select the best action by chance
	frac := float64(counts["a0"]) / float64(trials)
	if frac < 0.4 || frac > 0.6 {
		t.Errorf("epsilon 1 must select uniformly, a0 frequency %f", frac)
	}
}

func TestSoftMaxPrefersHigherEstimates(t *testing.T) {
	q := NewQTable(0)
	actions := []Action{testAction("a0"), testAction("a1")}
	strategy := NewSoftMax(q, actions, 1)

	s := testState("s")
	q.Set(s, testAction("a1"), 5)
	counts := make(map[string]int)
	trials := 10000
	for i := 0; i < trials; i++ {
		counts[strategy.SelectAction(s).Hash()]++
	}
	if counts["a1"] <= counts["a0"] {
		t.Errorf("softmax should favor the higher estimate: a0=%d, a1=%d", counts["a0"], counts["a1"])
	}
}
