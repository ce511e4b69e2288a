package rl

import (
	"errors"
	"testing"
)

func engineConfig() *EngineConfig {
	return &EngineConfig{
		Actions:        []Action{testAction("a0"), testAction("a1")},
		DefaultQ:       0,
		Epsilon:        0.1,
		Alpha:          0.5,
		Gamma:          0.9,
		NumSim:         5,
		BufferCapacity: 10,
	}
}

func TestEngineConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EngineConfig)
	}{
		{"empty actions", func(c *EngineConfig) { c.Actions = nil }},
		{"epsilon above one", func(c *EngineConfig) { c.Epsilon = 1.5 }},
		{"negative epsilon", func(c *EngineConfig) { c.Epsilon = -0.1 }},
		{"zero alpha", func(c *EngineConfig) { c.Alpha = 0 }},
		{"alpha above one", func(c *EngineConfig) { c.Alpha = 1.1 }},
		{"gamma above one", func(c *EngineConfig) { c.Gamma = 1.1 }},
	}
	for _, tc := range cases {
		config := engineConfig()
		tc.mutate(config)
		if _, err := NewQLearningEngine(config); err == nil {
			t.Errorf("%s: expected a configuration error", tc.name)
		}
	}

	config := engineConfig()
	config.NumSim = -1
	if _, err := NewDynaQEngine(config); err == nil {
		t.Errorf("negative simulations: expected a configuration error")
	}
	config = engineConfig()
	config.BufferCapacity = 0
	if _, err := NewQMEEngine(config); err == nil {
		t.Errorf("zero capacity: expected a configuration error")
	}
	config = engineConfig()
	config.Temperature = 0
	if _, err := NewSoftMaxEngine(config); err == nil {
		t.Errorf("zero temperature: expected a configuration error")
	}
}

func TestObserveRejectsNextActionForOffPolicy(t *testing.T) {
	engine, err := NewQLearningEngine(engineConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = engine.Observe(Observation{
		State:      testState("s"),
		Action:     testAction("a0"),
		Reward:     1,
		NextState:  testState("s'"),
		NextAction: testAction("a1"),
	})
	if !errors.Is(err, ErrUnexpectedNextAction) {
		t.Errorf("expected ErrUnexpectedNextAction, got %v", err)
	}
}

func TestObserveRequiresNextActionForOnPolicy(t *testing.T) {
	engine, err := NewSarsaEngine(engineConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = engine.Observe(Observation{
		State:     testState("s"),
		Action:    testAction("a0"),
		Reward:    1,
		NextState: testState("s'"),
	})
	if !errors.Is(err, ErrNextActionRequired) {
		t.Errorf("expected ErrNextActionRequired, got %v", err)
	}
}

func TestObserveRoutesToLearner(t *testing.T) {
	engine, err := NewQLearningEngine(engineConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = engine.Observe(Observation{
		State:     testState("s"),
		Action:    testAction("a0"),
		Reward:    1,
		NextState: testState("s'"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val := engine.QTable().Get(testState("s"), testAction("a0")); !almostEqual(val, 0.5) {
		t.Errorf("expected 0.5 after one observation, got %f", val)
	}
}

func TestEngineOnPolicy(t *testing.T) {
	sarsa, _ := NewSarsaEngine(engineConfig())
	if !sarsa.OnPolicy() {
		t.Errorf("sarsa engine must be on-policy")
	}
	for _, build := range []func(*EngineConfig) (*Engine, error){NewQLearningEngine, NewDynaQEngine, NewQMEEngine} {
		engine, err := build(engineConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if engine.OnPolicy() {
			t.Errorf("off-policy engine reports on-policy")
		}
	}
}

func TestEngineReset(t *testing.T) {
	engine, _ := NewQLearningEngine(engineConfig())
	engine.Observe(Observation{
		State:     testState("s"),
		Action:    testAction("a0"),
		Reward:    1,
		NextState: testState("s'"),
	})
	engine.Reset()
	if val := engine.QTable().Get(testState("s"), testAction("a0")); val != 0 {
		t.Errorf("expected default after reset, got %f", val)
	}
}
