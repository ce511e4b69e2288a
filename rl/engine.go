package rl

import (
	"errors"
	"fmt"
)

var (
	// ErrNextActionRequired signals an on-policy update invoked without the next action
	ErrNextActionRequired = errors.New("on-policy learner requires the next action")
	// ErrUnexpectedNextAction signals a next action passed to an off-policy learner
	ErrUnexpectedNextAction = errors.New("off-policy learner must not receive a next action")
)

// Observation is a raw step reported by the driver loop.
// NextAction is set only when the active learner is on-policy.
type Observation struct {
	State      State
	Action     Action
	Reward     float64
	NextState  State
	NextAction Action
}

// Engine wires a strategy and a learner over a shared value table and is the
// single entry point for the driver loop.
type Engine struct {
	strategy Strategy
	learner  Learner
	qTable   *QTable
}

// NewEngine validates that the learner and strategy agree before wiring them
func NewEngine(strategy Strategy, learner Learner) (*Engine, error) {
	if strategy == nil || learner == nil {
		return nil, errors.New("engine requires both a strategy and a learner")
	}
	if len(strategy.Actions()) == 0 {
		return nil, errors.New("strategy has an empty action set")
	}
	return &Engine{
		strategy: strategy,
		learner:  learner,
	}, nil
}

// SelectAction delegates to the active strategy
func (e *Engine) SelectAction(state State) Action {
	return e.strategy.SelectAction(state)
}

// BestAction returns the greedy action for the state, used to read out the
// learned policy after training
func (e *Engine) BestAction(state State) Action {
	return e.strategy.BestAction(state, e.strategy.Actions())
}

type resetter interface {
	Reset()
}

// Reset clears the learned estimates and any learner-side stores, so the
// same engine can be reused for a fresh run
func (e *Engine) Reset() {
	if e.qTable != nil {
		e.qTable.Reset()
	}
	if r, ok := e.learner.(resetter); ok {
		r.Reset()
	}
}

// QTable exposes the shared value table, nil when the engine was wired
// manually through NewEngine
func (e *Engine) QTable() *QTable {
	return e.qTable
}

// OnPolicy reports whether the active learner needs the next action
func (e *Engine) OnPolicy() bool {
	_, ok := e.learner.(OnPolicyLearner)
	return ok
}

// Observe forwards the observation to the active learner. The next action
// must be present exactly when the learner is on-policy; a mismatch is a
// caller contract violation and is rejected rather than ignored.
func (e *Engine) Observe(obs Observation) error {
	if onPolicy, ok := e.learner.(OnPolicyLearner); ok {
		if obs.NextAction == nil {
			return ErrNextActionRequired
		}
		return onPolicy.LearnOnPolicy(obs.State, obs.Action, obs.Reward, obs.NextState, obs.NextAction)
	}
	if obs.NextAction != nil {
		return ErrUnexpectedNextAction
	}
	return e.learner.Learn(obs.State, obs.Action, obs.Reward, obs.NextState)
}

func newEngineWith(qTable *QTable, strategy Strategy, learner Learner) (*Engine, error) {
	e, err := NewEngine(strategy, learner)
	if err != nil {
		return nil, err
	}
	e.qTable = qTable
	return e, nil
}

// EngineConfig enumerates the knobs for building a complete engine
type EngineConfig struct {
	Actions  []Action
	DefaultQ float64
	Epsilon  float64
	Alpha    float64
	Gamma    float64
	// number of simulated updates per real observation (DynaQ, QME)
	NumSim int
	// experience buffer capacity (QME)
	BufferCapacity int
	// Boltzmann temperature (softmax engines only)
	Temperature float64
}

func (c *EngineConfig) validate(kind string) error {
	if len(c.Actions) == 0 {
		return errors.New("action set must be non-empty")
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0,1], got %f", c.Epsilon)
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0,1], got %f", c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("gamma must be in [0,1], got %f", c.Gamma)
	}
	switch kind {
	case "dyna":
		if c.NumSim < 0 {
			return fmt.Errorf("number of simulations must be non-negative, got %d", c.NumSim)
		}
	case "replay":
		if c.NumSim < 0 {
			return fmt.Errorf("number of simulations must be non-negative, got %d", c.NumSim)
		}
		if c.BufferCapacity <= 0 {
			return fmt.Errorf("buffer capacity must be positive, got %d", c.BufferCapacity)
		}
	}
	return nil
}

// NewQLearningEngine builds an off-policy engine with an epsilon-greedy strategy
func NewQLearningEngine(config *EngineConfig) (*Engine, error) {
	if err := config.validate("qlearning"); err != nil {
		return nil, err
	}
	qTable := NewQTable(config.DefaultQ)
	strategy := NewEGreedy(qTable, config.Actions, config.Epsilon)
	return newEngineWith(qTable, strategy, NewQLearning(qTable, strategy, config.Alpha, config.Gamma))
}

// NewSarsaEngine builds an on-policy engine with an epsilon-greedy strategy
func NewSarsaEngine(config *EngineConfig) (*Engine, error) {
	if err := config.validate("sarsa"); err != nil {
		return nil, err
	}
	qTable := NewQTable(config.DefaultQ)
	strategy := NewEGreedy(qTable, config.Actions, config.Epsilon)
	return newEngineWith(qTable, strategy, NewSarsa(qTable, config.Alpha, config.Gamma))
}

// NewSoftMaxEngine builds an off-policy engine with Boltzmann exploration
func NewSoftMaxEngine(config *EngineConfig) (*Engine, error) {
	if err := config.validate("softmax"); err != nil {
		return nil, err
	}
	if config.Temperature <= 0 {
		return nil, fmt.Errorf("temperature must be positive, got %f", config.Temperature)
	}
	qTable := NewQTable(config.DefaultQ)
	strategy := NewSoftMax(qTable, config.Actions, config.Temperature)
	return newEngineWith(qTable, strategy, NewQLearning(qTable, strategy, config.Alpha, config.Gamma))
}

// NewDynaQEngine builds a model-based engine with simulated replay
func NewDynaQEngine(config *EngineConfig) (*Engine, error) {
	if err := config.validate("dyna"); err != nil {
		return nil, err
	}
	qTable := NewQTable(config.DefaultQ)
	strategy := NewEGreedy(qTable, config.Actions, config.Epsilon)
	return newEngineWith(qTable, strategy, NewDynaQ(qTable, strategy, config.Alpha, config.Gamma, config.NumSim))
}

// NewQMEEngine builds an experience-replay engine
func NewQMEEngine(config *EngineConfig) (*Engine, error) {
	if err := config.validate("replay"); err != nil {
		return nil, err
	}
	qTable := NewQTable(config.DefaultQ)
	strategy := NewEGreedy(qTable, config.Actions, config.Epsilon)
	return newEngineWith(qTable, strategy, NewQME(qTable, strategy, config.Alpha, config.Gamma, config.NumSim, config.BufferCapacity))
}
