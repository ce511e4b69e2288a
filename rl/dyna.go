package rl

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyModel is returned when sampling a model with no recorded transitions
var ErrEmptyModel = errors.New("transition model is empty")

// TransitionModel keeps a deterministic summary of the environment: the most
// recently observed outcome for each (state, action) pair. Repeated
// observations overwrite the previous outcome.
type TransitionModel struct {
	transitions map[string]Transition
	keys        []string
	rand        *rand.Rand
}

func NewTransitionModel() *TransitionModel {
	return &TransitionModel{
		transitions: make(map[string]Transition),
		keys:        make([]string, 0),
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m *TransitionModel) Record(t Transition) {
	k := key(t.State, t.Action)
	if _, ok := m.transitions[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.transitions[k] = t
}

func (m *TransitionModel) Len() int {
	return len(m.keys)
}

// Sample returns a uniformly random recorded transition.
// Sampling before any observation is a precondition failure.
func (m *TransitionModel) Sample() (Transition, error) {
	if len(m.keys) == 0 {
		return Transition{}, ErrEmptyModel
	}
	k := m.keys[m.rand.Intn(len(m.keys))]
	return m.transitions[k], nil
}

// DynaQ extends QLearning with a learned transition model. Each real
// observation is followed by numSim simulated updates drawn from the model,
// re-running the same off-policy update rule.
type DynaQ struct {
	*QLearning
	model  *TransitionModel
	numSim int
}

var _ Learner = &DynaQ{}

func NewDynaQ(qTable *QTable, strategy Strategy, alpha, gamma float64, numSim int) *DynaQ {
	return &DynaQ{
		QLearning: NewQLearning(qTable, strategy, alpha, gamma),
		model:     NewTransitionModel(),
		numSim:    numSim,
	}
}

func (d *DynaQ) Learn(state State, action Action, reward float64, nextState State) error {
	if err := d.QLearning.Learn(state, action, reward, nextState); err != nil {
		return err
	}
	d.model.Record(Transition{State: state, Action: action, Reward: reward, NextState: nextState})
	return d.simulate()
}

func (d *DynaQ) Reset() {
	d.model = NewTransitionModel()
}

func (d *DynaQ) simulate() error {
	for i := 0; i < d.numSim; i++ {
		t, err := d.model.Sample()
		if err != nil {
			return err
		}
		if err := d.QLearning.Learn(t.State, t.Action, t.Reward, t.NextState); err != nil {
			return err
		}
	}
	return nil
}
