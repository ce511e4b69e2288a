package rl

import (
	"math/rand"
	"time"
)

// ExperienceBuffer is a bounded FIFO store of observed transitions.
// At capacity, appending evicts the oldest transition.
type ExperienceBuffer struct {
	transitions []Transition
	capacity    int
	rand        *rand.Rand
}

func NewExperienceBuffer(capacity int) *ExperienceBuffer {
	return &ExperienceBuffer{
		transitions: make([]Transition, 0, capacity),
		capacity:    capacity,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *ExperienceBuffer) Append(t Transition) {
	if len(b.transitions) == b.capacity {
		b.transitions = b.transitions[1:]
	}
	b.transitions = append(b.transitions, t)
}

func (b *ExperienceBuffer) Len() int {
	return len(b.transitions)
}

// Sample returns up to n transitions uniformly at random without replacement.
// Asking for more than the buffer holds returns everything present.
func (b *ExperienceBuffer) Sample(n int) []Transition {
	if n > len(b.transitions) {
		n = len(b.transitions)
	}
	indices := b.rand.Perm(len(b.transitions))
	samples := make([]Transition, n)
	for i := 0; i < n; i++ {
		samples[i] = b.transitions[indices[i]]
	}
	return samples
}

// QME extends QLearning with experience replay: each real observation is
// appended to the buffer and followed by up to numSim replayed updates
// sampled from it.
type QME struct {
	*QLearning
	buffer *ExperienceBuffer
	numSim int
}

var _ Learner = &QME{}

func NewQME(qTable *QTable, strategy Strategy, alpha, gamma float64, numSim, capacity int) *QME {
	return &QME{
		QLearning: NewQLearning(qTable, strategy, alpha, gamma),
		buffer:    NewExperienceBuffer(capacity),
		numSim:    numSim,
	}
}

func (q *QME) Reset() {
	q.buffer = NewExperienceBuffer(q.buffer.capacity)
}

func (q *QME) Learn(state State, action Action, reward float64, nextState State) error {
	if err := q.QLearning.Learn(state, action, reward, nextState); err != nil {
		return err
	}
	q.buffer.Append(Transition{State: state, Action: action, Reward: reward, NextState: nextState})
	for _, t := range q.buffer.Sample(q.numSim) {
		if err := q.QLearning.Learn(t.State, t.Action, t.Reward, t.NextState); err != nil {
			return err
		}
	}
	return nil
}
