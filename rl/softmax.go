package rl

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftMax samples actions from a Boltzmann distribution over the estimates.
// Higher temperature flattens the distribution towards uniform.
type SoftMax struct {
	qTable      *QTable
	actions     []Action
	temperature float64
	rand        *rand.Rand
}

var _ Strategy = &SoftMax{}

func NewSoftMax(qTable *QTable, actions []Action, temperature float64) *SoftMax {
	return &SoftMax{
		qTable:      qTable,
		actions:     actions,
		temperature: temperature,
		rand:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (s *SoftMax) Actions() []Action {
	return s.actions
}

func (s *SoftMax) BestAction(state State, actions []Action) Action {
	shuffled := make([]Action, len(actions))
	copy(shuffled, actions)
	s.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	best := shuffled[0]
	bestVal := s.qTable.Get(state, best)
	for _, a := range shuffled[1:] {
		if val := s.qTable.Get(state, a); val > bestVal {
			best = a
			bestVal = val
		}
	}
	return best
}

func (s *SoftMax) SelectAction(state State) Action {
	sum := float64(0)
	vals := make([]float64, len(s.actions))
	for i, action := range s.actions {
		exp := math.Exp(s.qTable.Get(state, action) / s.temperature)
		vals[i] = exp
		sum += exp
	}

	weights := make([]float64, len(s.actions))
	for i, v := range vals {
		weights[i] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, s.rand).Take()
	if !ok {
		// degenerate weights, fall back to the greedy choice
		return s.BestAction(state, s.actions)
	}
	return s.actions[i]
}
