package rl

import (
	"math/rand"
	"time"
)

// Strategy chooses actions based on the current value estimates
type Strategy interface {
	// BestAction returns the candidate with the highest estimate.
	// Ties are broken uniformly at random.
	BestAction(State, []Action) Action
	// SelectAction mixes exploitation and exploration over the full action set
	SelectAction(State) Action
	// Actions returns the full action set the strategy was built over
	Actions() []Action
}

// EGreedy explores with probability epsilon and exploits otherwise
type EGreedy struct {
	qTable  *QTable
	actions []Action
	epsilon float64
	rand    *rand.Rand
}

var _ Strategy = &EGreedy{}

func NewEGreedy(qTable *QTable, actions []Action, epsilon float64) *EGreedy {
	return &EGreedy{
		qTable:  qTable,
		actions: actions,
		epsilon: epsilon,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (e *EGreedy) Actions() []Action {
	return e.actions
}

// BestAction shuffles a copy of the candidates before the max scan so that
// a stable scan picks uniformly among tied estimates. Without the shuffle,
// ties would always resolve to the first declared action.
func (e *EGreedy) BestAction(state State, actions []Action) Action {
	shuffled := make([]Action, len(actions))
	copy(shuffled, actions)
	e.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	best := shuffled[0]
	bestVal := e.qTable.Get(state, best)
	for _, a := range shuffled[1:] {
		if val := e.qTable.Get(state, a); val > bestVal {
			best = a
			bestVal = val
		}
	}
	return best
}

func (e *EGreedy) SelectAction(state State) Action {
	if e.rand.Float64() < e.epsilon {
		i := e.rand.Intn(len(e.actions))
		return e.actions[i]
	}
	return e.BestAction(state, e.actions)
}
