package rl

// State of the system that the learner observes
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
}

// An Action that the learner can take
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}

// Environment that the agent interacts with.
// The engine accepts any reward value and any state the environment produces.
type Environment interface {
	// Reset called at the start of each episode
	Reset() State
	// Step executes the action from the given state,
	// returns the next state and the reward
	Step(State, Action) (State, float64)
	// Terminal reports whether the state ends the episode
	Terminal(State) bool
}

// Transition is a single observed step (s, a, r, s')
type Transition struct {
	State     State
	Action    Action
	Reward    float64
	NextState State
}

func key(s State, a Action) string {
	return s.Hash() + "/" + a.Hash()
}
