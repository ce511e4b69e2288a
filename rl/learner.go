package rl

// Learner updates value estimates from observed transitions using the
// temporal difference rule
//
//	Q(s,a) <- Q(s,a) + alpha * (r + gamma*Q(s',a*) - Q(s,a))
//
// Concrete learners differ only in how a* is chosen.
type Learner interface {
	// Learn observes a transition (s, a, r, s') and updates the estimates
	Learn(state State, action Action, reward float64, nextState State) error
}

// OnPolicyLearner requires the action the agent will actually take in the
// next state. The coordinator supplies it only for learners that implement
// this interface.
type OnPolicyLearner interface {
	Learner
	LearnOnPolicy(state State, action Action, reward float64, nextState State, nextAction Action) error
}

// QLearning is the off-policy learner: a* is the greedy action in the next
// state under the current estimates, independent of the behavior policy.
type QLearning struct {
	qTable   *QTable
	strategy Strategy
	alpha    float64
	gamma    float64
}

var _ Learner = &QLearning{}

func NewQLearning(qTable *QTable, strategy Strategy, alpha, gamma float64) *QLearning {
	return &QLearning{
		qTable:   qTable,
		strategy: strategy,
		alpha:    alpha,
		gamma:    gamma,
	}
}

func (q *QLearning) Learn(state State, action Action, reward float64, nextState State) error {
	nextAction := q.strategy.BestAction(nextState, q.strategy.Actions())
	q.update(state, action, reward, nextState, nextAction)
	return nil
}

func (q *QLearning) update(state State, action Action, reward float64, nextState State, nextAction Action) {
	cur := q.qTable.Get(state, action)
	next := q.qTable.Get(nextState, nextAction)
	q.qTable.Set(state, action, cur+q.alpha*(reward+q.gamma*next-cur))
}

// Sarsa is the on-policy learner: a* is the action the behavior policy has
// already committed to for the next state.
type Sarsa struct {
	qTable *QTable
	alpha  float64
	gamma  float64
}

var _ OnPolicyLearner = &Sarsa{}

func NewSarsa(qTable *QTable, alpha, gamma float64) *Sarsa {
	return &Sarsa{
		qTable: qTable,
		alpha:  alpha,
		gamma:  gamma,
	}
}

// Learn without the next action is a contract violation for Sarsa
func (s *Sarsa) Learn(state State, action Action, reward float64, nextState State) error {
	return ErrNextActionRequired
}

func (s *Sarsa) LearnOnPolicy(state State, action Action, reward float64, nextState State, nextAction Action) error {
	cur := s.qTable.Get(state, action)
	next := s.qTable.Get(nextState, nextAction)
	s.qTable.Set(state, action, cur+s.alpha*(reward+s.gamma*next-cur))
	return nil
}
