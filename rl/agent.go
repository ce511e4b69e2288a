package rl

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Engine      *Engine
	Environment Environment
}

// Agent drives the engine against the environment for a number of episodes
type Agent struct {
	config      *AgentConfig
	engine      *Engine
	environment Environment
}

func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		engine:      config.Engine,
		environment: config.Environment,
	}
}

// Run the agent for the configured number of episodes and return the traces
func (a *Agent) Run() ([]*Trace, error) {
	traces := make([]*Trace, a.config.Episodes)
	for i := 0; i < a.config.Episodes; i++ {
		trace, err := a.RunEpisode()
		if err != nil {
			return nil, err
		}
		traces[i] = trace
	}
	return traces, nil
}

// RunEpisode runs a single horizon-bounded episode. For on-policy learners
// the next action is chosen before the observation is reported and carried
// into the following step, so the learner sees the action actually taken.
func (a *Agent) RunEpisode() (*Trace, error) {
	state := a.environment.Reset()
	trace := NewTrace()
	action := a.engine.SelectAction(state)

	for i := 0; i < a.config.Horizon; i++ {
		nextState, reward := a.environment.Step(state, action)

		obs := Observation{
			State:     state,
			Action:    action,
			Reward:    reward,
			NextState: nextState,
		}
		var nextAction Action
		if a.engine.OnPolicy() {
			nextAction = a.engine.SelectAction(nextState)
			obs.NextAction = nextAction
		}
		if err := a.engine.Observe(obs); err != nil {
			return nil, err
		}
		trace.Append(state, action, reward, nextState)

		if a.environment.Terminal(nextState) {
			break
		}
		state = nextState
		if nextAction != nil {
			action = nextAction
		} else {
			action = a.engine.SelectAction(nextState)
		}
	}
	return trace, nil
}
