package rl

import (
	"context"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/jpardal/maze-rl/util"
)

// Generic dataset produced by analyzing traces
type DataSet interface{}

// Analyzer compresses the traces of one experiment run into a DataSet
type Analyzer interface {
	// run, episode, experiment name, trace
	Analyze(int, int, string, *Trace)
	// Resulting dataset
	DataSet() DataSet
	// Reset the analyzer between experiments
	Reset()
}

// Comparator differentiates between datasets with associated names
// run, experiment names, datasets
type Comparator func(int, []string, []DataSet)

func NoopComparator() Comparator {
	return func(int, []string, []DataSet) {}
}

// ProgressFunc observes finished episodes, used for live reporting
type ProgressFunc func(experiment string, episode int, trace *Trace)

// Experiment pairs a named engine with an environment
type Experiment struct {
	Name        string
	engine      *Engine
	environment Environment
}

func NewExperiment(name string, engine *Engine, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		engine:      engine,
		environment: environment,
	}
}

func (e *Experiment) Engine() *Engine {
	return e.engine
}

// Reset clears the learned state between runs
func (e *Experiment) Reset() {
	e.engine.Reset()
}

type experimentRunConfig struct {
	CurrentRun    int
	Episodes      int
	Horizon       int
	Analyzers     []Analyzer
	Context       context.Context
	RecordReturns bool
	RecordPath    string
	Progress      ProgressFunc
}

// Run the experiment for the configured number of episodes, feeding every
// finished trace to the analyzers
func (e *Experiment) Run(rConfig *experimentRunConfig) error {
	agent := NewAgent(&AgentConfig{
		Episodes:    rConfig.Episodes,
		Horizon:     rConfig.Horizon,
		Engine:      e.engine,
		Environment: e.environment,
	})

	for episode := 0; episode < rConfig.Episodes; episode++ {
		select {
		case <-rConfig.Context.Done():
			return rConfig.Context.Err()
		default:
		}

		trace, err := agent.RunEpisode()
		if err != nil {
			return fmt.Errorf("experiment %s, episode %d: %w", e.Name, episode, err)
		}

		for _, a := range rConfig.Analyzers {
			a.Analyze(rConfig.CurrentRun, episode, e.Name, trace)
		}
		if rConfig.Progress != nil {
			rConfig.Progress(e.Name, episode, trace)
		}
		if rConfig.RecordReturns {
			line := fmt.Sprintf("%d, %f, %d", episode, trace.TotalReward(), trace.Len())
			util.AppendToFile(path.Join(rConfig.RecordPath, "returns", e.Name+"_"+strconv.Itoa(rConfig.CurrentRun)+".txt"), line)
		}

		fmt.Printf("\rExperiment: %s, Episode: %d/%d", e.Name, episode+1, rConfig.Episodes)
	}
	fmt.Println("")
	return nil
}

// ComparisonConfig contains the configuration for the comparison
type ComparisonConfig struct {
	Runs     int // number of runs
	Episodes int // number of episodes
	Horizon  int // number of steps per episode

	RecordPath    string // path to store the results
	RecordReturns bool   // record per-episode returns to a file

	Progress ProgressFunc // optional live reporting hook
}

// Comparison runs several experiments and compares the analyzed datasets
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	cConfig     *ComparisonConfig
}

func NewComparison(config *ComparisonConfig) *Comparison {
	if config.RecordPath != "" {
		os.MkdirAll(config.RecordPath, 0777)
		if config.RecordReturns {
			os.MkdirAll(path.Join(config.RecordPath, "returns"), 0777)
		}
	}
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		cConfig:     config,
	}
}

// AddAnalysis adds an analyzer and comparator to the comparison
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the comparison
func (c *Comparison) Run(ctx context.Context) error {
	for run := 0; run < c.cConfig.Runs; run++ {
		fmt.Printf("Run %d\n", run+1)
		datasets := make(map[string][]DataSet)
		for name := range c.analyzers {
			datasets[name] = make([]DataSet, len(c.Experiments))
		}

		names := make([]string, len(c.Experiments))
		for i, e := range c.Experiments {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := e.Run(c.prepareRunConfig(ctx, run)); err != nil {
				return err
			}
			for name, a := range c.analyzers {
				datasets[name][i] = a.DataSet()
				a.Reset()
			}
			names[i] = e.Name
			if run < c.cConfig.Runs-1 {
				e.Reset()
			}
		}
		for name, comp := range c.comparators {
			comp(run, names, datasets[name])
		}
	}
	return nil
}

func (c *Comparison) prepareRunConfig(ctx context.Context, run int) *experimentRunConfig {
	rCfg := &experimentRunConfig{
		CurrentRun:    run,
		Episodes:      c.cConfig.Episodes,
		Horizon:       c.cConfig.Horizon,
		Analyzers:     make([]Analyzer, 0),
		Context:       ctx,
		RecordReturns: c.cConfig.RecordReturns,
		RecordPath:    c.cConfig.RecordPath,
		Progress:      c.cConfig.Progress,
	}
	for _, a := range c.analyzers {
		rCfg.Analyzers = append(rCfg.Analyzers, a)
	}
	return rCfg
}
