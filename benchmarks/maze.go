package benchmarks

import (
	"context"
	"fmt"
	"path"

	"github.com/jpardal/maze-rl/maze"
	"github.com/jpardal/maze-rl/rl"
	"github.com/jpardal/maze-rl/util"
	"github.com/spf13/cobra"
)

// MazeBenchmark compares the learners on a maze environment
func MazeBenchmark(episodes, horizon int, saveFile string, runs int, configFile string, epsilon, alpha, gamma float64, numSim, capacity int, ctx context.Context) error {
	var m *maze.Maze
	var err error
	if configFile != "" {
		m, err = maze.LoadConfig(configFile)
	} else {
		m, err = maze.NewMaze(maze.DefaultRows)
	}
	if err != nil {
		return err
	}

	engineConfig := &rl.EngineConfig{
		Actions:        maze.AllMovements,
		DefaultQ:       0,
		Epsilon:        epsilon,
		Alpha:          alpha,
		Gamma:          gamma,
		NumSim:         numSim,
		BufferCapacity: capacity,
		Temperature:    1,
	}

	qLearning, err := rl.NewQLearningEngine(engineConfig)
	if err != nil {
		return err
	}
	sarsa, err := rl.NewSarsaEngine(engineConfig)
	if err != nil {
		return err
	}
	dynaQ, err := rl.NewDynaQEngine(engineConfig)
	if err != nil {
		return err
	}
	qme, err := rl.NewQMEEngine(engineConfig)
	if err != nil {
		return err
	}
	softMax, err := rl.NewSoftMaxEngine(engineConfig)
	if err != nil {
		return err
	}

	c := rl.NewComparison(&rl.ComparisonConfig{
		Runs:          runs,
		Episodes:      episodes,
		Horizon:       horizon,
		RecordPath:    saveFile,
		RecordReturns: true,
	})
	c.AddAnalysis("Returns", rl.NewReturnAnalyzer(), rl.ReturnPlotter(path.Join(saveFile, "plots")))
	c.AddAnalysis("Steps", rl.NewStepsAnalyzer(), rl.StepsPlotter(path.Join(saveFile, "plots")))

	c.AddExperiment(rl.NewExperiment("QLearning", qLearning, m))
	c.AddExperiment(rl.NewExperiment("SARSA", sarsa, m))
	c.AddExperiment(rl.NewExperiment("DynaQ", dynaQ, m))
	c.AddExperiment(rl.NewExperiment("QME", qme, m))
	c.AddExperiment(rl.NewExperiment("SoftMax", softMax, m))

	if err := c.Run(ctx); err != nil {
		return err
	}

	for _, e := range c.Experiments {
		greedy, total := maze.GreedyPath(m, e.Engine(), horizon)
		rendered := m.Render(nil, nil, greedy)
		summary := fmt.Sprintf("steps: %d, total reward: %f", len(greedy)-1, total)
		fmt.Printf("\nGreedy path for %s:\n%s%s\n", e.Name, rendered, summary)
		util.WriteToFile(path.Join(saveFile, "greedy", e.Name+".txt"), rendered, summary)
	}
	return nil
}

func MazeCommand() *cobra.Command {
	var configFile string
	var epsilon float64
	var alpha float64
	var gamma float64
	var numSim int
	var capacity int

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Compare the learners on a maze",
		RunE: func(cmd *cobra.Command, args []string) error {
			return MazeBenchmark(episodes, horizon, saveFile, runs, configFile, epsilon, alpha, gamma, numSim, capacity, context.Background())
		},
	}
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML maze definition (builtin layout when empty)")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", 0.1, "Exploration probability")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", 0.1, "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", 0.9, "Discount factor")
	cmd.PersistentFlags().IntVar(&numSim, "simulations", 20, "Simulated updates per observation (DynaQ, QME)")
	cmd.PersistentFlags().IntVar(&capacity, "capacity", 100, "Experience buffer capacity (QME)")
	return cmd
}
