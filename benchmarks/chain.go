package benchmarks

import (
	"context"
	"path"

	"github.com/jpardal/maze-rl/chain"
	"github.com/jpardal/maze-rl/rl"
	"github.com/spf13/cobra"
)

// ChainBenchmark runs the learners on a short deterministic chain, a quick
// convergence smoke test
func ChainBenchmark(episodes, horizon int, saveFile string, runs, length int, ctx context.Context) error {
	env := chain.NewEnvironment(length)

	engineConfig := &rl.EngineConfig{
		Actions:        chain.AllMoves,
		DefaultQ:       0,
		Epsilon:        0.1,
		Alpha:          0.5,
		Gamma:          0.9,
		NumSim:         10,
		BufferCapacity: 50,
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

	c := rl.NewComparison(&rl.ComparisonConfig{
		Runs:       runs,
		Episodes:   episodes,
		Horizon:    horizon,
		RecordPath: saveFile,
	})
	c.AddAnalysis("Steps", rl.NewStepsAnalyzer(), rl.StepsPlotter(path.Join(saveFile, "plots")))

	c.AddExperiment(rl.NewExperiment("QLearning", qLearning, env))
	c.AddExperiment(rl.NewExperiment("SARSA", sarsa, env))
	c.AddExperiment(rl.NewExperiment("DynaQ", dynaQ, env))
	c.AddExperiment(rl.NewExperiment("QME", qme, env))

	return c.Run(ctx)
}

func ChainCommand() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Compare the learners on a deterministic chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ChainBenchmark(episodes, horizon, saveFile, runs, length, context.Background())
		},
	}
	cmd.PersistentFlags().IntVar(&length, "length", 4, "Number of states in the chain")
	return cmd
}
