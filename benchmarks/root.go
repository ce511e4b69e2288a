package benchmarks

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	saveFile string
	runs     int
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "maze-rl",
		Short: "Tabular reinforcement learning benchmarks",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 200, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 500, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	// adding the subcommands here
	rootCommand.AddCommand(MazeCommand())
	rootCommand.AddCommand(ChainCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}
