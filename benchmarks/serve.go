package benchmarks

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/jpardal/maze-rl/maze"
	"github.com/jpardal/maze-rl/rl"
	"github.com/spf13/cobra"
)

// experimentProgress is a snapshot of one experiment's training state
type experimentProgress struct {
	Experiment  string  `json:"experiment"`
	Episode     int     `json:"episode"`
	LastReturn  float64 `json:"last_return"`
	LastSteps   int     `json:"last_steps"`
	BestReturn  float64 `json:"best_return"`
	TotalReward float64 `json:"total_reward"`
}

// progressTracker aggregates episode results for the HTTP endpoint.
// Updates arrive from the driver loop, reads from gin handlers.
type progressTracker struct {
	mu       sync.Mutex
	order    []string
	progress map[string]*experimentProgress
}

func newProgressTracker() *progressTracker {
	return &progressTracker{
		order:    make([]string, 0),
		progress: make(map[string]*experimentProgress),
	}
}

func (t *progressTracker) update(experiment string, episode int, trace *rl.Trace) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.progress[experiment]
	if !ok {
		p = &experimentProgress{Experiment: experiment}
		t.progress[experiment] = p
		t.order = append(t.order, experiment)
	}
	ret := trace.TotalReward()
	p.Episode = episode + 1
	p.LastReturn = ret
	p.LastSteps = trace.Len()
	p.TotalReward += ret
	if p.Episode == 1 || ret > p.BestReturn {
		p.BestReturn = ret
	}
}

func (t *progressTracker) snapshot() []experimentProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]experimentProgress, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.progress[name])
	}
	return out
}

// ServeBenchmark runs the maze comparison while exposing live progress over HTTP
func ServeBenchmark(episodes, horizon int, saveFile string, runs int, addr string, ctx context.Context) error {
	m, err := maze.NewMaze(maze.DefaultRows)
	if err != nil {
		return err
	}

	engineConfig := &rl.EngineConfig{
		Actions:        maze.AllMovements,
		DefaultQ:       0,
		Epsilon:        0.1,
		Alpha:          0.1,
		Gamma:          0.9,
		NumSim:         20,
		BufferCapacity: 100,
	}
	qLearning, err := rl.NewQLearningEngine(engineConfig)
	if err != nil {
		return err
	}
	dynaQ, err := rl.NewDynaQEngine(engineConfig)
	if err != nil {
		return err
	}

	tracker := newProgressTracker()
	c := rl.NewComparison(&rl.ComparisonConfig{
		Runs:       runs,
		Episodes:   episodes,
		Horizon:    horizon,
		RecordPath: saveFile,
		Progress:   tracker.update,
	})
	c.AddAnalysis("Returns", rl.NewReturnAnalyzer(), rl.NoopComparator())
	c.AddExperiment(rl.NewExperiment("QLearning", qLearning, m))
	c.AddExperiment(rl.NewExperiment("DynaQ", dynaQ, m))

	router := gin.Default()
	router.GET("/progress", func(gCtx *gin.Context) {
		gCtx.JSON(http.StatusOK, tracker.snapshot())
	})
	server := &http.Server{Addr: addr, Handler: router}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("progress server: %v\n", err)
		}
	}()
	defer server.Shutdown(context.Background())

	return c.Run(ctx)
}

func ServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the maze comparison with a live progress endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ServeBenchmark(episodes, horizon, saveFile, runs, addr, context.Background())
		},
	}
	cmd.PersistentFlags().StringVar(&addr, "addr", ":8080", "Address for the progress endpoint")
	return cmd
}
