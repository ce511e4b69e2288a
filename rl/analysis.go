package rl

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ReturnAnalyzer collects the undiscounted return of each episode
type ReturnAnalyzer struct {
	returns []float64
}

var _ Analyzer = &ReturnAnalyzer{}

func NewReturnAnalyzer() *ReturnAnalyzer {
	return &ReturnAnalyzer{
		returns: make([]float64, 0),
	}
}

func (r *ReturnAnalyzer) Analyze(run, episode int, name string, trace *Trace) {
	r.returns = append(r.returns, trace.TotalReward())
}

func (r *ReturnAnalyzer) DataSet() DataSet {
	return r.returns
}

func (r *ReturnAnalyzer) Reset() {
	r.returns = make([]float64, 0)
}

// StepsAnalyzer collects the number of steps taken in each episode
type StepsAnalyzer struct {
	steps []int
}

var _ Analyzer = &StepsAnalyzer{}

func NewStepsAnalyzer() *StepsAnalyzer {
	return &StepsAnalyzer{
		steps: make([]int, 0),
	}
}

func (s *StepsAnalyzer) Analyze(run, episode int, name string, trace *Trace) {
	s.steps = append(s.steps, trace.Len())
}

func (s *StepsAnalyzer) DataSet() DataSet {
	return s.steps
}

func (s *StepsAnalyzer) Reset() {
	s.steps = make([]int, 0)
}

// ReturnPlotter renders the per-episode returns of each experiment as a
// learning curve, one png per run
func ReturnPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Learning curves"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Return"
		for i := 0; i < len(names); i++ {
			returns := ds[i].([]float64)
			points := make(plotter.XYs, len(returns))
			for j, v := range returns {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			fmt.Printf("Final return: %f for experiment: %s\n", returns[len(returns)-1], names[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_returns.png"))
	}
}

// StepsPlotter renders the per-episode step counts of each experiment
func StepsPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Steps per episode"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Steps"
		for i := 0; i < len(names); i++ {
			steps := ds[i].([]int)
			points := make(plotter.XYs, len(steps))
			for j, v := range steps {
				points[j] = plotter.XY{
					X: float64(j),
					Y: float64(v),
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_steps.png"))
	}
}
