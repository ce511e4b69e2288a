package maze

import (
	"strings"

	"github.com/jpardal/maze-rl/rl"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

// Render draws the maze with the agent position, the visited cells and an
// optional highlighted path
func (m *Maze) Render(agent *Position, visited []Position, highlight []Position) string {
	visitedSet := make(map[Position]bool)
	for _, p := range visited {
		visitedSet[p] = true
	}
	highlightSet := make(map[Position]bool)
	for _, p := range highlight {
		highlightSet[p] = true
	}

	var b strings.Builder
	for i, row := range m.rows {
		for j, cell := range row {
			pos := Position{i, j}
			switch {
			case agent != nil && pos == *agent:
				b.WriteString(colorRed + " A " + colorReset)
			case highlightSet[pos]:
				b.WriteString(colorCyan + " O " + colorReset)
			case visitedSet[pos]:
				b.WriteString(colorYellow + " * " + colorReset)
			case cell == wallCell:
				b.WriteString(" # ")
			case cell == entryCell:
				b.WriteString(colorGreen + " E " + colorReset)
			case cell == exitCell:
				b.WriteString(colorBlue + " S " + colorReset)
			default:
				b.WriteString(" . ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// GreedyPath walks the greedy policy from the entry and returns the visited
// positions. The walk is cut off after maxSteps to stay finite when the
// learned policy loops.
func GreedyPath(m *Maze, engine *rl.Engine, maxSteps int) ([]Position, float64) {
	state := m.Reset()
	path := []Position{state.(Position)}
	total := float64(0)
	for i := 0; i < maxSteps && !m.Terminal(state); i++ {
		action := engine.BestAction(state)
		next, reward := m.Step(state, action)
		total += reward
		state = next
		path = append(path, state.(Position))
	}
	return path, total
}
