package maze

import (
	"fmt"
	"strings"

	"github.com/jpardal/maze-rl/rl"
)

const (
	wallCell  = '#'
	freeCell  = '.'
	entryCell = 'E'
	exitCell  = 'S'
)

// Maze is a grid environment parsed from a rune matrix. The agent starts at
// the entry and the episode ends at the exit. Moving into a wall or out of
// bounds keeps the agent in place and costs the collision penalty.
type Maze struct {
	rows  []string
	entry Position
	exit  Position

	// reward shaping, environment policy rather than engine behavior
	StepReward      float64
	CollisionReward float64
	ExitReward      float64
}

var _ rl.Environment = &Maze{}

// NewMaze parses the maze rows. Exactly one entry 'E' and one exit 'S' are
// required, all rows must have equal width.
func NewMaze(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze has no rows")
	}
	width := len(rows[0])
	entry := Position{-1, -1}
	exit := Position{-1, -1}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", i, len(row), width)
		}
		for j, cell := range row {
			switch cell {
			case wallCell, freeCell:
			case entryCell:
				if entry.Row != -1 {
					return nil, fmt.Errorf("duplicate entry at (%d, %d)", i, j)
				}
				entry = Position{i, j}
			case exitCell:
				if exit.Row != -1 {
					return nil, fmt.Errorf("duplicate exit at (%d, %d)", i, j)
				}
				exit = Position{i, j}
			default:
				return nil, fmt.Errorf("unknown cell %q at (%d, %d)", cell, i, j)
			}
		}
	}
	if entry.Row == -1 {
		return nil, fmt.Errorf("maze has no entry")
	}
	if exit.Row == -1 {
		return nil, fmt.Errorf("maze has no exit")
	}
	return &Maze{
		rows:            rows,
		entry:           entry,
		exit:            exit,
		StepReward:      -1,
		CollisionReward: -10,
		ExitReward:      1,
	}, nil
}

func (m *Maze) Reset() rl.State {
	return m.entry
}

func (m *Maze) Entry() Position {
	return m.entry
}

func (m *Maze) Exit() Position {
	return m.exit
}

func (m *Maze) Height() int {
	return len(m.rows)
}

func (m *Maze) Width() int {
	return len(m.rows[0])
}

func (m *Maze) Wall(p Position) bool {
	if p.Row < 0 || p.Row >= len(m.rows) || p.Col < 0 || p.Col >= len(m.rows[0]) {
		return true
	}
	return m.rows[p.Row][p.Col] == wallCell
}

func (m *Maze) Terminal(state rl.State) bool {
	pos, ok := state.(Position)
	return ok && pos == m.exit
}

func (m *Maze) Step(state rl.State, action rl.Action) (rl.State, float64) {
	pos := state.(Position)
	movement := action.(*Movement)
	next := Position{Row: pos.Row + movement.DRow, Col: pos.Col + movement.DCol}
	if m.Wall(next) {
		return pos, m.CollisionReward
	}
	if next == m.exit {
		return next, m.ExitReward
	}
	return next, m.StepReward
}

// Position of the agent in the maze
type Position struct {
	Row int
	Col int
}

var _ rl.State = Position{}

func (p Position) Hash() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Movement is one of the four cardinal moves
type Movement struct {
	Direction string
	DRow      int
	DCol      int
}

var _ rl.Action = &Movement{}

func (m *Movement) Hash() string {
	return m.Direction
}

var (
	MovementUp    = &Movement{"Up", -1, 0}
	MovementDown  = &Movement{"Down", 1, 0}
	MovementLeft  = &Movement{"Left", 0, -1}
	MovementRight = &Movement{"Right", 0, 1}

	AllMovements []rl.Action = []rl.Action{
		MovementUp,
		MovementDown,
		MovementLeft,
		MovementRight,
	}
)

// DefaultRows is the 10x10 layout used by the maze benchmark
var DefaultRows = []string{
	"##########",
	"#E..#....#",
	"#.#.#.##.#",
	"#.#...#..#",
	"#.###.#.##",
	"#...#....#",
	"###.####.#",
	"#......#.#",
	"#.####.#S#",
	"##########",
}

// String renders the raw maze layout
func (m *Maze) String() string {
	return strings.Join(m.rows, "\n")
}
