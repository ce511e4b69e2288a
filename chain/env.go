package chain

import (
	"strconv"

	"github.com/jpardal/maze-rl/rl"
)

// Environment is a deterministic chain s0 -> s1 -> ... -> goal. Forward moves
// advance one cell, backward moves retreat one, every step costs StepReward
// and reaching the goal pays GoalReward.
type Environment struct {
	Length     int
	StepReward float64
	GoalReward float64
}

var _ rl.Environment = &Environment{}

func NewEnvironment(length int) *Environment {
	return &Environment{
		Length:     length,
		StepReward: -1,
		GoalReward: 10,
	}
}

func (e *Environment) Reset() rl.State {
	return Cell(0)
}

func (e *Environment) Terminal(state rl.State) bool {
	cell, ok := state.(Cell)
	return ok && int(cell) == e.Length-1
}

func (e *Environment) Step(state rl.State, action rl.Action) (rl.State, float64) {
	cell := int(state.(Cell))
	switch action.(*Move).Direction {
	case "Forward":
		if cell < e.Length-1 {
			cell++
		}
	case "Backward":
		if cell > 0 {
			cell--
		}
	}
	if cell == e.Length-1 {
		return Cell(cell), e.GoalReward
	}
	return Cell(cell), e.StepReward
}

type Cell int

var _ rl.State = Cell(0)

func (c Cell) Hash() string {
	return strconv.Itoa(int(c))
}

type Move struct {
	Direction string
}

var _ rl.Action = &Move{}

func (m *Move) Hash() string {
	return m.Direction
}

var (
	MoveForward  = &Move{"Forward"}
	MoveBackward = &Move{"Backward"}

	AllMoves []rl.Action = []rl.Action{MoveForward, MoveBackward}
)
