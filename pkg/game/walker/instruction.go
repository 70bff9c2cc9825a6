package walker

import "fmt"

// Turn is a quarter turn in place.
type Turn int

// Turn constants
const (
	TurnLeft Turn = iota
	TurnRight
)

// String returns the instruction letter for the turn
func (t Turn) String() string {
	if t == TurnLeft {
		return "L"
	}
	return "R"
}

// Kind distinguishes moves from turns.
type Kind int

// Instruction kinds
const (
	KindForward Kind = iota
	KindTurn
)

// Instruction is either Forward(n) or Turn(left|right).
type Instruction struct {
	Kind  Kind
	Steps int
	Turn  Turn
}

// Forward returns an instruction to walk n unit steps.
func Forward(n int) Instruction {
	return Instruction{Kind: KindForward, Steps: n}
}

// Rotate returns an instruction to turn in place.
func Rotate(t Turn) Instruction {
	return Instruction{Kind: KindTurn, Turn: t}
}

func (i Instruction) String() string {
	if i.Kind == KindTurn {
		return i.Turn.String()
	}
	return fmt.Sprintf("%d", i.Steps)
}
