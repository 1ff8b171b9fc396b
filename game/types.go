package game

import "fmt"

const (
	BoardSize = 9 // Cells per side of the board
	MaxStack  = 3 // Maximum pieces stacked on one cell
)

// EntityID identifies one piece instance within a session. IDs are dense
// small integers assigned by the registry; 0 is reserved as "no entity" so
// the board grid can hold optional ids.
type EntityID uint32

const NoEntity EntityID = 0

// PieceType enumerates the 13 Gungi piece variants.
type PieceType int

const (
	Marshal PieceType = iota
	General
	Lieutenant
	Major
	Minor
	Shinobi
	Bow
	Lance
	Fortress
	Catapult
	Spy
	Samurai
	Captain
)

var pieceNames = [...]string{
	Marshal:    "Marshal",
	General:    "General",
	Lieutenant: "Lieutenant",
	Major:      "Major",
	Minor:      "Minor",
	Shinobi:    "Shinobi",
	Bow:        "Bow",
	Lance:      "Lance",
	Fortress:   "Fortress",
	Catapult:   "Catapult",
	Spy:        "Spy",
	Samurai:    "Samurai",
	Captain:    "Captain",
}

func (p PieceType) String() string {
	if p < 0 || int(p) >= len(pieceNames) {
		return fmt.Sprintf("piece(%d)", int(p))
	}
	return pieceNames[p]
}

// Phase tracks the coarse stage of a game, derived from move count and
// remaining material.
type Phase int

const (
	Opening Phase = iota
	Midgame
	Endgame
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "Opening"
	case Midgame:
		return "Midgame"
	case Endgame:
		return "Endgame"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MoveType classifies a move descriptor.
type MoveType int

const (
	NormalMove MoveType = iota
	CaptureMove
	StackMove
	UnstackMove
	SpecialMove
)

func (m MoveType) String() string {
	switch m {
	case NormalMove:
		return "Normal"
	case CaptureMove:
		return "Capture"
	case StackMove:
		return "Stack"
	case UnstackMove:
		return "Unstack"
	case SpecialMove:
		return "Special"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}

// StackOperation describes how a move interacts with the stack at its
// destination (or source, for removal).
type StackOperation int

const (
	StackNone StackOperation = iota
	PlaceOnTop
	PlaceInMiddle
	RemoveFromStack
	ReorderStack
)

func (s StackOperation) String() string {
	switch s {
	case StackNone:
		return "None"
	case PlaceOnTop:
		return "PlaceOnTop"
	case PlaceInMiddle:
		return "PlaceInMiddle"
	case RemoveFromStack:
		return "RemoveFromStack"
	case ReorderStack:
		return "ReorderStack"
	default:
		return fmt.Sprintf("stack(%d)", int(s))
	}
}

// Opponent returns the other player. Players are 1 and 2.
func Opponent(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}

// forwardSign gives the direction of "forward" along the y axis for a
// player: player 1 advances toward decreasing y, player 2 toward increasing y.
func forwardSign(player int) int {
	if player == 1 {
		return -1
	}
	return 1
}

// InBounds reports whether a cell coordinate lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// ValidLevel reports whether a stack level is representable.
func ValidLevel(level int) bool {
	return level >= 0 && level < MaxStack
}
