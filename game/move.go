package game

import (
	"fmt"
	"time"
)

// Coord is a full piece location: cell plus stack level.
type Coord struct {
	X     int
	Y     int
	Level int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Level)
}

// MoveDescriptor is the transient description of one candidate move. It is
// input to the validator and output of the decision system; it is never
// persisted by this core.
type MoveDescriptor struct {
	Entity         EntityID
	From           Coord
	To             Coord
	PieceType      PieceType
	Player         int
	MoveType       MoveType
	CaptureEntity  EntityID // NoEntity unless MoveType is CaptureMove
	StackOperation StackOperation
	Timestamp      time.Time
}

// IsDeterministic satisfies the Move interface. Gungi has no chance
// element: every move resolves to exactly one successor state.
func (m *MoveDescriptor) IsDeterministic() bool {
	return true
}

func (m *MoveDescriptor) String() string {
	return fmt.Sprintf("%s %s %s->%s player=%d", m.MoveType, m.PieceType, m.From, m.To, m.Player)
}
