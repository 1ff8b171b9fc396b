package game

import "time"

// Position is the spatial component of a piece entity. A captured piece
// keeps its record with IsActive=false so history can still reference it.
type Position struct {
	Entity      EntityID
	X           int
	Y           int
	Level       int // 0 = bottom of a stack; an n-high stack tops out at n-1
	IsActive    bool
	LastUpdated time.Time
}

// Piece is the identity component of a piece entity. StackLevel mirrors
// Position.Level and is kept in sync by the applicator.
type Piece struct {
	Entity           EntityID
	Type             PieceType
	Owner            int // 1 or 2
	HasMoved         bool
	Captured         bool
	StackLevel       int
	SpecialAbilities uint32 // Optional enhancement flags, unused by the base rules
	LastMoveTurn     int
}

// Registry owns every entity of one game session: positions and pieces
// keyed by entity id. Entities are never shared across sessions.
type Registry struct {
	positions map[EntityID]*Position
	pieces    map[EntityID]*Piece
	nextID    EntityID
}

func NewRegistry() *Registry {
	return &Registry{
		positions: make(map[EntityID]*Position),
		pieces:    make(map[EntityID]*Piece),
		nextID:    1, // 0 is reserved for NoEntity
	}
}

// Spawn creates a new entity with its two components and returns its id.
func (r *Registry) Spawn(pt PieceType, owner, x, y, level int, now time.Time) EntityID {
	id := r.nextID
	r.nextID++
	r.positions[id] = &Position{
		Entity:      id,
		X:           x,
		Y:           y,
		Level:       level,
		IsActive:    true,
		LastUpdated: now,
	}
	r.pieces[id] = &Piece{
		Entity:     id,
		Type:       pt,
		Owner:      owner,
		StackLevel: level,
	}
	return id
}

// Position returns the position component for an entity, or nil if unknown.
func (r *Registry) Position(id EntityID) *Position {
	return r.positions[id]
}

// Piece returns the piece component for an entity, or nil if unknown.
func (r *Registry) Piece(id EntityID) *Piece {
	return r.pieces[id]
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.pieces)
}

// Each calls fn for every entity in ascending id order. Deterministic
// iteration keeps move generation reproducible.
func (r *Registry) Each(fn func(EntityID, *Piece, *Position)) {
	for id := EntityID(1); id < r.nextID; id++ {
		pc, ok := r.pieces[id]
		if !ok {
			continue
		}
		fn(id, pc, r.positions[id])
	}
}

// Copy deep-copies the registry so speculative search can mutate freely.
func (r *Registry) Copy() *Registry {
	positionsCopy := make(map[EntityID]*Position, len(r.positions))
	for id, pos := range r.positions {
		p := *pos
		positionsCopy[id] = &p
	}
	piecesCopy := make(map[EntityID]*Piece, len(r.pieces))
	for id, pc := range r.pieces {
		p := *pc
		piecesCopy[id] = &p
	}
	return &Registry{
		positions: positionsCopy,
		pieces:    piecesCopy,
		nextID:    r.nextID,
	}
}
