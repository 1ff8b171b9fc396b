package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistrySpawn(t *testing.T) {
	reg := NewRegistry()
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	id := reg.Spawn(Marshal, 1, 4, 8, 0, now)
	require.NotEqual(t, NoEntity, id, "entity 0 is reserved")
	require.Equal(t, 1, reg.Len())

	pos := reg.Position(id)
	require.Equal(t, id, pos.Entity)
	require.True(t, pos.IsActive)
	require.Equal(t, now, pos.LastUpdated)

	pc := reg.Piece(id)
	require.Equal(t, Marshal, pc.Type)
	require.Equal(t, 1, pc.Owner)
	require.False(t, pc.HasMoved)
	require.Zero(t, pc.LastMoveTurn)

	require.Nil(t, reg.Position(NoEntity))
	require.Nil(t, reg.Piece(id+1))
}

func TestRegistryEachIsDeterministic(t *testing.T) {
	reg := NewRegistry()
	var spawned []EntityID
	for i := 0; i < 10; i++ {
		spawned = append(spawned, reg.Spawn(Shinobi, i%2+1, i, 0, 0, time.Time{}))
	}

	for run := 0; run < 3; run++ {
		var order []EntityID
		reg.Each(func(id EntityID, _ *Piece, _ *Position) {
			order = append(order, id)
		})
		require.Equal(t, spawned, order, "iteration must follow ascending spawn order")
	}
}

func TestRegistryCopyIsDeep(t *testing.T) {
	reg := NewRegistry()
	id := reg.Spawn(General, 2, 3, 3, 0, time.Time{})

	clone := reg.Copy()
	clone.Position(id).X = 7
	clone.Piece(id).Captured = true

	require.Equal(t, 3, reg.Position(id).X, "mutating the copy must not touch the original")
	require.False(t, reg.Piece(id).Captured)

	next := clone.Spawn(Spy, 1, 0, 0, 0, time.Time{})
	require.Nil(t, reg.Piece(next), "id allocation must be independent after copying")
}
