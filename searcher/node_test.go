package searcher

import "gungi/game"

type mockMove struct {
	id int
}

func (m mockMove) IsDeterministic() bool {
	return true
}

type mockState struct {
	player string
	moves  []game.Move
	played []game.Move
	hash   game.StateHash
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	return mockState{played: append(m.played, move)}
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) Winner() string {
	return ""
}

// scriptedState is a hand-built game tree for end-to-end search tests: each
// move id indexes the successor state.
type scriptedState struct {
	player string
	winner string
	moves  []game.Move
	next   map[int]*scriptedState
}

func (s *scriptedState) Player() string {
	return s.player
}

func (s *scriptedState) LegalMoves() []game.Move {
	if s.winner != "" {
		return nil
	}
	return s.moves
}

func (s *scriptedState) Play(move game.Move) game.State {
	child, ok := s.next[move.(mockMove).id]
	if !ok {
		panic("scripted state has no successor for move")
	}
	return child
}

func (s *scriptedState) Hash() game.StateHash {
	return 0
}

func (s *scriptedState) Winner() string {
	return s.winner
}
