// Package spawn generates pieces. Each draw is independent and uniform
// over the seven types; there is deliberately no bag sequence, so long
// droughts of a given type are possible.
package spawn

import (
	"github.com/mcoot/tetrisgame-go/internal/dependencies/random"
	"github.com/mcoot/tetrisgame-go/internal/model"
)

// Service draws random pieces from an injected randomness source
type Service struct {
	random random.Random
}

// New creates a new spawn Service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// Draw picks a uniformly random piece type as a poseless lookahead piece
func (s *Service) Draw() model.NextPiece {
	t := model.PieceTypes[s.random.Intn(len(model.PieceTypes))]
	return model.NextPiece{
		Type:  t,
		Color: model.ColorOf(t),
	}
}

// Promote turns a lookahead piece into an active piece at its spawn pose
func (s *Service) Promote(next model.NextPiece) model.Piece {
	return model.SpawnPiece(next.Type)
}
