package spawn

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tetrisgame-go/internal/dependencies/mocks"
	"github.com/mcoot/tetrisgame-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

func (s *ServiceSuite) TestDrawMapsIndexToType() {
	for i, want := range model.PieceTypes {
		s.random.Reset()
		s.random.QueueIntn(i)

		next := s.service.Draw()
		s.Equal(want, next.Type)
		s.Equal(model.ColorOf(want), next.Color)
	}
}

func (s *ServiceSuite) TestDrawsAreIndependent() {
	// The same index can repeat back to back; there is no bag constraint
	s.random.QueueIntn(2, 2, 2)

	for i := 0; i < 3; i++ {
		s.Equal(model.PieceT, s.service.Draw().Type)
	}
}

func (s *ServiceSuite) TestPromoteUsesSpawnPose() {
	next := model.NextPiece{Type: model.PieceJ, Color: model.ColorOf(model.PieceJ)}
	piece := s.service.Promote(next)

	s.Equal(model.PieceJ, piece.Type)
	s.Equal(0, piece.Rotation)
	s.Equal(3, piece.X)
	s.Equal(0, piece.Y)
}

func (s *ServiceSuite) TestPromoteCentersOPiece() {
	next := model.NextPiece{Type: model.PieceO, Color: model.ColorOf(model.PieceO)}
	s.Equal(4, s.service.Promote(next).X)
}
