package storage

import (
	"context"

	"github.com/mcoot/tetrisgame-go/internal/model"
)

// Storage defines the interface for session record persistence. Records
// are serving-layer plumbing: the latest snapshot of each session, so
// state can be read across HTTP calls and after restarts. Scores are not
// persisted beyond the session record itself.
type Storage interface {
	SaveSession(ctx context.Context, record *model.SessionRecord) error
	GetSession(ctx context.Context, id model.SessionID) (*model.SessionRecord, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	ListSessions(ctx context.Context) ([]*model.SessionRecord, error)
}
