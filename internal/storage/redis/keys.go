package redis

import (
	"fmt"

	"github.com/mcoot/tetrisgame-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "tgame"

// sessionKey returns the Redis key for a SessionRecord
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of all session IDs
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}
