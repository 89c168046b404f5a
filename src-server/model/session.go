package model

import (
	"github.com/uptrace/bun"
)

// Session keeps a logged-in web client attached to its user. The
// secret travels in the session-secret cookie; everything derived from
// the session (including the in-memory calendar state) dies with it.
type Session struct {
	bun.BaseModel `bun:"table:sessions"`

	Secret           string `bun:"secret,pk"`
	UserID           int64  `bun:"user_id,notnull"`
	CreatedAtUnixUTC int64  `bun:"created_at,notnull"`
}
