package model

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Setting is one user's settings blob, read at page load and
// overwritten wholesale on save. Data is the JSON-serialized settings
// object; the server never edits individual fields.
type Setting struct {
	bun.BaseModel `bun:"table:settings"`

	UserID           int64  `bun:"user_id,pk"`
	Data             string `bun:"data,notnull"`
	UpdatedAtUnixUTC int64  `bun:"updated_at,notnull"`
}

func (s *Setting) Upsert(ctx context.Context, db bun.IDB) error {
	if s.UserID == 0 {
		return fmt.Errorf("Setting.Upsert: user id is required")
	}
	if s.Data == "" {
		return fmt.Errorf("Setting.Upsert: data is required")
	}

	if _, err := db.
		NewInsert().
		Model(s).
		On("CONFLICT (user_id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("Setting.Upsert: %w", err)
	}
	return nil
}
