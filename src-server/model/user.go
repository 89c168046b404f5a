package model

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID       int64  `bun:"id,pk,autoincrement"`
	Name     string `bun:"name,notnull"`
	Email    string `bun:"email,notnull,unique"`
	Password string `bun:"password,notnull"` // bcrypt hash, never plaintext
	IsAdmin  bool   `bun:"isadmin"`
}

func (u *User) Insert(ctx context.Context, db bun.IDB) error {
	switch {
	case u.Name == "":
		return fmt.Errorf("User.Insert: name is required")
	case u.Email == "":
		return fmt.Errorf("User.Insert: email is required")
	case u.Password == "":
		return fmt.Errorf("User.Insert: password hash is required")
	}

	if _, err := db.
		NewInsert().
		Model(u).
		Exec(ctx); err != nil {
		return fmt.Errorf("User.Insert: %w", err)
	}
	return nil
}
