package model_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"dayplan/src-server/model"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	bundb := bun.NewDB(db, sqlitedialect.New())
	if err := model.CreateSchema(bundb); err != nil {
		t.Fatal(err)
	}
	return bundb
}

func TestUserUniqueEmail(t *testing.T) {
	bundb := newTestDB(t)

	userModel := model.User{
		Name:     "Harry",
		Email:    "harry@example.com",
		Password: "$2a$10$notarealhashbutlongenough",
	}
	if err := userModel.Insert(context.Background(), bundb); err != nil {
		t.Error(err)
	}
	if userModel.ID == 0 {
		t.Error("insert should assign an autoincrement id")
	}

	// case: same email again violates the unique constraint
	duplicate := model.User{
		Name:     "Harry Again",
		Email:    "harry@example.com",
		Password: "$2a$10$anotherhash",
	}
	if err := duplicate.Insert(context.Background(), bundb); err == nil {
		t.Error("duplicate email should fail")
	}

	// case: missing fields rejected before touching the db
	empty := model.User{}
	if err := empty.Insert(context.Background(), bundb); err == nil {
		t.Error("empty user should fail validation")
	}
}

func TestSessionLifecycle(t *testing.T) {
	bundb := newTestDB(t)

	userModel := model.User{Name: "Harry", Email: "harry@example.com", Password: "x"}
	if err := userModel.Insert(context.Background(), bundb); err != nil {
		t.Fatal(err)
	}

	secret := uuid.NewString()
	if _, err := bundb.NewInsert().
		Model(&model.Session{
			Secret:           secret,
			UserID:           userModel.ID,
			CreatedAtUnixUTC: time.Now().UTC().Unix(),
		}).
		Exec(context.Background()); err != nil {
		t.Fatal(err)
	}

	exists, err := bundb.NewSelect().
		Model((*model.Session)(nil)).
		Where("secret = ?", secret).
		Exists(context.Background())
	if err != nil {
		t.Error(err)
	}
	if !exists {
		t.Error("session should exist after insert")
	}

	// case: expired sessions can be purged by creation time
	if _, err := bundb.NewDelete().
		Model((*model.Session)(nil)).
		Where("created_at < ?", time.Now().UTC().Add(time.Minute).Unix()).
		Exec(context.Background()); err != nil {
		t.Error(err)
	}
	count, err := bundb.NewSelect().
		Model((*model.Session)(nil)).
		Count(context.Background())
	if err != nil {
		t.Error(err)
	}
	if count != 0 {
		t.Error("purge should remove the session", count)
	}
}

func TestSettingOverwrite(t *testing.T) {
	bundb := newTestDB(t)

	settingModel := model.Setting{
		UserID:           1,
		Data:             `{"language":"en"}`,
		UpdatedAtUnixUTC: time.Now().UTC().Unix(),
	}
	if err := settingModel.Upsert(context.Background(), bundb); err != nil {
		t.Error(err)
	}

	// saving again replaces the blob wholesale
	settingModel.Data = `{"language":"de"}`
	if err := settingModel.Upsert(context.Background(), bundb); err != nil {
		t.Error(err)
	}

	stored := new(model.Setting)
	if err := bundb.NewSelect().
		Model(stored).
		Where("user_id = ?", 1).
		Scan(context.Background()); err != nil {
		t.Fatal(err)
	}
	if stored.Data != `{"language":"de"}` {
		t.Error("second save should overwrite the first", stored.Data)
	}

	count, err := bundb.NewSelect().
		Model((*model.Setting)(nil)).
		Count(context.Background())
	if err != nil {
		t.Error(err)
	}
	if count != 1 {
		t.Error("one row per user", count)
	}
}
