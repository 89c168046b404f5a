package metric

import (
	"context"
	"time"

	"dayplan/src-server/model"
	"dayplan/src-server/utils"
)

func database(as *utils.AppState) (time.Duration, error) {
	start := time.Now()
	if _, err := as.BunDB.NewSelect().
		Model((*model.Session)(nil)).
		Where("secret = ?", "").
		Exists(context.Background()); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
