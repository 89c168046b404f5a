package scheduler

import (
	"context"
	"log/slog"
	"time"

	"dayplan/src-server/model"
	"dayplan/src-server/utils"
)

const CLEANUP_INTERVAL = time.Hour

// SessionCleanup periodically purges expired sessions and throws away
// their in-memory calendar state. Runs until graceful shutdown.
func SessionCleanup(as *utils.AppState) {
	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	ticker := time.NewTicker(CLEANUP_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-gracefulShutdownCh:
			return
		case <-ticker.C:
		}

		cutoff := time.Now().UTC().Add(-as.Config.GetSessionExpire()).Unix()

		expiredSecrets := make([]string, 0)
		if err := as.BunDB.
			NewSelect().
			Model((*model.Session)(nil)).
			Column("secret").
			Where("created_at < ?", cutoff).
			Scan(context.Background(), &expiredSecrets); err != nil {
			slog.Error("SessionCleanup: can't get expired sessions", "error", err)
			continue
		}
		if len(expiredSecrets) == 0 {
			continue
		}

		startTimer := time.Now()
		if _, err := as.BunDB.
			NewDelete().
			Model((*model.Session)(nil)).
			Where("created_at < ?", cutoff).
			Exec(context.Background()); err != nil {
			slog.Error("SessionCleanup: can't delete expired sessions", "error", err)
			continue
		}
		as.MetricChans.DatabaseWrite <- float64(time.Since(startTimer).Microseconds())

		for _, secret := range expiredSecrets {
			as.DropCalendarSession(secret)
		}
		slog.Info("expired sessions purged", "count", len(expiredSecrets))
	}
}
