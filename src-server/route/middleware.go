package route

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dayplan/src-server/model"
	"dayplan/src-server/utils"
)

type SessionCtxKeyType string

const (
	SessionCtxKey           SessionCtxKeyType = "session"
	SessionSecretCookieName string            = "session-secret"
)

// AuthMiddleware resolves the session-secret cookie to a session row,
// rejects missing/expired sessions, and injects the session model into
// the request context.
func AuthMiddleware(as *utils.AppState, next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestTimer := time.Now()

		// extract session secret from cookies
		sessionSecret := func() string {
			sessionCookie, err := r.Cookie(SessionSecretCookieName)
			if err == nil {
				return strings.TrimSpace(sessionCookie.Value)
			}
			return ""
		}()
		if sessionSecret == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Session secret cookie not found"))
			return
		}

		startTimer := time.Now()
		sessionModel := new(model.Session)
		exists, err := as.BunDB.
			NewSelect().
			Model(sessionModel).
			Where("secret = ?", sessionSecret).
			Exists(r.Context())
		switch {
		case err != nil:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't check if session exists in DB"))
			slog.Error("can't check if session exists in DB", "error", err)
			return
		case !exists:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Session secret not found"))
			return
		}
		if err := as.BunDB.
			NewSelect().
			Model(sessionModel).
			Where("secret = ?", sessionSecret).
			Scan(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't find session model in DB"))
			slog.Error("can't find session model in DB", "error", err)
			return
		}
		as.MetricChans.DatabaseRead <- float64(time.Since(startTimer).Microseconds())

		if time.Unix(sessionModel.CreatedAtUnixUTC, 0).UTC().
			Add(as.Config.GetSessionExpire()).Before(time.Now()) {
			if _, err := as.BunDB.
				NewDelete().
				Model((*model.Session)(nil)).
				Where("secret = ?", sessionSecret).
				Exec(r.Context()); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't delete session model in DB"))
				slog.Error("can't delete session model in DB", "error", err)
				return
			}
			as.DropCalendarSession(sessionSecret)

			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Session expired"))
			return
		}

		ctx := context.WithValue(r.Context(), SessionCtxKey, sessionModel)
		next(w, r.WithContext(ctx))
		as.MetricChans.HTTPRequest <- float64(time.Since(requestTimer).Microseconds())
	}
}
