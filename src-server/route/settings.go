package route

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"dayplan/src-server/model"
	"dayplan/src-server/utils"
)

// Settings is a per-user JSON blob: read at page load, overwritten
// wholesale on save. The server never edits individual fields.
func Settings(muxer *http.ServeMux, as *utils.AppState) {
	type NotificationsBody struct {
		Email         bool `json:"email"`
		Push          bool `json:"push"`
		WeeklySummary bool `json:"weekly_summary"`
	}

	type SettingsBody struct {
		Name          string            `json:"name"`
		Email         string            `json:"email"`
		Bio           string            `json:"bio"`
		Avatar        string            `json:"avatar"` // data URI, may be large
		Timezone      string            `json:"timezone"`
		Notifications NotificationsBody `json:"notifications"`
		Language      string            `json:"language"`
	}

	// read the settings blob, falling back to defaults derived from the
	// user row when nothing has been saved yet
	muxer.HandleFunc("GET /api/settings", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			sessionModel, ok := r.Context().Value(SessionCtxKey).(*model.Session)
			if !ok {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't get session from middleware"))
				return
			}
			w.Header().Set("Content-Type", "application/json")

			startTimer := time.Now()
			settingModel := new(model.Setting)
			err := as.BunDB.
				NewSelect().
				Model(settingModel).
				Where("user_id = ?", sessionModel.UserID).
				Scan(r.Context())
			switch {
			case err == sql.ErrNoRows:
				userModel := new(model.User)
				if err := as.BunDB.
					NewSelect().
					Model(userModel).
					Where("id = ?", sessionModel.UserID).
					Scan(r.Context()); err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("Can't get user"))
					slog.Error("can't get user for default settings", "error", err)
					return
				}
				defaults, err := json.Marshal(SettingsBody{
					Name:     userModel.Name,
					Email:    userModel.Email,
					Timezone: as.Config.GetLocation().String(),
					Notifications: NotificationsBody{
						Email:         true,
						Push:          true,
						WeeklySummary: true,
					},
					Language: "en",
				})
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("Can't marshal response body"))
					return
				}
				w.WriteHeader(http.StatusOK)
				w.Write(defaults)
				return
			case err != nil:
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't get settings"))
				slog.Error("can't get settings", "error", err)
				return
			}
			as.MetricChans.DatabaseRead <- float64(time.Since(startTimer).Microseconds())

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(settingModel.Data))
		}))

	// overwrite the settings blob wholesale
	muxer.HandleFunc("PUT /api/settings", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			sessionModel, ok := r.Context().Value(SessionCtxKey).(*model.Session)
			if !ok {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't get session from middleware"))
				return
			}

			var reqBody SettingsBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			data, err := json.Marshal(reqBody)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't marshal settings"))
				return
			}

			startTimer := time.Now()
			settingModel := model.Setting{
				UserID:           sessionModel.UserID,
				Data:             string(data),
				UpdatedAtUnixUTC: time.Now().UTC().Unix(),
			}
			if err := settingModel.Upsert(r.Context(), as.BunDB); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't save settings"))
				slog.Error("can't save settings", "error", err)
				return
			}
			as.MetricChans.DatabaseWrite <- float64(time.Since(startTimer).Microseconds())

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(settingModel.Data))
		}))
}
