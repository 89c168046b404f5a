package route

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dayplan/src-server/model"
	"dayplan/src-server/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func Auth(muxer *http.ServeMux, as *utils.AppState) {
	type RegisterReqBody struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// register a new user
	muxer.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var reqBody RegisterReqBody
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "Invalid request body"}`))
			return
		}
		if reqBody.Name == "" || reqBody.Email == "" || reqBody.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "Name, email, and password are required."}`))
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcryptCost)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "Server error"}`))
			return
		}

		startTimer := time.Now()
		userModel := model.User{
			Name:     reqBody.Name,
			Email:    reqBody.Email,
			Password: string(hashedPassword),
			IsAdmin:  false,
		}
		if err := userModel.Insert(r.Context(), as.BunDB); err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint") {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"message": "Email already in use"}`))
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "Database error"}`))
			slog.Error("can't insert user", "error", err)
			return
		}
		as.MetricChans.DatabaseWrite <- float64(time.Since(startTimer).Microseconds())

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message": "User registered successfully. Please login."}`))
	})

	type LoginReqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	type LoginRespUser struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		IsAdmin bool   `json:"isadmin"`
	}

	type LoginRespBody struct {
		Message string        `json:"message"`
		User    LoginRespUser `json:"user"`
	}

	// login, the success response sets the session cookie
	muxer.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var reqBody LoginReqBody
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "Invalid request body"}`))
			return
		}
		if reqBody.Email == "" || reqBody.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "Email and password are required."}`))
			return
		}

		startTimer := time.Now()
		userModel := new(model.User)
		err := as.BunDB.
			NewSelect().
			Model(userModel).
			Where("email = ?", reqBody.Email).
			Scan(r.Context())
		switch {
		case err == sql.ErrNoRows:
			// same response as a wrong password, don't leak which emails exist
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "Invalid email or password"}`))
			return
		case err != nil:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "Database error"}`))
			slog.Error("can't get user", "error", err)
			return
		}
		as.MetricChans.DatabaseRead <- float64(time.Since(startTimer).Microseconds())

		if err := bcrypt.CompareHashAndPassword(
			[]byte(userModel.Password),
			[]byte(reqBody.Password)); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "Invalid email or password"}`))
			return
		}

		newSessionSecret := uuid.NewString()
		startTimer = time.Now()
		if _, err := as.BunDB.
			NewInsert().
			Model(&model.Session{
				Secret:           newSessionSecret,
				UserID:           userModel.ID,
				CreatedAtUnixUTC: time.Now().UTC().Unix(),
			}).
			Exec(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "Can't create session"}`))
			slog.Error("can't insert session", "error", err)
			return
		}
		as.MetricChans.DatabaseWrite <- float64(time.Since(startTimer).Microseconds())

		switch as.Config.GetDev() {
		case true:
			w.Header().Set("Set-Cookie", SessionSecretCookieName+"="+newSessionSecret+"; Path=/; HttpOnly; SameSite=None")
		case false:
			w.Header().Set("Set-Cookie", SessionSecretCookieName+"="+newSessionSecret+"; Path=/; HttpOnly; SameSite=Lax; Secure")
		}

		respBodyJson, err := json.Marshal(LoginRespBody{
			Message: "Login successful",
			User: LoginRespUser{
				ID:      userModel.ID,
				Name:    userModel.Name,
				Email:   userModel.Email,
				IsAdmin: userModel.IsAdmin,
			},
		})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "Can't marshal response body"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write(respBodyJson)
	})

	// logout
	muxer.HandleFunc("DELETE /api/auth", func(w http.ResponseWriter, r *http.Request) {
		if sessionCookie, err := r.Cookie(SessionSecretCookieName); err == nil {
			secret := strings.TrimSpace(sessionCookie.Value)
			if _, err := as.BunDB.
				NewDelete().
				Model((*model.Session)(nil)).
				Where("secret = ?", secret).
				Exec(r.Context()); err != nil {
				slog.Warn("can't delete session on logout", "error", err)
			}
			as.DropCalendarSession(secret)
		}
		w.Header().Set("Set-Cookie", fmt.Sprintf("%s=; Path=/; HttpOnly; SameSite=Lax", SessionSecretCookieName))
		w.WriteHeader(http.StatusOK)
	})
}
