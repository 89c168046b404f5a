package route

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dayplan/src-server/utils"

	"github.com/google/uuid"
)

// Chat is the canned-response sidebar assistant: every user message
// gets exactly one agent reply. There is no model behind it; the only
// intelligence is a date parser so the reply can point at the slot a
// mentioned time would land on.
func Chat(muxer *http.ServeMux, as *utils.AppState) {
	type ChatReqBody struct {
		Text string `json:"text"`
	}

	type OneMessageRespBody struct {
		ID               string `json:"id"`
		Text             string `json:"text"`
		IsAgent          bool   `json:"isAgent"`
		TimestampUnixUTC int64  `json:"timestampUnixUTC"`
	}

	type ChatRespBody struct {
		Messages []OneMessageRespBody `json:"messages"`
	}

	muxer.HandleFunc("POST /api/chat", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody ChatReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			text := strings.TrimSpace(reqBody.Text)
			if text == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Please provide a message"))
				return
			}

			now := time.Now().In(as.Config.GetLocation())
			reply := "Got your message, I'll help you with that."
			if result, err := as.When.Parse(text, now); err == nil && result != nil {
				reply = fmt.Sprintf(
					"Sounds like %s, that lands on the %s slot. Want to add an event there?",
					result.Text,
					result.Time.Format("Mon Jan 2 15:04"),
				)
			}

			respBodyJson, err := json.Marshal(ChatRespBody{
				Messages: []OneMessageRespBody{
					{
						ID:               uuid.NewString(),
						Text:             text,
						IsAgent:          false,
						TimestampUnixUTC: now.UTC().Unix(),
					},
					{
						ID:               uuid.NewString(),
						Text:             reply,
						IsAgent:          true,
						TimestampUnixUTC: now.UTC().Unix(),
					},
				},
			})
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't marshal response body"))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write(respBodyJson)
		}))
}
