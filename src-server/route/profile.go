package route

import (
	"encoding/json"
	"net/http"

	"dayplan/src-server/utils"
)

// Profile serves the sample time-allocation datasets behind the
// profile charts. Static data, mirroring the web client's placeholder
// numbers until real tracking exists.
func Profile(muxer *http.ServeMux, as *utils.AppState) {
	type CategoryRespBody struct {
		Name  string  `json:"name"`
		Hours float64 `json:"time"`
	}

	type WeekdayRespBody struct {
		Date          string  `json:"date"`
		Study         float64 `json:"study"`
		Exercise      float64 `json:"exercise"`
		Entertainment float64 `json:"entertainment"`
	}

	type StatsRespBody struct {
		Range      string             `json:"range"`
		Categories []CategoryRespBody `json:"categories"`
		Weekdays   []WeekdayRespBody  `json:"weekdays,omitempty"`
	}

	categories := []CategoryRespBody{
		{Name: "Study", Hours: 4},
		{Name: "Exercise", Hours: 1},
		{Name: "Entertainment", Hours: 2},
		{Name: "Work", Hours: 6},
		{Name: "Rest", Hours: 3},
	}
	weekdays := []WeekdayRespBody{
		{Date: "Mon", Study: 4, Exercise: 1, Entertainment: 2},
		{Date: "Tue", Study: 5, Exercise: 1.5, Entertainment: 1.5},
		{Date: "Wed", Study: 3, Exercise: 2, Entertainment: 2},
		{Date: "Thu", Study: 6, Exercise: 1, Entertainment: 1},
		{Date: "Fri", Study: 4, Exercise: 1, Entertainment: 3},
		{Date: "Sat", Study: 2, Exercise: 2, Entertainment: 4},
		{Date: "Sun", Study: 3, Exercise: 2, Entertainment: 3},
	}

	muxer.HandleFunc("GET /api/profile/stats", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			statsRange := r.URL.Query().Get("range")
			if statsRange == "" {
				statsRange = "week"
			}
			switch statsRange {
			case "day", "week", "month", "quarter", "halfYear", "year":
			default:
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Unknown range"))
				return
			}

			respBody := StatsRespBody{
				Range:      statsRange,
				Categories: categories,
			}
			if statsRange != "day" {
				respBody.Weekdays = weekdays
			}
			respBodyJson, err := json.Marshal(respBody)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't marshal response body"))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write(respBodyJson)
		}))
}
