package route

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dayplan/src-server/calendar"
	"dayplan/src-server/model"
	"dayplan/src-server/utils"
)

// Calendar exposes one in-memory view-state controller per session.
// Events are session-local: they live and die with the session and
// never reach the database.
func Calendar(muxer *http.ServeMux, as *utils.AppState) {
	type OneEventRespBody struct {
		ID               string `json:"id"`
		Title            string `json:"title"`
		StartDateUnixUTC int64  `json:"startDateUnixUTC"`
		EndDateUnixUTC   int64  `json:"endDateUnixUTC"`
		IsAllDay         bool   `json:"isAllDay"`
		Description      string `json:"description,omitempty"`
		Color            string `json:"color,omitempty"`
	}

	toEventResp := func(e calendar.Event) OneEventRespBody {
		return OneEventRespBody{
			ID:               e.ID,
			Title:            e.Title,
			StartDateUnixUTC: e.Start.UTC().Unix(),
			EndDateUnixUTC:   e.End.UTC().Unix(),
			IsAllDay:         e.IsAllDay,
			Description:      e.Description,
			Color:            e.Color,
		}
	}

	type GridBlockRespBody struct {
		Event OneEventRespBody `json:"event"`
		Box   calendar.Box     `json:"box"`
	}

	type HourCellRespBody struct {
		Hour     int                 `json:"hour"`
		Selected bool                `json:"selected"`
		Blocks   []GridBlockRespBody `json:"blocks"`
	}

	type DayColumnRespBody struct {
		DateUnixUTC int64              `json:"dateUnixUTC"`
		Selected    bool               `json:"selected"`
		AllDay      []OneEventRespBody `json:"allDay"`
		Hours       []HourCellRespBody `json:"hours"`
	}

	type MonthCellRespBody struct {
		DateUnixUTC int64              `json:"dateUnixUTC"`
		InMonth     bool               `json:"inMonth"`
		Selected    bool               `json:"selected"`
		Events      []OneEventRespBody `json:"events"`
	}

	type StateRespBody struct {
		ReferenceDateUnixUTC int64              `json:"referenceDateUnixUTC"`
		SelectedDateUnixUTC  int64              `json:"selectedDateUnixUTC"`
		SelectedHour         int                `json:"selectedHour"`
		SelectedEndHour      int                `json:"selectedEndHour"`
		ViewMode             calendar.ViewMode  `json:"viewMode"`
		FormOpen             bool               `json:"formOpen"`
		VisibleRangeUnixUTC  []int64            `json:"visibleRangeUnixUTC"`
		Events               []OneEventRespBody `json:"events"`

		MonthGrid []MonthCellRespBody `json:"monthGrid,omitempty"`
		WeekGrid  []DayColumnRespBody `json:"weekGrid,omitempty"`
		DayGrid   *DayColumnRespBody  `json:"dayGrid,omitempty"`
	}

	toDayColumnResp := func(column calendar.DayColumn) DayColumnRespBody {
		resp := DayColumnRespBody{
			DateUnixUTC: column.Date.UTC().Unix(),
			Selected:    column.Selected,
			AllDay:      make([]OneEventRespBody, 0, len(column.AllDay)),
			Hours:       make([]HourCellRespBody, 0, len(column.Hours)),
		}
		for _, e := range column.AllDay {
			resp.AllDay = append(resp.AllDay, toEventResp(e))
		}
		for _, cell := range column.Hours {
			blocks := make([]GridBlockRespBody, 0, len(cell.Blocks))
			for _, block := range cell.Blocks {
				blocks = append(blocks, GridBlockRespBody{
					Event: toEventResp(block.Event),
					Box:   block.Box,
				})
			}
			resp.Hours = append(resp.Hours, HourCellRespBody{
				Hour:     cell.Hour,
				Selected: cell.Selected,
				Blocks:   blocks,
			})
		}
		return resp
	}

	// buildStateResp derives the full render state from the controller;
	// the web client is a pure function of this payload.
	buildStateResp := func(ctrl *calendar.Controller) StateRespBody {
		state := ctrl.State()
		resp := StateRespBody{
			ReferenceDateUnixUTC: state.ReferenceDate.UTC().Unix(),
			SelectedDateUnixUTC:  state.SelectedDate.UTC().Unix(),
			SelectedHour:         state.SelectedHour,
			SelectedEndHour:      state.SelectedEndHour,
			ViewMode:             state.ViewMode,
			FormOpen:             state.FormOpen,
			VisibleRangeUnixUTC:  make([]int64, 0),
			Events:               make([]OneEventRespBody, 0, len(state.Events)),
		}
		for _, day := range ctrl.VisibleRange() {
			resp.VisibleRangeUnixUTC = append(resp.VisibleRangeUnixUTC, day.UTC().Unix())
		}
		for _, e := range state.Events {
			resp.Events = append(resp.Events, toEventResp(e))
		}

		switch state.ViewMode {
		case calendar.ViewModeMonth:
			cells := calendar.BuildMonthGrid(state)
			resp.MonthGrid = make([]MonthCellRespBody, 0, len(cells))
			for _, cell := range cells {
				events := make([]OneEventRespBody, 0, len(cell.Events))
				for _, e := range cell.Events {
					events = append(events, toEventResp(e))
				}
				resp.MonthGrid = append(resp.MonthGrid, MonthCellRespBody{
					DateUnixUTC: cell.Date.UTC().Unix(),
					InMonth:     cell.InMonth,
					Selected:    cell.Selected,
					Events:      events,
				})
			}
		case calendar.ViewModeWeek:
			columns := calendar.BuildWeekGrid(state)
			resp.WeekGrid = make([]DayColumnRespBody, 0, len(columns))
			for _, column := range columns {
				resp.WeekGrid = append(resp.WeekGrid, toDayColumnResp(column))
			}
		case calendar.ViewModeDay:
			column := toDayColumnResp(calendar.BuildDayGrid(state))
			resp.DayGrid = &column
		}
		return resp
	}

	writeStateResp := func(w http.ResponseWriter, ctrl *calendar.Controller) {
		respBodyJson, err := json.Marshal(buildStateResp(ctrl))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't marshal response body"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write(respBodyJson)
	}

	// sessionCtrl pulls the calendar state for the request's session;
	// the returned unlock must be deferred by the caller.
	sessionCtrl := func(w http.ResponseWriter, r *http.Request) (*calendar.Controller, func(), bool) {
		sessionModel, ok := r.Context().Value(SessionCtxKey).(*model.Session)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't get session from middleware"))
			return nil, nil, false
		}
		calSession := as.CalendarSession(sessionModel.Secret)
		calSession.Lock()
		return calSession.Ctrl, calSession.Unlock, true
	}

	// current state + derived grids
	muxer.HandleFunc("GET /api/calendar/state", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			ctrl, unlock, ok := sessionCtrl(w, r)
			if !ok {
				return
			}
			defer unlock()
			writeStateResp(w, ctrl)
		}))

	type ViewModeReqBody struct {
		View calendar.ViewMode `json:"view"`
	}

	// switch between day/week/month
	muxer.HandleFunc("POST /api/calendar/view-mode", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody ViewModeReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			if !reqBody.View.Valid() {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("View must be one of day, week, month"))
				return
			}

			ctrl, unlock, ok := sessionCtrl(w, r)
			if !ok {
				return
			}
			defer unlock()
			ctrl.SetViewMode(reqBody.View)
			writeStateResp(w, ctrl)
		}))

	type NavigateReqBody struct {
		Direction string `json:"direction"`
	}

	// move the reference date one view unit forward or back
	muxer.HandleFunc("POST /api/calendar/navigate", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody NavigateReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			var dir int
			switch reqBody.Direction {
			case "next":
				dir = 1
			case "prev":
				dir = -1
			default:
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Direction must be next or prev"))
				return
			}

			ctrl, unlock, ok := sessionCtrl(w, r)
			if !ok {
				return
			}
			defer unlock()
			ctrl.Navigate(dir)
			writeStateResp(w, ctrl)
		}))

	type SelectReqBody struct {
		DateUnixUTC int64 `json:"dateUnixUTC"`
		Hour        *int  `json:"hour"`
	}

	// highlight a cell; with an hour this also seeds the add-event form
	muxer.HandleFunc("POST /api/calendar/select", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody SelectReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			if reqBody.DateUnixUTC == 0 {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Please provide a date"))
				return
			}
			hour := calendar.NoHour
			if reqBody.Hour != nil {
				if *reqBody.Hour < 0 || *reqBody.Hour > 23 {
					w.WriteHeader(http.StatusBadRequest)
					w.Write([]byte("Hour must be between 0 and 23"))
					return
				}
				hour = *reqBody.Hour
			}

			ctrl, unlock, ok := sessionCtrl(w, r)
			if !ok {
				return
			}
			defer unlock()
			ctrl.SelectCell(time.Unix(reqBody.DateUnixUTC, 0).In(as.Config.GetLocation()), hour)
			writeStateResp(w, ctrl)
		}))

	type FormReqBody struct {
		Open bool `json:"open"`
	}

	// open/close the add-event form; closing clears the hour selection
	muxer.HandleFunc("POST /api/calendar/form", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody FormReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			ctrl, unlock, ok := sessionCtrl(w, r)
			if !ok {
				return
			}
			defer unlock()
			if reqBody.Open {
				ctrl.OpenAddEventForm()
			} else {
				ctrl.CloseAddEventForm()
			}
			writeStateResp(w, ctrl)
		}))

	type CreateEventReqBody struct {
		Title            string `json:"title"`
		StartDateUnixUTC int64  `json:"startDateUnixUTC"`
		EndDateUnixUTC   int64  `json:"endDateUnixUTC"`
		IsAllDay         bool   `json:"isAllDay"`
		Description      string `json:"description"`
		Color            string `json:"color"`
	}

	// create a new event, the success response is the event ID
	muxer.HandleFunc("POST /api/calendar/events", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody CreateEventReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			if reqBody.StartDateUnixUTC == 0 {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Please provide a start date"))
				return
			}

			ctrl, unlock, ok := sessionCtrl(w, r)
			if !ok {
				return
			}
			defer unlock()
			newEvent, err := ctrl.AddEvent(calendar.Draft{
				Title:       utils.CleanupString(reqBody.Title),
				Start:       time.Unix(reqBody.StartDateUnixUTC, 0).In(as.Config.GetLocation()),
				End:         time.Unix(reqBody.EndDateUnixUTC, 0).In(as.Config.GetLocation()),
				IsAllDay:    reqBody.IsAllDay,
				Description: reqBody.Description,
				Color:       reqBody.Color,
			})
			if err != nil {
				var vErr *calendar.ValidationError
				if errors.As(err, &vErr) {
					w.WriteHeader(http.StatusBadRequest)
					w.Write([]byte(vErr.Error()))
					return
				}
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't create event"))
				return
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(newEvent.ID))
		}))

	type ModifyEventReqBody struct {
		Title            *string `json:"title"`
		StartDateUnixUTC *int64  `json:"startDateUnixUTC"`
		EndDateUnixUTC   *int64  `json:"endDateUnixUTC"`
		IsAllDay         *bool   `json:"isAllDay"`
		Description      *string `json:"description"`
		Color            *string `json:"color"`
	}

	// modify an existing event; absent fields are left untouched
	muxer.HandleFunc("PATCH /api/calendar/events/{id}", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue("id")
			if id == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Please provide an event ID"))
				return
			}
			var reqBody ModifyEventReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			patch := calendar.Patch{
				IsAllDay:    reqBody.IsAllDay,
				Description: reqBody.Description,
				Color:       reqBody.Color,
			}
			if reqBody.Title != nil {
				title := utils.CleanupString(*reqBody.Title)
				patch.Title = &title
			}
			if reqBody.StartDateUnixUTC != nil {
				start := time.Unix(*reqBody.StartDateUnixUTC, 0).In(as.Config.GetLocation())
				patch.Start = &start
			}
			if reqBody.EndDateUnixUTC != nil {
				end := time.Unix(*reqBody.EndDateUnixUTC, 0).In(as.Config.GetLocation())
				patch.End = &end
			}

			ctrl, unlock, ok := sessionCtrl(w, r)
			if !ok {
				return
			}
			defer unlock()
			if _, err := ctrl.UpdateEvent(id, patch); err != nil {
				var nfErr *calendar.NotFoundError
				var vErr *calendar.ValidationError
				switch {
				case errors.As(err, &nfErr):
					w.WriteHeader(http.StatusNotFound)
					w.Write([]byte("Event not found"))
				case errors.As(err, &vErr):
					w.WriteHeader(http.StatusBadRequest)
					w.Write([]byte(vErr.Error()))
				default:
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("Can't modify event"))
				}
				return
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(id))
		}))

	type DuplicateEventReqBody struct {
		NewStartDateUnixUTC int64 `json:"newStartDateUnixUTC"`
	}

	// drag-to-duplicate: copy the event to a new start, keep the duration
	muxer.HandleFunc("POST /api/calendar/events/{id}/duplicate", AuthMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue("id")
			if id == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Please provide an event ID"))
				return
			}
			var reqBody DuplicateEventReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			if reqBody.NewStartDateUnixUTC == 0 {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Please provide a new start date"))
				return
			}

			ctrl, unlock, ok := sessionCtrl(w, r)
			if !ok {
				return
			}
			defer unlock()
			duplicate, err := ctrl.DuplicateEvent(id,
				time.Unix(reqBody.NewStartDateUnixUTC, 0).In(as.Config.GetLocation()))
			if err != nil {
				var nfErr *calendar.NotFoundError
				if errors.As(err, &nfErr) {
					w.WriteHeader(http.StatusNotFound)
					w.Write([]byte("Event not found"))
					return
				}
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't duplicate event"))
				return
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(duplicate.ID))
		}))
}
