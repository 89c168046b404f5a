package utils

import (
	"database/sql"
	"log/slog"
	"os"
	"sync"
	"time"

	"dayplan/src-server/calendar"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

// CalendarSession is one web session's in-memory calendar state. The
// controller is single-writer; the mutex serializes HTTP requests that
// race for the same session.
type CalendarSession struct {
	sync.Mutex
	Ctrl *calendar.Controller
}

type AppState struct {
	Config *Config
	RawDB  *sql.DB
	BunDB  *bun.DB
	When   *when.Parser

	MetricChans        *Metric
	AppCloseSignalChan chan os.Signal

	// calendar state per session secret; events are session-local and
	// never touch the database
	calendarSessions   map[string]*CalendarSession
	calendarSessionsMu sync.Mutex

	gracefulShutdownChans []chan struct{}
	gracefulShutdownMu    sync.Mutex
}

func NewAppState() *AppState {
	as := &AppState{
		MetricChans:        NewMetric(),
		AppCloseSignalChan: make(chan os.Signal, 1),
		calendarSessions:   make(map[string]*CalendarSession),
	}

	// date parser for the chat sidebar
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// env
	as.Config = NewConfig()

	// database
	var err error
	as.RawDB, err = sql.Open(sqliteshim.ShimName, as.Config.GetDatabasePath()+"?mode=rwc")
	if err != nil {
		slog.Error("cannot open sqlite database", "error", err)
		os.Exit(1)
	}
	as.RawDB.SetMaxIdleConns(8)

	as.BunDB = bun.NewDB(as.RawDB, sqlitedialect.New())
	as.BunDB.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(true),
		bundebug.FromEnv("BUNDEBUG"),
	))

	return as
}

// CalendarSession returns the session's calendar state, creating a
// fresh month-view controller pivoted on the current date on first use.
func (as *AppState) CalendarSession(secret string) *CalendarSession {
	as.calendarSessionsMu.Lock()
	defer as.calendarSessionsMu.Unlock()

	session, ok := as.calendarSessions[secret]
	if !ok {
		session = &CalendarSession{
			Ctrl: calendar.NewController(time.Now().In(as.Config.GetLocation())),
		}
		as.calendarSessions[secret] = session
	}
	return session
}

// DropCalendarSession throws away a session's in-memory calendar
// state; the events vanish with it.
func (as *AppState) DropCalendarSession(secret string) {
	as.calendarSessionsMu.Lock()
	defer as.calendarSessionsMu.Unlock()
	delete(as.calendarSessions, secret)
}

// CreateGracefulShutdownChan hands a goroutine a channel that closes
// when the app is shutting down.
func (as *AppState) CreateGracefulShutdownChan() <-chan struct{} {
	as.gracefulShutdownMu.Lock()
	defer as.gracefulShutdownMu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, ch)
	return ch
}

// GracefulShutdown notifies every registered goroutine and closes the
// database.
func (as *AppState) GracefulShutdown() {
	as.gracefulShutdownMu.Lock()
	for _, ch := range as.gracefulShutdownChans {
		close(ch)
	}
	as.gracefulShutdownChans = nil
	as.gracefulShutdownMu.Unlock()

	if err := as.BunDB.Close(); err != nil {
		slog.Warn("can't close database", "error", err)
	}
}
