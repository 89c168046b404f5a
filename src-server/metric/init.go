package metric

import (
	"log/slog"
	"time"

	"dayplan/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func databaseEmptyRead(as *utils.AppState, tickerInterval time.Duration) {
	databaseEmptyRead := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dayplan_database_empty_read_microsec",
		Help: "The latency of an empty database read in microseconds",
	})
	good := true
	if err := prometheus.Register(databaseEmptyRead); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register dayplan_database_empty_read_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("dayplan_database_empty_read_microsec metric registered")
		databaseEmptyRead.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				switch prometheus.Unregister(databaseEmptyRead) {
				case true:
					slog.Debug("dayplan_database_empty_read_microsec metric unregistered")
				case false:
					slog.Warn("dayplan_database_empty_read_microsec metric not registered")
				}
				return
			case <-ticker.C:
				latency, err := database(as)
				if err != nil {
					slog.Error("can't get database latency", "error", err)
					continue
				}
				databaseEmptyRead.Set(float64(latency.Microseconds()))
			}
		}
	}()
}

func channelGauge(as *utils.AppState, name string, help string, ch chan float64, clearTickerInterval time.Duration) {
	gauge := promauto.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	})
	good := true
	if err := prometheus.Register(gauge); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register metric", "name", name, "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("metric registered", "name", name)
		gauge.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				switch prometheus.Unregister(gauge) {
				case true:
					slog.Debug("metric unregistered", "name", name)
				case false:
					slog.Warn("metric not registered", "name", name)
				}
				return
			case latency := <-ch:
				gauge.Set(latency)
				clearTicker.Reset(clearTickerInterval)
			case <-clearTicker.C:
				gauge.Set(0)
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	databaseEmptyRead(as, tickerInterval)
	channelGauge(as,
		"dayplan_database_read_microsec",
		"The latency of a database read in microseconds",
		as.MetricChans.DatabaseRead, clearTickerInterval)
	channelGauge(as,
		"dayplan_database_write_microsec",
		"The latency of a database write in microseconds",
		as.MetricChans.DatabaseWrite, clearTickerInterval)
	channelGauge(as,
		"dayplan_http_request_microsec",
		"The latency of an HTTP request in microseconds",
		as.MetricChans.HTTPRequest, clearTickerInterval)
}
