// Command weatherwatch runs a demo weather station: it registers the display
// observers, replays a sequence of sensor readings through the station, and
// prints the accumulated temperature statistics. The sequence comes from an
// optional YAML scenario file or falls back to a built-in demo that also
// exercises mid-sequence deregistration and fault isolation.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/dmitrymomot/statewatch/pkg/config"
	"github.com/dmitrymomot/statewatch/pkg/logger"
	"github.com/dmitrymomot/statewatch/pkg/observer"
	"github.com/dmitrymomot/statewatch/weather"
)

type appConfig struct {
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	ScenarioFile string `env:"SCENARIO_FILE"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(slog.String("service", "weatherwatch")),
	)

	if err := run(cfg, log); err != nil {
		log.Error("weatherwatch failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	station := weather.NewStation(observer.WithLogger(log))

	statistics := weather.NewStatisticsDisplay(log)
	conditions := weather.NewCurrentConditionsDisplay(log)
	displays := []observer.Observer[weather.Reading]{
		statistics,
		conditions,
		weather.NewHeatIndexDisplay(log),
		weather.NewForecastDisplay(log),
	}
	for _, d := range displays {
		if err := station.Register(d); err != nil {
			return err
		}
	}

	if cfg.ScenarioFile != "" {
		readings, err := loadScenario(cfg.ScenarioFile)
		if err != nil {
			return err
		}
		for _, r := range readings {
			station.SetMeasurements(r.Temperature, r.Humidity, r.Pressure)
		}
	} else {
		runDemo(station, conditions)
	}

	summary, err := statistics.TemperatureStats()
	if err != nil {
		return err
	}
	log.Info("final temperature statistics",
		slog.Float64("min", summary.Min),
		slog.Float64("max", summary.Max),
		slog.Float64("avg", summary.Mean),
		slog.Int("samples", summary.Count))
	return nil
}

// runDemo drives the built-in sequence: three readings with a mid-sequence
// deregistration and a deliberately failing display, showing that one broken
// display never blocks delivery to the others.
func runDemo(station *weather.Station, conditions *weather.CurrentConditionsDisplay) {
	station.SetMeasurements(25.5, 65, 1013.2)

	station.Deregister(conditions)
	station.SetMeasurements(28.0, 70, 1012.0)

	station.Register(&unpluggedDisplay{})
	station.SetMeasurements(22.0, 55, 1015.5)
}

// unpluggedDisplay fails every notification.
type unpluggedDisplay struct{}

func (d *unpluggedDisplay) Name() string { return "unplugged-display" }

func (d *unpluggedDisplay) OnUpdate(weather.Reading) error {
	return errors.New("display unplugged")
}
