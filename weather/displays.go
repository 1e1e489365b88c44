package weather

import (
	"log/slog"

	"github.com/dmitrymomot/statewatch/pkg/stats"
)

// StatisticsDisplay aggregates temperature readings into running statistics.
// It owns a stats.Tracker rather than embedding the bookkeeping itself.
type StatisticsDisplay struct {
	log   *slog.Logger
	temps stats.Tracker
}

// NewStatisticsDisplay creates a statistics display reporting through log.
// Nil loggers fall back to slog.Default().
func NewStatisticsDisplay(log *slog.Logger) *StatisticsDisplay {
	if log == nil {
		log = slog.Default()
	}
	return &StatisticsDisplay{log: log}
}

func (d *StatisticsDisplay) Name() string { return "statistics-display" }

func (d *StatisticsDisplay) OnUpdate(r Reading) error {
	d.temps.Add(r.Temperature)

	summary, err := d.temps.Summarize()
	if err != nil {
		return err
	}
	d.log.Info("temperature statistics",
		slog.Float64("min", summary.Min),
		slog.Float64("max", summary.Max),
		slog.Float64("avg", summary.Mean),
		slog.Int("samples", summary.Count))
	return nil
}

// TemperatureStats returns the accumulated temperature statistics, or
// stats.ErrNoSamples before the first update.
func (d *StatisticsDisplay) TemperatureStats() (stats.Summary, error) {
	return d.temps.Summarize()
}

// Rothfusz regression coefficients for the heat index, adapted to Celsius.
const (
	hiC1 = -8.78469475556
	hiC2 = 1.61139411
	hiC3 = 2.33854883889
	hiC4 = -0.14611605
	hiC5 = -0.012308094
	hiC6 = -0.0164248277778
	hiC7 = 0.002211732
	hiC8 = 0.00072546
	hiC9 = -0.000003582
)

// HeatIndex computes the apparent temperature in degrees Celsius from air
// temperature and relative humidity using the Rothfusz regression.
func HeatIndex(temperature, humidity float64) float64 {
	t, h := temperature, humidity
	return hiC1 +
		hiC2*t + hiC3*h +
		hiC4*t*h +
		hiC5*t*t + hiC6*h*h +
		hiC7*t*t*h + hiC8*t*h*h +
		hiC9*t*t*h*h
}

// HeatIndexDisplay derives the apparent temperature from each reading.
// It is stateless: every value is a pure function of the latest reading.
type HeatIndexDisplay struct {
	log *slog.Logger
}

func NewHeatIndexDisplay(log *slog.Logger) *HeatIndexDisplay {
	if log == nil {
		log = slog.Default()
	}
	return &HeatIndexDisplay{log: log}
}

func (d *HeatIndexDisplay) Name() string { return "heat-index-display" }

func (d *HeatIndexDisplay) OnUpdate(r Reading) error {
	d.log.Info("heat index",
		slog.Float64("heat_index", HeatIndex(r.Temperature, r.Humidity)),
		slog.Float64("temperature", r.Temperature),
		slog.Float64("humidity", r.Humidity))
	return nil
}

// Forecast is a coarse outlook derived from the pressure trend.
type Forecast string

const (
	ForecastUnknown   Forecast = "unknown"
	ForecastImproving Forecast = "improving"
	ForecastSteady    Forecast = "steady"
	ForecastWorsening Forecast = "worsening"
)

// ForecastDisplay predicts the outlook from the pressure trend between the
// two most recent readings.
type ForecastDisplay struct {
	log          *slog.Logger
	lastPressure float64
	seen         bool
	forecast     Forecast
}

func NewForecastDisplay(log *slog.Logger) *ForecastDisplay {
	if log == nil {
		log = slog.Default()
	}
	return &ForecastDisplay{log: log, forecast: ForecastUnknown}
}

func (d *ForecastDisplay) Name() string { return "forecast-display" }

func (d *ForecastDisplay) OnUpdate(r Reading) error {
	switch {
	case !d.seen:
		d.forecast = ForecastUnknown
	case r.Pressure > d.lastPressure:
		d.forecast = ForecastImproving
	case r.Pressure < d.lastPressure:
		d.forecast = ForecastWorsening
	default:
		d.forecast = ForecastSteady
	}
	d.lastPressure = r.Pressure
	d.seen = true

	d.log.Info("forecast",
		slog.String("outlook", string(d.forecast)),
		slog.Float64("pressure", r.Pressure))
	return nil
}

// Forecast returns the most recent outlook.
func (d *ForecastDisplay) Forecast() Forecast {
	return d.forecast
}

// CurrentConditionsDisplay reports the latest reading as a human-readable
// status line. It retains no history.
type CurrentConditionsDisplay struct {
	log *slog.Logger
}

func NewCurrentConditionsDisplay(log *slog.Logger) *CurrentConditionsDisplay {
	if log == nil {
		log = slog.Default()
	}
	return &CurrentConditionsDisplay{log: log}
}

func (d *CurrentConditionsDisplay) Name() string { return "current-conditions-display" }

func (d *CurrentConditionsDisplay) OnUpdate(r Reading) error {
	d.log.Info("current conditions", slog.String("reading", r.String()))
	return nil
}
