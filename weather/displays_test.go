package weather_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statewatch/pkg/stats"
	"github.com/dmitrymomot/statewatch/weather"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestStatisticsDisplay(t *testing.T) {
	t.Parallel()

	t.Run("accumulates temperature statistics", func(t *testing.T) {
		t.Parallel()

		display := weather.NewStatisticsDisplay(discardLogger())
		for _, temp := range []float64{25.5, 28.0, 22.0} {
			require.NoError(t, display.OnUpdate(weather.Reading{Temperature: temp}))
		}

		summary, err := display.TemperatureStats()
		require.NoError(t, err)
		assert.Equal(t, 22.0, summary.Min)
		assert.Equal(t, 28.0, summary.Max)
		assert.InDelta(t, 25.1666, summary.Mean, 0.0001)
		assert.Equal(t, 3, summary.Count)
	})

	t.Run("stats before first update", func(t *testing.T) {
		t.Parallel()

		display := weather.NewStatisticsDisplay(discardLogger())
		_, err := display.TemperatureStats()
		assert.ErrorIs(t, err, stats.ErrNoSamples)
	})

	t.Run("logs on every update", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		display := weather.NewStatisticsDisplay(slog.New(slog.NewTextHandler(&buf, nil)))
		require.NoError(t, display.OnUpdate(weather.Reading{Temperature: 20}))

		assert.Contains(t, buf.String(), "temperature statistics")
		assert.Contains(t, buf.String(), "samples=1")
	})
}

func TestHeatIndex(t *testing.T) {
	t.Parallel()

	t.Run("reference value", func(t *testing.T) {
		t.Parallel()

		// 32°C at 70% relative humidity feels close to 41°C.
		assert.InDelta(t, 41.0, weather.HeatIndex(32, 70), 1.0)
	})

	t.Run("display is stateless", func(t *testing.T) {
		t.Parallel()

		display := weather.NewHeatIndexDisplay(discardLogger())
		r := weather.Reading{Temperature: 30, Humidity: 60}

		require.NoError(t, display.OnUpdate(r))
		require.NoError(t, display.OnUpdate(weather.Reading{Temperature: 10, Humidity: 10}))
		require.NoError(t, display.OnUpdate(r))
	})
}

func TestForecastDisplay(t *testing.T) {
	t.Parallel()

	display := weather.NewForecastDisplay(discardLogger())
	assert.Equal(t, weather.ForecastUnknown, display.Forecast())

	// First reading has no trend to compare against.
	require.NoError(t, display.OnUpdate(weather.Reading{Pressure: 1013.2}))
	assert.Equal(t, weather.ForecastUnknown, display.Forecast())

	require.NoError(t, display.OnUpdate(weather.Reading{Pressure: 1012.0}))
	assert.Equal(t, weather.ForecastWorsening, display.Forecast())

	require.NoError(t, display.OnUpdate(weather.Reading{Pressure: 1015.5}))
	assert.Equal(t, weather.ForecastImproving, display.Forecast())

	require.NoError(t, display.OnUpdate(weather.Reading{Pressure: 1015.5}))
	assert.Equal(t, weather.ForecastSteady, display.Forecast())
}

func TestCurrentConditionsDisplay(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	display := weather.NewCurrentConditionsDisplay(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, display.OnUpdate(weather.Reading{Temperature: 25.5, Humidity: 65, Pressure: 1013.2}))

	assert.Contains(t, buf.String(), "current conditions")
	assert.Contains(t, buf.String(), "25.5°C")
}
