package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statewatch/pkg/stats"
)

func TestTracker(t *testing.T) {
	t.Parallel()

	t.Run("empty tracker reports no samples", func(t *testing.T) {
		t.Parallel()

		var tr stats.Tracker

		assert.Equal(t, 0, tr.Count())
		assert.Equal(t, 0.0, tr.Sum())

		_, err := tr.Min()
		assert.ErrorIs(t, err, stats.ErrNoSamples)
		_, err = tr.Max()
		assert.ErrorIs(t, err, stats.ErrNoSamples)
		_, err = tr.Mean()
		assert.ErrorIs(t, err, stats.ErrNoSamples)
		_, err = tr.Summarize()
		assert.ErrorIs(t, err, stats.ErrNoSamples)
	})

	t.Run("single sample", func(t *testing.T) {
		t.Parallel()

		var tr stats.Tracker
		tr.Add(25.5)

		summary, err := tr.Summarize()
		require.NoError(t, err)
		assert.Equal(t, 25.5, summary.Min)
		assert.Equal(t, 25.5, summary.Max)
		assert.Equal(t, 25.5, summary.Mean)
		assert.Equal(t, 1, summary.Count)
	})

	t.Run("running min max mean", func(t *testing.T) {
		t.Parallel()

		var tr stats.Tracker
		for _, v := range []float64{25.5, 28.0, 22.0} {
			tr.Add(v)
		}

		minVal, err := tr.Min()
		require.NoError(t, err)
		assert.Equal(t, 22.0, minVal)

		maxVal, err := tr.Max()
		require.NoError(t, err)
		assert.Equal(t, 28.0, maxVal)

		mean, err := tr.Mean()
		require.NoError(t, err)
		assert.InDelta(t, 25.1666, mean, 0.0001)

		assert.Equal(t, 3, tr.Count())
		assert.InDelta(t, 75.5, tr.Sum(), 1e-9)
	})

	t.Run("negative samples", func(t *testing.T) {
		t.Parallel()

		var tr stats.Tracker
		for _, v := range []float64{-5.0, 0.0, 5.0} {
			tr.Add(v)
		}

		summary, err := tr.Summarize()
		require.NoError(t, err)
		assert.Equal(t, -5.0, summary.Min)
		assert.Equal(t, 5.0, summary.Max)
		assert.Equal(t, 0.0, summary.Mean)
	})
}
