package stats

// Tracker accumulates running statistics over a stream of float64 samples.
// The zero value is ready to use.
type Tracker struct {
	min   float64
	max   float64
	sum   float64
	count int
}

// Summary is a point-in-time snapshot of a tracker's statistics.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// Add records one sample.
func (t *Tracker) Add(v float64) {
	if t.count == 0 {
		t.min = v
		t.max = v
	} else {
		t.min = min(t.min, v)
		t.max = max(t.max, v)
	}
	t.sum += v
	t.count++
}

// Count returns the number of recorded samples.
func (t *Tracker) Count() int {
	return t.count
}

// Sum returns the sum of all recorded samples.
func (t *Tracker) Sum() float64 {
	return t.sum
}

// Min returns the smallest recorded sample, or ErrNoSamples if none exist.
func (t *Tracker) Min() (float64, error) {
	if t.count == 0 {
		return 0, ErrNoSamples
	}
	return t.min, nil
}

// Max returns the largest recorded sample, or ErrNoSamples if none exist.
func (t *Tracker) Max() (float64, error) {
	if t.count == 0 {
		return 0, ErrNoSamples
	}
	return t.max, nil
}

// Mean returns the arithmetic mean of all recorded samples, or ErrNoSamples
// if none exist.
func (t *Tracker) Mean() (float64, error) {
	if t.count == 0 {
		return 0, ErrNoSamples
	}
	return t.sum / float64(t.count), nil
}

// Summarize returns all statistics at once, or ErrNoSamples if no sample was
// recorded yet.
func (t *Tracker) Summarize() (Summary, error) {
	if t.count == 0 {
		return Summary{}, ErrNoSamples
	}
	return Summary{
		Min:   t.min,
		Max:   t.max,
		Mean:  t.sum / float64(t.count),
		Count: t.count,
	}, nil
}
