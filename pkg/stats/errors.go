package stats

import "errors"

// ErrNoSamples is returned when a statistic is requested before any sample
// was added. Callers get an explicit error rather than a silent zero or NaN.
var ErrNoSamples = errors.New("stats: no samples recorded")
