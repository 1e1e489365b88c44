// Package stats provides a small running-statistics tracker for float64
// samples: minimum, maximum, sum, count, and mean. It exists as a composition
// helper so observers that aggregate over a stream of values own a Tracker
// instead of reimplementing the bookkeeping.
//
// A Tracker is not safe for concurrent use; it is meant to be owned by a
// single observer notified from a serialized broadcast loop.
package stats
