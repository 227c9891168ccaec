package models

import "time"

// TimingRun is one measured call of an algorithm on a generated input
type TimingRun struct {
	ID            int64
	Algo          string
	N             int    // input length in bytes
	K             uint   // frequency floor, only meaningful for lfs
	InputPreview  string // first characters of the generated input
	OutputPreview string
	Elapsed       time.Duration
	ErrKind       string // empty on success
	CreatedAt     time.Time
}

// Failed reports whether the measured call returned an error
func (r TimingRun) Failed() bool {
	return r.ErrKind != ""
}

// Seconds returns the elapsed time the way the timing report prints it
func (r TimingRun) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// AlgoStats aggregates every stored run of one algorithm at one input size
type AlgoStats struct {
	Algo string
	N    int
	Runs int
	Min  time.Duration
	Mean time.Duration
	Max  time.Duration
}

// RunFilter holds filter criteria for querying stored runs
type RunFilter struct {
	Algo   string // "" for all algorithms
	MinN   int
	MaxN   int // 0 = no upper bound
	Limit  int
	Offset int
}
