package domain

import "time"

// BenchmarkRecord is one benchmark extracted from a results log
type BenchmarkRecord struct {
	Name   string `json:"name"`
	MeanNs int64  `json:"mean_ns"`
}

// Mean returns the mean execution time as a time.Duration
func (r BenchmarkRecord) Mean() time.Duration {
	return time.Duration(r.MeanNs)
}
