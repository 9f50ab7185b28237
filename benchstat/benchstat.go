// Package benchstat measures factor63.Factor throughput over a corpus of
// inputs and reports summary statistics, giving a microseconds-per-call
// throughput claim an executable check outside of go test -bench. It
// reports real wall-clock percentiles via montanaflynn/stats rather than
// testing.B's built-in ns/op average.
package benchstat

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/arbooker/factor63/factor63"
)

// Result summarizes the wall-clock cost, in microseconds, of factoring
// every value in a corpus once.
type Result struct {
	Count  int
	MeanUs float64
	P50Us  float64
	P95Us  float64
	P99Us  float64
	MaxUs  float64
}

// Run factors every value in corpus with db, discarding the results, and
// returns timing statistics in microseconds.
func Run(db *factor63.Database, corpus []int64) (Result, error) {
	samples := make([]float64, 0, len(corpus))
	for _, n := range corpus {
		start := time.Now()
		db.Factor(n)
		samples = append(samples, float64(time.Since(start).Nanoseconds())/1000.0)
	}

	data := stats.Float64Data(samples)

	mean, err := data.Mean()
	if err != nil {
		return Result{}, err
	}
	p50, err := data.Percentile(50)
	if err != nil {
		return Result{}, err
	}
	p95, err := data.Percentile(95)
	if err != nil {
		return Result{}, err
	}
	p99, err := data.Percentile(99)
	if err != nil {
		return Result{}, err
	}
	max, err := data.Max()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Count:  len(samples),
		MeanUs: mean,
		P50Us:  p50,
		P95Us:  p95,
		P99Us:  p99,
		MaxUs:  max,
	}, nil
}
