// Package timing wraps scored operations, recording how long they took.
// The population-fidelity measures are the main customers: each produces a
// score, and the study reports the score next to its wall-clock cost.
package timing

import "time"

// Measurement pairs an operation's score with its wall-clock duration.
type Measurement[T any] struct {
	Score   T             `json:"score"`
	Elapsed time.Duration `json:"time"`
}

// Measure runs fn and returns its score together with the elapsed time.
// Elapsed is recorded even when fn fails, so error paths still show up in
// timing sheets.
func Measure[T any](fn func() (T, error)) (Measurement[T], error) {
	start := time.Now()
	score, err := fn()
	elapsed := time.Since(start)

	if err != nil {
		return Measurement[T]{Elapsed: elapsed}, err
	}
	return Measurement[T]{Score: score, Elapsed: elapsed}, nil
}
