package metrics

import "time"

// NopMetrics is a Recorder that discards everything.
type NopMetrics struct{}

var _ Recorder = (*NopMetrics)(nil)

// NewNop creates a no-op recorder.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// ObserveRequest does nothing.
func (n *NopMetrics) ObserveRequest(_, _ string, _ int, _ time.Duration) {}

// RecordSeed does nothing.
func (n *NopMetrics) RecordSeed(_ map[string]int, _ int) {}

// RecordSeedFailure does nothing.
func (n *NopMetrics) RecordSeedFailure() {}
