// Package metrics exposes request and seeding instrumentation.
package metrics

import "time"

// Recorder receives instrumentation events from the HTTP layer and the seeder.
type Recorder interface {
	// ObserveRequest records one served HTTP request. route is the matched route
	// template, not the raw path, to keep label cardinality bounded.
	ObserveRequest(method, route string, status int, duration time.Duration)

	// RecordSeed records a successful seed run with the rows written per table
	// and the number of students the assignment engine dropped.
	RecordSeed(rows map[string]int, dropped int)

	// RecordSeedFailure records a failed seed run.
	RecordSeedFailure()
}
