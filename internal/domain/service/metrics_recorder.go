package service

import "time"

// MetricsRecorder receives operational measurements.
type MetricsRecorder interface {
	// ObserveAction counts one facade action with its outcome ("ok" or an error kind).
	ObserveAction(action, outcome string, elapsed time.Duration)
	// ObserveRebuild records one view rebuild.
	ObserveRebuild(elapsed time.Duration, err error)
	// ObserveRecordCreated counts a newly created record of kind.
	ObserveRecordCreated(kind string)
}
