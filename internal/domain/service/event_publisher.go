package service

import (
	"context"
)

// Record kinds carried in RecordEvent.
const (
	RecordKindReservation = "reservation"
	RecordKindPantry      = "pantry"
	RecordKindDonation    = "donation"
	RecordKindRequest     = "request"
)

// RecordEvent announces a change to the record store so the view worker
// can rebuild derived views.
type RecordEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventID    string `json:"event_id"`
	RecordKind string `json:"record_kind"`
	RecordID   string `json:"record_id"`
	Operation  string `json:"operation"` // created, updated, deleted
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRecordEvent publishes a record change for async view rebuilds
	PublishRecordEvent(ctx context.Context, event *RecordEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
