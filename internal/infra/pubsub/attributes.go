package pubsub

import "foodbank/internal/domain/service"

// eventAttributes builds the message attributes used for filtering and
// tracing. request_id is set only when known.
func eventAttributes(event *service.RecordEvent) map[string]string {
	attributes := map[string]string{
		"event_id":    event.EventID,
		"record_kind": event.RecordKind,
		"record_id":   event.RecordID,
		"operation":   event.Operation,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
