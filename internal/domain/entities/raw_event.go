package entities

import (
	"encoding/json"
	"time"
)

// Source identifies an upstream commerce system. Routing in the batch
// processor is keyed on this closed set; payloads tagged with anything
// else are unroutable and dropped without retry.

type Source string

const (
	SourceWooCommerce Source = "woocommerce"
	SourceXero        Source = "xero"
)

// ParseSource maps a raw tag onto the closed source set. The boolean is
// false for unknown tags so callers handle the unroutable case explicitly
// instead of falling through a string comparison.
func ParseSource(tag string) (Source, bool) {
	switch Source(tag) {
	case SourceWooCommerce:
		return SourceWooCommerce, true
	case SourceXero:
		return SourceXero, true
	}
	return Source(tag), false
}

// RawEventStatus is the lifecycle of an ingested payload.
//
// Transitions are one-way: pending -> processed or pending -> error,
// stamped at most once per processing attempt. Records marked error stay
// terminal; re-processing happens by re-delivering the payload (a changed
// payload hashes differently and is stored as a new record).

type RawEventStatus string

const (
	RawEventStatusPending   RawEventStatus = "pending"
	RawEventStatusProcessed RawEventStatus = "processed"
	RawEventStatusError     RawEventStatus = "error"
)

// RawEvent is an immutable ingested payload awaiting transformation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (source_hash-index): source / payload_hash, content dedup
//   - GSI2 (status-index): status / created_at, oldest-first pending scan
//   - GSI3 (source_modified-index): source / payload_modified, incremental pulls
//
// Uniqueness on (source, payload_hash): a byte-identical payload for the
// same source is never stored twice, even under distinct external ids.
// Only the batch processor mutates status/processed_at/error_message.

type RawEvent struct {
	ID              string          `json:"id"`
	Source          Source          `json:"source"`
	ExternalID      string          `json:"external_id"`
	Payload         json.RawMessage `json:"payload"`
	PayloadHash     string          `json:"payload_hash"`
	EventType       string          `json:"event_type"`
	Status          RawEventStatus  `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
	ErrorMessage    string          `json:"error_message,omitempty"`
	PayloadModified *time.Time      `json:"payload_modified,omitempty"`
}
