package response

// WebhookResponse acknowledges an ingested webhook delivery.
//
// Duplicate deliveries are acknowledged with an empty event id so the
// upstream system never retries a payload we already hold.
type WebhookResponse struct {
	EventID   string `json:"event_id"`
	Duplicate bool   `json:"duplicate"`
}
