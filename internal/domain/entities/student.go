package entities

import "strings"

// Student is an attendee resolved from ticket or billing contact data.
//
// Storage model (DynamoDB):
//   - PK: id = lowercased email
//
// Email is the natural key, case-insensitive. Name and company are
// overwritten on every upsert (last write wins), so the record always
// reflects the most recent upstream data.

type Student struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
}

// StudentKey normalizes an email into the storage id.
func StudentKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
