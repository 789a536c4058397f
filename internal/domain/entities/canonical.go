package entities

import "time"

// CanonicalOrder is the source-independent representation every parser
// produces. All upstream systems map into this model; the processors map
// out of it into the normalized store.

type CanonicalOrder struct {
	ExternalID     string
	Source         Source
	Status         string
	Currency       string
	OrderDate      time.Time
	BillingCompany string
	ContactName    string
	ContactEmail   string
	SubTotal       float64
	TotalTax       float64
	TotalAmount    float64
	PaymentTotal   float64
	RefundTotal    float64
	LineItems      []CanonicalLineItem
	Tickets        []CanonicalTicket
}

// CanonicalLineItem is one purchasable line of an upstream order.
type CanonicalLineItem struct {
	ProductID int64
	SKU       string
	Name      string
	Quantity  int
	Price     float64
	Total     float64
}

// CanonicalTicket is one attendee seat derived from an order: the unit
// that resolves to exactly one enrolment. Tickets start as copies of the
// billing contact and may be overwritten by attendee-specific data from
// legacy order metadata or the external ticket API.
type CanonicalTicket struct {
	ProductID   int64
	SKU         string
	Name        string
	Email       string
	Company     string
	Designation string
}

// TotalQuantity sums the line-item quantities.
func (o CanonicalOrder) TotalQuantity() int {
	n := 0
	for _, li := range o.LineItems {
		n += li.Quantity
	}
	return n
}

// ExternalTicket is an attendee record returned by the external
// ticket-management API, keyed by upstream order id. An order with no
// tickets yields an empty slice, never an error.
type ExternalTicket struct {
	TicketID      string `json:"ticket_id"`
	Status        string `json:"status"`
	EventID       int64  `json:"event_id"`
	AttendeeName  string `json:"attendee_name"`
	AttendeeEmail string `json:"attendee_email"`
	Designation   string `json:"designation"`
}
