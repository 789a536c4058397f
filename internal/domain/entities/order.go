package entities

import "time"

// OrderLifecycle is the normalized payment lifecycle of an order,
// derived from upstream status plus refund/payment totals.

type OrderLifecycle string

const (
	OrderLifecyclePending           OrderLifecycle = "pending"
	OrderLifecycleCompleted         OrderLifecycle = "completed"
	OrderLifecyclePartiallyRefunded OrderLifecycle = "partially_refunded"
	OrderLifecycleFullyRefunded     OrderLifecycle = "fully_refunded"
	OrderLifecycleCancelled         OrderLifecycle = "cancelled"
)

// Order is the normalized purchase/invoice record produced by the
// transform stage.
//
// Storage model (DynamoDB):
//   - PK: id = "{source}#{external_id}"
//
// The deterministic PK makes upserts by external id a plain PutItem:
// re-ingesting an updated raw event for the same external order
// overwrites the row in place.

type Order struct {
	ID             string         `json:"id"`
	ExternalID     string         `json:"external_id"`
	Source         Source         `json:"source"`
	BillingCompany string         `json:"billing_company"`
	ContactName    string         `json:"contact_name"`
	ContactEmail   string         `json:"contact_email"`
	TotalQuantity  int            `json:"total_quantity"`
	SubTotal       float64        `json:"sub_total"`
	TotalTax       float64        `json:"total_tax"`
	TotalAmount    float64        `json:"total_amount"`
	PaymentTotal   float64        `json:"payment_total"`
	RefundTotal    float64        `json:"refund_total"`
	NetTotal       float64        `json:"net_total"`
	Status         string         `json:"status"`
	Lifecycle      OrderLifecycle `json:"lifecycle_status"`
	OrderDate      time.Time      `json:"order_date"`
	Currency       string         `json:"currency"`
}

// OrderKey builds the deterministic storage id for (source, externalID).
func OrderKey(source Source, externalID string) string {
	return string(source) + "#" + externalID
}

// IsCancelled reports whether every enrolment tied to this order must be
// cancelled: the lifecycle is cancelled or fully refunded outright, or
// the refunds have consumed the payments.
func (o Order) IsCancelled() bool {
	if o.Lifecycle == OrderLifecycleCancelled || o.Lifecycle == OrderLifecycleFullyRefunded {
		return true
	}
	return o.PaymentTotal > 0 && o.RefundTotal >= o.PaymentTotal
}
