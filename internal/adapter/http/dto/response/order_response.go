package response

import (
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

type OrderResponse struct {
	ID             string    `json:"id"`
	ExternalID     string    `json:"external_id"`
	Source         string    `json:"source"`
	BillingCompany string    `json:"billing_company"`
	ContactName    string    `json:"contact_name"`
	ContactEmail   string    `json:"contact_email"`
	TotalQuantity  int       `json:"total_quantity"`
	SubTotal       float64   `json:"sub_total"`
	TotalTax       float64   `json:"total_tax"`
	TotalAmount    float64   `json:"total_amount"`
	PaymentTotal   float64   `json:"payment_total"`
	RefundTotal    float64   `json:"refund_total"`
	NetTotal       float64   `json:"net_total"`
	Status         string    `json:"status"`
	Lifecycle      string    `json:"lifecycle_status"`
	OrderDate      time.Time `json:"order_date"`
	Currency       string    `json:"currency"`
}

type OrderListResponse struct {
	Items         []OrderResponse `json:"items"`
	NextPageToken string          `json:"next_page_token,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		ExternalID:     o.ExternalID,
		Source:         string(o.Source),
		BillingCompany: o.BillingCompany,
		ContactName:    o.ContactName,
		ContactEmail:   o.ContactEmail,
		TotalQuantity:  o.TotalQuantity,
		SubTotal:       o.SubTotal,
		TotalTax:       o.TotalTax,
		TotalAmount:    o.TotalAmount,
		PaymentTotal:   o.PaymentTotal,
		RefundTotal:    o.RefundTotal,
		NetTotal:       o.NetTotal,
		Status:         o.Status,
		Lifecycle:      string(o.Lifecycle),
		OrderDate:      o.OrderDate,
		Currency:       o.Currency,
	}
}

func FromOrders(orders []entities.Order, nextPageToken string) OrderListResponse {
	items := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, FromOrder(o))
	}
	return OrderListResponse{Items: items, NextPageToken: nextPageToken}
}
