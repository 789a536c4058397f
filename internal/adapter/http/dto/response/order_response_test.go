package response

import (
	"testing"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	placed := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	o := entities.Order{
		ID:             "woocommerce#1001",
		ExternalID:     "1001",
		Source:         entities.SourceWooCommerce,
		BillingCompany: "Acme Ltd",
		ContactName:    "Jordan Reeves",
		ContactEmail:   "jordan@acme.example",
		TotalQuantity:  2,
		SubTotal:       1000,
		TotalTax:       200,
		TotalAmount:    1200,
		PaymentTotal:   1200,
		RefundTotal:    100,
		NetTotal:       1100,
		Status:         "completed",
		Lifecycle:      entities.OrderLifecyclePartiallyRefunded,
		OrderDate:      placed,
		Currency:       "GBP",
	}

	res := FromOrder(o)
	if res.ID != "woocommerce#1001" || res.ExternalID != "1001" || res.Source != "woocommerce" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.PaymentTotal != 1200 || res.RefundTotal != 100 || res.NetTotal != 1100 {
		t.Fatalf("unexpected money fields: %+v", res)
	}
	if res.Status != "completed" || res.Lifecycle != "partially_refunded" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if !res.OrderDate.Equal(placed) {
		t.Fatalf("unexpected order date: %v", res.OrderDate)
	}
}

func TestFromOrders(t *testing.T) {
	list := FromOrders([]entities.Order{{ID: "a"}, {ID: "b"}}, "tok-1")
	if len(list.Items) != 2 || list.Items[1].ID != "b" {
		t.Fatalf("unexpected items: %+v", list.Items)
	}
	if list.NextPageToken != "tok-1" {
		t.Fatalf("unexpected token: %q", list.NextPageToken)
	}
}
