package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	mock_interfaces "github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const wooBaseOrder = `{
	"id": 1001,
	"status": "completed",
	"currency": "GBP",
	"date_created": "2025-01-10T09:30:00",
	"date_paid": "2025-01-10T09:35:00",
	"total": "1200.00",
	"total_tax": "200.00",
	"billing": {
		"first_name": "Jordan",
		"last_name": "Reeves",
		"company": "Acme Ltd",
		"email": "jordan@acme.example"
	},
	"line_items": [
		{
			"id": 1,
			"name": "PSM - 6-7 Feb 25",
			"product_id": 501,
			"quantity": 2,
			"sku": "PSM-060225",
			"price": "500",
			"subtotal": "1000",
			"total": "1000"
		}
	],
	"refunds": [],
	"meta_data": []
}`

func TestWooCommerceParser_Parse(t *testing.T) {
	ctx := context.Background()

	t.Run("baseline tickets from line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mock_interfaces.NewMockITicketGateway(ctrl)
		tickets.EXPECT().FetchTickets(gomock.Any(), "1001").Return(nil, nil)

		p := NewWooCommerceParser(tickets)
		got, err := p.Parse(ctx, json.RawMessage(wooBaseOrder))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.ExternalID != "1001" || got.Source != entities.SourceWooCommerce {
			t.Fatalf("unexpected identity: %+v", got)
		}
		if got.TotalAmount != 1200 || got.TotalTax != 200 || got.SubTotal != 1000 {
			t.Fatalf("unexpected totals: %+v", got)
		}
		if got.PaymentTotal != 1200 {
			t.Fatalf("paid order must carry payment total, got %v", got.PaymentTotal)
		}
		if len(got.Tickets) != 2 {
			t.Fatalf("expected one ticket per unit, got %d", len(got.Tickets))
		}
		for _, tk := range got.Tickets {
			if tk.Email != "jordan@acme.example" || tk.Name != "Jordan Reeves" || tk.SKU != "PSM-060225" {
				t.Fatalf("baseline ticket must carry billing contact: %+v", tk)
			}
		}
	})

	t.Run("legacy meta overlays win and suppress the ticket api", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		// No EXPECT on the gateway: a FetchTickets call would fail the test.
		tickets := mock_interfaces.NewMockITicketGateway(ctrl)

		var raw map[string]json.RawMessage
		if err := json.Unmarshal([]byte(wooBaseOrder), &raw); err != nil {
			t.Fatal(err)
		}
		raw["meta_data"] = json.RawMessage(`[
			{"key": "_ticket_2", "value": {"attendee_email": "second@corp.example", "attendee_name": "Bo Vine", "designation": "Developer"}},
			{"key": "_ticket_1", "value": {"attendee_email": "first@corp.example", "attendee_name": "Alex Moss", "company": "Corp"}},
			{"key": "_other", "value": "ignored"}
		]`)
		payload, _ := json.Marshal(raw)

		p := NewWooCommerceParser(tickets)
		got, err := p.Parse(ctx, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Tickets) != 2 {
			t.Fatalf("expected 2 tickets, got %d", len(got.Tickets))
		}
		if got.Tickets[0].Email != "first@corp.example" || got.Tickets[0].Name != "Alex Moss" || got.Tickets[0].Company != "Corp" {
			t.Fatalf("legacy overlay 1 not applied: %+v", got.Tickets[0])
		}
		if got.Tickets[1].Email != "second@corp.example" || got.Tickets[1].Designation != "Developer" {
			t.Fatalf("legacy overlay 2 not applied: %+v", got.Tickets[1])
		}
	})

	t.Run("external tickets fill attendee data when no legacy meta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mock_interfaces.NewMockITicketGateway(ctrl)
		tickets.EXPECT().FetchTickets(gomock.Any(), "1001").Return([]entities.ExternalTicket{
			{EventID: 501, AttendeeName: "Robin Hale", AttendeeEmail: "robin@corp.example", Designation: "QA"},
		}, nil)

		p := NewWooCommerceParser(tickets)
		got, err := p.Parse(ctx, json.RawMessage(wooBaseOrder))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Tickets[0].Email != "robin@corp.example" || got.Tickets[0].Designation != "QA" {
			t.Fatalf("external overlay not applied: %+v", got.Tickets[0])
		}
		// Second unit keeps the billing contact.
		if got.Tickets[1].Email != "jordan@acme.example" {
			t.Fatalf("unexpected second ticket: %+v", got.Tickets[1])
		}
	})

	t.Run("ticket api failure degrades to billing contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mock_interfaces.NewMockITicketGateway(ctrl)
		tickets.EXPECT().FetchTickets(gomock.Any(), "1001").Return(nil, errors.New("boom"))

		p := NewWooCommerceParser(tickets)
		got, err := p.Parse(ctx, json.RawMessage(wooBaseOrder))
		if err != nil {
			t.Fatalf("ticket api failure must not fail the order: %v", err)
		}
		if got.Tickets[0].Email != "jordan@acme.example" {
			t.Fatalf("expected billing contact fallback, got %+v", got.Tickets[0])
		}
	})

	t.Run("refunds accumulate as positive totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mock_interfaces.NewMockITicketGateway(ctrl)
		tickets.EXPECT().FetchTickets(gomock.Any(), "1001").Return(nil, nil)

		var raw map[string]json.RawMessage
		if err := json.Unmarshal([]byte(wooBaseOrder), &raw); err != nil {
			t.Fatal(err)
		}
		raw["refunds"] = json.RawMessage(`[{"total": "-600.00"}, {"total": "-100.00"}]`)
		payload, _ := json.Marshal(raw)

		p := NewWooCommerceParser(tickets)
		got, err := p.Parse(ctx, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RefundTotal != 700 {
			t.Fatalf("RefundTotal = %v, want 700", got.RefundTotal)
		}
	})

	t.Run("missing sku synthesizes a dated one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mock_interfaces.NewMockITicketGateway(ctrl)
		tickets.EXPECT().FetchTickets(gomock.Any(), "1001").Return(nil, nil)

		var raw map[string]json.RawMessage
		if err := json.Unmarshal([]byte(wooBaseOrder), &raw); err != nil {
			t.Fatal(err)
		}
		raw["line_items"] = json.RawMessage(`[{"id": 1, "name": "PSM - 6-7 Feb 25", "product_id": 501, "quantity": 1, "sku": "", "total": "600"}]`)
		payload, _ := json.Marshal(raw)

		p := NewWooCommerceParser(tickets)
		got, err := p.Parse(ctx, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Tickets[0].SKU != "PSM-060225" {
			t.Fatalf("synthesized SKU = %q, want PSM-060225", got.Tickets[0].SKU)
		}
	})

	t.Run("malformed payloads", func(t *testing.T) {
		p := NewWooCommerceParser(nil)

		if _, err := p.Parse(ctx, json.RawMessage(`{`)); !IsMalformed(err) {
			t.Fatalf("truncated JSON must be malformed, got %v", err)
		}
		if _, err := p.Parse(ctx, json.RawMessage(`{"status": "completed"}`)); !IsMalformed(err) {
			t.Fatalf("missing id must be malformed, got %v", err)
		}
	})

	t.Run("unpaid pending order has zero payment total", func(t *testing.T) {
		p := NewWooCommerceParser(nil)
		got, err := p.Parse(ctx, json.RawMessage(`{"id": 7, "status": "pending", "total": "100"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentTotal != 0 {
			t.Fatalf("PaymentTotal = %v, want 0", got.PaymentTotal)
		}
	})
}
