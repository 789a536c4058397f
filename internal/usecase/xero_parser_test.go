package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

func TestXeroInvoiceParser_Parse(t *testing.T) {
	p := NewXeroInvoiceParser()

	t.Run("maps an authorised invoice", func(t *testing.T) {
		payload := json.RawMessage(`{
			"InvoiceID": "inv-123",
			"InvoiceNumber": "INV-0042",
			"Status": "AUTHORISED",
			"CurrencyCode": "GBP",
			"DateString": "2025-02-01T00:00:00",
			"SubTotal": 1000.0,
			"TotalTax": 200.0,
			"Total": 1200.0,
			"AmountPaid": 1200.0,
			"AmountCredited": 0,
			"Contact": {"Name": "Acme Ltd", "EmailAddress": "accounts@acme.example"}
		}`)

		got, err := p.Parse(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ExternalID != "inv-123" || got.Source != entities.SourceXero {
			t.Fatalf("unexpected identity: %+v", got)
		}
		if got.Status != "authorised" {
			t.Fatalf("status must be lowercased, got %q", got.Status)
		}
		if got.PaymentTotal != 1200 || got.RefundTotal != 0 {
			t.Fatalf("unexpected totals: %+v", got)
		}
		want := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		if !got.OrderDate.Equal(want) {
			t.Fatalf("OrderDate = %s, want %s", got.OrderDate, want)
		}
		if len(got.Tickets) != 0 {
			t.Fatalf("invoices must carry no tickets, got %d", len(got.Tickets))
		}
	})

	t.Run("identifier fallback chain", func(t *testing.T) {
		got, err := p.Parse(json.RawMessage(`{"InvoiceNumber": "INV-0042", "Status": "PAID"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ExternalID != "INV-0042" {
			t.Fatalf("ExternalID = %q, want INV-0042", got.ExternalID)
		}

		got, err = p.Parse(json.RawMessage(`{"Reference": "web-order-55"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ExternalID != "web-order-55" {
			t.Fatalf("ExternalID = %q, want web-order-55", got.ExternalID)
		}
	})

	t.Run("numeric strings are accepted", func(t *testing.T) {
		got, err := p.Parse(json.RawMessage(`{"InvoiceID": "inv-9", "AmountPaid": "350.50", "AmountCredited": "350.50"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentTotal != 350.50 || got.RefundTotal != 350.50 {
			t.Fatalf("unexpected totals: %+v", got)
		}
	})

	t.Run("malformed payloads", func(t *testing.T) {
		if _, err := p.Parse(json.RawMessage(`not-json`)); !IsMalformed(err) {
			t.Fatalf("invalid JSON must be malformed, got %v", err)
		}
		if _, err := p.Parse(json.RawMessage(`{"Status": "PAID"}`)); !IsMalformed(err) {
			t.Fatalf("missing identifiers must be malformed, got %v", err)
		}
	})
}
