package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

// XeroInvoiceParser maps an invoicing-provider document onto the
// canonical order model. Invoices carry no attendee breakdown, so the
// result has no tickets; the invoice processor persists the order record
// only. Numeric fields arrive as JSON numbers or numeric strings
// depending on the export path.

type XeroInvoiceParser struct{}

func NewXeroInvoiceParser() *XeroInvoiceParser {
	return &XeroInvoiceParser{}
}

type xeroContact struct {
	Name         string `json:"Name"`
	EmailAddress string `json:"EmailAddress"`
}

type xeroInvoice struct {
	InvoiceID      string          `json:"InvoiceID"`
	InvoiceNumber  string          `json:"InvoiceNumber"`
	Reference      string          `json:"Reference"`
	Status         string          `json:"Status"`
	CurrencyCode   string          `json:"CurrencyCode"`
	Date           string          `json:"DateString"`
	SubTotal       json.RawMessage `json:"SubTotal"`
	TotalTax       json.RawMessage `json:"TotalTax"`
	Total          json.RawMessage `json:"Total"`
	AmountPaid     json.RawMessage `json:"AmountPaid"`
	AmountCredited json.RawMessage `json:"AmountCredited"`
	Contact        xeroContact     `json:"Contact"`
}

func (p *XeroInvoiceParser) Parse(payload json.RawMessage) (entities.CanonicalOrder, error) {
	var raw xeroInvoice
	if err := json.Unmarshal(payload, &raw); err != nil {
		return entities.CanonicalOrder{}, newMalformed("xero invoice payload", err)
	}
	externalID := raw.InvoiceID
	if externalID == "" {
		externalID = raw.InvoiceNumber
	}
	if externalID == "" {
		externalID = raw.Reference
	}
	if externalID == "" {
		return entities.CanonicalOrder{}, newMalformed("xero invoice missing id", nil)
	}

	return entities.CanonicalOrder{
		ExternalID:     externalID,
		Source:         entities.SourceXero,
		Status:         strings.ToLower(raw.Status),
		Currency:       raw.CurrencyCode,
		OrderDate:      parseXeroDate(raw.Date),
		BillingCompany: raw.Contact.Name,
		ContactName:    raw.Contact.Name,
		ContactEmail:   raw.Contact.EmailAddress,
		SubTotal:       rawFloat(raw.SubTotal),
		TotalTax:       rawFloat(raw.TotalTax),
		TotalAmount:    rawFloat(raw.Total),
		PaymentTotal:   rawFloat(raw.AmountPaid),
		RefundTotal:    rawFloat(raw.AmountCredited),
	}, nil
}

var xeroDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseXeroDate(s string) time.Time {
	for _, layout := range xeroDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
