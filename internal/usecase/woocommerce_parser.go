package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"
)

// legacyTicketKeyPrefix marks order meta entries carrying embedded
// attendee data from the old store plugin.
const legacyTicketKeyPrefix = "_ticket_"

// WooCommerceParser converts a raw store order payload into the
// canonical order/ticket representation.
//
// Attendee data is reconciled from three sources, in priority order:
// line items (baseline, one ticket per unit, billing contact defaults),
// legacy embedded ticket metadata (overwrites tickets when present), and
// the external ticket API (only when legacy metadata is absent). Ticket
// API not-found and decode failures degrade to line-item-only data; they
// never fail the order.

type WooCommerceParser struct {
	tickets interfaces.ITicketGateway
}

func NewWooCommerceParser(tickets interfaces.ITicketGateway) *WooCommerceParser {
	return &WooCommerceParser{tickets: tickets}
}

type wooBilling struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Email     string `json:"email"`
}

type wooLineItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	SKU       string          `json:"sku"`
	Price     json.RawMessage `json:"price"`
	Subtotal  json.RawMessage `json:"subtotal"`
	Total     json.RawMessage `json:"total"`
}

type wooRefund struct {
	Total json.RawMessage `json:"total"`
}

type wooMeta struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type wooOrder struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	Currency    string          `json:"currency"`
	DateCreated string          `json:"date_created"`
	DatePaid    string          `json:"date_paid"`
	Total       json.RawMessage `json:"total"`
	TotalTax    json.RawMessage `json:"total_tax"`
	Billing     wooBilling      `json:"billing"`
	LineItems   []wooLineItem   `json:"line_items"`
	Refunds     []wooRefund     `json:"refunds"`
	MetaData    []wooMeta       `json:"meta_data"`
}

// ticketOverlay is attendee data merged over a baseline ticket.
type ticketOverlay struct {
	ProductID   int64
	Name        string
	Email       string
	Company     string
	Designation string
}

func (p *WooCommerceParser) Parse(ctx context.Context, payload json.RawMessage) (entities.CanonicalOrder, error) {
	var raw wooOrder
	if err := json.Unmarshal(payload, &raw); err != nil {
		return entities.CanonicalOrder{}, newMalformed("woocommerce order payload", err)
	}
	if raw.ID == 0 {
		return entities.CanonicalOrder{}, newMalformed("woocommerce order missing id", nil)
	}

	orderDate := parseWooDate(raw.DateCreated)
	total := rawFloat(raw.Total)
	tax := rawFloat(raw.TotalTax)

	refundTotal := 0.0
	for _, r := range raw.Refunds {
		v := rawFloat(r.Total)
		if v < 0 {
			v = -v
		}
		refundTotal += v
	}

	paymentTotal := 0.0
	if raw.DatePaid != "" || raw.Status == "completed" || raw.Status == "processing" {
		paymentTotal = total
	}

	contactName := strings.TrimSpace(raw.Billing.FirstName + " " + raw.Billing.LastName)

	out := entities.CanonicalOrder{
		ExternalID:     strconv.FormatInt(raw.ID, 10),
		Source:         entities.SourceWooCommerce,
		Status:         raw.Status,
		Currency:       raw.Currency,
		OrderDate:      orderDate,
		BillingCompany: raw.Billing.Company,
		ContactName:    contactName,
		ContactEmail:   raw.Billing.Email,
		SubTotal:       total - tax,
		TotalTax:       tax,
		TotalAmount:    total,
		PaymentTotal:   paymentTotal,
		RefundTotal:    refundTotal,
	}

	for _, li := range raw.LineItems {
		out.LineItems = append(out.LineItems, entities.CanonicalLineItem{
			ProductID: li.ProductID,
			SKU:       li.SKU,
			Name:      li.Name,
			Quantity:  li.Quantity,
			Price:     rawFloat(li.Price),
			Total:     rawFloat(li.Total),
		})
	}

	out.Tickets = p.baselineTickets(out, raw.LineItems)

	if overlays := legacyTicketOverlays(raw.MetaData); len(overlays) > 0 {
		mergeOverlays(out.ExternalID, out.Tickets, overlays)
	} else if p.tickets != nil {
		overlays := p.externalOverlays(ctx, out.ExternalID)
		mergeOverlays(out.ExternalID, out.Tickets, overlays)
	}

	return out, nil
}

// baselineTickets expands line items into one ticket per unit carrying
// the billing contact. SKU fallback chain: item SKU, synthesized
// CODE-ddMMyy, code plus random suffix.
func (p *WooCommerceParser) baselineTickets(o entities.CanonicalOrder, items []wooLineItem) []entities.CanonicalTicket {
	var tickets []entities.CanonicalTicket
	for _, li := range items {
		sku := li.SKU
		if sku == "" {
			sku = SynthesizeSKU(li.Name, o.OrderDate)
		}
		qty := li.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			tickets = append(tickets, entities.CanonicalTicket{
				ProductID: li.ProductID,
				SKU:       sku,
				Name:      o.ContactName,
				Email:     o.ContactEmail,
				Company:   o.BillingCompany,
			})
		}
	}
	return tickets
}

// legacyTicketOverlays extracts the embedded attendee maps stored by the
// old plugin under "_ticket_<n>" meta keys, in suffix order.
func legacyTicketOverlays(meta []wooMeta) []ticketOverlay {
	type keyed struct {
		seq     int
		overlay ticketOverlay
	}
	var found []keyed
	for _, m := range meta {
		if !strings.HasPrefix(m.Key, legacyTicketKeyPrefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(m.Key, legacyTicketKeyPrefix))
		if err != nil {
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(m.Value, &fields); err != nil {
			log.Printf("[etl][woo-parser] unreadable legacy ticket meta key=%s err=%v", m.Key, err)
			continue
		}
		ov := ticketOverlay{}
		for k, v := range fields {
			switch {
			case containsFold(k, "email"):
				ov.Email = rawString(v)
			case containsFold(k, "company"):
				ov.Company = rawString(v)
			case containsFold(k, "product"):
				ov.ProductID = rawInt(v)
			case containsFold(k, "designation"):
				ov.Designation = rawString(v)
			case containsFold(k, "name"):
				ov.Name = rawString(v)
			}
		}
		found = append(found, keyed{seq: seq, overlay: ov})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].seq < found[j].seq })

	overlays := make([]ticketOverlay, 0, len(found))
	for _, f := range found {
		overlays = append(overlays, f.overlay)
	}
	return overlays
}

// externalOverlays pulls attendee data from the ticket API. Any failure
// means "no tickets available".
func (p *WooCommerceParser) externalOverlays(ctx context.Context, orderID string) []ticketOverlay {
	ext, err := p.tickets.FetchTickets(ctx, orderID)
	if err != nil {
		log.Printf("[etl][woo-parser] ticket api unavailable order_id=%s err=%v", orderID, err)
		return nil
	}
	overlays := make([]ticketOverlay, 0, len(ext))
	for _, t := range ext {
		overlays = append(overlays, ticketOverlay{
			ProductID:   t.EventID,
			Name:        t.AttendeeName,
			Email:       t.AttendeeEmail,
			Designation: t.Designation,
		})
	}
	return overlays
}

// mergeOverlays writes attendee overlays into the baseline tickets.
//
// Each overlay correlates to the next unconsumed ticket sharing its
// product id; overlays without a product id (or without a product match)
// fall back to the next unconsumed ticket by position. A length mismatch
// merges the overlapping prefix and logs a warning.
func mergeOverlays(orderID string, tickets []entities.CanonicalTicket, overlays []ticketOverlay) {
	if len(overlays) == 0 {
		return
	}
	if len(overlays) != len(tickets) {
		log.Printf("[etl][woo-parser] ticket overlay count mismatch order_id=%s tickets=%d overlays=%d", orderID, len(tickets), len(overlays))
	}

	consumed := make([]bool, len(tickets))
	pick := func(productID int64) int {
		if productID > 0 {
			for i := range tickets {
				if !consumed[i] && tickets[i].ProductID == productID {
					return i
				}
			}
		}
		for i := range tickets {
			if !consumed[i] {
				return i
			}
		}
		return -1
	}

	for _, ov := range overlays {
		i := pick(ov.ProductID)
		if i < 0 {
			return
		}
		consumed[i] = true
		if ov.Name != "" {
			tickets[i].Name = ov.Name
		}
		if ov.Email != "" {
			tickets[i].Email = ov.Email
		}
		if ov.Company != "" {
			tickets[i].Company = ov.Company
		}
		if ov.ProductID > 0 {
			tickets[i].ProductID = ov.ProductID
		}
		if ov.Designation != "" {
			tickets[i].Designation = ov.Designation
		}
	}
}

var wooDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseWooDate(s string) time.Time {
	for _, layout := range wooDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// rawFloat accepts numeric fields delivered as JSON numbers or numeric
// strings; anything else is zero.
func rawFloat(b json.RawMessage) float64 {
	if len(b) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}

func rawInt(b json.RawMessage) int64 {
	if len(b) == 0 {
		return 0
	}
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return n
		}
	}
	return int64(rawFloat(b))
}

func rawString(b json.RawMessage) string {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return s
	}
	return strings.Trim(string(b), `"`)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}
