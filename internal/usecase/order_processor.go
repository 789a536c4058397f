package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"
)

// IRecordProcessor transforms one raw event into the normalized store.
type IRecordProcessor interface {
	Process(ctx context.Context, e entities.RawEvent) error
}

// WooOrderProcessor runs the full transform for a store order: parse,
// upsert the order, then per ticket resolve the student and schedule and
// let the transfer engine decide the enrolment effect. Order-level
// cancellation runs last and dominates any transfer outcome.
//
// Re-ingestion is the normal path for status updates, so the ticket pass
// reconciles against the order's stored enrolments: a seat that already
// has a record for (student, schedule) is consumed, not enrolled again.

type WooOrderProcessor struct {
	parser     *WooCommerceParser
	orders     interfaces.IOrderRepository
	students   interfaces.IStudentRepository
	enrolments interfaces.IEnrolmentRepository
	resolver   *ScheduleResolver
	transfers  *TransferEngine
}

var _ IRecordProcessor = (*WooOrderProcessor)(nil)

func NewWooOrderProcessor(parser *WooCommerceParser, orders interfaces.IOrderRepository, students interfaces.IStudentRepository, enrolments interfaces.IEnrolmentRepository, resolver *ScheduleResolver, transfers *TransferEngine) *WooOrderProcessor {
	return &WooOrderProcessor{parser: parser, orders: orders, students: students, enrolments: enrolments, resolver: resolver, transfers: transfers}
}

func (p *WooOrderProcessor) Process(ctx context.Context, e entities.RawEvent) error {
	canonical, err := p.parser.Parse(ctx, e.Payload)
	if err != nil {
		return err
	}

	order, err := p.orders.Upsert(ctx, toOrder(canonical))
	if err != nil {
		return err
	}

	existing, err := p.enrolments.ListByOrderID(ctx, order.ID)
	if err != nil {
		return err
	}

	for _, ticket := range canonical.Tickets {
		if err := p.processTicket(ctx, canonical, order, ticket, &existing); err != nil {
			return err
		}
	}

	return p.transfers.CancelOrderEnrolments(ctx, order)
}

func (p *WooOrderProcessor) processTicket(ctx context.Context, canonical entities.CanonicalOrder, order entities.Order, ticket entities.CanonicalTicket, existing *[]entities.Enrolment) error {
	if strings.TrimSpace(ticket.Email) == "" {
		// No attendee identity at all: nothing to enrol. Degraded input,
		// not a failure.
		log.Printf("[etl][processor] ticket without email order=%s sku=%s", order.ID, ticket.SKU)
		return nil
	}

	first, last := splitName(ticket.Name)
	student, err := p.students.Upsert(ctx, entities.Student{
		ID:        entities.StudentKey(ticket.Email),
		Email:     ticket.Email,
		FirstName: first,
		LastName:  last,
		Company:   ticket.Company,
	})
	if err != nil {
		return err
	}

	schedule, err := p.resolver.Resolve(ctx, canonical, ticket)
	if err != nil {
		return err
	}

	if consumeSeat(existing, student.ID, schedule.ID) {
		log.Printf("[etl][processor] seat already enrolled order=%s student=%s schedule=%s", order.ID, student.ID, schedule.ID)
		return nil
	}

	_, err = p.transfers.Enrol(ctx, order, student, schedule, ticket)
	return err
}

// consumeSeat removes one stored enrolment matching (student, schedule)
// from the order's remaining records. Each match absorbs exactly one
// ticket, so an order with N identical seats reconciles against N stored
// records. Status is ignored: a transferred or cancelled record is still
// this seat's history and must not be recreated.
func consumeSeat(existing *[]entities.Enrolment, studentID, scheduleID string) bool {
	for i, en := range *existing {
		if en.StudentID == studentID && en.CourseScheduleID == scheduleID {
			*existing = append((*existing)[:i], (*existing)[i+1:]...)
			return true
		}
	}
	return false
}

// XeroInvoiceProcessor persists the normalized order record for an
// invoice. Invoices carry no attendee breakdown, so there is no ticket
// pass; the record is financial only. Its xero-scoped order id never
// collides with store order ids, so the cancellation pass below only
// covers enrolments keyed directly to the invoice.

type XeroInvoiceProcessor struct {
	parser    *XeroInvoiceParser
	orders    interfaces.IOrderRepository
	transfers *TransferEngine
}

var _ IRecordProcessor = (*XeroInvoiceProcessor)(nil)

func NewXeroInvoiceProcessor(parser *XeroInvoiceParser, orders interfaces.IOrderRepository, transfers *TransferEngine) *XeroInvoiceProcessor {
	return &XeroInvoiceProcessor{parser: parser, orders: orders, transfers: transfers}
}

func (p *XeroInvoiceProcessor) Process(ctx context.Context, e entities.RawEvent) error {
	canonical, err := p.parser.Parse(e.Payload)
	if err != nil {
		return err
	}

	order, err := p.orders.Upsert(ctx, toOrder(canonical))
	if err != nil {
		return err
	}

	return p.transfers.CancelOrderEnrolments(ctx, order)
}

// toOrder maps the canonical representation onto the stored order,
// deriving the normalized lifecycle.
func toOrder(c entities.CanonicalOrder) entities.Order {
	return entities.Order{
		ID:             entities.OrderKey(c.Source, c.ExternalID),
		ExternalID:     c.ExternalID,
		Source:         c.Source,
		BillingCompany: c.BillingCompany,
		ContactName:    c.ContactName,
		ContactEmail:   c.ContactEmail,
		TotalQuantity:  c.TotalQuantity(),
		SubTotal:       c.SubTotal,
		TotalTax:       c.TotalTax,
		TotalAmount:    c.TotalAmount,
		PaymentTotal:   c.PaymentTotal,
		RefundTotal:    c.RefundTotal,
		NetTotal:       c.PaymentTotal - c.RefundTotal,
		Status:         c.Status,
		Lifecycle:      deriveLifecycle(c),
		OrderDate:      c.OrderDate,
		Currency:       c.Currency,
	}
}

func deriveLifecycle(c entities.CanonicalOrder) entities.OrderLifecycle {
	switch strings.ToLower(c.Status) {
	case "cancelled", "failed", "trash", "voided", "deleted":
		return entities.OrderLifecycleCancelled
	case "refunded":
		// Upstream says refunded even when the refund rows never made
		// it into the payload.
		return entities.OrderLifecycleFullyRefunded
	}
	switch {
	case c.PaymentTotal > 0 && c.RefundTotal >= c.PaymentTotal:
		return entities.OrderLifecycleFullyRefunded
	case c.RefundTotal > 0:
		return entities.OrderLifecyclePartiallyRefunded
	}
	switch strings.ToLower(c.Status) {
	case "completed", "processing", "paid", "authorised":
		return entities.OrderLifecycleCompleted
	}
	return entities.OrderLifecyclePending
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
