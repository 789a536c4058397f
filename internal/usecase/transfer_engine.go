package usecase

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// transferFromPattern extracts the original course-family prefix from an
// explicit designation such as "Transfer from PSM-060225 (cancelled)".
var transferFromPattern = regexp.MustCompile(`(?i)transfer\s+from\s+([A-Za-z0-9]+)`)

// TransferEngine classifies each ticket as a new enrolment, an explicit
// transfer, or a heuristic transfer, and maintains the transfer chain.
//
// Signals in priority order:
//  1. explicit designation text ("transfer from <prefix>"), reason
//     course_cancelled (refund-eligible) when the text mentions
//     "cancelled", else attendee_requested;
//  2. SKU-family matching, only for internally-booked orders with no
//     designation, and only when exactly one candidate exists.
//
// A transfer signal with no matching source record, or an ambiguous
// heuristic match, degrades to a standard enrolment: ambiguity must
// never silently pick a wrong source record.

type TransferEngine struct {
	enrolments interfaces.IEnrolmentRepository
	orders     interfaces.IOrderRepository
	orgNames   []string
}

func NewTransferEngine(enrolments interfaces.IEnrolmentRepository, orders interfaces.IOrderRepository, orgNames []string) *TransferEngine {
	return &TransferEngine{enrolments: enrolments, orders: orders, orgNames: orgNames}
}

// Enrol decides the enrolment outcome for one ticket and persists it.
func (e *TransferEngine) Enrol(ctx context.Context, order entities.Order, student entities.Student, schedule entities.CourseSchedule, ticket entities.CanonicalTicket) (entities.Enrolment, error) {
	if prefix, ok := explicitTransferPrefix(ticket.Designation); ok {
		return e.explicitTransfer(ctx, order, student, schedule, ticket, prefix)
	}
	if e.isInternalBooking(order.BillingCompany) {
		return e.heuristicTransfer(ctx, order, student, schedule, ticket)
	}
	return e.standardEnrolment(ctx, order, student, schedule, ticket)
}

func (e *TransferEngine) explicitTransfer(ctx context.Context, order entities.Order, student entities.Student, schedule entities.CourseSchedule, ticket entities.CanonicalTicket, prefix string) (entities.Enrolment, error) {
	reason := entities.TransferReasonAttendeeRequested
	refundEligible := false
	if strings.Contains(strings.ToLower(ticket.Designation), "cancelled") {
		reason = entities.TransferReasonCourseCancelled
		refundEligible = true
	}

	existing, err := e.enrolments.ListByStudentID(ctx, student.ID)
	if err != nil {
		return entities.Enrolment{}, err
	}
	var original *entities.Enrolment
	for i := range existing {
		en := &existing[i]
		if en.OrderID == order.ID &&
			en.Status != entities.EnrolmentStatusTransferred &&
			strings.EqualFold(entities.SKUFamily(en.OriginalSKU), prefix) {
			original = en
			break
		}
	}
	if original == nil {
		// Data-quality gap, not an error: the upstream says "transfer"
		// but the source record never reached us.
		log.Printf("[etl][transfer] explicit transfer without source record order=%s student=%s prefix=%s", order.ID, student.ID, prefix)
		return e.standardEnrolment(ctx, order, student, schedule, ticket)
	}

	return e.linkTransfer(ctx, order, student, schedule, ticket, *original, reason, refundEligible)
}

func (e *TransferEngine) heuristicTransfer(ctx context.Context, order entities.Order, student entities.Student, schedule entities.CourseSchedule, ticket entities.CanonicalTicket) (entities.Enrolment, error) {
	prefix := entities.SKUFamily(ticket.SKU)
	if prefix == "" {
		return e.standardEnrolment(ctx, order, student, schedule, ticket)
	}

	existing, err := e.enrolments.ListByStudentID(ctx, student.ID)
	if err != nil {
		return entities.Enrolment{}, err
	}

	var candidates []entities.Enrolment
	for _, en := range existing {
		if en.Status != entities.EnrolmentStatusActive {
			continue
		}
		if !strings.EqualFold(entities.SKUFamily(en.OriginalSKU), prefix) {
			continue
		}
		internal, err := e.bookedInternally(ctx, en.OrderID)
		if err != nil {
			return entities.Enrolment{}, err
		}
		if internal {
			continue
		}
		candidates = append(candidates, en)
	}

	if len(candidates) != 1 {
		if len(candidates) > 1 {
			log.Printf("[etl][transfer] ambiguous heuristic match order=%s student=%s prefix=%s candidates=%d", order.ID, student.ID, prefix, len(candidates))
		}
		return e.standardEnrolment(ctx, order, student, schedule, ticket)
	}

	return e.linkTransfer(ctx, order, student, schedule, ticket, candidates[0], entities.TransferReasonHeuristic, false)
}

// linkTransfer creates the new enrolment pointing back at the original,
// then closes the chain by marking the original transferred with the
// forward link.
func (e *TransferEngine) linkTransfer(ctx context.Context, order entities.Order, student entities.Student, schedule entities.CourseSchedule, ticket entities.CanonicalTicket, original entities.Enrolment, reason entities.TransferReason, refundEligible bool) (entities.Enrolment, error) {
	created, err := e.enrolments.Create(ctx, entities.Enrolment{
		ID:                         uuid.NewString(),
		StudentID:                  student.ID,
		OrderID:                    order.ID,
		CourseScheduleID:           schedule.ID,
		Status:                     entities.EnrolmentStatusActive,
		TransferredFromEnrolmentID: original.ID,
		OriginalSKU:                ticket.SKU,
		TransferReason:             reason,
		TransferNotes:              ticket.Designation,
		RefundEligible:             refundEligible,
	})
	if err != nil {
		return entities.Enrolment{}, err
	}

	updated, err := e.enrolments.MarkTransferred(ctx, original.ID, created.ID)
	if err != nil {
		return entities.Enrolment{}, err
	}
	if updated.ID == "" {
		// The original row vanished between the lookup and the update.
		// The new enrolment stands, but the chain is open.
		log.Printf("[etl][transfer] transfer chain not closed, source missing from=%s to=%s student=%s", original.ID, created.ID, student.ID)
		return created, nil
	}
	log.Printf("[etl][transfer] linked transfer from=%s to=%s reason=%s student=%s", original.ID, created.ID, reason, student.ID)
	return created, nil
}

func (e *TransferEngine) standardEnrolment(ctx context.Context, order entities.Order, student entities.Student, schedule entities.CourseSchedule, ticket entities.CanonicalTicket) (entities.Enrolment, error) {
	return e.enrolments.Create(ctx, entities.Enrolment{
		ID:               uuid.NewString(),
		StudentID:        student.ID,
		OrderID:          order.ID,
		CourseScheduleID: schedule.ID,
		Status:           entities.EnrolmentStatusActive,
		OriginalSKU:      ticket.SKU,
		RefundEligible:   false,
	})
}

// CancelOrderEnrolments transitions every enrolment tied to a cancelled
// or fully refunded order to cancelled, overriding transfer outcomes.
func (e *TransferEngine) CancelOrderEnrolments(ctx context.Context, order entities.Order) error {
	if !order.IsCancelled() {
		return nil
	}
	enrolments, err := e.enrolments.ListByOrderID(ctx, order.ID)
	if err != nil {
		return err
	}
	for _, en := range enrolments {
		if en.Status == entities.EnrolmentStatusCancelled {
			continue
		}
		if _, err := e.enrolments.MarkCancelled(ctx, en.ID); err != nil {
			return err
		}
	}
	if len(enrolments) > 0 {
		log.Printf("[etl][transfer] cancelled %d enrolments order=%s", len(enrolments), order.ID)
	}
	return nil
}

// explicitTransferPrefix reports whether the designation carries an
// explicit transfer marker and, if so, the referenced SKU family.
func explicitTransferPrefix(designation string) (string, bool) {
	if designation == "" {
		return "", false
	}
	m := transferFromPattern.FindStringSubmatch(designation)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (e *TransferEngine) isInternalBooking(billingCompany string) bool {
	company := strings.ToLower(strings.TrimSpace(billingCompany))
	if company == "" {
		return false
	}
	for _, variant := range e.orgNames {
		if company == strings.ToLower(strings.TrimSpace(variant)) {
			return true
		}
	}
	return false
}

func (e *TransferEngine) bookedInternally(ctx context.Context, orderID string) (bool, error) {
	o, err := e.orders.GetByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	return e.isInternalBooking(o.BillingCompany), nil
}
