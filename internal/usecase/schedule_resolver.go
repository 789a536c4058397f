package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"
)

var ErrScheduleUnresolvable = errors.New("course schedule unresolvable")

// ScheduleResolver maps a ticket to a course schedule, creating one when
// no match exists.
//
// Resolution order: (1) natural key (source, productID) when productID
// is non-zero, (2) SKU, (3) synthesize from the order's line items and
// upsert. Every ticket therefore resolves to some schedule, at the cost
// of speculative creation when upstream data is sparse; schedules may
// carry only partial metadata.

type ScheduleResolver struct {
	repo interfaces.ICourseScheduleRepository
}

func NewScheduleResolver(repo interfaces.ICourseScheduleRepository) *ScheduleResolver {
	return &ScheduleResolver{repo: repo}
}

func (r *ScheduleResolver) Resolve(ctx context.Context, order entities.CanonicalOrder, ticket entities.CanonicalTicket) (entities.CourseSchedule, error) {
	if ticket.ProductID > 0 {
		cs, err := r.repo.GetBySourceProduct(ctx, order.Source, ticket.ProductID)
		if err != nil {
			return entities.CourseSchedule{}, err
		}
		if cs.ID != "" {
			return cs, nil
		}
	}

	if ticket.SKU != "" {
		cs, err := r.repo.GetBySKU(ctx, ticket.SKU)
		if err != nil {
			return entities.CourseSchedule{}, err
		}
		if cs.ID != "" {
			return cs, nil
		}
	}

	return r.synthesize(ctx, order, ticket)
}

// synthesize builds a schedule from the line item matching the ticket's
// product id, or any line item when the product id is zero.
func (r *ScheduleResolver) synthesize(ctx context.Context, order entities.CanonicalOrder, ticket entities.CanonicalTicket) (entities.CourseSchedule, error) {
	var item *entities.CanonicalLineItem
	for i := range order.LineItems {
		li := &order.LineItems[i]
		if ticket.ProductID == 0 || li.ProductID == ticket.ProductID {
			item = li
			break
		}
	}
	if item == nil {
		return entities.CourseSchedule{}, ErrScheduleUnresolvable
	}

	sku := ticket.SKU
	if sku == "" {
		sku = item.SKU
	}
	if sku == "" {
		sku = SynthesizeSKU(item.Name, order.OrderDate)
	}

	cs := entities.CourseSchedule{
		ID:              entities.ScheduleKey(order.Source, item.ProductID, sku),
		SourceSystem:    order.Source,
		SourceProductID: item.ProductID,
		SKU:             sku,
		Name:            item.Name,
		Price:           item.Price,
		Status:          "active",
	}
	if start, ok := ExtractStartDate(item.Name, order.OrderDate); ok {
		cs.StartDate = start
	}

	created, err := r.repo.Upsert(ctx, cs)
	if err != nil {
		return entities.CourseSchedule{}, err
	}
	log.Printf("[etl][resolver] synthesized schedule id=%s sku=%s order=%s", created.ID, created.SKU, order.ExternalID)
	return created, nil
}
