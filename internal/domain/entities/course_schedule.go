package entities

import (
	"fmt"
	"strings"
	"time"
)

// CourseSchedule is one dated run of a course.
//
// Storage model (DynamoDB):
//   - PK: id = "{source_system}#{source_product_id}" when the product id
//     is known, else "sku#{sku}" for schedules synthesized without one
//   - GSI1 (sku-index): sku
//
// Natural key is (sourceSystem, sourceProductId); the sku-index is the
// secondary lookup path when the product id is absent or zero. Schedules
// may be lazily created by the resolver with only partial metadata, so
// readers must tolerate zero dates and empty trainer/format fields.

type CourseSchedule struct {
	ID              string    `json:"id"`
	SourceSystem    Source    `json:"source_system"`
	SourceProductID int64     `json:"source_product_id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	TrainerName     string    `json:"trainer_name"`
	FormatType      string    `json:"format_type"`
}

// ScheduleKey builds the deterministic storage id for a schedule.
func ScheduleKey(source Source, productID int64, sku string) string {
	if productID > 0 {
		return fmt.Sprintf("%s#%d", source, productID)
	}
	return "sku#" + sku
}

// SKUFamily returns the course-family prefix of a SKU: the text before
// its first hyphen. Recurring runs of the same course share a family.
func SKUFamily(sku string) string {
	if i := strings.Index(sku, "-"); i >= 0 {
		return sku[:i]
	}
	return sku
}
