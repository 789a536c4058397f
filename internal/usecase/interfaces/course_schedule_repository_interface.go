package interfaces

import (
	"context"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

// ICourseScheduleRepository abstracts DynamoDB persistence for CourseSchedule.
//
// Schedule resolution probes by (source, product id) first and falls back to
// a SKU lookup, so both access paths are first-class here.

type ICourseScheduleRepository interface {
	Upsert(ctx context.Context, cs entities.CourseSchedule) (entities.CourseSchedule, error)
	GetByID(ctx context.Context, id string) (entities.CourseSchedule, error)
	GetBySourceProduct(ctx context.Context, source entities.Source, productID int64) (entities.CourseSchedule, error)
	GetBySKU(ctx context.Context, sku string) (entities.CourseSchedule, error)
	List(ctx context.Context, limit int, pageToken string) ([]entities.CourseSchedule, string, error)
}
