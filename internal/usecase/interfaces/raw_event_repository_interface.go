package interfaces

import (
	"context"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

// IRawEventRepository abstracts DynamoDB persistence for RawEvent.
//
// The ETL pipeline must be able to:
//   - append a raw payload exactly once per (source, hash) pair
//   - page through pending records in arrival order for batch processing
//   - mark a record processed or failed with an error message
//   - find the newest upstream modification timestamp for incremental pulls

type IRawEventRepository interface {
	Create(ctx context.Context, e entities.RawEvent) (entities.RawEvent, error)
	ExistsBySourceHash(ctx context.Context, source entities.Source, hash string) (bool, error)
	ExistsBySourceExternalIDHash(ctx context.Context, source entities.Source, externalID, hash string) (bool, error)
	GetByID(ctx context.Context, id string) (entities.RawEvent, error)
	GetUnprocessed(ctx context.Context, limit int) ([]entities.RawEvent, error)
	MarkProcessed(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, errorMessage string) error
	GetLastTimestamp(ctx context.Context, source entities.Source) (*time.Time, error)
}
