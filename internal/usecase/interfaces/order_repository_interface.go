package interfaces

import (
	"context"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.

type IOrderRepository interface {
	Upsert(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, limit int, pageToken string) ([]entities.Order, string, error)
}
