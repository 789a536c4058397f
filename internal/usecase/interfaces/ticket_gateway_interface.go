package interfaces

import (
	"context"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

// ITicketGateway abstracts the external attendee-ticket API exposed by the
// commerce site. Implementations degrade to an empty slice when the API is
// unreachable so order parsing never blocks on ticket enrichment.
type ITicketGateway interface {
	FetchTickets(ctx context.Context, orderID string) ([]entities.ExternalTicket, error)
}
