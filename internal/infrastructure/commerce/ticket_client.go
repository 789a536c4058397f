package commerce

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"
)

// TicketClient talks to the ticket-management endpoint that stores
// per-attendee data for an order.
//
// The pipeline treats this service as best-effort: not-found, transport
// errors and undecodable bodies all come back as an empty slice so the
// transform proceeds with line-item data only.

type TicketClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ interfaces.ITicketGateway = (*TicketClient)(nil)

func NewTicketClient(baseURL, apiKey string) *TicketClient {
	return &TicketClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *TicketClient) FetchTickets(ctx context.Context, orderID string) ([]entities.ExternalTicket, error) {
	q := url.Values{}
	q.Set("order_id", orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/wp-json/bagile/v1/tickets?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[etl][ticket-client] fetch failed order_id=%s err=%v", orderID, err)
		return []entities.ExternalTicket{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []entities.ExternalTicket{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[etl][ticket-client] unexpected status order_id=%s status=%d", orderID, resp.StatusCode)
		return []entities.ExternalTicket{}, nil
	}

	var tickets []entities.ExternalTicket
	if err := json.NewDecoder(resp.Body).Decode(&tickets); err != nil {
		log.Printf("[etl][ticket-client] undecodable body order_id=%s err=%v", orderID, err)
		return []entities.ExternalTicket{}, nil
	}
	return tickets, nil
}
