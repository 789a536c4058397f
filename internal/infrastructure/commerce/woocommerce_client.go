package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"
)

var ErrMissingWooCommerceCredentials = errors.New("missing WOOCOMMERCE_CONSUMER_KEY / WOOCOMMERCE_CONSUMER_SECRET")

// WooCommerceClient pulls order and product documents from the store's
// REST API. Payloads are returned untouched; the raw event store and the
// parsers own their meaning.

type WooCommerceClient struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	http           *http.Client
}

var _ interfaces.ICollectionAPI = (*WooCommerceClient)(nil)

func NewWooCommerceClient(baseURL, consumerKey, consumerSecret string) (*WooCommerceClient, error) {
	if consumerKey == "" || consumerSecret == "" {
		return nil, ErrMissingWooCommerceCredentials
	}
	return &WooCommerceClient{
		baseURL:        baseURL,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		http:           &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *WooCommerceClient) FetchOrders(ctx context.Context, page, pageSize int, modifiedSince *time.Time) ([]json.RawMessage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(pageSize))
	q.Set("orderby", "modified")
	q.Set("order", "asc")
	if modifiedSince != nil {
		q.Set("modified_after", modifiedSince.UTC().Format("2006-01-02T15:04:05"))
	}
	return c.fetchList(ctx, "/wp-json/wc/v3/orders", q)
}

func (c *WooCommerceClient) FetchProducts(ctx context.Context, modifiedSince *time.Time) ([]json.RawMessage, error) {
	q := url.Values{}
	q.Set("per_page", "100")
	if modifiedSince != nil {
		q.Set("modified_after", modifiedSince.UTC().Format("2006-01-02T15:04:05"))
	}
	return c.fetchList(ctx, "/wp-json/wc/v3/products", q)
}

func (c *WooCommerceClient) fetchList(ctx context.Context, path string, q url.Values) ([]json.RawMessage, error) {
	q.Set("consumer_key", c.consumerKey)
	q.Set("consumer_secret", c.consumerSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("woocommerce %s status=%d body=%s", path, resp.StatusCode, body)
	}

	var items []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}
	log.Printf("[etl][woo-client] fetched path=%s items=%d", path, len(items))
	return items, nil
}
