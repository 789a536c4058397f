package invoicing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"
)

var ErrMissingXeroToken = errors.New("missing XERO_ACCESS_TOKEN")

// XeroClient pulls invoice documents from the invoicing provider. Token
// acquisition and refresh live elsewhere; this client only spends the
// token it is given.

type XeroClient struct {
	baseURL     string
	accessToken string
	tenantID    string
	http        *http.Client
}

var _ interfaces.ICollectionAPI = (*XeroClient)(nil)

func NewXeroClient(baseURL, accessToken, tenantID string) (*XeroClient, error) {
	if accessToken == "" {
		return nil, ErrMissingXeroToken
	}
	return &XeroClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		tenantID:    tenantID,
		http:        &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *XeroClient) FetchOrders(ctx context.Context, page, pageSize int, modifiedSince *time.Time) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api.xro/2.0/Invoices?page="+strconv.Itoa(page), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")
	if c.tenantID != "" {
		req.Header.Set("Xero-Tenant-Id", c.tenantID)
	}
	if modifiedSince != nil {
		req.Header.Set("If-Modified-Since", modifiedSince.UTC().Format(http.TimeFormat))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("xero invoices status=%d body=%s", resp.StatusCode, body)
	}

	var envelope struct {
		Invoices []json.RawMessage `json:"Invoices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	log.Printf("[etl][xero-client] fetched page=%d invoices=%d", page, len(envelope.Invoices))
	return envelope.Invoices, nil
}

// FetchProducts is part of the collection contract but the invoicing
// provider has no product catalogue.
func (c *XeroClient) FetchProducts(ctx context.Context, modifiedSince *time.Time) ([]json.RawMessage, error) {
	return nil, nil
}
