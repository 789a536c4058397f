package interfaces

import (
	"context"
	"encoding/json"
	"time"
)

// ICollectionAPI abstracts an upstream commerce system the collectors pull
// from (e.g. WooCommerce REST, Xero accounting API).
//
// FetchOrders pages through order payloads modified after modifiedSince
// (nil means from the beginning of time). FetchProducts returns the product
// catalogue; sources without one return nil.
type ICollectionAPI interface {
	FetchOrders(ctx context.Context, page, pageSize int, modifiedSince *time.Time) ([]json.RawMessage, error)
	FetchProducts(ctx context.Context, modifiedSince *time.Time) ([]json.RawMessage, error)
}
