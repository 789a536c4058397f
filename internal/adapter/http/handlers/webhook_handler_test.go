package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asbrown77/bagile-platform-sub000/internal/adapter/http/handlers/mocks"
	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *WebhookHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/webhooks/:source", h.Receive)
		return r
	}

	t.Run("stores a new delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := newRouter(h)

		payload := `{"id":1001,"status":"completed"}`
		uc.EXPECT().
			Insert(gomock.Any(), entities.SourceWooCommerce, "1001", json.RawMessage(payload), "order.updated").
			Return("evt-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/woocommerce?event_id=1001", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-WC-Webhook-Topic", "order.updated")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			EventID   string `json:"event_id"`
			Duplicate bool   `json:"duplicate"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.EventID != "evt-1" || resp.Duplicate {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("acknowledges a duplicate delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := newRouter(h)

		payload := `{"InvoiceID":"inv-1"}`
		uc.EXPECT().
			Insert(gomock.Any(), entities.SourceXero, "", json.RawMessage(payload), "").
			Return("", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/xero", bytes.NewBufferString(payload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Duplicate bool `json:"duplicate"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Duplicate {
			t.Fatalf("expected duplicate flag, got %s", w.Body.String())
		}
	})

	t.Run("unknown source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{"id":1}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/woocommerce", bytes.NewBuffer(nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := newRouter(h)

		uc.EXPECT().
			Insert(gomock.Any(), entities.SourceWooCommerce, "", gomock.Any(), "").
			Return("", usecase.ErrInvalidIngestPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/woocommerce", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := newRouter(h)

		uc.EXPECT().
			Insert(gomock.Any(), entities.SourceWooCommerce, "", gomock.Any(), "").
			Return("", errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/woocommerce", bytes.NewBufferString(`{"id":1}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
