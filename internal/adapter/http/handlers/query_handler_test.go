package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/adapter/http/handlers/mocks"
	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQueryRouter(h *QueryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.GET("/v1/students", h.ListStudents)
	r.GET("/v1/students/:email/enrolments", h.GetStudentEnrolments)
	r.GET("/v1/schedules", h.ListSchedules)
	r.GET("/v1/transfers", h.ListTransfers)
	return r
}

func TestQueryHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns a page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueryUseCase(ctrl)
		r := newQueryRouter(NewQueryHandler(uc))

		uc.EXPECT().ListOrders(gomock.Any(), 10, "tok-1").Return([]entities.Order{
			{ID: "woocommerce#1001", Source: entities.SourceWooCommerce, Status: "completed"},
		}, "tok-2", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?limit=10&page_token=tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Items         []json.RawMessage `json:"items"`
			NextPageToken string            `json:"next_page_token"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp.Items) != 1 || resp.NextPageToken != "tok-2" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("rejects a malformed limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueryUseCase(ctrl)
		r := newQueryRouter(NewQueryHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?limit=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQueryHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueryUseCase(ctrl)
		r := newQueryRouter(NewQueryHandler(uc))

		placed := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().GetOrder(gomock.Any(), "woocommerce#1001").Return(entities.Order{
			ID:        "woocommerce#1001",
			Source:    entities.SourceWooCommerce,
			Status:    "completed",
			OrderDate: placed,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/woocommerce%231001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ID != "woocommerce#1001" {
			t.Fatalf("unexpected order id %q", resp.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueryUseCase(ctrl)
		r := newQueryRouter(NewQueryHandler(uc))

		uc.EXPECT().GetOrder(gomock.Any(), "woocommerce#9999").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/woocommerce%239999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQueryHandler_GetStudentEnrolments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("student with history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueryUseCase(ctrl)
		r := newQueryRouter(NewQueryHandler(uc))

		uc.EXPECT().GetStudentEnrolments(gomock.Any(), "pat@corp.example").Return(
			entities.Student{ID: "pat@corp.example", Email: "pat@corp.example"},
			[]entities.Enrolment{
				{ID: "en-1", Status: entities.EnrolmentStatusTransferred},
				{ID: "en-2", Status: entities.EnrolmentStatusActive},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/students/pat@corp.example/enrolments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Enrolments []json.RawMessage `json:"enrolments"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp.Enrolments) != 2 {
			t.Fatalf("enrolments length = %d, want 2", len(resp.Enrolments))
		}
	})

	t.Run("unknown student", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueryUseCase(ctrl)
		r := newQueryRouter(NewQueryHandler(uc))

		uc.EXPECT().GetStudentEnrolments(gomock.Any(), "ghost@corp.example").
			Return(entities.Student{}, nil, usecase.ErrStudentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/students/ghost@corp.example/enrolments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQueryHandler_ListTransfers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQueryUseCase(ctrl)
	r := newQueryRouter(NewQueryHandler(uc))

	uc.EXPECT().ListTransfers(gomock.Any(), 0, "").Return([]entities.Enrolment{
		{ID: "en-1", Status: entities.EnrolmentStatusTransferred, TransferredToEnrolmentID: "en-2"},
	}, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/transfers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "en-1" {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}
