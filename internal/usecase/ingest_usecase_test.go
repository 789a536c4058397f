package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	mock_interfaces "github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func hashOf(payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func TestIngestUseCase_Insert(t *testing.T) {
	ctx := context.Background()
	payload := `{"id": 1001, "status": "completed"}`

	t.Run("stores a new payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRawEventRepository(ctrl)
		uc := NewIngestUseCase(repo)

		repo.EXPECT().ExistsBySourceHash(gomock.Any(), entities.SourceWooCommerce, hashOf(payload)).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RawEvent{})).DoAndReturn(
			func(_ context.Context, e entities.RawEvent) (entities.RawEvent, error) {
				if e.ID == "" {
					t.Fatal("expected generated id")
				}
				if e.PayloadHash != hashOf(payload) {
					t.Fatalf("PayloadHash = %q", e.PayloadHash)
				}
				if e.Status != entities.RawEventStatusPending {
					t.Fatalf("Status = %q, want pending", e.Status)
				}
				if e.ExternalID != "1001" {
					t.Fatalf("ExternalID = %q", e.ExternalID)
				}
				return e, nil
			})

		id, err := uc.Insert(ctx, entities.SourceWooCommerce, "1001", json.RawMessage(payload), "order")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" {
			t.Fatal("expected a stored id")
		}
	})

	t.Run("duplicate payload is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRawEventRepository(ctrl)
		uc := NewIngestUseCase(repo)

		repo.EXPECT().ExistsBySourceHash(gomock.Any(), entities.SourceWooCommerce, hashOf(payload)).Return(true, nil)

		id, err := uc.Insert(ctx, entities.SourceWooCommerce, "other-external-id", json.RawMessage(payload), "order")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "" {
			t.Fatalf("duplicate must return empty id, got %q", id)
		}
	})

	t.Run("invalid source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRawEventRepository(ctrl)
		uc := NewIngestUseCase(repo)

		if _, err := uc.Insert(ctx, entities.Source("shopify"), "1", json.RawMessage(payload), "order"); !errors.Is(err, ErrInvalidIngestSource) {
			t.Fatalf("expected ErrInvalidIngestSource, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRawEventRepository(ctrl)
		uc := NewIngestUseCase(repo)

		if _, err := uc.Insert(ctx, entities.SourceWooCommerce, "1", json.RawMessage(`{broken`), "order"); !errors.Is(err, ErrInvalidIngestPayload) {
			t.Fatalf("expected ErrInvalidIngestPayload, got %v", err)
		}
		if _, err := uc.Insert(ctx, entities.SourceWooCommerce, "1", nil, "order"); !errors.Is(err, ErrInvalidIngestPayload) {
			t.Fatalf("expected ErrInvalidIngestPayload for empty payload, got %v", err)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRawEventRepository(ctrl)
		uc := NewIngestUseCase(repo)

		repo.EXPECT().ExistsBySourceHash(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("db"))

		if _, err := uc.Insert(ctx, entities.SourceWooCommerce, "1", json.RawMessage(payload), "order"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestIngestUseCase_InsertIfChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("changed payload for a known order is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRawEventRepository(ctrl)
		uc := NewIngestUseCase(repo)

		payload := `{"id": 1001, "status": "refunded", "date_modified": "2025-03-01T08:00:00"}`
		repo.EXPECT().ExistsBySourceExternalIDHash(gomock.Any(), entities.SourceWooCommerce, "1001", hashOf(payload)).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RawEvent{})).DoAndReturn(
			func(_ context.Context, e entities.RawEvent) (entities.RawEvent, error) {
				if e.PayloadModified == nil {
					t.Fatal("expected payload_modified extracted from date_modified")
				}
				return e, nil
			})

		id, err := uc.InsertIfChanged(ctx, entities.SourceWooCommerce, "1001", json.RawMessage(payload), "order")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" {
			t.Fatal("expected a stored id")
		}
	})

	t.Run("identical payload for the same order is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRawEventRepository(ctrl)
		uc := NewIngestUseCase(repo)

		payload := `{"id": 1001}`
		repo.EXPECT().ExistsBySourceExternalIDHash(gomock.Any(), entities.SourceWooCommerce, "1001", hashOf(payload)).Return(true, nil)

		id, err := uc.InsertIfChanged(ctx, entities.SourceWooCommerce, "1001", json.RawMessage(payload), "order")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "" {
			t.Fatalf("unchanged payload must return empty id, got %q", id)
		}
	})
}
