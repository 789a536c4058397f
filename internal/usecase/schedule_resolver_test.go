package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	mock_interfaces "github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestScheduleResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	order := entities.CanonicalOrder{
		ExternalID: "1001",
		Source:     entities.SourceWooCommerce,
		OrderDate:  time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		LineItems: []entities.CanonicalLineItem{
			{ProductID: 501, SKU: "PSM-060225", Name: "PSM - 6-7 Feb 25", Price: 600},
		},
	}

	t.Run("resolves by source and product id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICourseScheduleRepository(ctrl)
		r := NewScheduleResolver(repo)

		want := entities.CourseSchedule{ID: "woocommerce#501", SKU: "PSM-060225"}
		repo.EXPECT().GetBySourceProduct(gomock.Any(), entities.SourceWooCommerce, int64(501)).Return(want, nil)

		got, err := r.Resolve(ctx, order, entities.CanonicalTicket{ProductID: 501, SKU: "PSM-060225"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != want.ID {
			t.Fatalf("got %q, want %q", got.ID, want.ID)
		}
	})

	t.Run("falls back to sku lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICourseScheduleRepository(ctrl)
		r := NewScheduleResolver(repo)

		repo.EXPECT().GetBySourceProduct(gomock.Any(), entities.SourceWooCommerce, int64(501)).Return(entities.CourseSchedule{}, nil)
		want := entities.CourseSchedule{ID: "sku#PSM-060225", SKU: "PSM-060225"}
		repo.EXPECT().GetBySKU(gomock.Any(), "PSM-060225").Return(want, nil)

		got, err := r.Resolve(ctx, order, entities.CanonicalTicket{ProductID: 501, SKU: "PSM-060225"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != want.ID {
			t.Fatalf("got %q, want %q", got.ID, want.ID)
		}
	})

	t.Run("synthesizes from the matching line item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICourseScheduleRepository(ctrl)
		r := NewScheduleResolver(repo)

		repo.EXPECT().GetBySourceProduct(gomock.Any(), entities.SourceWooCommerce, int64(501)).Return(entities.CourseSchedule{}, nil)
		repo.EXPECT().GetBySKU(gomock.Any(), "PSM-060225").Return(entities.CourseSchedule{}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.CourseSchedule{})).DoAndReturn(
			func(_ context.Context, cs entities.CourseSchedule) (entities.CourseSchedule, error) {
				if cs.ID != "woocommerce#501" {
					t.Fatalf("deterministic key expected, got %q", cs.ID)
				}
				if cs.SKU != "PSM-060225" || cs.Name != "PSM - 6-7 Feb 25" || cs.Price != 600 {
					t.Fatalf("unexpected synthesized schedule: %+v", cs)
				}
				wantStart := time.Date(2025, time.February, 6, 0, 0, 0, 0, time.UTC)
				if !cs.StartDate.Equal(wantStart) {
					t.Fatalf("StartDate = %s, want %s", cs.StartDate, wantStart)
				}
				return cs, nil
			})

		got, err := r.Resolve(ctx, order, entities.CanonicalTicket{ProductID: 501, SKU: "PSM-060225"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != "active" {
			t.Fatalf("synthesized schedule must be active, got %q", got.Status)
		}
	})

	t.Run("no line item to synthesize from", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICourseScheduleRepository(ctrl)
		r := NewScheduleResolver(repo)

		bare := entities.CanonicalOrder{ExternalID: "2", Source: entities.SourceWooCommerce}
		repo.EXPECT().GetBySKU(gomock.Any(), "PSM-060225").Return(entities.CourseSchedule{}, nil)

		if _, err := r.Resolve(ctx, bare, entities.CanonicalTicket{SKU: "PSM-060225"}); !errors.Is(err, ErrScheduleUnresolvable) {
			t.Fatalf("expected ErrScheduleUnresolvable, got %v", err)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICourseScheduleRepository(ctrl)
		r := NewScheduleResolver(repo)

		repo.EXPECT().GetBySourceProduct(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CourseSchedule{}, errors.New("db"))

		if _, err := r.Resolve(ctx, order, entities.CanonicalTicket{ProductID: 501}); err == nil {
			t.Fatal("expected error")
		}
	})
}
