package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	mock_interfaces "github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQueryUseCase_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewQueryUseCase(orders, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "woocommerce#1001").Return(entities.Order{ID: "woocommerce#1001"}, nil)

		got, err := uc.GetOrder(ctx, "woocommerce#1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "woocommerce#1001" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewQueryUseCase(orders, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "woocommerce#9999").Return(entities.Order{}, nil)

		if _, err := uc.GetOrder(ctx, "woocommerce#9999"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewQueryUseCase(mock_interfaces.NewMockIOrderRepository(ctrl), nil, nil, nil)

		if _, err := uc.GetOrder(ctx, "   "); !errors.Is(err, ErrInvalidQueryKey) {
			t.Fatalf("expected ErrInvalidQueryKey, got %v", err)
		}
	})
}

func TestQueryUseCase_GetStudentEnrolments(t *testing.T) {
	ctx := context.Background()

	t.Run("student with history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		students := mock_interfaces.NewMockIStudentRepository(ctrl)
		enrolments := mock_interfaces.NewMockIEnrolmentRepository(ctrl)
		uc := NewQueryUseCase(nil, students, nil, enrolments)

		students.EXPECT().GetByEmail(gomock.Any(), "pat@corp.example").Return(entities.Student{ID: "pat@corp.example"}, nil)
		enrolments.EXPECT().ListByStudentID(gomock.Any(), "pat@corp.example").Return([]entities.Enrolment{
			{ID: "en-1", Status: entities.EnrolmentStatusTransferred},
			{ID: "en-2", Status: entities.EnrolmentStatusActive},
		}, nil)

		_, history, err := uc.GetStudentEnrolments(ctx, "pat@corp.example")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("history length = %d, want 2", len(history))
		}
	})

	t.Run("unknown student", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		students := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := NewQueryUseCase(nil, students, nil, nil)

		students.EXPECT().GetByEmail(gomock.Any(), "ghost@corp.example").Return(entities.Student{}, nil)

		if _, _, err := uc.GetStudentEnrolments(ctx, "ghost@corp.example"); !errors.Is(err, ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
	})
}

func TestQueryUseCase_ListLimits(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero becomes default", 0, defaultListLimit},
		{"negative becomes default", -5, defaultListLimit},
		{"in range passes through", 25, 25},
		{"oversized is capped", 10000, maxListLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			orders := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewQueryUseCase(orders, nil, nil, nil)

			orders.EXPECT().List(gomock.Any(), tc.want, "").Return(nil, "", nil)

			if _, _, err := uc.ListOrders(ctx, tc.limit, ""); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
