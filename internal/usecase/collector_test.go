package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	mock_interfaces "github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubIngest struct {
	ids   []string
	calls int
}

func (s *stubIngest) Insert(ctx context.Context, source entities.Source, externalID string, payload json.RawMessage, eventType string) (string, error) {
	return s.next(), nil
}

func (s *stubIngest) InsertIfChanged(ctx context.Context, source entities.Source, externalID string, payload json.RawMessage, eventType string) (string, error) {
	return s.next(), nil
}

func (s *stubIngest) next() string {
	s.calls++
	if len(s.ids) == 0 {
		return ""
	}
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

func TestOrderCollector_Collect(t *testing.T) {
	ctx := context.Background()

	t.Run("pages until a short page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICollectionAPI(ctrl)
		raws := mock_interfaces.NewMockIRawEventRepository(ctrl)
		ingest := &stubIngest{ids: []string{"e1", "e2", "e3"}}

		since := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		raws.EXPECT().GetLastTimestamp(gomock.Any(), entities.SourceWooCommerce).Return(&since, nil)

		fullPage := []json.RawMessage{
			json.RawMessage(`{"id": 1}`),
			json.RawMessage(`{"id": 2}`),
		}
		shortPage := []json.RawMessage{
			json.RawMessage(`{"id": 3}`),
		}
		api.EXPECT().FetchOrders(gomock.Any(), 1, 2, &since).Return(fullPage, nil)
		api.EXPECT().FetchOrders(gomock.Any(), 2, 2, &since).Return(shortPage, nil)

		c := NewOrderCollector(api, ingest, raws, entities.SourceWooCommerce, CollectorConfig{PageSize: 2})
		n, err := c.Collect(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 3 {
			t.Fatalf("stored = %d, want 3", n)
		}
		if ingest.calls != 3 {
			t.Fatalf("ingest calls = %d, want 3", ingest.calls)
		}
	})

	t.Run("unchanged payloads do not count as stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICollectionAPI(ctrl)
		raws := mock_interfaces.NewMockIRawEventRepository(ctrl)
		ingest := &stubIngest{ids: []string{"", "e2"}}

		raws.EXPECT().GetLastTimestamp(gomock.Any(), entities.SourceWooCommerce).Return(nil, nil)
		api.EXPECT().FetchOrders(gomock.Any(), 1, 100, gomock.Nil()).Return([]json.RawMessage{
			json.RawMessage(`{"id": 1}`),
			json.RawMessage(`{"id": 2}`),
		}, nil)

		c := NewOrderCollector(api, ingest, raws, entities.SourceWooCommerce, CollectorConfig{})
		n, err := c.Collect(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Fatalf("stored = %d, want 1", n)
		}
	})

	t.Run("upstream failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICollectionAPI(ctrl)
		raws := mock_interfaces.NewMockIRawEventRepository(ctrl)

		raws.EXPECT().GetLastTimestamp(gomock.Any(), entities.SourceXero).Return(nil, nil)
		api.EXPECT().FetchOrders(gomock.Any(), 1, 100, gomock.Nil()).Return(nil, errors.New("upstream 500"))

		c := NewOrderCollector(api, &stubIngest{}, raws, entities.SourceXero, CollectorConfig{})
		if _, err := c.Collect(ctx); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestExtractExternalID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"numeric woo id", `{"id": 1001}`, "1001"},
		{"string id", `{"id": "ord-7"}`, "ord-7"},
		{"xero invoice id", `{"InvoiceID": "inv-1"}`, "inv-1"},
		{"number fallback", `{"number": "INV-0042"}`, "INV-0042"},
		{"nothing", `{}`, ""},
		{"not json", `nope`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractExternalID(json.RawMessage(tc.in)); got != tc.want {
				t.Fatalf("extractExternalID(%s) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestProductCollector_Collect(t *testing.T) {
	ctx := context.Background()

	t.Run("products become schedules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICollectionAPI(ctrl)
		schedules := mock_interfaces.NewMockICourseScheduleRepository(ctrl)

		api.EXPECT().FetchProducts(gomock.Any(), gomock.Nil()).Return([]json.RawMessage{
			json.RawMessage(`{"id": 501, "name": "PSM - 6-7 Feb 25", "sku": "PSM-060225", "price": "600", "status": "publish", "trainer": "Sam Piper", "format": "online"}`),
			json.RawMessage(`{"name": ""}`),
		}, nil)
		schedules.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.CourseSchedule{})).DoAndReturn(
			func(_ context.Context, cs entities.CourseSchedule) (entities.CourseSchedule, error) {
				if cs.ID != "woocommerce#501" {
					t.Fatalf("schedule id = %q", cs.ID)
				}
				if cs.SKU != "PSM-060225" || cs.Price != 600 || cs.TrainerName != "Sam Piper" {
					t.Fatalf("unexpected schedule: %+v", cs)
				}
				wantStart := time.Date(2025, time.February, 6, 0, 0, 0, 0, time.UTC)
				if !cs.StartDate.Equal(wantStart) {
					t.Fatalf("StartDate = %s, want %s", cs.StartDate, wantStart)
				}
				return cs, nil
			})

		c := NewProductCollector(api, schedules, entities.SourceWooCommerce)
		n, err := c.Collect(ctx, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Fatalf("upserted = %d, want 1", n)
		}
	})
}
