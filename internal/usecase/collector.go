package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"
)

// CollectorConfig bounds upstream pulls; tests shrink the page size.
type CollectorConfig struct {
	PageSize int
}

const defaultPageSize = 100

func (c CollectorConfig) withDefaults() CollectorConfig {
	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
	return c
}

// OrderCollector pulls pages of raw order documents from one upstream
// and stores them through the ingest usecase. The modified-since cursor
// comes from the raw event store's last payload-reported timestamp, so
// client clocks drive incremental pulls. Cancellation is checked at page
// boundaries; a short page terminates the pull.

type OrderCollector struct {
	api    interfaces.ICollectionAPI
	ingest IIngestUseCase
	raws   interfaces.IRawEventRepository
	source entities.Source
	cfg    CollectorConfig
}

func NewOrderCollector(api interfaces.ICollectionAPI, ingest IIngestUseCase, raws interfaces.IRawEventRepository, source entities.Source, cfg CollectorConfig) *OrderCollector {
	return &OrderCollector{api: api, ingest: ingest, raws: raws, source: source, cfg: cfg.withDefaults()}
}

// Collect returns how many new raw events were stored.
func (c *OrderCollector) Collect(ctx context.Context) (int, error) {
	since, err := c.raws.GetLastTimestamp(ctx, c.source)
	if err != nil {
		return 0, err
	}

	stored := 0
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return stored, err
		}

		payloads, err := c.api.FetchOrders(ctx, page, c.cfg.PageSize, since)
		if err != nil {
			return stored, err
		}

		for _, payload := range payloads {
			externalID := extractExternalID(payload)
			id, err := c.ingest.InsertIfChanged(ctx, c.source, externalID, payload, "order")
			if err != nil {
				log.Printf("[etl][collector] ingest failed source=%s external_id=%s err=%v", c.source, externalID, err)
				continue
			}
			if id != "" {
				stored++
			}
		}

		if len(payloads) < c.cfg.PageSize {
			break
		}
	}

	log.Printf("[etl][collector] pull complete source=%s stored=%d", c.source, stored)
	return stored, nil
}

// extractExternalID probes the identifier conventions of both upstreams.
func extractExternalID(payload json.RawMessage) string {
	var probe struct {
		ID        json.RawMessage `json:"id"`
		InvoiceID string          `json:"InvoiceID"`
		Number    string          `json:"number"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return ""
	}
	if n := rawInt(probe.ID); n > 0 {
		return strconv.FormatInt(n, 10)
	}
	if s := rawString(probe.ID); s != "" && s != "null" {
		return s
	}
	if probe.InvoiceID != "" {
		return probe.InvoiceID
	}
	return probe.Number
}

// ProductCollector refreshes course schedules from the upstream product
// catalogue. Products map straight onto schedules; the name heuristics
// fill the start date when the catalogue omits one.

type ProductCollector struct {
	api       interfaces.ICollectionAPI
	schedules interfaces.ICourseScheduleRepository
	source    entities.Source
}

func NewProductCollector(api interfaces.ICollectionAPI, schedules interfaces.ICourseScheduleRepository, source entities.Source) *ProductCollector {
	return &ProductCollector{api: api, schedules: schedules, source: source}
}

type rawProduct struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     json.RawMessage `json:"price"`
	Status    string          `json:"status"`
	DateStart string          `json:"date_start"`
	DateEnd   string          `json:"date_end"`
	Trainer   string          `json:"trainer"`
	Format    string          `json:"format"`
}

func (c *ProductCollector) Collect(ctx context.Context, modifiedSince *time.Time) (int, error) {
	payloads, err := c.api.FetchProducts(ctx, modifiedSince)
	if err != nil {
		return 0, err
	}

	upserted := 0
	for _, payload := range payloads {
		var p rawProduct
		if err := json.Unmarshal(payload, &p); err != nil {
			log.Printf("[etl][collector] unreadable product source=%s err=%v", c.source, err)
			continue
		}
		if p.ID == 0 && p.SKU == "" {
			continue
		}

		sku := p.SKU
		if sku == "" {
			sku = SynthesizeSKU(p.Name, time.Now().UTC())
		}
		cs := entities.CourseSchedule{
			ID:              entities.ScheduleKey(c.source, p.ID, sku),
			SourceSystem:    c.source,
			SourceProductID: p.ID,
			SKU:             sku,
			Name:            p.Name,
			Price:           rawFloat(p.Price),
			Status:          p.Status,
			TrainerName:     p.Trainer,
			FormatType:      p.Format,
			StartDate:       parseWooDate(p.DateStart),
			EndDate:         parseWooDate(p.DateEnd),
		}
		if cs.StartDate.IsZero() {
			if start, ok := ExtractStartDate(p.Name, time.Now().UTC()); ok {
				cs.StartDate = start
			}
		}

		if _, err := c.schedules.Upsert(ctx, cs); err != nil {
			return upserted, err
		}
		upserted++
	}

	log.Printf("[etl][collector] products refreshed source=%s upserted=%d", c.source, upserted)
	return upserted, nil
}
