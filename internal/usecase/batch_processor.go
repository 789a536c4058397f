package usecase

import (
	"context"
	"log"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"
)

// ProcessorConfig bounds the batch loop. Defaults suit production;
// tests shrink both.
type ProcessorConfig struct {
	BatchSize int
	PollDelay time.Duration
}

const (
	defaultBatchSize = 100
	defaultPollDelay = 5 * time.Second
)

func (c ProcessorConfig) withDefaults() ProcessorConfig {
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.PollDelay <= 0 {
		c.PollDelay = defaultPollDelay
	}
	return c
}

// ProcessorMetrics receives batch-loop instrumentation. The prometheus
// registry in infrastructure implements it; a nil value disables it.
type ProcessorMetrics interface {
	RecordProcessed()
	RecordFailed()
	RecordIgnored()
	ObserveBatch(d time.Duration)
}

// BatchProcessor drains the raw event store.
//
// Each pass pulls up to BatchSize pending records oldest-first; an empty
// batch ends the pass. Records are handled strictly sequentially, each
// inside its own failure boundary: a transform/persist error marks that
// record failed and processing continues. Records from sources outside
// the routing table are marked processed (unroutable data is not worth
// retrying). Cancellation is cooperative and checked only at batch
// boundaries, never inside a record.

type BatchProcessor struct {
	repo       interfaces.IRawEventRepository
	processors map[entities.Source]IRecordProcessor
	cfg        ProcessorConfig
	metrics    ProcessorMetrics
}

func NewBatchProcessor(repo interfaces.IRawEventRepository, processors map[entities.Source]IRecordProcessor, cfg ProcessorConfig, metrics ProcessorMetrics) *BatchProcessor {
	return &BatchProcessor{
		repo:       repo,
		processors: processors,
		cfg:        cfg.withDefaults(),
		metrics:    metrics,
	}
}

// Run polls until the store has no pending records or the context ends.
func (p *BatchProcessor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := p.ProcessBatch(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.cfg.PollDelay):
		}
	}
}

// ProcessBatch handles one batch and reports how many records it pulled.
func (p *BatchProcessor) ProcessBatch(ctx context.Context) (int, error) {
	start := time.Now()
	batch, err := p.repo.GetUnprocessed(ctx, p.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(batch) == 0 {
		return 0, nil
	}

	for _, record := range batch {
		p.processRecord(ctx, record)
	}

	if p.metrics != nil {
		p.metrics.ObserveBatch(time.Since(start))
	}
	log.Printf("[etl][processor] batch done size=%d elapsed=%s", len(batch), time.Since(start))
	return len(batch), nil
}

func (p *BatchProcessor) processRecord(ctx context.Context, record entities.RawEvent) {
	source, ok := entities.ParseSource(string(record.Source))
	if !ok {
		p.dropUnroutable(ctx, record)
		return
	}
	processor, ok := p.processors[source]
	if !ok {
		p.dropUnroutable(ctx, record)
		return
	}

	if err := processor.Process(ctx, record); err != nil {
		log.Printf("[etl][processor] record failed id=%s source=%s err=%v", record.ID, record.Source, err)
		if markErr := p.repo.MarkFailed(ctx, record.ID, err.Error()); markErr != nil {
			log.Printf("[etl][processor] mark-failed error id=%s err=%v", record.ID, markErr)
		}
		if p.metrics != nil {
			p.metrics.RecordFailed()
		}
		return
	}

	if err := p.repo.MarkProcessed(ctx, record.ID); err != nil {
		log.Printf("[etl][processor] mark-processed error id=%s err=%v", record.ID, err)
		return
	}
	if p.metrics != nil {
		p.metrics.RecordProcessed()
	}
}

func (p *BatchProcessor) dropUnroutable(ctx context.Context, record entities.RawEvent) {
	log.Printf("[etl][processor] unroutable source=%s id=%s", record.Source, record.ID)
	if err := p.repo.MarkProcessed(ctx, record.ID); err != nil {
		log.Printf("[etl][processor] mark-processed error id=%s err=%v", record.ID, err)
	}
	if p.metrics != nil {
		p.metrics.RecordIgnored()
	}
}
