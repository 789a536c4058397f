package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidIngestSource  = errors.New("invalid ingest source")
	ErrInvalidIngestPayload = errors.New("invalid ingest payload")
)

// IIngestUseCase stores inbound payloads in the raw event store with
// content-hash dedup.
//
// Insert dedups globally per source: a byte-identical payload for the
// same source is a no-op even under a different external id, so webhook
// re-delivery is free of side effects. InsertIfChanged dedups per
// external id, which lets an updated version of the same logical order
// through while still rejecting identical re-delivery. Both return an
// empty id when nothing was inserted.

type IIngestUseCase interface {
	Insert(ctx context.Context, source entities.Source, externalID string, payload json.RawMessage, eventType string) (string, error)
	InsertIfChanged(ctx context.Context, source entities.Source, externalID string, payload json.RawMessage, eventType string) (string, error)
}

type IngestUseCase struct {
	repo interfaces.IRawEventRepository
	now  func() time.Time
}

var _ IIngestUseCase = (*IngestUseCase)(nil)

func NewIngestUseCase(repo interfaces.IRawEventRepository) *IngestUseCase {
	return &IngestUseCase{repo: repo, now: time.Now}
}

func (u *IngestUseCase) Insert(ctx context.Context, source entities.Source, externalID string, payload json.RawMessage, eventType string) (string, error) {
	hash, err := u.validate(source, payload)
	if err != nil {
		return "", err
	}

	exists, err := u.repo.ExistsBySourceHash(ctx, source, hash)
	if err != nil {
		return "", err
	}
	if exists {
		log.Printf("[etl][ingest] duplicate payload source=%s external_id=%s hash=%s", source, externalID, hash[:12])
		return "", nil
	}
	return u.create(ctx, source, externalID, payload, eventType, hash)
}

func (u *IngestUseCase) InsertIfChanged(ctx context.Context, source entities.Source, externalID string, payload json.RawMessage, eventType string) (string, error) {
	hash, err := u.validate(source, payload)
	if err != nil {
		return "", err
	}

	exists, err := u.repo.ExistsBySourceExternalIDHash(ctx, source, externalID, hash)
	if err != nil {
		return "", err
	}
	if exists {
		return "", nil
	}
	return u.create(ctx, source, externalID, payload, eventType, hash)
}

func (u *IngestUseCase) validate(source entities.Source, payload json.RawMessage) (string, error) {
	if _, ok := entities.ParseSource(string(source)); !ok {
		return "", ErrInvalidIngestSource
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return "", ErrInvalidIngestPayload
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func (u *IngestUseCase) create(ctx context.Context, source entities.Source, externalID string, payload json.RawMessage, eventType string, hash string) (string, error) {
	e := entities.RawEvent{
		ID:              uuid.NewString(),
		Source:          source,
		ExternalID:      externalID,
		Payload:         payload,
		PayloadHash:     hash,
		EventType:       eventType,
		Status:          entities.RawEventStatusPending,
		CreatedAt:       u.now().UTC(),
		PayloadModified: extractPayloadModified(source, payload),
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return "", err
	}
	log.Printf("[etl][ingest] stored source=%s external_id=%s id=%s", source, externalID, created.ID)
	return created.ID, nil
}

// extractPayloadModified pulls the client-reported modification time out
// of the payload so incremental pulls are driven by upstream clocks, not
// ingestion time.
func extractPayloadModified(source entities.Source, payload json.RawMessage) *time.Time {
	var field string
	switch source {
	case entities.SourceWooCommerce:
		field = "date_modified"
	case entities.SourceXero:
		field = "UpdatedDateUTC"
	default:
		return nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil
	}
	raw, ok := doc[field]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
