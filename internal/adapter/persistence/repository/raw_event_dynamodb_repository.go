package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRawEventsTableName    = "raw_events"
	rawEventsSourceHashIndex     = "source_hash-index"
	rawEventsStatusIndex         = "status-index"
	rawEventsSourceModifiedIndex = "source_modified-index"
)

type rawEventItem struct {
	ID              string `dynamodbav:"id"`
	Source          string `dynamodbav:"source"`
	ExternalID      string `dynamodbav:"external_id"`
	Payload         string `dynamodbav:"payload"`
	PayloadHash     string `dynamodbav:"payload_hash"`
	EventType       string `dynamodbav:"event_type"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	ProcessedAt     string `dynamodbav:"processed_at,omitempty"`
	ErrorMessage    string `dynamodbav:"error_message,omitempty"`
	PayloadModified string `dynamodbav:"payload_modified,omitempty"`
}

// RawEventDynamoRepository persists RawEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: source_hash-index (PK: source, SK: payload_hash)
//   - GSI: status-index (PK: status, SK: created_at)
//   - GSI: source_modified-index (PK: source, SK: payload_modified, sparse)

type RawEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRawEventRepository = (*RawEventDynamoRepository)(nil)

func NewRawEventDynamoRepository(ddb *dynamodb.Client) *RawEventDynamoRepository {
	return &RawEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RAW_EVENTS_TABLE", defaultRawEventsTableName),
	}
}

func (r *RawEventDynamoRepository) Create(ctx context.Context, e entities.RawEvent) (entities.RawEvent, error) {
	it := toRawEventItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RawEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.RawEvent{}, err
	}
	return e, nil
}

func (r *RawEventDynamoRepository) ExistsBySourceHash(ctx context.Context, source entities.Source, hash string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rawEventsSourceHashIndex),
		KeyConditionExpression: aws.String("#source = :source AND payload_hash = :hash"),
		ExpressionAttributeNames: map[string]string{
			"#source": "source",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":source": &types.AttributeValueMemberS{Value: string(source)},
			":hash":   &types.AttributeValueMemberS{Value: hash},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

func (r *RawEventDynamoRepository) ExistsBySourceExternalIDHash(ctx context.Context, source entities.Source, externalID, hash string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rawEventsSourceHashIndex),
		KeyConditionExpression: aws.String("#source = :source AND payload_hash = :hash"),
		FilterExpression:       aws.String("external_id = :external_id"),
		ExpressionAttributeNames: map[string]string{
			"#source": "source",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":source":      &types.AttributeValueMemberS{Value: string(source)},
			":hash":        &types.AttributeValueMemberS{Value: hash},
			":external_id": &types.AttributeValueMemberS{Value: externalID},
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

func (r *RawEventDynamoRepository) GetByID(ctx context.Context, id string) (entities.RawEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RawEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.RawEvent{}, nil
	}

	var it rawEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RawEvent{}, err
	}
	return fromRawEventItem(it), nil
}

func (r *RawEventDynamoRepository) GetUnprocessed(ctx context.Context, limit int) ([]entities.RawEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rawEventsStatusIndex),
		KeyConditionExpression: aws.String("#status = :pending"),
		FilterExpression:       aws.String("attribute_not_exists(processed_at)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.RawEventStatusPending)},
		},
		ScanIndexForward: aws.Bool(true),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.RawEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it rawEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, fromRawEventItem(it))
	}
	return events, nil
}

func (r *RawEventDynamoRepository) MarkProcessed(ctx context.Context, id string) error {
	return r.markDone(ctx, id, entities.RawEventStatusProcessed, "")
}

func (r *RawEventDynamoRepository) MarkFailed(ctx context.Context, id string, errorMessage string) error {
	return r.markDone(ctx, id, entities.RawEventStatusError, errorMessage)
}

func (r *RawEventDynamoRepository) markDone(ctx context.Context, id string, status entities.RawEventStatus, errorMessage string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #processed_at = :processed_at"
	values := map[string]types.AttributeValue{
		":status":       &types.AttributeValueMemberS{Value: string(status)},
		":processed_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":       "status",
		"#processed_at": "processed_at",
	}
	if errorMessage != "" {
		expr += ", #error_message = :error_message"
		values[":error_message"] = &types.AttributeValueMemberS{Value: errorMessage}
		names["#error_message"] = "error_message"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	return err
}

func (r *RawEventDynamoRepository) GetLastTimestamp(ctx context.Context, source entities.Source) (*time.Time, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rawEventsSourceModifiedIndex),
		KeyConditionExpression: aws.String("#source = :source"),
		ExpressionAttributeNames: map[string]string{
			"#source": "source",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":source": &types.AttributeValueMemberS{Value: string(source)},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	var it rawEventItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return nil, err
	}
	if it.PayloadModified == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339Nano, it.PayloadModified)
	if err != nil {
		return nil, nil
	}
	return &ts, nil
}

func toRawEventItem(e entities.RawEvent) rawEventItem {
	it := rawEventItem{
		ID:           e.ID,
		Source:       string(e.Source),
		ExternalID:   e.ExternalID,
		Payload:      string(e.Payload),
		PayloadHash:  e.PayloadHash,
		EventType:    e.EventType,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339Nano),
		ErrorMessage: e.ErrorMessage,
	}
	if e.ProcessedAt != nil {
		it.ProcessedAt = e.ProcessedAt.UTC().Format(time.RFC3339Nano)
	}
	if e.PayloadModified != nil {
		it.PayloadModified = e.PayloadModified.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromRawEventItem(it rawEventItem) entities.RawEvent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	e := entities.RawEvent{
		ID:           it.ID,
		Source:       entities.Source(it.Source),
		ExternalID:   it.ExternalID,
		Payload:      json.RawMessage(it.Payload),
		PayloadHash:  it.PayloadHash,
		EventType:    it.EventType,
		Status:       entities.RawEventStatus(it.Status),
		CreatedAt:    createdAt,
		ErrorMessage: it.ErrorMessage,
	}
	if it.ProcessedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.ProcessedAt); err == nil {
			e.ProcessedAt = &ts
		}
	}
	if it.PayloadModified != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.PayloadModified); err == nil {
			e.PayloadModified = &ts
		}
	}
	return e
}
