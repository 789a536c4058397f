package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSchedulesTableName = "course_schedules"
	schedulesSKUIndex         = "sku-index"
)

type scheduleItem struct {
	ID              string `dynamodbav:"id"`
	SourceSystem    string `dynamodbav:"source_system"`
	SourceProductID int64  `dynamodbav:"source_product_id"`
	SKU             string `dynamodbav:"sku"`
	Name            string `dynamodbav:"name,omitempty"`
	StartDate       string `dynamodbav:"start_date,omitempty"`
	EndDate         string `dynamodbav:"end_date,omitempty"`
	Price           string `dynamodbav:"price"`
	Status          string `dynamodbav:"status,omitempty"`
	TrainerName     string `dynamodbav:"trainer_name,omitempty"`
	FormatType      string `dynamodbav:"format_type,omitempty"`
}

// CourseScheduleDynamoRepository persists CourseSchedule entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sku-index (PK: sku)
//
// The natural key (source_system, source_product_id) is folded into the
// PK; sku-index serves lookups when the product id is absent or zero.

type CourseScheduleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICourseScheduleRepository = (*CourseScheduleDynamoRepository)(nil)

func NewCourseScheduleDynamoRepository(ddb *dynamodb.Client) *CourseScheduleDynamoRepository {
	return &CourseScheduleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COURSE_SCHEDULES_TABLE", defaultSchedulesTableName),
	}
}

func (r *CourseScheduleDynamoRepository) Upsert(ctx context.Context, cs entities.CourseSchedule) (entities.CourseSchedule, error) {
	if cs.ID == "" {
		cs.ID = entities.ScheduleKey(cs.SourceSystem, cs.SourceProductID, cs.SKU)
	}
	av, err := attributevalue.MarshalMap(toScheduleItem(cs))
	if err != nil {
		return entities.CourseSchedule{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CourseSchedule{}, err
	}
	return cs, nil
}

func (r *CourseScheduleDynamoRepository) GetByID(ctx context.Context, id string) (entities.CourseSchedule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CourseSchedule{}, err
	}
	if len(out.Item) == 0 {
		return entities.CourseSchedule{}, nil
	}

	var it scheduleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CourseSchedule{}, err
	}
	return fromScheduleItem(it), nil
}

func (r *CourseScheduleDynamoRepository) GetBySourceProduct(ctx context.Context, source entities.Source, productID int64) (entities.CourseSchedule, error) {
	return r.GetByID(ctx, entities.ScheduleKey(source, productID, ""))
}

func (r *CourseScheduleDynamoRepository) GetBySKU(ctx context.Context, sku string) (entities.CourseSchedule, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(schedulesSKUIndex),
		KeyConditionExpression: aws.String("sku = :sku"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sku": &types.AttributeValueMemberS{Value: sku},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CourseSchedule{}, err
	}
	if len(out.Items) == 0 {
		return entities.CourseSchedule{}, nil
	}

	var it scheduleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CourseSchedule{}, err
	}
	return fromScheduleItem(it), nil
}

func (r *CourseScheduleDynamoRepository) List(ctx context.Context, limit int, pageToken string) ([]entities.CourseSchedule, string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:         aws.String(r.tableName),
		Limit:             aws.Int32(int32(limit)),
		ExclusiveStartKey: decodePageToken(pageToken),
	})
	if err != nil {
		return nil, "", err
	}

	schedules := make([]entities.CourseSchedule, 0, len(out.Items))
	for _, raw := range out.Items {
		var it scheduleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		schedules = append(schedules, fromScheduleItem(it))
	}
	return schedules, encodePageToken(out.LastEvaluatedKey), nil
}

func toScheduleItem(cs entities.CourseSchedule) scheduleItem {
	it := scheduleItem{
		ID:              cs.ID,
		SourceSystem:    string(cs.SourceSystem),
		SourceProductID: cs.SourceProductID,
		SKU:             cs.SKU,
		Name:            cs.Name,
		Price:           strconv.FormatFloat(cs.Price, 'f', -1, 64),
		Status:          cs.Status,
		TrainerName:     cs.TrainerName,
		FormatType:      cs.FormatType,
	}
	if !cs.StartDate.IsZero() {
		it.StartDate = cs.StartDate.UTC().Format(time.RFC3339Nano)
	}
	if !cs.EndDate.IsZero() {
		it.EndDate = cs.EndDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromScheduleItem(it scheduleItem) entities.CourseSchedule {
	cs := entities.CourseSchedule{
		ID:              it.ID,
		SourceSystem:    entities.Source(it.SourceSystem),
		SourceProductID: it.SourceProductID,
		SKU:             it.SKU,
		Name:            it.Name,
		Price:           stringToFloat(it.Price),
		Status:          it.Status,
		TrainerName:     it.TrainerName,
		FormatType:      it.FormatType,
	}
	if it.StartDate != "" {
		cs.StartDate, _ = time.Parse(time.RFC3339Nano, it.StartDate)
	}
	if it.EndDate != "" {
		cs.EndDate, _ = time.Parse(time.RFC3339Nano, it.EndDate)
	}
	return cs
}
