package repository

import (
	"context"
	"errors"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEnrolmentsTableName = "enrolments"
	enrolmentsStudentIDIndex   = "student_id-index"
	enrolmentsOrderIDIndex     = "order_id-index"
)

type enrolmentItem struct {
	ID                         string `dynamodbav:"id"`
	StudentID                  string `dynamodbav:"student_id"`
	OrderID                    string `dynamodbav:"order_id"`
	CourseScheduleID           string `dynamodbav:"course_schedule_id"`
	Status                     string `dynamodbav:"status"`
	TransferredFromEnrolmentID string `dynamodbav:"transferred_from_enrolment_id,omitempty"`
	TransferredToEnrolmentID   string `dynamodbav:"transferred_to_enrolment_id,omitempty"`
	OriginalSKU                string `dynamodbav:"original_sku,omitempty"`
	TransferReason             string `dynamodbav:"transfer_reason,omitempty"`
	TransferNotes              string `dynamodbav:"transfer_notes,omitempty"`
	RefundEligible             bool   `dynamodbav:"refund_eligible"`
}

// EnrolmentDynamoRepository persists Enrolment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: student_id-index (PK: student_id)
//   - GSI: order_id-index (PK: order_id)
//
// MarkTransferred and MarkCancelled are the only mutations; both are
// conditional updates so the state machine can never resurrect a row
// concurrently deleted by housekeeping.

type EnrolmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEnrolmentRepository = (*EnrolmentDynamoRepository)(nil)

func NewEnrolmentDynamoRepository(ddb *dynamodb.Client) *EnrolmentDynamoRepository {
	return &EnrolmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENROLMENTS_TABLE", defaultEnrolmentsTableName),
	}
}

func (r *EnrolmentDynamoRepository) Create(ctx context.Context, e entities.Enrolment) (entities.Enrolment, error) {
	av, err := attributevalue.MarshalMap(toEnrolmentItem(e))
	if err != nil {
		return entities.Enrolment{}, err
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
		return entities.Enrolment{}, err
	}
	return e, nil
}

func (r *EnrolmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Enrolment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Enrolment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Enrolment{}, nil
	}

	var it enrolmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Enrolment{}, err
	}
	return fromEnrolmentItem(it), nil
}

func (r *EnrolmentDynamoRepository) ListByStudentID(ctx context.Context, studentID string) ([]entities.Enrolment, error) {
	return r.queryIndex(ctx, enrolmentsStudentIDIndex, "student_id", studentID)
}

func (r *EnrolmentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Enrolment, error) {
	return r.queryIndex(ctx, enrolmentsOrderIDIndex, "order_id", orderID)
}

func (r *EnrolmentDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Enrolment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	enrolments := make([]entities.Enrolment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it enrolmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		enrolments = append(enrolments, fromEnrolmentItem(it))
	}
	return enrolments, nil
}

func (r *EnrolmentDynamoRepository) MarkTransferred(ctx context.Context, id string, toEnrolmentID string) (entities.Enrolment, error) {
	return r.update(ctx, id,
		"SET #status = :status, #to = :to",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.EnrolmentStatusTransferred)},
			":to":     &types.AttributeValueMemberS{Value: toEnrolmentID},
		},
		map[string]string{
			"#status": "status",
			"#to":     "transferred_to_enrolment_id",
		},
	)
}

func (r *EnrolmentDynamoRepository) MarkCancelled(ctx context.Context, id string) (entities.Enrolment, error) {
	return r.update(ctx, id,
		"SET #status = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.EnrolmentStatusCancelled)},
		},
		map[string]string{
			"#status": "status",
		},
	)
}

func (r *EnrolmentDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) (entities.Enrolment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Enrolment{}, nil
		}
		return entities.Enrolment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Enrolment{}, nil
	}

	var it enrolmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Enrolment{}, err
	}
	return fromEnrolmentItem(it), nil
}

func (r *EnrolmentDynamoRepository) ListTransferred(ctx context.Context, limit int, pageToken string) ([]entities.Enrolment, string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :transferred"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":transferred": &types.AttributeValueMemberS{Value: string(entities.EnrolmentStatusTransferred)},
		},
		Limit:             aws.Int32(int32(limit)),
		ExclusiveStartKey: decodePageToken(pageToken),
	})
	if err != nil {
		return nil, "", err
	}

	enrolments := make([]entities.Enrolment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it enrolmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		enrolments = append(enrolments, fromEnrolmentItem(it))
	}
	return enrolments, encodePageToken(out.LastEvaluatedKey), nil
}

func toEnrolmentItem(e entities.Enrolment) enrolmentItem {
	return enrolmentItem{
		ID:                         e.ID,
		StudentID:                  e.StudentID,
		OrderID:                    e.OrderID,
		CourseScheduleID:           e.CourseScheduleID,
		Status:                     string(e.Status),
		TransferredFromEnrolmentID: e.TransferredFromEnrolmentID,
		TransferredToEnrolmentID:   e.TransferredToEnrolmentID,
		OriginalSKU:                e.OriginalSKU,
		TransferReason:             string(e.TransferReason),
		TransferNotes:              e.TransferNotes,
		RefundEligible:             e.RefundEligible,
	}
}

func fromEnrolmentItem(it enrolmentItem) entities.Enrolment {
	return entities.Enrolment{
		ID:                         it.ID,
		StudentID:                  it.StudentID,
		OrderID:                    it.OrderID,
		CourseScheduleID:           it.CourseScheduleID,
		Status:                     entities.EnrolmentStatus(it.Status),
		TransferredFromEnrolmentID: it.TransferredFromEnrolmentID,
		TransferredToEnrolmentID:   it.TransferredToEnrolmentID,
		OriginalSKU:                it.OriginalSKU,
		TransferReason:             entities.TransferReason(it.TransferReason),
		TransferNotes:              it.TransferNotes,
		RefundEligible:             it.RefundEligible,
	}
}
