package repository

import (
	"context"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStudentsTableName = "students"

type studentItem struct {
	ID        string `dynamodbav:"id"`
	Email     string `dynamodbav:"email"`
	FirstName string `dynamodbav:"first_name,omitempty"`
	LastName  string `dynamodbav:"last_name,omitempty"`
	Company   string `dynamodbav:"company,omitempty"`
}

// StudentDynamoRepository persists Student entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, lowercased email)
//
// The lowercased email PK makes the natural key case-insensitive and
// Upsert a plain PutItem: name and company are last write wins.

type StudentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStudentRepository = (*StudentDynamoRepository)(nil)

func NewStudentDynamoRepository(ddb *dynamodb.Client) *StudentDynamoRepository {
	return &StudentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STUDENTS_TABLE", defaultStudentsTableName),
	}
}

func (r *StudentDynamoRepository) Upsert(ctx context.Context, s entities.Student) (entities.Student, error) {
	if s.ID == "" {
		s.ID = entities.StudentKey(s.Email)
	}
	av, err := attributevalue.MarshalMap(studentItem{
		ID:        s.ID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Company:   s.Company,
	})
	if err != nil {
		return entities.Student{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Student{}, err
	}
	return s, nil
}

func (r *StudentDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Student, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.StudentKey(email)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Student{}, err
	}
	if len(out.Item) == 0 {
		return entities.Student{}, nil
	}

	var it studentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Student{}, err
	}
	return fromStudentItem(it), nil
}

func (r *StudentDynamoRepository) List(ctx context.Context, limit int, pageToken string) ([]entities.Student, string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:         aws.String(r.tableName),
		Limit:             aws.Int32(int32(limit)),
		ExclusiveStartKey: decodePageToken(pageToken),
	})
	if err != nil {
		return nil, "", err
	}

	students := make([]entities.Student, 0, len(out.Items))
	for _, raw := range out.Items {
		var it studentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		students = append(students, fromStudentItem(it))
	}
	return students, encodePageToken(out.LastEvaluatedKey), nil
}

func fromStudentItem(it studentItem) entities.Student {
	return entities.Student{
		ID:        it.ID,
		Email:     it.Email,
		FirstName: it.FirstName,
		LastName:  it.LastName,
		Company:   it.Company,
	}
}
