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

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID             string `dynamodbav:"id"`
	ExternalID     string `dynamodbav:"external_id"`
	Source         string `dynamodbav:"source"`
	BillingCompany string `dynamodbav:"billing_company,omitempty"`
	ContactName    string `dynamodbav:"contact_name,omitempty"`
	ContactEmail   string `dynamodbav:"contact_email,omitempty"`
	TotalQuantity  int    `dynamodbav:"total_quantity"`
	SubTotal       string `dynamodbav:"sub_total"`
	TotalTax       string `dynamodbav:"total_tax"`
	TotalAmount    string `dynamodbav:"total_amount"`
	PaymentTotal   string `dynamodbav:"payment_total"`
	RefundTotal    string `dynamodbav:"refund_total"`
	NetTotal       string `dynamodbav:"net_total"`
	Status         string `dynamodbav:"status"`
	Lifecycle      string `dynamodbav:"lifecycle_status"`
	OrderDate      string `dynamodbav:"order_date"`
	Currency       string `dynamodbav:"currency,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The PK is the deterministic "{source}#{external_id}" key, so Upsert is
// a plain PutItem: re-ingesting an updated raw event for the same
// external order overwrites the row in place.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Upsert(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.ID == "" {
		o.ID = entities.OrderKey(o.Source, o.ExternalID)
	}
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, limit int, pageToken string) ([]entities.Order, string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:         aws.String(r.tableName),
		Limit:             aws.Int32(int32(limit)),
		ExclusiveStartKey: decodePageToken(pageToken),
	})
	if err != nil {
		return nil, "", err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, encodePageToken(out.LastEvaluatedKey), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:             o.ID,
		ExternalID:     o.ExternalID,
		Source:         string(o.Source),
		BillingCompany: o.BillingCompany,
		ContactName:    o.ContactName,
		ContactEmail:   o.ContactEmail,
		TotalQuantity:  o.TotalQuantity,
		SubTotal:       floatToString(o.SubTotal),
		TotalTax:       floatToString(o.TotalTax),
		TotalAmount:    floatToString(o.TotalAmount),
		PaymentTotal:   floatToString(o.PaymentTotal),
		RefundTotal:    floatToString(o.RefundTotal),
		NetTotal:       floatToString(o.NetTotal),
		Status:         o.Status,
		Lifecycle:      string(o.Lifecycle),
		OrderDate:      o.OrderDate.UTC().Format(time.RFC3339Nano),
		Currency:       o.Currency,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	orderDate, _ := time.Parse(time.RFC3339Nano, it.OrderDate)
	return entities.Order{
		ID:             it.ID,
		ExternalID:     it.ExternalID,
		Source:         entities.Source(it.Source),
		BillingCompany: it.BillingCompany,
		ContactName:    it.ContactName,
		ContactEmail:   it.ContactEmail,
		TotalQuantity:  it.TotalQuantity,
		SubTotal:       stringToFloat(it.SubTotal),
		TotalTax:       stringToFloat(it.TotalTax),
		TotalAmount:    stringToFloat(it.TotalAmount),
		PaymentTotal:   stringToFloat(it.PaymentTotal),
		RefundTotal:    stringToFloat(it.RefundTotal),
		NetTotal:       stringToFloat(it.NetTotal),
		Status:         it.Status,
		Lifecycle:      entities.OrderLifecycle(it.Lifecycle),
		OrderDate:      orderDate,
		Currency:       it.Currency,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
