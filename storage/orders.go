package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/santhoshclientric/Revyn-sub001/logging"
)

type OrderStorage interface {
	Get(ctx context.Context, id string) (*Order, error)
	GetAll(ctx context.Context) ([]*Order, error)
	GetBySubmission(ctx context.Context, submissionID string) ([]*Order, error)
	Create(ctx context.Context, order *Order) error
	MarkPaid(ctx context.Context, id, transactionID string) error
}

type DynamoOrderStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoOrderStorage) Get(ctx context.Context, id string) (*Order, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("ORDER: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("ORDER: GET storage failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var order *Order
	if err := attributevalue.UnmarshalMap(out.Item, &order); err != nil {
		logging.Log.Errorf("ORDER: failed to unmarshal result: %v", err)
		return nil, err
	}
	return order, nil
}

func (s *DynamoOrderStorage) GetAll(ctx context.Context) ([]*Order, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("ORDER: scan failed: %v", err)
		return nil, err
	}

	var orders []*Order
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &orders); err != nil {
		logging.Log.Errorf("ORDER: failed to unmarshal list: %v", err)
		return nil, err
	}
	return orders, nil
}

// GetBySubmission scans for all orders attached to one submission. Order
// volume is tiny (one or two per submission), a scan with a filter is fine.
func (s *DynamoOrderStorage) GetBySubmission(ctx context.Context, submissionID string) ([]*Order, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 &s.TableName,
		FilterExpression:          aws.String("SubmissionID = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":sid": &types.AttributeValueMemberS{Value: submissionID}},
	})
	if err != nil {
		logging.Log.Errorf("ORDER: filtered scan failed: %v", err)
		return nil, err
	}

	var orders []*Order
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &orders); err != nil {
		logging.Log.Errorf("ORDER: failed to unmarshal list: %v", err)
		return nil, err
	}
	return orders, nil
}

func (s *DynamoOrderStorage) Create(ctx context.Context, order *Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		logging.Log.Errorf("ORDER: failed to marshal order: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return ErrAlreadyExists
		}
		logging.Log.Errorf("ORDER: PUT storage failed: %v", err)
		return err
	}
	return nil
}

func (s *DynamoOrderStorage) MarkPaid(ctx context.Context, id, transactionID string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:         aws.String("SET #st = :status, TransactionID = :txn, PaidAt = :paid"),
		ExpressionAttributeNames: map[string]string{"#st": "Status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: OrderStatusPaid},
			":txn":    &types.AttributeValueMemberS{Value: transactionID},
			":paid":   &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
	}
	_, err := s.Client.UpdateItem(ctx, input)
	return err
}
