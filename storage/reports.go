package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/santhoshclientric/Revyn-sub001/logging"
)

type ReportStorage interface {
	Get(ctx context.Context, submissionID string) (*Report, error)
	Put(ctx context.Context, report *Report) error
	SetStatus(ctx context.Context, submissionID, status string) error
}

type DynamoReportStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoReportStorage) Get(ctx context.Context, submissionID string) (*Report, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": submissionID})
	if err != nil {
		logging.Log.Errorf("REPORT: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("REPORT: GET storage failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var report *Report
	if err := attributevalue.UnmarshalMap(out.Item, &report); err != nil {
		logging.Log.Errorf("REPORT: failed to unmarshal result: %v", err)
		return nil, err
	}
	return report, nil
}

// Put writes the report unconditionally: report generation may be retried
// after a failure, so the latest document wins.
func (s *DynamoReportStorage) Put(ctx context.Context, report *Report) error {
	if report.GeneratedAt.IsZero() {
		report.GeneratedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(report)
	if err != nil {
		logging.Log.Errorf("REPORT: failed to marshal report: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("REPORT: PUT storage failed: %v", err)
		return err
	}
	return nil
}

func (s *DynamoReportStorage) SetStatus(ctx context.Context, submissionID, status string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: submissionID},
		},
		UpdateExpression:          aws.String("SET #st = :val"),
		ExpressionAttributeNames:  map[string]string{"#st": "Status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":val": &types.AttributeValueMemberS{Value: status}},
	}
	_, err := s.Client.UpdateItem(ctx, input)
	return err
}
