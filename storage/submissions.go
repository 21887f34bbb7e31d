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

type SubmissionStorage interface {
	Get(ctx context.Context, id string) (*Submission, error)
	GetAll(ctx context.Context) ([]*Submission, error)
	Create(ctx context.Context, submission *Submission) error
	Delete(ctx context.Context, id string) error
}

type DynamoSubmissionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoSubmissionStorage) Get(ctx context.Context, id string) (*Submission, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SUBMISSION: GET storage failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var sub *Submission
	if err := attributevalue.UnmarshalMap(out.Item, &sub); err != nil {
		logging.Log.Errorf("SUBMISSION: failed to unmarshal result: %v", err)
		return nil, err
	}
	return sub, nil
}

func (s *DynamoSubmissionStorage) GetAll(ctx context.Context) ([]*Submission, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("SUBMISSION: scan failed: %v", err)
		return nil, err
	}

	var subs []*Submission
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &subs); err != nil {
		logging.Log.Errorf("SUBMISSION: failed to unmarshal list: %v", err)
		return nil, err
	}
	return subs, nil
}

func (s *DynamoSubmissionStorage) Create(ctx context.Context, submission *Submission) error {
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(submission)
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to marshal submission: %v", err)
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
		logging.Log.Errorf("SUBMISSION: PUT storage failed: %v", err)
		return err
	}
	return nil
}

func (s *DynamoSubmissionStorage) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to marshal key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SUBMISSION: DELETE storage failed: %v", err)
		return err
	}
	return nil
}
