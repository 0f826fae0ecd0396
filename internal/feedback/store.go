package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	appconfig "github.com/ignite/feedback-pipeline/internal/config"
)

// ErrAlreadyProcessed is returned by MarkProcessed when the record's status
// is no longer PENDING, meaning a concurrent activation classified it first.
var ErrAlreadyProcessed = errors.New("record already processed")

// Store provides DynamoDB operations on the feedback table
type Store struct {
	dynamoDB  *dynamodb.Client
	tableName string
}

// NewStore creates a feedback store from application configuration
func NewStore(ctx context.Context, cfg appconfig.StorageConfig) (*Store, error) {
	var awsCfg aws.Config
	var err error

	if profile := cfg.GetAWSProfile(); profile != "" {
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.AWSRegion),
			config.WithSharedConfigProfile(profile),
		)
	} else {
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.AWSRegion),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return NewStoreWithClient(dynamodb.NewFromConfig(awsCfg), cfg.TableName), nil
}

// NewStoreWithClient creates a feedback store around an existing DynamoDB
// client, so entrypoints that construct several AWS clients can share one
// resolved config.
func NewStoreWithClient(client *dynamodb.Client, tableName string) *Store {
	return &Store{dynamoDB: client, tableName: tableName}
}

// Put writes a new feedback record
func (s *Store) Put(ctx context.Context, rec Record) error {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	_, err = s.dynamoDB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("putting record to DynamoDB: %w", err)
	}

	return nil
}

// MarkProcessed atomically writes the classification outcome onto the record
// identified by key: sentiment, the per-label scores, and the PROCESSED
// status land in a single update, so readers never observe a partial write.
// The update is conditional on the record still being PENDING; losing that
// race surfaces as ErrAlreadyProcessed.
func (s *Store) MarkProcessed(ctx context.Context, key Key, sentiment Sentiment, scores map[string]float64) error {
	scoreAttrs := make(map[string]types.AttributeValue, len(scores))
	for label, v := range scores {
		scoreAttrs[label] = &types.AttributeValueMemberN{Value: FormatScore(v)}
	}

	_, err := s.dynamoDB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"feedback_id": &types.AttributeValueMemberS{Value: key.FeedbackID},
			"date":        &types.AttributeValueMemberS{Value: key.Date},
		},
		UpdateExpression: aws.String("SET sentiment = :s, sentimentScores = :sc, #st = :p"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s":       &types.AttributeValueMemberS{Value: string(sentiment)},
			":sc":      &types.AttributeValueMemberM{Value: scoreAttrs},
			":p":       &types.AttributeValueMemberS{Value: string(StatusProcessed)},
			":pending": &types.AttributeValueMemberS{Value: string(StatusPending)},
		},
		ConditionExpression: aws.String("#st = :pending"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrAlreadyProcessed
		}
		return fmt.Errorf("updating record in DynamoDB: %w", err)
	}

	return nil
}

// ListAll scans the full table and returns every record in the normalized
// dashboard shape. The table is small enough that the dashboard reads it
// whole; pagination of the response is out of scope, but the scan itself
// follows LastEvaluatedKey so nothing is silently dropped.
func (s *Store) ListAll(ctx context.Context) ([]NormalizedRecord, error) {
	var records []NormalizedRecord

	var startKey map[string]types.AttributeValue
	for {
		result, err := s.dynamoDB.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scanning DynamoDB: %w", err)
		}

		for _, item := range result.Items {
			records = append(records, NormalizeItem(item))
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return records, nil
}
