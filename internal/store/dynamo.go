package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/prepstack/prepsearch/internal/models"
)

// DynamoAPI is the subset of the DynamoDB client used by DynamoStore,
// narrowed for testability.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoStore implements WritableStore against a DynamoDB table keyed by
// question id, matching the managed key-value layout of the original backend.
type DynamoStore struct {
	client DynamoAPI
	table  string
}

// NewDynamoStore creates a store over the given table.
func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// FetchCorpusSlice scans the table, filtered by provider and/or exam, and
// follows pagination until the scan is exhausted.
func (s *DynamoStore) FetchCorpusSlice(ctx context.Context, provider, exam string) ([]*models.QuestionRecord, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	}

	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	filter := ""
	if provider != "" {
		filter = "#provider = :provider"
		names["#provider"] = "provider"
		values[":provider"] = &types.AttributeValueMemberS{Value: provider}
	}
	if exam != "" {
		if filter != "" {
			filter += " AND "
		}
		filter += "#exam = :exam"
		names["#exam"] = "exam"
		values[":exam"] = &types.AttributeValueMemberS{Value: exam}
	}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var questions []*models.QuestionRecord
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("dynamodb scan failed: %w", err)
		}
		var page []*models.QuestionRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
		}
		questions = append(questions, page...)

		if out.LastEvaluatedKey == nil {
			return questions, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// FetchQuestionByID returns a question by ID, or ErrNotFound.
func (s *DynamoStore) FetchQuestionByID(ctx context.Context, id string) (*models.QuestionRecord, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb get failed: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var q models.QuestionRecord
	if err := attributevalue.UnmarshalMap(out.Item, &q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question: %w", err)
	}
	return &q, nil
}

// PutQuestions writes questions one item at a time.
func (s *DynamoStore) PutQuestions(ctx context.Context, questions []*models.QuestionRecord) error {
	for _, q := range questions {
		item, err := attributevalue.MarshalMap(q)
		if err != nil {
			return fmt.Errorf("failed to marshal question %s: %w", q.ID, err)
		}
		if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.table),
			Item:      item,
		}); err != nil {
			return fmt.Errorf("dynamodb put failed for %s: %w", q.ID, err)
		}
	}
	return nil
}

// Close is a no-op; the underlying HTTP client is shared.
func (s *DynamoStore) Close() error {
	return nil
}
