// Package main is the AWS Lambda entry point for the search API, fronted by
// API Gateway and backed by the DynamoDB question table.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/prepstack/prepsearch/internal/models"
	"github.com/prepstack/prepsearch/internal/search"
	"github.com/prepstack/prepsearch/internal/store"
)

// Handler serves search requests from API Gateway proxy events. The engine
// (and its corpus cache) lives for the lifetime of the Lambda execution
// environment, so warm invocations reuse cached corpus slices.
type Handler struct {
	engine *search.Engine
	logger *zap.Logger
}

// NewHandler wires the engine against the DynamoDB question table.
func NewHandler(ctx context.Context, tableName string, logger *zap.Logger) (*Handler, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	st := store.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), tableName)
	return &Handler{
		engine: search.NewEngine(st, nil, 15*time.Minute, logger),
		logger: logger,
	}, nil
}

// HandleRequest runs one search request.
func (h *Handler) HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var query models.SearchQuery
	if err := json.Unmarshal([]byte(req.Body), &query); err != nil {
		return respond(http.StatusBadRequest, map[string]string{"error": "invalid request body"}), nil
	}

	response, err := h.engine.Search(ctx, &query)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return respond(http.StatusBadRequest, map[string]string{"error": verr.Error()}), nil
		}
		h.logger.Error("search failed", zap.Error(err))
		return respond(http.StatusInternalServerError, map[string]string{"error": err.Error()}), nil
	}
	return respond(http.StatusOK, response), nil
}

func respond(status int, body interface{}) events.APIGatewayProxyResponse {
	data, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"error":"failed to encode response"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	tableName := os.Getenv("TABLE_NAME")
	if tableName == "" {
		logger.Fatal("TABLE_NAME is required")
	}

	handler, err := NewHandler(context.Background(), tableName, logger)
	if err != nil {
		logger.Fatal("Failed to initialize handler", zap.Error(err))
	}

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") == "" {
		logger.Fatal("Function cannot run outside of AWS Lambda environment")
	}
	lambda.Start(handler.HandleRequest)
}
