package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"

	"github.com/ignite/feedback-pipeline/internal/pkg/logger"
)

// corsHeaders is the permissive header set every API Gateway response
// carries, success and failure alike; the dashboard is a static site
// served from an arbitrary origin.
var corsHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "OPTIONS,POST,GET",
	"Access-Control-Allow-Headers": "Content-Type",
}

// IntakeLambda is the API Gateway entrypoint for feedback submission.
type IntakeLambda struct {
	store FeedbackStore
}

// NewIntakeLambda creates the intake Lambda handler
func NewIntakeLambda(store FeedbackStore) *IntakeLambda {
	return &IntakeLambda{store: store}
}

// Handle accepts a submission and stores it PENDING. Every failure maps to
// a 500 with the error embedded in the body; this API serves an internal
// dashboard and the original contract returns the failure reason.
func (h *IntakeLambda) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req SubmitRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponse(err, "Failed to submit feedback"), nil
	}

	resp, err := submit(ctx, h.store, req)
	if err != nil {
		return errorResponse(err, "Failed to submit feedback"), nil
	}

	return jsonResponse(200, resp), nil
}

// QueryLambda is the API Gateway entrypoint for the dashboard read path.
type QueryLambda struct {
	store FeedbackStore
}

// NewQueryLambda creates the query Lambda handler
func NewQueryLambda(store FeedbackStore) *QueryLambda {
	return &QueryLambda{store: store}
}

// Handle returns all stored feedback in the normalized dashboard shape.
func (h *QueryLambda) Handle(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	records, err := listAll(ctx, h.store)
	if err != nil {
		return errorResponse(err, "Failed to list feedback"), nil
	}

	return jsonResponse(200, records), nil
}

func jsonResponse(status int, data any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error("response encode failed", "error", err.Error())
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    corsHeaders,
			Body:       fmt.Sprintf(`{"error":%q}`, err.Error()),
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(body),
	}
}

func errorResponse(err error, message string) events.APIGatewayProxyResponse {
	logger.Error("request failed", "error", err.Error(), "message", message)
	body, _ := json.Marshal(map[string]string{
		"error":   err.Error(),
		"message": message,
	})
	return events.APIGatewayProxyResponse{
		StatusCode: 500,
		Headers:    corsHeaders,
		Body:       string(body),
	}
}
