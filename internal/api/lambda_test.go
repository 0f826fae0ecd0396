package api

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/feedback-pipeline/internal/feedback"
)

func TestIntakeLambdaHandle(t *testing.T) {
	store := &mockStore{}
	h := NewIntakeLambda(store)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"customer_id":"C1","comment":"Terrible support"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])

	var body SubmitResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Feedback submitted", body.Message)
	assert.NotEmpty(t, body.FeedbackID)

	require.Len(t, store.stored, 1)
	assert.Equal(t, feedback.StatusPending, store.stored[0].Status)
}

func TestIntakeLambdaBadBody(t *testing.T) {
	h := NewIntakeLambda(&mockStore{})

	// Errors come back as structured 500s, never as handler faults
	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{Body: "{broken"})
	require.NoError(t, err)

	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Contains(t, resp.Body, "Failed to submit feedback")
}

func TestIntakeLambdaStoreError(t *testing.T) {
	h := NewIntakeLambda(&mockStore{putErr: errors.New("table unavailable")})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"comment":"x"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, resp.Body, "table unavailable")
}

func TestQueryLambdaHandle(t *testing.T) {
	store := &mockStore{records: []feedback.NormalizedRecord{
		{FeedbackID: "fb-1", Comment: "hello", Status: feedback.StatusPending, Sentiment: feedback.SentimentPlaceholder},
	}}
	h := NewQueryLambda(store)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])

	var records []feedback.NormalizedRecord
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Comment)
}

func TestQueryLambdaEmptyIsArray(t *testing.T) {
	h := NewQueryLambda(&mockStore{})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, "[]", resp.Body)
}

func TestQueryLambdaStoreError(t *testing.T) {
	h := NewQueryLambda(&mockStore{listErr: errors.New("scan failed")})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, resp.Body, "scan failed")
}
