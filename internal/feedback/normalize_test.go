package feedback

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func item(attrs map[string]types.AttributeValue) map[string]types.AttributeValue {
	base := map[string]types.AttributeValue{
		"feedback_id": &types.AttributeValueMemberS{Value: "fb-1"},
		"date":        &types.AttributeValueMemberS{Value: "2026-01-02T03:04:05.000000Z"},
		"customer_id": &types.AttributeValueMemberS{Value: "C1"},
	}
	for k, v := range attrs {
		base[k] = v
	}
	return base
}

func TestNormalizeItemCanonicalText(t *testing.T) {
	rec := NormalizeItem(item(map[string]types.AttributeValue{
		"feedbackText": &types.AttributeValueMemberS{Value: "the form wrote this"},
		"status":       &types.AttributeValueMemberS{Value: "PENDING"},
	}))

	assert.Equal(t, "fb-1", rec.FeedbackID)
	assert.Equal(t, "the form wrote this", rec.Comment)
	assert.Equal(t, StatusPending, rec.Status)
	assert.Equal(t, SentimentPlaceholder, rec.Sentiment)
	assert.Equal(t, map[string]float64{}, rec.SentimentScores)
}

func TestNormalizeItemLegacyCommentField(t *testing.T) {
	rec := NormalizeItem(item(map[string]types.AttributeValue{
		"comment": &types.AttributeValueMemberS{Value: "test tooling wrote this"},
	}))
	assert.Equal(t, "test tooling wrote this", rec.Comment)
}

func TestNormalizeItemAliasPrecedence(t *testing.T) {
	// When both generations of the field are present, the canonical one wins
	rec := NormalizeItem(item(map[string]types.AttributeValue{
		"feedbackText": &types.AttributeValueMemberS{Value: "canonical"},
		"comment":      &types.AttributeValueMemberS{Value: "legacy"},
	}))
	assert.Equal(t, "canonical", rec.Comment)
}

func TestNormalizeItemProcessed(t *testing.T) {
	rec := NormalizeItem(item(map[string]types.AttributeValue{
		"feedbackText": &types.AttributeValueMemberS{Value: "Terrible support"},
		"status":       &types.AttributeValueMemberS{Value: "PROCESSED"},
		"sentiment":    &types.AttributeValueMemberS{Value: "NEGATIVE"},
		"sentimentScores": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"Negative": &types.AttributeValueMemberN{Value: "0.97"},
			"Positive": &types.AttributeValueMemberN{Value: "0.01"},
			"Neutral":  &types.AttributeValueMemberN{Value: "0.01"},
			"Mixed":    &types.AttributeValueMemberN{Value: "0.01"},
		}},
	}))

	assert.Equal(t, StatusProcessed, rec.Status)
	assert.Equal(t, "NEGATIVE", rec.Sentiment)
	assert.Equal(t, map[string]float64{
		"Negative": 0.97,
		"Positive": 0.01,
		"Neutral":  0.01,
		"Mixed":    0.01,
	}, rec.SentimentScores)
}

func TestNormalizeItemScoresAsJSONString(t *testing.T) {
	rec := NormalizeItem(item(map[string]types.AttributeValue{
		"sentimentScores": &types.AttributeValueMemberS{Value: `{"Negative":0.5,"Positive":0.5}`},
	}))
	assert.Equal(t, map[string]float64{"Negative": 0.5, "Positive": 0.5}, rec.SentimentScores)
}

func TestNormalizeItemScoresUnparseable(t *testing.T) {
	// A malformed stored value comes back raw, never an error
	rec := NormalizeItem(item(map[string]types.AttributeValue{
		"sentimentScores": &types.AttributeValueMemberS{Value: "not json"},
	}))
	assert.Equal(t, "not json", rec.SentimentScores)
}

func TestFormatScoreRoundTrips(t *testing.T) {
	for _, v := range []float64{0, 1, 0.97, 0.009999999776482582, 0.3333333333333333} {
		s := FormatScore(v)
		rec := NormalizeItem(item(map[string]types.AttributeValue{
			"sentimentScores": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"Positive": &types.AttributeValueMemberN{Value: s},
			}},
		}))
		assert.Equal(t, map[string]float64{"Positive": v}, rec.SentimentScores, "value %v via %q", v, s)
	}
}

func TestFormatScoreNoExponent(t *testing.T) {
	// DynamoDB numbers are plain decimal text
	assert.Equal(t, "0.000001", FormatScore(0.000001))
	assert.NotContains(t, FormatScore(0.000001), "e")
}
