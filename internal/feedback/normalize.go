package feedback

import (
	"encoding/json"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// NormalizeItem converts a raw DynamoDB item into the canonical dashboard
// shape. It resolves the legacy text-field aliases, defaults sentiment to
// the "still analyzing" placeholder, and tolerates sentiment scores stored
// either as a native number map or as a JSON string by older writers.
func NormalizeItem(item map[string]types.AttributeValue) NormalizedRecord {
	rec := NormalizedRecord{
		FeedbackID:      stringAttr(item, "feedback_id"),
		Date:            stringAttr(item, "date"),
		CustomerID:      stringAttr(item, "customer_id"),
		Status:          StatusPending,
		Sentiment:       SentimentPlaceholder,
		SentimentScores: map[string]float64{},
	}

	for _, alias := range TextFieldAliases {
		if text := stringAttr(item, alias); text != "" {
			rec.Comment = text
			break
		}
	}

	if status := stringAttr(item, "status"); status != "" {
		rec.Status = Status(status)
	}
	if sentiment := stringAttr(item, "sentiment"); sentiment != "" {
		rec.Sentiment = sentiment
	}

	switch scores := item["sentimentScores"].(type) {
	case *types.AttributeValueMemberM:
		rec.SentimentScores = numberMap(scores.Value)
	case *types.AttributeValueMemberS:
		// Legacy writers stored the score map as a JSON string. Parse it;
		// on failure return the raw stored value unmodified.
		var parsed map[string]float64
		if err := json.Unmarshal([]byte(scores.Value), &parsed); err == nil {
			rec.SentimentScores = parsed
		} else {
			rec.SentimentScores = scores.Value
		}
	}

	return rec
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if av, ok := item[name].(*types.AttributeValueMemberS); ok {
		return av.Value
	}
	return ""
}

func numberMap(attrs map[string]types.AttributeValue) map[string]float64 {
	out := make(map[string]float64, len(attrs))
	for label, av := range attrs {
		n, ok := av.(*types.AttributeValueMemberN)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			continue
		}
		out[label] = v
	}
	return out
}

// FormatScore renders a classifier confidence for storage as a DynamoDB
// number. The shortest decimal that round-trips the float is stored, so the
// persisted value carries the classifier's exact output with no rounding.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
