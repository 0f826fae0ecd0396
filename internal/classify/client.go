// Package classify wraps Amazon Comprehend sentiment detection.
package classify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	comptypes "github.com/aws/aws-sdk-go-v2/service/comprehend/types"

	"github.com/ignite/feedback-pipeline/internal/feedback"
)

// Result is one sentiment classification: the categorical label and the
// per-label confidence scores, keyed the way the service reports them
// (Positive, Negative, Neutral, Mixed).
type Result struct {
	Sentiment feedback.Sentiment
	Scores    map[string]float64
}

// Client is an Amazon Comprehend client with a fixed source-language hint
type Client struct {
	comprehend   *comprehend.Client
	languageCode string
}

// NewClient creates a new Comprehend client
func NewClient(ctx context.Context, languageCode, region, profile string) (*Client, error) {
	var awsCfg aws.Config
	var err error

	if profile != "" {
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(region),
			config.WithSharedConfigProfile(profile),
		)
	} else {
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return NewClientWithAPI(comprehend.NewFromConfig(awsCfg), languageCode), nil
}

// NewClientWithAPI creates a Comprehend client around an existing service
// client, sharing one resolved AWS config with the other clients of an
// entrypoint.
func NewClientWithAPI(api *comprehend.Client, languageCode string) *Client {
	return &Client{comprehend: api, languageCode: languageCode}
}

// DetectSentiment classifies text, returning the label and confidence map.
// The call is synchronous; the caller owns timeout policy through ctx.
func (c *Client) DetectSentiment(ctx context.Context, text string) (*Result, error) {
	out, err := c.comprehend.DetectSentiment(ctx, &comprehend.DetectSentimentInput{
		Text:         aws.String(text),
		LanguageCode: comptypes.LanguageCode(c.languageCode),
	})
	if err != nil {
		return nil, fmt.Errorf("detecting sentiment: %w", err)
	}

	result := &Result{
		Sentiment: feedback.Sentiment(out.Sentiment),
		Scores:    map[string]float64{},
	}
	if s := out.SentimentScore; s != nil {
		result.Scores = map[string]float64{
			"Positive": float64(aws.ToFloat32(s.Positive)),
			"Negative": float64(aws.ToFloat32(s.Negative)),
			"Neutral":  float64(aws.ToFloat32(s.Neutral)),
			"Mixed":    float64(aws.ToFloat32(s.Mixed)),
		}
	}

	return result, nil
}
