package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/ignite/feedback-pipeline/internal/api"
	"github.com/ignite/feedback-pipeline/internal/config"
	"github.com/ignite/feedback-pipeline/internal/feedback"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := feedback.NewStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to create feedback store: %v", err)
	}

	handler := api.NewQueryLambda(store)
	lambda.Start(handler.Handle)
}
