package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"github.com/fatmagorgulu/conversation-connector/internal/config"
	"github.com/fatmagorgulu/conversation-connector/internal/handler"
	"github.com/fatmagorgulu/conversation-connector/internal/logger"
)

var ginLambda *ginadapter.GinLambda

func setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	ginLambda = ginadapter.New(handler.New())
	return nil
}

func handleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	if err := setup(); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer logger.Sync()
	lambda.Start(handleRequest)
}
