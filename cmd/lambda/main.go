package main

import (
	"context"

	"tablebook/cmd/bootstrap"
	"tablebook/internal/handler/gateway"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var router *gateway.Router

// The whole dependency graph is built once per cold start.
func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	stores, _, err := bootstrap.BuildStores(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	jwtService := bootstrap.NewJWTService(cfg)
	publisher := bootstrap.BuildEventPublisher(cfg)

	handlers := gateway.NewHandlers(
		usecase.NewAuthUseCase(stores.Users, jwtService, cfg.Store.Timeout),
		usecase.NewTablesUseCase(stores.Tables, cfg.Store.Timeout),
		usecase.NewReservationsUseCase(stores.Reservations, stores.Tables, publisher, cfg.Store.Timeout),
	)

	router = gateway.NewRouter(gateway.NewAuthGate(jwtService))
	handlers.Routes(router)
}

func handler(ctx context.Context, evt events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := router.Dispatch(ctx, &gateway.Request{
		Method:  evt.HTTPMethod,
		Path:    evt.Path,
		Headers: evt.Headers,
		Body:    evt.Body,
	})

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       resp.Body,
	}, nil
}

func main() {
	lambda.Start(handler)
}
