// Serverless variant of the contact endpoint for API Gateway deployments.
// It runs the same submission pipeline as the API server, without the rest
// of the HTTP surface.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/sumitlokhande/portfolio/internal/app/bootstrap"
	appconfig "github.com/sumitlokhande/portfolio/internal/config"
	"github.com/sumitlokhande/portfolio/internal/contacts"
	"github.com/sumitlokhande/portfolio/pkg/logging"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
	"Content-Type":                 "application/json",
}

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	repo, _, err := bootstrap.NewRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize contact store", "error", err)
		os.Exit(1)
	}
	sender, err := bootstrap.NewEmailSender(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize email transport", "error", err)
		os.Exit(1)
	}

	service := contacts.NewService(repo, sender, contacts.ServiceConfig{
		ToEmail:     cfg.ContactToEmail,
		ToName:      cfg.ContactToName,
		Ordering:    contacts.ParseOrdering(cfg.PipelineOrder),
		StepTimeout: cfg.StepTimeout,
	}, nil, logger)

	lambda.Start(func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return handle(ctx, service, logger, evt)
	})
}

func handle(ctx context.Context, service *contacts.Service, logger *logging.Logger, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := strings.ToUpper(strings.TrimSpace(evt.RequestContext.HTTP.Method))

	if method == http.MethodOptions {
		return respond(http.StatusOK, contacts.Response{Success: true, Message: "OK"}), nil
	}

	if method != http.MethodPost {
		return respond(http.StatusMethodNotAllowed, contacts.Response{
			Success: false,
			Message: "Method not allowed",
		}), nil
	}

	body, err := decodeBody(evt)
	if err != nil {
		return respond(http.StatusBadRequest, contacts.Response{
			Success: false,
			Message: "Invalid request body",
		}), nil
	}

	var req contacts.CreateContactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return respond(http.StatusBadRequest, contacts.Response{
			Success: false,
			Message: "Invalid request body",
		}), nil
	}

	sub, err := service.Submit(ctx, &req)
	if err != nil {
		var vErr *contacts.ValidationError
		if errors.As(err, &vErr) {
			return respond(http.StatusBadRequest, contacts.Response{
				Success: false,
				Message: "Invalid form data",
				Errors:  vErr.Fields,
			}), nil
		}
		logger.Error("contact submission failed", "error", err)
		return respond(http.StatusInternalServerError, contacts.Response{
			Success: false,
			Message: "Failed to send email. Please try again.",
		}), nil
	}

	return respond(http.StatusCreated, contacts.Response{
		Success: true,
		Message: "Email sent successfully! I'll get back to you soon.",
		Data:    sub,
	}), nil
}

func decodeBody(evt events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if evt.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(evt.Body)
	}
	return []byte(evt.Body), nil
}

func respond(status int, body contacts.Response) events.APIGatewayV2HTTPResponse {
	payload, _ := json.Marshal(body)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(payload),
	}
}
