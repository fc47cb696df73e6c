package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitlokhande/portfolio/internal/contacts"
	"github.com/sumitlokhande/portfolio/internal/notify"
	"github.com/sumitlokhande/portfolio/pkg/logging"
)

func newLambdaService() *contacts.Service {
	logger := logging.Default()
	return contacts.NewService(
		contacts.NewInMemoryRepository(),
		notify.NewStubSender(logger),
		contacts.ServiceConfig{ToEmail: "owner@example.com"},
		nil,
		logger,
	)
}

func newEvent(method, body string) events.APIGatewayV2HTTPRequest {
	evt := events.APIGatewayV2HTTPRequest{Body: body}
	evt.RequestContext.HTTP.Method = method
	return evt
}

func TestHandlePreflight(t *testing.T) {
	resp, err := handle(context.Background(), newLambdaService(), logging.Default(), newEvent(http.MethodOptions, ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
}

func TestHandleRejectsNonPost(t *testing.T) {
	resp, err := handle(context.Background(), newLambdaService(), logging.Default(), newEvent(http.MethodGet, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleValidSubmission(t *testing.T) {
	body, err := json.Marshal(contacts.CreateContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I would like to discuss a project opportunity.",
	})
	require.NoError(t, err)

	resp, err := handle(context.Background(), newLambdaService(), logging.Default(), newEvent(http.MethodPost, string(body)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var parsed struct {
		Success bool                       `json:"success"`
		Data    contacts.ContactSubmission `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &parsed))
	assert.True(t, parsed.Success)
	assert.NotEmpty(t, parsed.Data.ID)
}

func TestHandleInvalidSubmission(t *testing.T) {
	body, err := json.Marshal(contacts.CreateContactRequest{
		Name:    "J",
		Email:   "not-an-email",
		Message: "short",
	})
	require.NoError(t, err)

	resp, err := handle(context.Background(), newLambdaService(), logging.Default(), newEvent(http.MethodPost, string(body)))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var parsed contacts.Response
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &parsed))
	assert.False(t, parsed.Success)
	assert.Equal(t, "Invalid form data", parsed.Message)
	assert.NotEmpty(t, parsed.Errors)
}

func TestHandleMalformedJSON(t *testing.T) {
	resp, err := handle(context.Background(), newLambdaService(), logging.Default(), newEvent(http.MethodPost, "{"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDecodeBodyBase64(t *testing.T) {
	evt := newEvent(http.MethodPost, "eyJuYW1lIjoiSmFuZSJ9") // {"name":"Jane"}
	evt.IsBase64Encoded = true

	body, err := decodeBody(evt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jane"}`, string(body))
}
