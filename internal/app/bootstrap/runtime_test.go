package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/sumitlokhande/portfolio/internal/config"
	"github.com/sumitlokhande/portfolio/internal/contacts"
	"github.com/sumitlokhande/portfolio/internal/notify"
	"github.com/sumitlokhande/portfolio/pkg/logging"
)

func TestNewRepositoryDefaultsToMemory(t *testing.T) {
	cfg := &appconfig.Config{ContactsStore: "auto"}
	repo, cleanup, err := NewRepository(context.Background(), cfg, logging.Default())
	require.NoError(t, err)
	defer cleanup()

	_, ok := repo.(*contacts.InMemoryRepository)
	assert.True(t, ok, "expected in-memory repository, got %T", repo)
}

func TestNewRepositoryRejectsUnknownStore(t *testing.T) {
	cfg := &appconfig.Config{ContactsStore: "cassandra"}
	_, _, err := NewRepository(context.Background(), cfg, logging.Default())
	require.Error(t, err)
}

func TestNewRepositoryPostgresNeedsURL(t *testing.T) {
	cfg := &appconfig.Config{ContactsStore: "postgres"}
	_, _, err := NewRepository(context.Background(), cfg, logging.Default())
	require.Error(t, err)
}

func TestNewEmailSenderDefaultsToStub(t *testing.T) {
	cfg := &appconfig.Config{EmailProvider: "auto"}
	sender, err := NewEmailSender(context.Background(), cfg, logging.Default())
	require.NoError(t, err)

	_, ok := sender.(*notify.StubSender)
	assert.True(t, ok, "expected stub sender, got %T", sender)
}

func TestNewEmailSenderAutoPicksSendGrid(t *testing.T) {
	cfg := &appconfig.Config{
		EmailProvider:     "auto",
		SendGridAPIKey:    "SG.test",
		SendGridFromEmail: "noreply@example.com",
	}
	sender, err := NewEmailSender(context.Background(), cfg, logging.Default())
	require.NoError(t, err)

	_, ok := sender.(*notify.SendGridSender)
	assert.True(t, ok, "expected sendgrid sender, got %T", sender)
}

func TestNewEmailSenderSMTPRequiresCredentials(t *testing.T) {
	cfg := &appconfig.Config{EmailProvider: "smtp", SMTPHost: "smtp.example.com"}
	_, err := NewEmailSender(context.Background(), cfg, logging.Default())
	require.Error(t, err)
}

func TestNewEmailSenderRejectsUnknownProvider(t *testing.T) {
	cfg := &appconfig.Config{EmailProvider: "pigeon"}
	_, err := NewEmailSender(context.Background(), cfg, logging.Default())
	require.Error(t, err)
}
