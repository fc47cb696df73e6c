package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/sumitlokhande/portfolio/internal/awsconf"
	appconfig "github.com/sumitlokhande/portfolio/internal/config"
	"github.com/sumitlokhande/portfolio/internal/contacts"
	"github.com/sumitlokhande/portfolio/internal/notify"
	"github.com/sumitlokhande/portfolio/pkg/logging"
)

// NewRepository selects the contact store from configuration. "auto" picks
// postgres when DATABASE_URL is set, then redis when REDIS_ADDR is set, and
// falls back to the in-memory store. The returned func releases the
// backing connections.
func NewRepository(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (contacts.Repository, func(), error) {
	store := cfg.ContactsStore
	if store == "auto" || store == "" {
		switch {
		case cfg.DatabaseURL != "":
			store = "postgres"
		case cfg.RedisAddr != "":
			store = "redis"
		default:
			store = "memory"
		}
	}

	switch store {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("bootstrap: postgres store requires DATABASE_URL")
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("bootstrap: ping postgres: %w", err)
		}
		logger.Info("contact store ready", "backend", "postgres")
		return contacts.NewPostgresRepository(pool), pool.Close, nil

	case "redis":
		if cfg.RedisAddr == "" {
			return nil, nil, fmt.Errorf("bootstrap: redis store requires REDIS_ADDR")
		}
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("bootstrap: ping redis: %w", err)
		}
		logger.Info("contact store ready", "backend", "redis")
		return contacts.NewRedisRepository(client), func() { _ = client.Close() }, nil

	case "memory":
		logger.Info("contact store ready", "backend", "memory")
		return contacts.NewInMemoryRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("bootstrap: unknown contact store %q", store)
	}
}

// NewEmailSender selects the delivery transport from configuration. "auto"
// picks the first transport with credentials; without any it falls back to
// the logging stub so local environments keep working.
func NewEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (notify.EmailSender, error) {
	provider := cfg.EmailProvider
	if provider == "auto" || provider == "" {
		switch {
		case cfg.SendGridAPIKey != "":
			provider = "sendgrid"
		case cfg.SESFromEmail != "":
			provider = "ses"
		case cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPass != "":
			provider = "smtp"
		default:
			provider = "stub"
		}
	}

	switch provider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender == nil {
			return nil, fmt.Errorf("bootstrap: sendgrid provider requires SENDGRID_API_KEY")
		}
		logger.Info("email transport ready", "provider", "sendgrid")
		return sender, nil

	case "ses":
		awsCfg, err := awsconf.Load(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: load AWS config: %w", err)
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger)
		if sender == nil {
			return nil, fmt.Errorf("bootstrap: SES provider could not be initialized")
		}
		logger.Info("email transport ready", "provider", "ses")
		return sender, nil

	case "smtp":
		sender := notify.NewSMTPSender(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
		}, logger)
		if sender == nil {
			return nil, fmt.Errorf("bootstrap: smtp provider requires SMTP_HOST, SMTP_USER and SMTP_PASS")
		}
		logger.Info("email transport ready", "provider", "smtp")
		return sender, nil

	case "stub":
		logger.Warn("no email transport configured, using logging stub")
		return notify.NewStubSender(logger), nil

	default:
		return nil, fmt.Errorf("bootstrap: unknown email provider %q", provider)
	}
}
