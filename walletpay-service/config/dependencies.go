package config

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	sharedinfra "github.com/storefront/wallet-checkout/shared/infrastructure"
	"github.com/storefront/wallet-checkout/shared/telemetry"
	"github.com/storefront/wallet-checkout/walletpay-service/application"
	"github.com/storefront/wallet-checkout/walletpay-service/handlers"
	"github.com/storefront/wallet-checkout/walletpay-service/infrastructure"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Stores
	CheckoutStore *infrastructure.PostgresCheckoutStore
	EventStore    *sharedinfra.PostgresEventStore

	// Use Cases
	Configurator *application.WalletConfigurator
	Addresses    *application.AddressSynchronizer
	Submission   *application.SubmissionPipeline
	Controller   *application.WalletInteractionController

	// HTTP Handlers
	WalletHandlers *handlers.WalletHandlers

	// Event Handlers
	CheckoutEventHandlers *handlers.CheckoutEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	telemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry
	tel, telShutdown, err := telemetry.InitTelemetry(ctx, telemetry.Config{
		ServiceName:    config.ServiceName,
		ServiceVersion: "1.0.0",
		OTLPEndpoint:   config.Telemetry.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	deps.Telemetry = tel
	deps.telemetryShutdown = telShutdown

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(config.AWS.SNSTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.SQSQueueURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize stores
	deps.CheckoutStore = infrastructure.NewPostgresCheckoutStore(db, config.Checkout.ID)
	deps.EventStore = sharedinfra.NewPostgresEventStore(db)

	// Initialize wallet provider integration
	scriptLoader := infrastructure.NewHTTPScriptLoader(nil)
	capabilityProvider := infrastructure.NewWalletPayCapabilityProvider()
	formSender := infrastructure.NewFormSender(config.Checkout.FinalizeBaseURL, nil)

	// Initialize use cases
	deps.Configurator = application.NewWalletConfigurator(deps.CheckoutStore, scriptLoader, capabilityProvider, eventPublisher)
	deps.Addresses = application.NewAddressSynchronizer(deps.CheckoutStore, eventPublisher)
	deps.Submission = application.NewSubmissionPipeline(formSender, deps.CheckoutStore, eventPublisher)
	deps.Controller = application.NewWalletInteractionController(
		deps.Configurator,
		deps.Addresses,
		deps.Submission,
		capabilityProvider,
		eventPublisher,
	)

	// Initialize handlers
	deps.WalletHandlers = handlers.NewWalletHandlers(deps.Controller)
	deps.CheckoutEventHandlers = handlers.NewCheckoutEventHandlers(deps.Submission, deps.EventStore)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
