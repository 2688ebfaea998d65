package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/storefront/wallet-checkout/shared/events"
	"github.com/storefront/wallet-checkout/shared/models"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
	"golang.org/x/sync/errgroup"
)

// WalletConfigurator runs the wallet configuration cycle: load required state
// from the checkout store, then obtain the wallet client handle and the
// payment-data request descriptor before anything may interact with the wallet
type WalletConfigurator struct {
	store     domain.CheckoutStore
	loader    domain.ScriptLoader
	provider  domain.CapabilityProvider
	publisher events.Publisher
}

// NewWalletConfigurator creates a new WalletConfigurator
func NewWalletConfigurator(
	store domain.CheckoutStore,
	loader domain.ScriptLoader,
	provider domain.CapabilityProvider,
	publisher events.Publisher,
) *WalletConfigurator {
	return &WalletConfigurator{
		store:     store,
		loader:    loader,
		provider:  provider,
		publisher: publisher,
	}
}

// WalletConfiguredData is the payload of the wallet configured event
type WalletConfiguredData struct {
	MethodID    string             `json:"method_id"`
	Environment domain.Environment `json:"environment"`
}

// Configure loads the payment-method config, store-level checkout config and
// current checkout snapshot, then concurrently loads the wallet client
// library and builds the payment-data request descriptor. Both must complete
// before the returned session is Ready; either failing fails the whole cycle.
func (c *WalletConfigurator) Configure(ctx context.Context, methodID string) (*domain.WalletSession, error) {
	if methodID == "" {
		return nil, &domain.InvalidArgumentError{Reason: "payment method ID is required"}
	}

	if _, err := c.store.Dispatch(ctx, domain.LoadPaymentMethodAction(methodID)); err != nil {
		return nil, errors.Wrap(err, "failed to load payment method")
	}

	state, err := c.store.Dispatch(ctx, domain.LoadCheckoutAction())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load checkout")
	}

	config := state.PaymentMethod(methodID)
	if config == nil {
		return nil, &domain.MissingConfigurationError{Subject: domain.MissingPaymentMethod}
	}
	if state.Store == nil {
		return nil, &domain.MissingConfigurationError{Subject: domain.MissingCheckoutConfig}
	}
	if state.Checkout == nil {
		return nil, &domain.MissingConfigurationError{Subject: domain.MissingCheckout}
	}

	// An undefined test-mode flag is a configuration defect, not a default
	environment, err := domain.EnvironmentFor(config)
	if err != nil {
		return nil, err
	}

	var (
		client      domain.WalletClient
		dataRequest *domain.PaymentDataRequest
	)

	gr, grCtx := errgroup.WithContext(ctx)

	gr.Go(func() error {
		var err error
		client, err = c.loader.Load(grCtx, environment)
		return errors.Wrap(err, "failed to load wallet client library")
	})

	gr.Go(func() error {
		var err error
		dataRequest, err = c.provider.Initialize(grCtx, state.Checkout, config, state.HasShippingAddress())
		return errors.Wrap(err, "failed to initialize wallet capabilities")
	})

	if err := gr.Wait(); err != nil {
		return nil, domain.NewStandardError(err)
	}

	session, err := domain.NewWalletSession(methodID, config, state.Store, state.Checkout, environment, client, dataRequest)
	if err != nil {
		return nil, domain.NewStandardError(err)
	}

	// Event publication is best effort; configuration itself already succeeded
	_ = c.publisher.Publish(ctx, events.NewEvent(
		models.ID(state.Checkout.ID),
		events.WalletConfiguredEvent,
		WalletConfiguredData{MethodID: methodID, Environment: environment},
	))

	return session, nil
}
