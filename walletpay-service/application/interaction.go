package application

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/storefront/wallet-checkout/shared/events"
	"github.com/storefront/wallet-checkout/shared/models"
	"github.com/storefront/wallet-checkout/shared/telemetry"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
)

// WalletOptions configures a wallet interaction controller. Trigger is
// optional; callbacks default to no-ops.
type WalletOptions struct {
	MethodID        string
	Trigger         domain.Trigger
	OnError         func(error)
	OnPaymentSelect func()
}

// WalletInteractionController owns the click → readiness-check →
// payment-data-retrieval → submission pipeline. A single interaction lock
// ("widget interaction") admits at most one in-flight pipeline; a second
// activation queues behind the first.
type WalletInteractionController struct {
	configurator *WalletConfigurator
	addresses    *AddressSynchronizer
	submission   *SubmissionPipeline
	provider     domain.CapabilityProvider
	publisher    events.Publisher

	interactionMux sync.Mutex

	mux     sync.Mutex
	state   domain.SessionState
	session *domain.WalletSession
	options *WalletOptions
	unbind  func()
}

// NewWalletInteractionController creates a new WalletInteractionController
func NewWalletInteractionController(
	configurator *WalletConfigurator,
	addresses *AddressSynchronizer,
	submission *SubmissionPipeline,
	provider domain.CapabilityProvider,
	publisher events.Publisher,
) *WalletInteractionController {
	return &WalletInteractionController{
		configurator: configurator,
		addresses:    addresses,
		submission:   submission,
		provider:     provider,
		publisher:    publisher,
		state:        domain.StateUninitialized,
	}
}

// InteractionFailedData is the payload of the interaction failed event
type InteractionFailedData struct {
	MethodID string `json:"method_id"`
	Reason   string `json:"reason"`
}

// WalletDeinitializedData is the payload of the wallet deinitialized event
type WalletDeinitializedData struct {
	MethodID string `json:"method_id"`
}

// Initialize validates the options, binds the optional trigger and runs the
// configuration cycle. The controller is not usable until this succeeds.
func (c *WalletInteractionController) Initialize(ctx context.Context, options *WalletOptions) error {
	if options == nil {
		return &domain.InvalidArgumentError{Reason: "wallet options are required"}
	}
	if options.MethodID == "" {
		return &domain.InvalidArgumentError{Reason: "payment method ID is required"}
	}

	opts := *options
	if opts.OnError == nil {
		opts.OnError = func(error) {}
	}
	if opts.OnPaymentSelect == nil {
		opts.OnPaymentSelect = func() {}
	}

	var unbind func()
	if opts.Trigger != nil {
		var err error
		unbind, err = opts.Trigger.Bind(func(activation domain.Activation) {
			c.HandleActivation(context.Background(), activation)
		})
		if err != nil {
			return errors.Wrap(err, "failed to bind wallet trigger")
		}
	}

	c.setState(domain.StateConfiguring)

	session, err := c.configurator.Configure(ctx, opts.MethodID)
	if err != nil {
		if unbind != nil {
			unbind()
		}
		c.setState(domain.StateError)
		return err
	}

	c.addresses.SetMethodID(opts.MethodID)

	c.mux.Lock()
	c.session = session
	c.options = &opts
	c.unbind = unbind
	c.state = domain.StateReady
	c.mux.Unlock()

	telemetry.RecordCounter(ctx, "wallet_configured_total", "Wallet configurations completed", 1,
		attribute.String("method_id", opts.MethodID),
		attribute.String("environment", string(session.Environment)),
	)

	return nil
}

// HandleActivation runs the interaction pipeline for one trigger activation.
// Validation failures before configuration surface synchronously; every
// failure after it is routed to the OnError callback exactly once.
func (c *WalletInteractionController) HandleActivation(ctx context.Context, activation domain.Activation) error {
	if activation != nil {
		activation.PreventDefault()
	}

	c.mux.Lock()
	session := c.session
	options := c.options
	c.mux.Unlock()

	if session == nil {
		return &domain.NotInitializedError{}
	}

	// Widget interaction lock: queue-and-wait, never drop a user payment
	c.interactionMux.Lock()
	defer c.interactionMux.Unlock()

	submitted, err := c.runPipeline(ctx, session)
	if err != nil {
		c.setState(domain.StateError)
		c.publishFailed(ctx, session, err)
		telemetry.RecordCounter(ctx, "wallet_interaction_failures_total", "Wallet interactions that failed", 1,
			attribute.String("method_id", session.MethodID),
		)
		options.OnError(err)
		return nil
	}

	c.setState(domain.StateReady)
	if submitted {
		telemetry.RecordCounter(ctx, "wallet_payments_selected_total", "Wallet payments submitted", 1,
			attribute.String("method_id", session.MethodID),
		)
		options.OnPaymentSelect()
	}

	return nil
}

// runPipeline sequences readiness check → payment-data retrieval → parse →
// address sync → submission. Returns false when the environment is not ready
// to pay, which ends the attempt without callbacks.
func (c *WalletInteractionController) runPipeline(ctx context.Context, session *domain.WalletSession) (bool, error) {
	c.setState(domain.StateCheckingReadiness)

	ready, err := session.Client.IsReadyToPay(ctx, &domain.ReadinessRequest{
		AllowedPaymentMethods: session.DataRequest.AllowedPaymentMethods,
	})
	if err != nil {
		return false, errors.Wrap(err, "readiness check failed")
	}
	if !ready {
		return false, nil
	}

	c.setState(domain.StateLoadingPaymentData)

	raw, err := session.Client.LoadPaymentData(ctx, session.DataRequest)
	if err != nil {
		return false, errors.Wrap(err, "payment data retrieval failed")
	}

	c.setState(domain.StateParsingResponse)

	payload, err := c.provider.ParseResponse(raw)
	if err != nil {
		return false, errors.Wrap(err, "failed to parse payment data response")
	}

	outcome := &domain.PaymentOutcome{
		Payload:         payload,
		ShippingAddress: raw.ShippingAddress,
		BillingAddress:  raw.BillingAddress,
		Email:           raw.Email,
	}

	if _, err := c.addresses.UpdateShippingAddress(ctx, outcome.ShippingAddress); err != nil {
		return false, errors.Wrap(err, "failed to synchronize shipping address")
	}
	if outcome.BillingAddress != nil {
		if _, err := c.addresses.UpdateBillingAddress(ctx, outcome.BillingAddress); err != nil {
			return false, errors.Wrap(err, "failed to synchronize billing address")
		}
	}

	c.setState(domain.StateSubmittingForm)

	if err := c.submission.Submit(ctx, session, outcome); err != nil {
		return false, err
	}

	return true, nil
}

// Deinitialize detaches the trigger and tears down the capability provider.
// An in-flight interaction is left to resolve or fail on its own.
func (c *WalletInteractionController) Deinitialize(ctx context.Context) error {
	c.mux.Lock()
	unbind := c.unbind
	session := c.session
	c.unbind = nil
	c.session = nil
	c.options = nil
	c.state = domain.StateUninitialized
	c.mux.Unlock()

	if unbind != nil {
		unbind()
	}

	if session == nil {
		return nil
	}

	if err := c.provider.Teardown(ctx); err != nil {
		return errors.Wrap(err, "failed to tear down wallet capabilities")
	}

	_ = c.publisher.Publish(ctx, events.NewEvent(
		models.ID(session.Checkout.ID),
		events.WalletDeinitializedEvent,
		WalletDeinitializedData{MethodID: session.MethodID},
	))

	return nil
}

// State reports the current lifecycle state
func (c *WalletInteractionController) State() domain.SessionState {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.state
}

func (c *WalletInteractionController) setState(state domain.SessionState) {
	c.mux.Lock()
	c.state = state
	c.mux.Unlock()
}

func (c *WalletInteractionController) publishFailed(ctx context.Context, session *domain.WalletSession, cause error) {
	_ = c.publisher.Publish(ctx, events.NewEvent(
		models.ID(session.Checkout.ID),
		events.PaymentInteractionFailedEvent,
		InteractionFailedData{
			MethodID: session.MethodID,
			Reason:   cause.Error(),
		},
	))
}
