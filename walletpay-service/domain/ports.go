package domain

import (
	"context"
	"net/url"
)

// ScriptLoader loads the wallet provider's client library and returns a
// client handle
type ScriptLoader interface {
	Load(ctx context.Context, environment Environment) (WalletClient, error)
}

// WalletClient is the handle to the wallet provider's client library
type WalletClient interface {
	IsReadyToPay(ctx context.Context, request *ReadinessRequest) (bool, error)
	LoadPaymentData(ctx context.Context, request *PaymentDataRequest) (*RawPaymentData, error)
}

// CapabilityProvider builds payment-data request descriptors and parses the
// wallet's raw responses
type CapabilityProvider interface {
	Initialize(ctx context.Context, checkout *CheckoutSnapshot, config *PaymentMethodConfig, hasShippingAddress bool) (*PaymentDataRequest, error)
	ParseResponse(raw *RawPaymentData) (*TokenizePayload, error)
	Teardown(ctx context.Context) error
}

// CheckoutStore is the host checkout state container. All mutations go
// through Dispatch; State exposes the read-only selectors.
type CheckoutStore interface {
	Dispatch(ctx context.Context, action *Action) (*StateSnapshot, error)
	State(ctx context.Context) (*StateSnapshot, error)
}

// SenderResponse is the network sender's response
type SenderResponse struct {
	StatusCode int
	Body       []byte
}

// Sender posts form-url-encoded requests to the checkout backend
type Sender interface {
	Post(ctx context.Context, path string, headers map[string]string, form url.Values) (*SenderResponse, error)
}

// Activation is a trigger activation event; PreventDefault stops the host
// environment's default navigation
type Activation interface {
	PreventDefault()
}

// Trigger is the externally injected trigger element reference, resolved by
// the host environment before construction. Bind returns the detach function
// so attach and detach always use the same handler identity.
type Trigger interface {
	Bind(handler func(Activation)) (func(), error)
}
