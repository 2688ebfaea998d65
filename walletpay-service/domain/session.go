package domain

import "github.com/pkg/errors"

// SessionState is a state of the wallet interaction lifecycle
type SessionState string

const (
	StateUninitialized      SessionState = "uninitialized"
	StateConfiguring        SessionState = "configuring"
	StateReady              SessionState = "ready"
	StateCheckingReadiness  SessionState = "checking_readiness"
	StateLoadingPaymentData SessionState = "loading_payment_data"
	StateParsingResponse    SessionState = "parsing_response"
	StateSubmittingForm     SessionState = "submitting_form"
	StateError              SessionState = "error"
)

// WalletSession is the state-holder created by a successful configuration
// cycle. It owns the wallet client handle and payment-data request descriptor
// until deinitialization; a non-nil session IS the Ready invariant.
type WalletSession struct {
	MethodID    string
	Config      *PaymentMethodConfig
	Store       *StoreConfig
	Checkout    *CheckoutSnapshot
	Environment Environment
	Client      WalletClient
	DataRequest *PaymentDataRequest
}

// NewWalletSession creates a session; every part must be present so the
// Ready/NotInitialized distinction stays a checkable invariant instead of
// implicit nullability
func NewWalletSession(
	methodID string,
	config *PaymentMethodConfig,
	store *StoreConfig,
	checkout *CheckoutSnapshot,
	environment Environment,
	client WalletClient,
	dataRequest *PaymentDataRequest,
) (*WalletSession, error) {
	if methodID == "" {
		return nil, errors.New("method ID is required")
	}
	if config == nil || store == nil || checkout == nil {
		return nil, errors.New("configuration state is incomplete")
	}
	if client == nil {
		return nil, errors.New("wallet client handle is required")
	}
	if dataRequest == nil {
		return nil, errors.New("payment data request descriptor is required")
	}

	return &WalletSession{
		MethodID:    methodID,
		Config:      config,
		Store:       store,
		Checkout:    checkout,
		Environment: environment,
		Client:      client,
		DataRequest: dataRequest,
	}, nil
}
