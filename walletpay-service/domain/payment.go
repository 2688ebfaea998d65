package domain

import "github.com/storefront/wallet-checkout/shared/models"

// Environment selects the wallet provider endpoint set
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

// EnvironmentFor derives the environment strictly from the payment method's
// configured test-mode flag
func EnvironmentFor(config *PaymentMethodConfig) (Environment, error) {
	if config == nil || config.TestMode == nil {
		return "", &MissingConfigurationError{Subject: MissingPaymentMethod}
	}
	if *config.TestMode {
		return EnvironmentSandbox, nil
	}
	return EnvironmentProduction, nil
}

// ReadinessRequest asks the wallet provider whether the current environment
// can complete a payment with the given methods
type ReadinessRequest struct {
	AllowedPaymentMethods []string `json:"allowed_payment_methods"`
}

// MerchantInfo identifies the merchant to the wallet provider
type MerchantInfo struct {
	MerchantID   string `json:"merchant_id"`
	MerchantName string `json:"merchant_name"`
}

// TransactionInfo carries the order totals for a payment-data request
type TransactionInfo struct {
	TotalPrice  models.Money `json:"total_price"`
	CountryCode string       `json:"country_code"`
	CheckoutID  string       `json:"checkout_id"`
}

// PaymentDataRequest is the descriptor handed to the wallet client when
// retrieving payment data. Built once per configuration cycle and read-only
// afterwards.
type PaymentDataRequest struct {
	Environment             Environment     `json:"environment"`
	AllowedPaymentMethods   []string        `json:"allowed_payment_methods"`
	MerchantInfo            MerchantInfo    `json:"merchant_info"`
	TransactionInfo         TransactionInfo `json:"transaction_info"`
	EmailRequired           bool            `json:"email_required"`
	ShippingAddressRequired bool            `json:"shipping_address_required"`
}

// RawPaymentData is the wallet provider's response to a payment-data request,
// before parsing
type RawPaymentData struct {
	Token           string         `json:"token"`
	Email           string         `json:"email"`
	CardNetwork     string         `json:"card_network"`
	CardDetails     string         `json:"card_details"`
	ShippingAddress *WalletAddress `json:"shipping_address,omitempty"`
	BillingAddress  *WalletAddress `json:"billing_address,omitempty"`
}

// TokenizePayload is the opaque single-use payment credential produced by
// parsing the wallet's raw response. Never persisted.
type TokenizePayload struct {
	Type      string
	Nonce     string
	CardBrand string
	LastFour  string
}

// PaymentOutcome aggregates the tokenize payload with the resolved addresses
// and contact email; the unit handed to the submission pipeline
type PaymentOutcome struct {
	Payload         *TokenizePayload
	ShippingAddress *WalletAddress
	BillingAddress  *WalletAddress
	Email           string
}
