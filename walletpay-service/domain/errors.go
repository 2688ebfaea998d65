package domain

import "fmt"

// InvalidArgumentError signals a required initialization option is missing.
// Never retried.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// MissingConfigurationSubject identifies which piece of required state was absent
type MissingConfigurationSubject string

const (
	MissingPaymentMethod  MissingConfigurationSubject = "payment method"
	MissingCheckoutConfig MissingConfigurationSubject = "checkout config"
	MissingCheckout       MissingConfigurationSubject = "checkout"
)

// MissingConfigurationError signals required state was absent at configuration
// or address-update time
type MissingConfigurationError struct {
	Subject MissingConfigurationSubject
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("unable to proceed because %s data is unavailable", e.Subject)
}

// NotInitializedError signals an interaction was attempted before
// configuration completed
type NotInitializedError struct{}

func (e *NotInitializedError) Error() string {
	return "wallet payment has not been initialized"
}

// NotConfiguredError signals an address update was attempted before a payment
// method id was known
type NotConfiguredError struct{}

func (e *NotConfiguredError) Error() string {
	return "payment method is not configured"
}

// ProviderError carries the wallet provider's status code for a failed
// readiness or payment-data call
type ProviderError struct {
	StatusCode string
	Op         string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("wallet provider %s failed with status %s", e.Op, e.StatusCode)
}

// StandardError normalizes configuration-phase failures from any dependency
// into a single error shape carrying the underlying message
type StandardError struct {
	Message string
	cause   error
}

// NewStandardError wraps a failure into a StandardError
func NewStandardError(cause error) *StandardError {
	message := "an unexpected error has occurred"
	if cause != nil {
		message = cause.Error()
	}
	return &StandardError{
		Message: message,
		cause:   cause,
	}
}

func (e *StandardError) Error() string {
	return e.Message
}

func (e *StandardError) Unwrap() error {
	return e.cause
}
