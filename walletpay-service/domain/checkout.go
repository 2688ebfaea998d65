package domain

import "github.com/storefront/wallet-checkout/shared/models"

// PaymentMethodConfig is the immutable payment-method snapshot loaded once per
// configuration cycle. TestMode is a pointer so an absent flag is reported as
// missing configuration instead of silently selecting an environment.
type PaymentMethodConfig struct {
	ID                string
	TestMode          *bool
	Gateway           string
	GatewayMerchantID string
	DisplayName       string
}

// StoreConfig is the store-level checkout configuration
type StoreConfig struct {
	StoreName   string
	CountryCode string
	Currency    string
}

// LineItem is a single order line in the checkout
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice models.Money
}

// CheckoutSnapshot is the read-only view of the in-progress order used to
// build a wallet payment-data request
type CheckoutSnapshot struct {
	ID        string
	Email     string
	LineItems []LineItem
	Subtotal  models.Money
	Total     models.Money
}

// AddressRecord is an address as held by the checkout store
type AddressRecord struct {
	ID          string
	FirstName   string
	LastName    string
	Address1    string
	Address2    string
	City        string
	Province    string
	PostalCode  string
	CountryCode string
	Phone       string
}

// StateSnapshot is the view of checkout state returned by every store
// dispatch. Read-only to the orchestration core.
type StateSnapshot struct {
	PaymentMethods map[string]*PaymentMethodConfig
	Store          *StoreConfig
	Checkout       *CheckoutSnapshot
	Shipping       *AddressRecord
	Billing        *AddressRecord
}

// PaymentMethod selects a payment method config by id
func (s *StateSnapshot) PaymentMethod(id string) *PaymentMethodConfig {
	if s == nil || s.PaymentMethods == nil {
		return nil
	}
	return s.PaymentMethods[id]
}

// HasShippingAddress reports whether a shipping address is already known
func (s *StateSnapshot) HasShippingAddress() bool {
	return s != nil && s.Shipping != nil
}

// ActionType identifies a checkout store mutation
type ActionType string

const (
	ActionLoadPaymentMethod     ActionType = "payment_method.load"
	ActionLoadCheckout          ActionType = "checkout.load"
	ActionUpdateShippingAddress ActionType = "checkout.shipping_address.update"
	ActionUpdateBillingAddress  ActionType = "checkout.billing_address.update"
)

// Action is a checkout store mutation request. All store writes go through
// Dispatch with one of these; the core never writes state directly.
type Action struct {
	Type     ActionType
	MethodID string
	Address  *AddressChangeRequest
}

// LoadPaymentMethodAction builds a payment-method load action
func LoadPaymentMethodAction(methodID string) *Action {
	return &Action{Type: ActionLoadPaymentMethod, MethodID: methodID}
}

// LoadCheckoutAction builds a checkout load action
func LoadCheckoutAction() *Action {
	return &Action{Type: ActionLoadCheckout}
}

// UpdateShippingAddressAction builds a shipping-address update action
func UpdateShippingAddressAction(request *AddressChangeRequest) *Action {
	return &Action{Type: ActionUpdateShippingAddress, Address: request}
}

// UpdateBillingAddressAction builds a billing-address update action
func UpdateBillingAddressAction(request *AddressChangeRequest) *Action {
	return &Action{Type: ActionUpdateBillingAddress, Address: request}
}
