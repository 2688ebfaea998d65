package application

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/storefront/wallet-checkout/shared/events"
	"github.com/storefront/wallet-checkout/shared/models"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
)

// AddressSynchronizer translates wallet-supplied addresses into the checkout
// store's address-update requests and dispatches them
type AddressSynchronizer struct {
	store     domain.CheckoutStore
	publisher events.Publisher

	mux      sync.RWMutex
	methodID string
}

// NewAddressSynchronizer creates a new AddressSynchronizer
func NewAddressSynchronizer(store domain.CheckoutStore, publisher events.Publisher) *AddressSynchronizer {
	return &AddressSynchronizer{
		store:     store,
		publisher: publisher,
	}
}

// SetMethodID records the configured payment method id. Address updates fail
// until this has been set.
func (s *AddressSynchronizer) SetMethodID(methodID string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.methodID = methodID
}

func (s *AddressSynchronizer) configuredMethodID() (string, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if s.methodID == "" {
		return "", &domain.NotConfiguredError{}
	}
	return s.methodID, nil
}

// AddressSyncedData is the payload of address synced events
type AddressSyncedData struct {
	MethodID    string `json:"method_id"`
	CountryCode string `json:"country_code"`
}

// UpdateShippingAddress maps the wallet address to the checkout's
// shipping-update request and dispatches it, returning the refreshed state.
// An absent address is a no-op.
func (s *AddressSynchronizer) UpdateShippingAddress(ctx context.Context, address *domain.WalletAddress) (*domain.StateSnapshot, error) {
	if address == nil {
		return nil, nil
	}

	methodID, err := s.configuredMethodID()
	if err != nil {
		return nil, err
	}

	request := domain.MapToShippingRequest(address)

	state, err := s.store.Dispatch(ctx, domain.UpdateShippingAddressAction(request))
	if err != nil {
		return nil, errors.Wrap(err, "failed to update shipping address")
	}

	s.publishSynced(ctx, state, events.ShippingAddressSyncedEvent, methodID, address.CountryCode)

	return state, nil
}

// UpdateBillingAddress reloads the current payment method to discover any
// previously stored billing address id, then dispatches an update-or-create
// billing request accordingly
func (s *AddressSynchronizer) UpdateBillingAddress(ctx context.Context, address *domain.WalletAddress) (*domain.StateSnapshot, error) {
	methodID, err := s.configuredMethodID()
	if err != nil {
		return nil, err
	}

	if address == nil {
		return nil, nil
	}

	state, err := s.store.Dispatch(ctx, domain.LoadPaymentMethodAction(methodID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload payment method")
	}

	existingID := ""
	if state != nil && state.Billing != nil {
		existingID = state.Billing.ID
	}

	request := domain.MapToBillingRequest(address, existingID)

	state, err = s.store.Dispatch(ctx, domain.UpdateBillingAddressAction(request))
	if err != nil {
		return nil, errors.Wrap(err, "failed to update billing address")
	}

	s.publishSynced(ctx, state, events.BillingAddressSyncedEvent, methodID, address.CountryCode)

	return state, nil
}

func (s *AddressSynchronizer) publishSynced(ctx context.Context, state *domain.StateSnapshot, eventType, methodID, countryCode string) {
	aggregateID := models.ID(methodID)
	if state != nil && state.Checkout != nil {
		aggregateID = models.ID(state.Checkout.ID)
	}

	// Best effort; the dispatch already succeeded
	_ = s.publisher.Publish(ctx, events.NewEvent(aggregateID, eventType, AddressSyncedData{
		MethodID:    methodID,
		CountryCode: countryCode,
	}))
}
