package application

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/wallet-checkout/walletpay-service/domain"
	"github.com/storefront/wallet-checkout/walletpay-service/mocks"
)

type fakeActivation struct {
	prevented bool
}

func (a *fakeActivation) PreventDefault() {
	a.prevented = true
}

type fakeTrigger struct {
	mux     sync.Mutex
	handler func(domain.Activation)
	bindErr error
	unbound bool
}

func (tr *fakeTrigger) Bind(handler func(domain.Activation)) (func(), error) {
	if tr.bindErr != nil {
		return nil, tr.bindErr
	}
	tr.mux.Lock()
	tr.handler = handler
	tr.mux.Unlock()
	return func() {
		tr.mux.Lock()
		tr.unbound = true
		tr.mux.Unlock()
	}, nil
}

func (tr *fakeTrigger) isUnbound() bool {
	tr.mux.Lock()
	defer tr.mux.Unlock()
	return tr.unbound
}

type controllerFixture struct {
	store      *mocks.MockCheckoutStore
	loader     *mocks.MockScriptLoader
	provider   *mocks.MockCapabilityProvider
	publisher  *mocks.MockPublisher
	client     *mocks.MockWalletClient
	sender     *mocks.MockSender
	controller *WalletInteractionController
}

func newControllerFixture(t *testing.T) *controllerFixture {
	store := mocks.NewMockCheckoutStore(t)
	loader := mocks.NewMockScriptLoader(t)
	provider := mocks.NewMockCapabilityProvider(t)
	publisher := mocks.NewMockPublisher(t)
	client := mocks.NewMockWalletClient(t)
	sender := mocks.NewMockSender(t)

	configurator := NewWalletConfigurator(store, loader, provider, publisher)
	addresses := NewAddressSynchronizer(store, publisher)
	submission := NewSubmissionPipeline(sender, store, publisher)
	controller := NewWalletInteractionController(configurator, addresses, submission, provider, publisher)

	return &controllerFixture{
		store:      store,
		loader:     loader,
		provider:   provider,
		publisher:  publisher,
		client:     client,
		sender:     sender,
		controller: controller,
	}
}

func (f *controllerFixture) validState() *domain.StateSnapshot {
	testMode := true
	return &domain.StateSnapshot{
		PaymentMethods: map[string]*domain.PaymentMethodConfig{
			"method-1": {ID: "method-1", TestMode: &testMode, GatewayMerchantID: "merchant-1"},
		},
		Store:    &domain.StoreConfig{StoreName: "Test Store", CountryCode: "US", Currency: "USD"},
		Checkout: &domain.CheckoutSnapshot{ID: "550e8400-e29b-41d4-a716-446655440001"},
	}
}

// expectConfiguration wires the mocks for one successful configuration cycle
func (f *controllerFixture) expectConfiguration() *domain.PaymentDataRequest {
	dataRequest := &domain.PaymentDataRequest{AllowedPaymentMethods: []string{"CARD"}}

	f.store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
		Return(f.validState(), nil).Once()
	f.store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
		Return(f.validState(), nil).Once()
	f.loader.EXPECT().Load(mock.Anything, domain.EnvironmentSandbox).
		Return(f.client, nil).Once()
	f.provider.EXPECT().Initialize(mock.Anything, mock.Anything, mock.Anything, false).
		Return(dataRequest, nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	return dataRequest
}

func TestWalletInteractionController_Initialize(t *testing.T) {
	t.Run("nil options fail validation", func(t *testing.T) {
		f := newControllerFixture(t)

		err := f.controller.Initialize(context.Background(), nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "wallet options are required")
		assert.Equal(t, domain.StateUninitialized, f.controller.State())
	})

	t.Run("empty method ID fails validation", func(t *testing.T) {
		f := newControllerFixture(t)

		err := f.controller.Initialize(context.Background(), &WalletOptions{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "payment method ID is required")
	})

	t.Run("configuration failure unbinds the trigger", func(t *testing.T) {
		f := newControllerFixture(t)
		trigger := &fakeTrigger{}

		f.store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
			Return(nil, errors.New("database error")).Once()

		err := f.controller.Initialize(context.Background(), &WalletOptions{
			MethodID: "method-1",
			Trigger:  trigger,
		})

		assert.Error(t, err)
		assert.True(t, trigger.isUnbound())
		assert.Equal(t, domain.StateError, f.controller.State())
	})

	t.Run("trigger bind failure aborts before configuration", func(t *testing.T) {
		f := newControllerFixture(t)
		trigger := &fakeTrigger{bindErr: errors.New("element not found")}

		err := f.controller.Initialize(context.Background(), &WalletOptions{
			MethodID: "method-1",
			Trigger:  trigger,
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to bind wallet trigger")
	})

	t.Run("successful initialization reaches ready", func(t *testing.T) {
		f := newControllerFixture(t)
		f.expectConfiguration()

		err := f.controller.Initialize(context.Background(), &WalletOptions{MethodID: "method-1"})

		assert.NoError(t, err)
		assert.Equal(t, domain.StateReady, f.controller.State())
	})
}

func TestWalletInteractionController_HandleActivation(t *testing.T) {
	t.Run("activation before initialization fails synchronously", func(t *testing.T) {
		f := newControllerFixture(t)
		activation := &fakeActivation{}

		err := f.controller.HandleActivation(context.Background(), activation)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "has not been initialized")
		assert.True(t, activation.prevented)
	})

	t.Run("environment not ready ends attempt without callbacks", func(t *testing.T) {
		f := newControllerFixture(t)
		dataRequest := f.expectConfiguration()

		var errCalls, selectCalls int
		err := f.controller.Initialize(context.Background(), &WalletOptions{
			MethodID:        "method-1",
			OnError:         func(error) { errCalls++ },
			OnPaymentSelect: func() { selectCalls++ },
		})
		assert.NoError(t, err)

		f.client.EXPECT().IsReadyToPay(mock.Anything, &domain.ReadinessRequest{
			AllowedPaymentMethods: dataRequest.AllowedPaymentMethods,
		}).Return(false, nil).Once()

		err = f.controller.HandleActivation(context.Background(), &fakeActivation{})

		assert.NoError(t, err)
		assert.Equal(t, domain.StateReady, f.controller.State())
		assert.Equal(t, 0, errCalls)
		assert.Equal(t, 0, selectCalls)
	})

	t.Run("successful interaction submits once and selects payment", func(t *testing.T) {
		f := newControllerFixture(t)
		f.expectConfiguration()

		var selectCalls int
		err := f.controller.Initialize(context.Background(), &WalletOptions{
			MethodID:        "method-1",
			OnPaymentSelect: func() { selectCalls++ },
		})
		assert.NoError(t, err)

		raw := &domain.RawPaymentData{
			Token: `{"type":"wallet_card","nonce":"nonce-abc123"}`,
			Email: "buyer@example.com",
			ShippingAddress: &domain.WalletAddress{
				Name:        "Jane Doe",
				Address1:    "1 Market St",
				CountryCode: "US",
			},
		}
		payload := &domain.TokenizePayload{
			Type:      "wallet_card",
			Nonce:     "nonce-abc123",
			CardBrand: "visa",
			LastFour:  "4242",
		}

		f.client.EXPECT().IsReadyToPay(mock.Anything, mock.Anything).Return(true, nil).Once()
		f.client.EXPECT().LoadPaymentData(mock.Anything, mock.Anything).Return(raw, nil).Once()
		f.provider.EXPECT().ParseResponse(raw).Return(payload, nil).Once()
		f.store.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(action *domain.Action) bool {
			return action.Type == domain.ActionUpdateShippingAddress
		})).Return(f.validState(), nil).Once()
		f.sender.EXPECT().Post(mock.Anything, "/checkout/finalize", mock.Anything, mock.Anything).
			Return(&domain.SenderResponse{StatusCode: 200}, nil).Once()
		f.store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
			Return(f.validState(), nil).Once()
		f.store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
			Return(f.validState(), nil).Once()

		err = f.controller.HandleActivation(context.Background(), &fakeActivation{})

		assert.NoError(t, err)
		assert.Equal(t, domain.StateReady, f.controller.State())
		assert.Equal(t, 1, selectCalls)
	})

	t.Run("pipeline failure routes to error callback exactly once", func(t *testing.T) {
		f := newControllerFixture(t)
		f.expectConfiguration()

		var errCalls, selectCalls int
		var lastErr error
		err := f.controller.Initialize(context.Background(), &WalletOptions{
			MethodID: "method-1",
			OnError: func(e error) {
				errCalls++
				lastErr = e
			},
			OnPaymentSelect: func() { selectCalls++ },
		})
		assert.NoError(t, err)

		f.client.EXPECT().IsReadyToPay(mock.Anything, mock.Anything).
			Return(false, &domain.ProviderError{StatusCode: "DEVELOPER_ERROR", Op: "readiness check"}).Once()

		err = f.controller.HandleActivation(context.Background(), &fakeActivation{})

		assert.NoError(t, err)
		assert.Equal(t, domain.StateError, f.controller.State())
		assert.Equal(t, 1, errCalls)
		assert.Equal(t, 0, selectCalls)
		assert.Contains(t, lastErr.Error(), "readiness check failed")
	})

	t.Run("concurrent activations never interleave", func(t *testing.T) {
		f := newControllerFixture(t)
		f.expectConfiguration()

		err := f.controller.Initialize(context.Background(), &WalletOptions{MethodID: "method-1"})
		assert.NoError(t, err)

		var inFlight, maxInFlight int32
		f.client.EXPECT().IsReadyToPay(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, request *domain.ReadinessRequest) {
				current := atomic.AddInt32(&inFlight, 1)
				for {
					observed := atomic.LoadInt32(&maxInFlight)
					if current <= observed || atomic.CompareAndSwapInt32(&maxInFlight, observed, current) {
						break
					}
				}
				atomic.AddInt32(&inFlight, -1)
			}).
			Return(false, nil).Twice()

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, f.controller.HandleActivation(context.Background(), &fakeActivation{}))
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
	})
}

func TestWalletInteractionController_Deinitialize(t *testing.T) {
	t.Run("deinitialize before initialization is a no-op", func(t *testing.T) {
		f := newControllerFixture(t)

		assert.NoError(t, f.controller.Deinitialize(context.Background()))
		assert.Equal(t, domain.StateUninitialized, f.controller.State())
	})

	t.Run("deinitialize detaches trigger and tears down provider", func(t *testing.T) {
		f := newControllerFixture(t)
		f.expectConfiguration()
		trigger := &fakeTrigger{}

		err := f.controller.Initialize(context.Background(), &WalletOptions{
			MethodID: "method-1",
			Trigger:  trigger,
		})
		assert.NoError(t, err)

		f.provider.EXPECT().Teardown(mock.Anything).Return(nil).Once()

		err = f.controller.Deinitialize(context.Background())

		assert.NoError(t, err)
		assert.True(t, trigger.isUnbound())
		assert.Equal(t, domain.StateUninitialized, f.controller.State())

		// Activations after teardown behave like an uninitialized controller
		err = f.controller.HandleActivation(context.Background(), &fakeActivation{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "has not been initialized")
	})
}
