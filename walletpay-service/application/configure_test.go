package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/wallet-checkout/shared/models"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
	"github.com/storefront/wallet-checkout/walletpay-service/mocks"
)

func TestWalletConfigurator_Configure(t *testing.T) {
	testMode := true
	liveMode := false

	validState := func() *domain.StateSnapshot {
		return &domain.StateSnapshot{
			PaymentMethods: map[string]*domain.PaymentMethodConfig{
				"method-1": {
					ID:                "method-1",
					TestMode:          &testMode,
					Gateway:           "walletpay",
					GatewayMerchantID: "merchant-1",
					DisplayName:       "Test Store",
				},
			},
			Store: &domain.StoreConfig{
				StoreName:   "Test Store",
				CountryCode: "US",
				Currency:    "USD",
			},
			Checkout: &domain.CheckoutSnapshot{
				ID:    "550e8400-e29b-41d4-a716-446655440001",
				Email: "buyer@example.com",
				Total: models.NewMoney(5000, "USD"),
			},
		}
	}

	dataRequest := &domain.PaymentDataRequest{
		Environment:           domain.EnvironmentSandbox,
		AllowedPaymentMethods: []string{"CARD"},
	}

	tests := []struct {
		name          string
		methodID      string
		setupMocks    func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient)
		expectedError string
		expectedEnv   domain.Environment
	}{
		{
			name:          "empty method ID fails validation",
			methodID:      "",
			setupMocks:    func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {},
			expectedError: "payment method ID is required",
		},
		{
			name:     "payment method load failure",
			methodID: "method-1",
			setupMocks: func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(nil, errors.New("database error")).Once()
			},
			expectedError: "failed to load payment method",
		},
		{
			name:     "missing payment method config",
			methodID: "unknown-method",
			setupMocks: func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("unknown-method")).
					Return(validState(), nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(validState(), nil).Once()
			},
			expectedError: "payment method data is unavailable",
		},
		{
			name:     "missing store config",
			methodID: "method-1",
			setupMocks: func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {
				state := validState()
				state.Store = nil
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(state, nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(state, nil).Once()
			},
			expectedError: "checkout config data is unavailable",
		},
		{
			name:     "missing checkout",
			methodID: "method-1",
			setupMocks: func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {
				state := validState()
				state.Checkout = nil
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(state, nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(state, nil).Once()
			},
			expectedError: "checkout data is unavailable",
		},
		{
			name:     "undefined test mode flag",
			methodID: "method-1",
			setupMocks: func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {
				state := validState()
				state.PaymentMethods["method-1"].TestMode = nil
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(state, nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(state, nil).Once()
			},
			expectedError: "payment method data is unavailable",
		},
		{
			name:     "client library load failure",
			methodID: "method-1",
			setupMocks: func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(validState(), nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(validState(), nil).Once()
				loader.EXPECT().Load(mock.Anything, domain.EnvironmentSandbox).
					Return(nil, errors.New("network unavailable")).Once()
				provider.EXPECT().Initialize(mock.Anything, mock.Anything, mock.Anything, false).
					Return(dataRequest, nil).Maybe()
			},
			expectedError: "failed to load wallet client library",
		},
		{
			name:     "capability initialization failure",
			methodID: "method-1",
			setupMocks: func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(validState(), nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(validState(), nil).Once()
				loader.EXPECT().Load(mock.Anything, domain.EnvironmentSandbox).
					Return(client, nil).Maybe()
				provider.EXPECT().Initialize(mock.Anything, mock.Anything, mock.Anything, false).
					Return(nil, errors.New("gateway rejected merchant")).Once()
			},
			expectedError: "failed to initialize wallet capabilities",
		},
		{
			name:     "successful sandbox configuration",
			methodID: "method-1",
			setupMocks: func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(validState(), nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(validState(), nil).Once()
				loader.EXPECT().Load(mock.Anything, domain.EnvironmentSandbox).
					Return(client, nil).Once()
				provider.EXPECT().Initialize(mock.Anything, mock.Anything, mock.Anything, false).
					Return(dataRequest, nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedEnv: domain.EnvironmentSandbox,
		},
		{
			name:     "successful production configuration",
			methodID: "method-1",
			setupMocks: func(store *mocks.MockCheckoutStore, loader *mocks.MockScriptLoader, provider *mocks.MockCapabilityProvider, publisher *mocks.MockPublisher, client *mocks.MockWalletClient) {
				state := validState()
				state.PaymentMethods["method-1"].TestMode = &liveMode
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(state, nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(state, nil).Once()
				loader.EXPECT().Load(mock.Anything, domain.EnvironmentProduction).
					Return(client, nil).Once()
				provider.EXPECT().Initialize(mock.Anything, mock.Anything, mock.Anything, false).
					Return(dataRequest, nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedEnv: domain.EnvironmentProduction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockCheckoutStore(t)
			loader := mocks.NewMockScriptLoader(t)
			provider := mocks.NewMockCapabilityProvider(t)
			publisher := mocks.NewMockPublisher(t)
			client := mocks.NewMockWalletClient(t)

			tt.setupMocks(store, loader, provider, publisher, client)

			configurator := NewWalletConfigurator(store, loader, provider, publisher)
			session, err := configurator.Configure(context.Background(), tt.methodID)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, session)
				assert.Equal(t, tt.methodID, session.MethodID)
				assert.Equal(t, tt.expectedEnv, session.Environment)
				assert.NotNil(t, session.Client)
				assert.NotNil(t, session.DataRequest)
			}
		})
	}
}

func TestWalletConfigurator_Configure_EventPublishFailureDoesNotFail(t *testing.T) {
	testMode := true
	state := &domain.StateSnapshot{
		PaymentMethods: map[string]*domain.PaymentMethodConfig{
			"method-1": {ID: "method-1", TestMode: &testMode, GatewayMerchantID: "merchant-1"},
		},
		Store:    &domain.StoreConfig{StoreName: "Test Store", CountryCode: "US", Currency: "USD"},
		Checkout: &domain.CheckoutSnapshot{ID: "550e8400-e29b-41d4-a716-446655440001"},
	}

	store := mocks.NewMockCheckoutStore(t)
	loader := mocks.NewMockScriptLoader(t)
	provider := mocks.NewMockCapabilityProvider(t)
	publisher := mocks.NewMockPublisher(t)
	client := mocks.NewMockWalletClient(t)

	store.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(state, nil).Twice()
	loader.EXPECT().Load(mock.Anything, domain.EnvironmentSandbox).Return(client, nil).Once()
	provider.EXPECT().Initialize(mock.Anything, mock.Anything, mock.Anything, false).
		Return(&domain.PaymentDataRequest{}, nil).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	configurator := NewWalletConfigurator(store, loader, provider, publisher)
	session, err := configurator.Configure(context.Background(), "method-1")

	assert.NoError(t, err)
	assert.NotNil(t, session)
}
