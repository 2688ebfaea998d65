package handlers

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/wallet-checkout/shared/events"
	"github.com/storefront/wallet-checkout/shared/models"
	"github.com/storefront/wallet-checkout/walletpay-service/application"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
	"github.com/storefront/wallet-checkout/walletpay-service/mocks"
)

func TestCheckoutEventHandlers_Handle(t *testing.T) {
	aggregateID := models.ID("550e8400-e29b-41d4-a716-446655440001")

	tests := []struct {
		name          string
		event         *events.Event
		setupMocks    func(store *mocks.MockCheckoutStore, eventStore *mocks.MockEventStore)
		expectedError string
	}{
		{
			name:       "nil event is ignored",
			event:      nil,
			setupMocks: func(store *mocks.MockCheckoutStore, eventStore *mocks.MockEventStore) {},
		},
		{
			name:  "unrelated event is audited only",
			event: events.NewEvent(aggregateID, events.WalletConfiguredEvent, nil),
			setupMocks: func(store *mocks.MockCheckoutStore, eventStore *mocks.MockEventStore) {
				eventStore.EXPECT().SaveEvents(mock.Anything, aggregateID, mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name:  "audit failure surfaces",
			event: events.NewEvent(aggregateID, events.WalletConfiguredEvent, nil),
			setupMocks: func(store *mocks.MockCheckoutStore, eventStore *mocks.MockEventStore) {
				eventStore.EXPECT().SaveEvents(mock.Anything, aggregateID, mock.Anything).
					Return(errors.New("database error")).Once()
			},
			expectedError: "failed to audit event",
		},
		{
			name: "provider update triggers reconciliation",
			event: events.NewEvent(aggregateID, events.ExternalProviderUpdateEvent, ExternalProviderUpdateData{
				MethodID: "method-1",
				Status:   "settled",
			}),
			setupMocks: func(store *mocks.MockCheckoutStore, eventStore *mocks.MockEventStore) {
				eventStore.EXPECT().SaveEvents(mock.Anything, aggregateID, mock.Anything).
					Return(nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(&domain.StateSnapshot{}, nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(&domain.StateSnapshot{}, nil).Once()
			},
		},
		{
			name:  "provider update without method id fails",
			event: events.NewEvent(aggregateID, events.ExternalProviderUpdateEvent, ExternalProviderUpdateData{}),
			setupMocks: func(store *mocks.MockCheckoutStore, eventStore *mocks.MockEventStore) {
				eventStore.EXPECT().SaveEvents(mock.Anything, aggregateID, mock.Anything).
					Return(nil).Once()
			},
			expectedError: "carries no method ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockCheckoutStore(t)
			eventStore := mocks.NewMockEventStore(t)
			sender := mocks.NewMockSender(t)
			publisher := mocks.NewMockPublisher(t)

			tt.setupMocks(store, eventStore)

			submission := application.NewSubmissionPipeline(sender, store, publisher)
			handler := NewCheckoutEventHandlers(submission, eventStore)

			err := handler.Handle(context.Background(), tt.event)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckoutEventHandlers_HandlerID(t *testing.T) {
	handler := NewCheckoutEventHandlers(nil, nil)
	assert.Equal(t, "wallet-checkout-event-handler", handler.HandlerID())
}
