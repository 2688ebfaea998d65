package application

import (
	"context"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/wallet-checkout/walletpay-service/domain"
	"github.com/storefront/wallet-checkout/walletpay-service/mocks"
)

func TestSubmissionPipeline_Submit(t *testing.T) {
	session := &domain.WalletSession{
		MethodID: "method-1",
		Checkout: &domain.CheckoutSnapshot{ID: "550e8400-e29b-41d4-a716-446655440001"},
	}

	outcome := &domain.PaymentOutcome{
		Payload: &domain.TokenizePayload{
			Type:      "wallet_card",
			Nonce:     "nonce-abc123",
			CardBrand: "visa",
			LastFour:  "4242",
		},
		Email: "buyer@example.com",
	}

	tests := []struct {
		name          string
		session       *domain.WalletSession
		outcome       *domain.PaymentOutcome
		setupMocks    func(sender *mocks.MockSender, store *mocks.MockCheckoutStore, publisher *mocks.MockPublisher)
		expectedError string
	}{
		{
			name:          "nil session fails",
			session:       nil,
			outcome:       outcome,
			setupMocks:    func(sender *mocks.MockSender, store *mocks.MockCheckoutStore, publisher *mocks.MockPublisher) {},
			expectedError: "has not been initialized",
		},
		{
			name:          "nil outcome fails",
			session:       session,
			outcome:       nil,
			setupMocks:    func(sender *mocks.MockSender, store *mocks.MockCheckoutStore, publisher *mocks.MockPublisher) {},
			expectedError: "payment outcome is required",
		},
		{
			name:    "sender failure",
			session: session,
			outcome: outcome,
			setupMocks: func(sender *mocks.MockSender, store *mocks.MockCheckoutStore, publisher *mocks.MockPublisher) {
				sender.EXPECT().Post(mock.Anything, "/checkout/finalize", mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedError: "failed to submit payment",
		},
		{
			name:    "checkout backend rejects the submission",
			session: session,
			outcome: outcome,
			setupMocks: func(sender *mocks.MockSender, store *mocks.MockCheckoutStore, publisher *mocks.MockPublisher) {
				sender.EXPECT().Post(mock.Anything, "/checkout/finalize", mock.Anything, mock.Anything).
					Return(&domain.SenderResponse{StatusCode: 422}, nil).Once()
			},
			expectedError: "returned status 422",
		},
		{
			name:    "reconciliation failure surfaces",
			session: session,
			outcome: outcome,
			setupMocks: func(sender *mocks.MockSender, store *mocks.MockCheckoutStore, publisher *mocks.MockPublisher) {
				sender.EXPECT().Post(mock.Anything, "/checkout/finalize", mock.Anything, mock.Anything).
					Return(&domain.SenderResponse{StatusCode: 200}, nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(nil, errors.New("database error")).Maybe()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(nil, errors.New("database error")).Maybe()
			},
			expectedError: "failed to reconcile checkout state",
		},
		{
			name:    "successful submission posts form and reconciles",
			session: session,
			outcome: outcome,
			setupMocks: func(sender *mocks.MockSender, store *mocks.MockCheckoutStore, publisher *mocks.MockPublisher) {
				sender.EXPECT().Post(mock.Anything, "/checkout/finalize",
					map[string]string{
						"Accept":           "text/html",
						"X-Requested-With": "XMLHttpRequest",
					},
					mock.MatchedBy(func(form url.Values) bool {
						return form.Get("payment_type") == "wallet_card" &&
							form.Get("nonce") == "nonce-abc123" &&
							form.Get("provider") == "walletpay" &&
							form.Get("action") == "set_external_checkout" &&
							form.Get("card_information[type]") == "visa" &&
							form.Get("card_information[number]") == "4242"
					}),
				).Return(&domain.SenderResponse{StatusCode: 200}, nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
					Return(&domain.StateSnapshot{}, nil).Once()
				store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
					Return(&domain.StateSnapshot{}, nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := mocks.NewMockSender(t)
			store := mocks.NewMockCheckoutStore(t)
			publisher := mocks.NewMockPublisher(t)
			tt.setupMocks(sender, store, publisher)

			pipeline := NewSubmissionPipeline(sender, store, publisher)
			err := pipeline.Submit(context.Background(), tt.session, tt.outcome)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmissionPipeline_Reconcile(t *testing.T) {
	t.Run("refreshes checkout and payment method", func(t *testing.T) {
		sender := mocks.NewMockSender(t)
		store := mocks.NewMockCheckoutStore(t)
		publisher := mocks.NewMockPublisher(t)

		store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
			Return(&domain.StateSnapshot{}, nil).Once()
		store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
			Return(&domain.StateSnapshot{}, nil).Once()

		pipeline := NewSubmissionPipeline(sender, store, publisher)
		err := pipeline.Reconcile(context.Background(), "method-1")

		assert.NoError(t, err)
	})

	t.Run("dispatch failure", func(t *testing.T) {
		sender := mocks.NewMockSender(t)
		store := mocks.NewMockCheckoutStore(t)
		publisher := mocks.NewMockPublisher(t)

		store.EXPECT().Dispatch(mock.Anything, domain.LoadCheckoutAction()).
			Return(nil, errors.New("database error")).Maybe()
		store.EXPECT().Dispatch(mock.Anything, domain.LoadPaymentMethodAction("method-1")).
			Return(&domain.StateSnapshot{}, nil).Maybe()

		pipeline := NewSubmissionPipeline(sender, store, publisher)
		err := pipeline.Reconcile(context.Background(), "method-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reconcile checkout state")
	})
}
