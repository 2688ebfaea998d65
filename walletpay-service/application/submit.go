package application

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/storefront/wallet-checkout/shared/events"
	"github.com/storefront/wallet-checkout/shared/models"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
	"golang.org/x/sync/errgroup"
)

const (
	checkoutFinalizePath   = "/checkout/finalize"
	providerTag            = "walletpay"
	externalCheckoutAction = "set_external_checkout"
)

// SubmissionPipeline posts the tokenized payment result to the checkout
// backend and reconciles checkout and payment-method state afterwards
type SubmissionPipeline struct {
	sender    domain.Sender
	store     domain.CheckoutStore
	publisher events.Publisher
}

// NewSubmissionPipeline creates a new SubmissionPipeline
func NewSubmissionPipeline(
	sender domain.Sender,
	store domain.CheckoutStore,
	publisher events.Publisher,
) *SubmissionPipeline {
	return &SubmissionPipeline{
		sender:    sender,
		store:     store,
		publisher: publisher,
	}
}

// PaymentSelectedData is the payload of the payment selected event. The nonce
// is deliberately not part of it; the credential is single use and never
// persisted.
type PaymentSelectedData struct {
	MethodID  string `json:"method_id"`
	CardBrand string `json:"card_brand"`
	LastFour  string `json:"last_four"`
}

// Submit posts the form-encoded finalization request and reconciles state.
// Callers must hold the interaction lock; the payload is consumed by exactly
// this one attempt.
func (p *SubmissionPipeline) Submit(ctx context.Context, session *domain.WalletSession, outcome *domain.PaymentOutcome) error {
	if session == nil {
		return &domain.NotInitializedError{}
	}
	if outcome == nil || outcome.Payload == nil {
		return errors.New("payment outcome is required")
	}

	form := url.Values{}
	form.Set("payment_type", outcome.Payload.Type)
	form.Set("nonce", outcome.Payload.Nonce)
	form.Set("provider", providerTag)
	form.Set("action", externalCheckoutAction)
	form.Set("card_information[type]", outcome.Payload.CardBrand)
	form.Set("card_information[number]", outcome.Payload.LastFour)

	headers := map[string]string{
		"Accept":           "text/html",
		"X-Requested-With": "XMLHttpRequest",
	}

	response, err := p.sender.Post(ctx, checkoutFinalizePath, headers, form)
	if err != nil {
		return errors.Wrap(err, "failed to submit payment")
	}
	if response.StatusCode >= 400 {
		return errors.Errorf("checkout finalization returned status %d", response.StatusCode)
	}

	if err := p.Reconcile(ctx, session.MethodID); err != nil {
		return err
	}

	// Best effort; the submission already succeeded
	_ = p.publisher.Publish(ctx, events.NewEvent(
		models.ID(session.Checkout.ID),
		events.PaymentSelectedEvent,
		PaymentSelectedData{
			MethodID:  session.MethodID,
			CardBrand: outcome.Payload.CardBrand,
			LastFour:  outcome.Payload.LastFour,
		},
	))

	return nil
}

// Reconcile refreshes checkout and payment-method state concurrently. Also
// invoked when the wallet provider reports an update out of band.
func (p *SubmissionPipeline) Reconcile(ctx context.Context, methodID string) error {
	gr, grCtx := errgroup.WithContext(ctx)

	gr.Go(func() error {
		_, err := p.store.Dispatch(grCtx, domain.LoadCheckoutAction())
		return err
	})

	gr.Go(func() error {
		_, err := p.store.Dispatch(grCtx, domain.LoadPaymentMethodAction(methodID))
		return err
	})

	if err := gr.Wait(); err != nil {
		return errors.Wrap(err, "failed to reconcile checkout state")
	}

	return nil
}
