package handlers

import (
	"context"

	"github.com/pkg/errors"
	"github.com/storefront/wallet-checkout/shared/events"
	"github.com/storefront/wallet-checkout/walletpay-service/application"
)

// CheckoutEventHandlers routes inbound checkout events: every event is
// appended to the audit log, provider updates additionally trigger
// reconciliation
type CheckoutEventHandlers struct {
	submission *application.SubmissionPipeline
	eventStore events.EventStore
}

// NewCheckoutEventHandlers creates new checkout event handlers
func NewCheckoutEventHandlers(
	submission *application.SubmissionPipeline,
	eventStore events.EventStore,
) *CheckoutEventHandlers {
	return &CheckoutEventHandlers{
		submission: submission,
		eventStore: eventStore,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *CheckoutEventHandlers) HandlerID() string {
	return "wallet-checkout-event-handler"
}

// Handle implements the events.EventHandler interface
func (h *CheckoutEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	if event == nil {
		return nil
	}

	if err := h.eventStore.SaveEvents(ctx, event.AggregateID, []*events.Event{event}); err != nil {
		return errors.Wrap(err, "failed to audit event")
	}

	switch event.EventType {
	case events.ExternalProviderUpdateEvent:
		return h.HandleExternalProviderUpdate(ctx, event)
	default:
		// Audited only
		return nil
	}
}

// ExternalProviderUpdateData is the payload of an external provider update
type ExternalProviderUpdateData struct {
	MethodID string `json:"method_id"`
	Status   string `json:"status"`
}

// HandleExternalProviderUpdate reconciles checkout state after an
// out-of-band provider update
func (h *CheckoutEventHandlers) HandleExternalProviderUpdate(ctx context.Context, event *events.Event) error {
	var data ExternalProviderUpdateData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse external provider update")
	}

	if data.MethodID == "" {
		return errors.New("external provider update carries no method ID")
	}

	if err := h.submission.Reconcile(ctx, data.MethodID); err != nil {
		return errors.Wrap(err, "failed to reconcile after provider update")
	}

	return nil
}
