package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
)

var _ domain.Sender = (*FormSender)(nil)

// FormSender posts form-url-encoded requests to the checkout backend
type FormSender struct {
	baseURL    string
	httpClient *http.Client
}

// NewFormSender creates a new FormSender
func NewFormSender(baseURL string, httpClient *http.Client) *FormSender {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &FormSender{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Post sends a form-encoded POST and returns the raw response
func (s *FormSender) Post(ctx context.Context, path string, headers map[string]string, form url.Values) (*domain.SenderResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build checkout request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "checkout request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read checkout response")
	}

	return &domain.SenderResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
