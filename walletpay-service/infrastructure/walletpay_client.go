package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
)

const (
	sandboxHost    = "https://sandbox.walletpay.dev"
	productionHost = "https://pay.walletpay.dev"

	clientManifestPath = "/v1/client"
	readinessPath      = "/v1/payments/ready"
	paymentDataPath    = "/v1/payments/data"
)

// HTTPScriptLoader loads the wallet provider's client library over HTTP and
// returns a client handle bound to the selected environment
type HTTPScriptLoader struct {
	httpClient *http.Client
}

// NewHTTPScriptLoader creates a new HTTPScriptLoader. Timeouts live on the
// HTTP client; the orchestration core enforces none of its own.
func NewHTTPScriptLoader(httpClient *http.Client) *HTTPScriptLoader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPScriptLoader{httpClient: httpClient}
}

type clientManifest struct {
	Version string `json:"version"`
}

// Load fetches the client manifest for the environment and returns the
// wallet client handle
func (l *HTTPScriptLoader) Load(ctx context.Context, environment domain.Environment) (domain.WalletClient, error) {
	baseURL := productionHost
	if environment == domain.EnvironmentSandbox {
		baseURL = sandboxHost
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+clientManifestPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build client manifest request")
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch wallet client library")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("wallet client library fetch returned status %d", resp.StatusCode)
	}

	var manifest clientManifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return nil, errors.Wrap(err, "failed to parse wallet client manifest")
	}

	return &httpWalletClient{
		baseURL:    baseURL,
		version:    manifest.Version,
		httpClient: l.httpClient,
	}, nil
}

// httpWalletClient is the wallet client handle backed by the provider's HTTP API
type httpWalletClient struct {
	baseURL    string
	version    string
	httpClient *http.Client
}

type readinessResponse struct {
	Result bool `json:"result"`
}

type providerErrorResponse struct {
	StatusCode string `json:"status_code"`
}

// IsReadyToPay queries whether the environment can complete a payment with
// the given allowed methods
func (c *httpWalletClient) IsReadyToPay(ctx context.Context, request *domain.ReadinessRequest) (bool, error) {
	body, err := c.post(ctx, readinessPath, request, "readiness check")
	if err != nil {
		return false, err
	}

	var response readinessResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return false, errors.Wrap(err, "failed to parse readiness response")
	}

	return response.Result, nil
}

// LoadPaymentData retrieves the raw payment data for the configured request
func (c *httpWalletClient) LoadPaymentData(ctx context.Context, request *domain.PaymentDataRequest) (*domain.RawPaymentData, error) {
	body, err := c.post(ctx, paymentDataPath, request, "payment data retrieval")
	if err != nil {
		return nil, err
	}

	var raw domain.RawPaymentData
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse payment data response")
	}

	return &raw, nil
}

func (c *httpWalletClient) post(ctx context.Context, path string, payload interface{}, op string) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s request", op)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s request", op)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Version", c.version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s request failed", op)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s response", op)
	}

	if resp.StatusCode != http.StatusOK {
		statusCode := http.StatusText(resp.StatusCode)
		var providerErr providerErrorResponse
		if err := json.Unmarshal(buf.Bytes(), &providerErr); err == nil && providerErr.StatusCode != "" {
			statusCode = providerErr.StatusCode
		}
		return nil, &domain.ProviderError{StatusCode: statusCode, Op: op}
	}

	return buf.Bytes(), nil
}

var _ domain.CapabilityProvider = (*WalletPayCapabilityProvider)(nil)

// WalletPayCapabilityProvider builds environment settings and payment-data
// request descriptors for the wallet provider, and parses its responses
type WalletPayCapabilityProvider struct {
	allowedPaymentMethods []string
}

// NewWalletPayCapabilityProvider creates a new WalletPayCapabilityProvider
func NewWalletPayCapabilityProvider() *WalletPayCapabilityProvider {
	return &WalletPayCapabilityProvider{
		allowedPaymentMethods: []string{"CARD", "TOKENIZED_CARD"},
	}
}

// Initialize builds the payment-data request descriptor for the checkout
func (p *WalletPayCapabilityProvider) Initialize(
	ctx context.Context,
	checkout *domain.CheckoutSnapshot,
	config *domain.PaymentMethodConfig,
	hasShippingAddress bool,
) (*domain.PaymentDataRequest, error) {
	if checkout == nil {
		return nil, &domain.MissingConfigurationError{Subject: domain.MissingCheckout}
	}

	environment, err := domain.EnvironmentFor(config)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentDataRequest{
		Environment:           environment,
		AllowedPaymentMethods: p.allowedPaymentMethods,
		MerchantInfo: domain.MerchantInfo{
			MerchantID:   config.GatewayMerchantID,
			MerchantName: config.DisplayName,
		},
		TransactionInfo: domain.TransactionInfo{
			TotalPrice: checkout.Total,
			CheckoutID: checkout.ID,
		},
		EmailRequired:           true,
		ShippingAddressRequired: !hasShippingAddress,
	}, nil
}

// walletToken is the tokenization payload embedded in the raw payment data
type walletToken struct {
	Type    string `json:"type"`
	Nonce   string `json:"nonce"`
	Details struct {
		CardType string `json:"card_type"`
		LastFour string `json:"last_four"`
	} `json:"details"`
}

// ParseResponse parses raw payment data into the single-use tokenize payload
func (p *WalletPayCapabilityProvider) ParseResponse(raw *domain.RawPaymentData) (*domain.TokenizePayload, error) {
	if raw == nil || raw.Token == "" {
		return nil, errors.New("payment data response carries no token")
	}

	var token walletToken
	if err := json.Unmarshal([]byte(raw.Token), &token); err != nil {
		return nil, errors.Wrap(err, "failed to parse tokenization payload")
	}
	if token.Nonce == "" {
		return nil, errors.New("tokenization payload carries no nonce")
	}

	cardBrand := token.Details.CardType
	if cardBrand == "" {
		cardBrand = raw.CardNetwork
	}
	lastFour := token.Details.LastFour
	if lastFour == "" {
		lastFour = raw.CardDetails
	}

	return &domain.TokenizePayload{
		Type:      token.Type,
		Nonce:     token.Nonce,
		CardBrand: cardBrand,
		LastFour:  lastFour,
	}, nil
}

// Teardown releases provider resources. The HTTP client is shared and owned
// by the loader, so there is nothing to close here.
func (p *WalletPayCapabilityProvider) Teardown(ctx context.Context) error {
	return nil
}
