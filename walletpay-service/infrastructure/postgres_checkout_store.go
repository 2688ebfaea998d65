package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/storefront/wallet-checkout/shared/models"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
)

var _ domain.CheckoutStore = (*PostgresCheckoutStore)(nil)

// PostgresCheckoutStore implements the host checkout-store boundary using
// PostgreSQL. Every dispatch mutates through SQL and returns a fresh snapshot.
type PostgresCheckoutStore struct {
	db         *sqlx.DB
	checkoutID string
}

// NewPostgresCheckoutStore creates a new PostgresCheckoutStore bound to one
// active checkout
func NewPostgresCheckoutStore(db *sqlx.DB, checkoutID string) *PostgresCheckoutStore {
	return &PostgresCheckoutStore{db: db, checkoutID: checkoutID}
}

// postgresCheckout represents a checkout row
type postgresCheckout struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Subtotal int64  `db:"subtotal"`
	Total    int64  `db:"total"`
	Currency string `db:"currency"`
}

// postgresLineItem represents a checkout line item row
type postgresLineItem struct {
	Name      string `db:"name"`
	Quantity  int    `db:"quantity"`
	UnitPrice int64  `db:"unit_price"`
	Currency  string `db:"currency"`
}

// postgresStoreConfig represents the store configuration row
type postgresStoreConfig struct {
	StoreName   string `db:"store_name"`
	CountryCode string `db:"country_code"`
	Currency    string `db:"currency"`
}

// postgresPaymentMethod represents a payment method row
type postgresPaymentMethod struct {
	ID                string `db:"id"`
	TestMode          *bool  `db:"test_mode"`
	Gateway           string `db:"gateway"`
	GatewayMerchantID string `db:"gateway_merchant_id"`
	DisplayName       string `db:"display_name"`
}

// postgresAddress represents a checkout address row
type postgresAddress struct {
	ID          string    `db:"id"`
	AddressType string    `db:"address_type"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Address1    string    `db:"address1"`
	Address2    string    `db:"address2"`
	City        string    `db:"city"`
	Province    string    `db:"province"`
	PostalCode  string    `db:"postal_code"`
	CountryCode string    `db:"country_code"`
	Phone       string    `db:"phone"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Dispatch applies a store action and returns the refreshed snapshot
func (s *PostgresCheckoutStore) Dispatch(ctx context.Context, action *domain.Action) (*domain.StateSnapshot, error) {
	if action == nil {
		return nil, errors.New("action is required")
	}

	switch action.Type {
	case domain.ActionLoadPaymentMethod, domain.ActionLoadCheckout:
		// Loads only rebuild the snapshot
	case domain.ActionUpdateShippingAddress:
		if err := s.upsertAddress(ctx, "shipping", action.Address); err != nil {
			return nil, err
		}
	case domain.ActionUpdateBillingAddress:
		if err := s.upsertAddress(ctx, "billing", action.Address); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unsupported action type: %s", action.Type)
	}

	return s.State(ctx)
}

// State builds the current read-only snapshot
func (s *PostgresCheckoutStore) State(ctx context.Context) (*domain.StateSnapshot, error) {
	snapshot := &domain.StateSnapshot{
		PaymentMethods: make(map[string]*domain.PaymentMethodConfig),
	}

	checkout, err := s.loadCheckout(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.Checkout = checkout

	storeConfig, err := s.loadStoreConfig(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.Store = storeConfig

	methods, err := s.loadPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.PaymentMethods = methods

	shipping, billing, err := s.loadAddresses(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.Shipping = shipping
	snapshot.Billing = billing

	return snapshot, nil
}

func (s *PostgresCheckoutStore) loadCheckout(ctx context.Context) (*domain.CheckoutSnapshot, error) {
	query := `
		SELECT id, email, subtotal, total, currency
		FROM checkouts
		WHERE id = $1`

	var pgCheckout postgresCheckout
	err := s.db.GetContext(ctx, &pgCheckout, query, s.checkoutID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Absence surfaces as missing configuration upstream
		}
		return nil, errors.Wrap(err, "failed to load checkout")
	}

	itemsQuery := `
		SELECT name, quantity, unit_price, currency
		FROM checkout_line_items
		WHERE checkout_id = $1
		ORDER BY position ASC`

	var pgItems []postgresLineItem
	if err := s.db.SelectContext(ctx, &pgItems, itemsQuery, s.checkoutID); err != nil {
		return nil, errors.Wrap(err, "failed to load checkout line items")
	}

	items := make([]domain.LineItem, len(pgItems))
	for i, item := range pgItems {
		items[i] = domain.LineItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: models.NewMoney(item.UnitPrice, item.Currency),
		}
	}

	return &domain.CheckoutSnapshot{
		ID:        pgCheckout.ID,
		Email:     pgCheckout.Email,
		LineItems: items,
		Subtotal:  models.NewMoney(pgCheckout.Subtotal, pgCheckout.Currency),
		Total:     models.NewMoney(pgCheckout.Total, pgCheckout.Currency),
	}, nil
}

func (s *PostgresCheckoutStore) loadStoreConfig(ctx context.Context) (*domain.StoreConfig, error) {
	query := `
		SELECT store_name, country_code, currency
		FROM store_config
		LIMIT 1`

	var pgConfig postgresStoreConfig
	err := s.db.GetContext(ctx, &pgConfig, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to load store config")
	}

	return &domain.StoreConfig{
		StoreName:   pgConfig.StoreName,
		CountryCode: pgConfig.CountryCode,
		Currency:    pgConfig.Currency,
	}, nil
}

func (s *PostgresCheckoutStore) loadPaymentMethods(ctx context.Context) (map[string]*domain.PaymentMethodConfig, error) {
	query := `
		SELECT id, test_mode, gateway, gateway_merchant_id, display_name
		FROM payment_methods`

	var pgMethods []postgresPaymentMethod
	if err := s.db.SelectContext(ctx, &pgMethods, query); err != nil {
		return nil, errors.Wrap(err, "failed to load payment methods")
	}

	methods := make(map[string]*domain.PaymentMethodConfig, len(pgMethods))
	for _, method := range pgMethods {
		methods[method.ID] = &domain.PaymentMethodConfig{
			ID:                method.ID,
			TestMode:          method.TestMode,
			Gateway:           method.Gateway,
			GatewayMerchantID: method.GatewayMerchantID,
			DisplayName:       method.DisplayName,
		}
	}

	return methods, nil
}

func (s *PostgresCheckoutStore) loadAddresses(ctx context.Context) (*domain.AddressRecord, *domain.AddressRecord, error) {
	query := `
		SELECT id, address_type, first_name, last_name, address1, address2,
			   city, province, postal_code, country_code, phone, updated_at
		FROM checkout_addresses
		WHERE checkout_id = $1`

	var pgAddresses []postgresAddress
	if err := s.db.SelectContext(ctx, &pgAddresses, query, s.checkoutID); err != nil {
		return nil, nil, errors.Wrap(err, "failed to load checkout addresses")
	}

	var shipping, billing *domain.AddressRecord
	for _, pgAddress := range pgAddresses {
		record := s.toAddressRecord(&pgAddress)
		switch pgAddress.AddressType {
		case "shipping":
			shipping = record
		case "billing":
			billing = record
		}
	}

	return shipping, billing, nil
}

func (s *PostgresCheckoutStore) upsertAddress(ctx context.Context, addressType string, request *domain.AddressChangeRequest) error {
	if request == nil {
		return errors.New("address change request is required")
	}

	id := request.ID
	if id == "" {
		id = models.GenerateUUID().String()
	}

	query := `
		INSERT INTO checkout_addresses (
			id, checkout_id, address_type, first_name, last_name,
			address1, address2, city, province, postal_code,
			country_code, phone, updated_at
		) VALUES (
			:id, :checkout_id, :address_type, :first_name, :last_name,
			:address1, :address2, :city, :province, :postal_code,
			:country_code, :phone, :updated_at
		)
		ON CONFLICT (checkout_id, address_type) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			address1 = EXCLUDED.address1,
			address2 = EXCLUDED.address2,
			city = EXCLUDED.city,
			province = EXCLUDED.province,
			postal_code = EXCLUDED.postal_code,
			country_code = EXCLUDED.country_code,
			phone = EXCLUDED.phone,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":           id,
		"checkout_id":  s.checkoutID,
		"address_type": addressType,
		"first_name":   request.FirstName,
		"last_name":    request.LastName,
		"address1":     request.Address1,
		"address2":     request.Address2,
		"city":         request.City,
		"province":     request.Province,
		"postal_code":  request.PostalCode,
		"country_code": request.CountryCode,
		"phone":        request.Phone,
		"updated_at":   time.Now(),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upsert %s address", addressType)
	}

	return nil
}

func (s *PostgresCheckoutStore) toAddressRecord(pgAddress *postgresAddress) *domain.AddressRecord {
	return &domain.AddressRecord{
		ID:          pgAddress.ID,
		FirstName:   pgAddress.FirstName,
		LastName:    pgAddress.LastName,
		Address1:    pgAddress.Address1,
		Address2:    pgAddress.Address2,
		City:        pgAddress.City,
		Province:    pgAddress.Province,
		PostalCode:  pgAddress.PostalCode,
		CountryCode: pgAddress.CountryCode,
		Phone:       pgAddress.Phone,
	}
}
