package domain

import "strings"

// WalletAddress is a normalized shipping/billing address as produced by the
// wallet provider
type WalletAddress struct {
	Name               string `json:"name"`
	Address1           string `json:"address1"`
	Address2           string `json:"address2"`
	Locality           string `json:"locality"`
	AdministrativeArea string `json:"administrative_area"`
	PostalCode         string `json:"postal_code"`
	CountryCode        string `json:"country_code"`
	Phone              string `json:"phone"`
}

// AddressChangeRequest is the checkout store's address-update request shape.
// An empty ID means create; a present ID updates the existing record.
type AddressChangeRequest struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone"`
}

// SplitName splits the wallet-provided full name into first and last name.
// Everything after the first word belongs to the last name.
func (a *WalletAddress) SplitName() (string, string) {
	parts := strings.Fields(a.Name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// MapToShippingRequest maps a wallet address to the checkout's
// shipping-update request
func MapToShippingRequest(address *WalletAddress) *AddressChangeRequest {
	if address == nil {
		return nil
	}
	return mapAddress(address, "")
}

// MapToBillingRequest maps a wallet address to an update-or-create billing
// request: the existing remote id is included when present, omitted otherwise
func MapToBillingRequest(address *WalletAddress, existingID string) *AddressChangeRequest {
	if address == nil {
		return nil
	}
	return mapAddress(address, existingID)
}

func mapAddress(address *WalletAddress, id string) *AddressChangeRequest {
	firstName, lastName := address.SplitName()
	return &AddressChangeRequest{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		Address1:    address.Address1,
		Address2:    address.Address2,
		City:        address.Locality,
		Province:    address.AdministrativeArea,
		PostalCode:  address.PostalCode,
		CountryCode: address.CountryCode,
		Phone:       address.Phone,
	}
}
