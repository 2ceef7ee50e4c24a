package models

import (
	id "peoplereg/pkg/domain"
	dErrors "peoplereg/pkg/domain-errors"
	"peoplereg/pkg/platform/strings"
	"peoplereg/pkg/result"
)

// Try-pattern failure messages for address creation.
const (
	msgStreetRequired = "Street is required"
	msgCityRequired   = "City is required"
)

// Address is a street/city pair with an optional complement line.
//
// Invariants:
//   - Street and City are never nil (setters reject nil)
//   - ID is assigned once at construction
//
// Validity (non-blank street and city) is derived by IsValid rather than
// enforced on every mutation, so an Address built with NewAddress may be
// invalid. TryCreateAddress only ever returns valid addresses.
type Address struct {
	id         id.AddressID
	street     string
	city       string
	complement *string
}

// NewAddress builds an Address from possibly-absent input. It fails fast with
// CodeArgumentMissing when street or city is nil; whitespace is accepted here
// and only reported by IsValid.
func NewAddress(street, city, complement *string) (*Address, error) {
	if street == nil {
		return nil, dErrors.New(dErrors.CodeArgumentMissing, "street is required")
	}
	if city == nil {
		return nil, dErrors.New(dErrors.CodeArgumentMissing, "city is required")
	}
	return &Address{
		id:         id.NewAddressID(),
		street:     *street,
		city:       *city,
		complement: strings.Clone(complement),
	}, nil
}

// TryCreateAddress validates untrusted input and builds an Address. The street
// is checked before the city; failures leave nothing behind.
func TryCreateAddress(street, city *string) result.Result[*Address] {
	if strings.IsBlank(street) {
		return result.Fail[*Address](dErrors.New(dErrors.CodeValidation, msgStreetRequired))
	}
	if strings.IsBlank(city) {
		return result.Fail[*Address](dErrors.New(dErrors.CodeValidation, msgCityRequired))
	}
	addr, err := NewAddress(street, city, nil)
	if err != nil {
		return result.Fail[*Address](err)
	}
	return result.Ok(addr)
}

// IsValid reports whether street and city both have non-whitespace content.
func (a *Address) IsValid() bool {
	return !strings.IsBlank(&a.street) && !strings.IsBlank(&a.city)
}

func (a *Address) ID() id.AddressID { return a.id }
func (a *Address) Street() string   { return a.street }
func (a *Address) City() string     { return a.city }

// Complement returns a copy of the complement line, or nil if unset.
func (a *Address) Complement() *string { return strings.Clone(a.complement) }

// SetStreet replaces the street. Nil is a nullability contract violation and
// leaves the address unchanged.
func (a *Address) SetStreet(street *string) error {
	if street == nil {
		return dErrors.New(dErrors.CodeNullabilityContract, "street cannot be nil")
	}
	a.street = *street
	return nil
}

// SetCity replaces the city. Nil is a nullability contract violation.
func (a *Address) SetCity(city *string) error {
	if city == nil {
		return dErrors.New(dErrors.CodeNullabilityContract, "city cannot be nil")
	}
	a.city = *city
	return nil
}

func (a *Address) SetComplement(complement *string) {
	a.complement = strings.Clone(complement)
}
