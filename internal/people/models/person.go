package models

import (
	id "peoplereg/pkg/domain"
	dErrors "peoplereg/pkg/domain-errors"
	"peoplereg/pkg/platform/strings"
	"peoplereg/pkg/result"
)

const (
	msgAddressNil     = "Address cannot be null"
	msgAddressInvalid = "Address is not valid"
)

// Person is the aggregate root for an individual and the addresses it owns.
//
// Invariants:
//   - Name is never nil (construction and SetName both reject nil)
//   - Age is non-negative; it is checked once, at construction
//   - Addresses keep insertion order; duplicates are not removed
//   - Only valid addresses are ever added
//
// A blank name is accepted at construction; ValidateState reports it.
type Person struct {
	id        id.PersonID
	name      string
	age       int
	email     *string
	addresses []*Address
}

// NewPerson builds a Person. A nil name fails with CodeArgumentMissing and a
// negative age with CodeInvalidEntityState.
func NewPerson(name *string, age int, email *string) (*Person, error) {
	if name == nil {
		return nil, dErrors.New(dErrors.CodeArgumentMissing, "name is required")
	}
	if age < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidEntityState, "age cannot be negative")
	}
	return &Person{
		id:        id.NewPersonID(),
		name:      *name,
		age:       age,
		email:     strings.Clone(email),
		addresses: []*Address{},
	}, nil
}

func (p *Person) ID() id.PersonID { return p.id }
func (p *Person) Name() string    { return p.name }
func (p *Person) Age() int        { return p.age }

// Email returns a copy of the raw email, or nil if none was given.
func (p *Person) Email() *string { return strings.Clone(p.email) }

func (p *Person) SetEmail(email *string) {
	p.email = strings.Clone(email)
}

// SetName replaces the name. Nil is a nullability contract violation, which is
// reported with a different code than the nil name rejected by NewPerson.
func (p *Person) SetName(name *string) error {
	if name == nil {
		return dErrors.New(dErrors.CodeNullabilityContract, "name cannot be nil")
	}
	p.name = *name
	return nil
}

// Addresses returns the owned addresses in insertion order. The slice is a
// copy; appending to it does not change the person.
func (p *Person) Addresses() []*Address {
	out := make([]*Address, len(p.addresses))
	copy(out, p.addresses)
	return out
}

// TryAddAddress appends a valid address. On failure the collection is left
// untouched and the result carries the reason.
func (p *Person) TryAddAddress(address *Address) result.Result[*Address] {
	if address == nil {
		return result.Fail[*Address](dErrors.New(dErrors.CodeValidation, msgAddressNil))
	}
	if !address.IsValid() {
		return result.Fail[*Address](dErrors.New(dErrors.CodeValidation, msgAddressInvalid))
	}
	p.addresses = append(p.addresses, address)
	return result.Ok(address)
}

// FormattedEmail returns the email lower-cased, or defaultValue when the email
// is nil or empty. A non-nil defaultValue guarantees a non-nil result.
func (p *Person) FormattedEmail(defaultValue *string) *string {
	if strings.IsEmpty(p.email) {
		return defaultValue
	}
	return strings.Lower(p.email)
}

// ValidateState checks invariants that construction does not enforce.
func (p *Person) ValidateState() error {
	if strings.IsBlank(&p.name) {
		return dErrors.New(dErrors.CodeInvalidEntityState, "person must have a valid name")
	}
	return nil
}
