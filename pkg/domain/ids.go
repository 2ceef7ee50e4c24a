package domain

import (
	"github.com/google/uuid"
)

// Typed identifiers keep person and address IDs from being swapped at compile
// time. Both wrap a random (v4) UUID.
type (
	PersonID  uuid.UUID
	AddressID uuid.UUID
)

func NewPersonID() PersonID   { return PersonID(uuid.New()) }
func NewAddressID() AddressID { return AddressID(uuid.New()) }

func (id PersonID) String() string { return uuid.UUID(id).String() }
func (id PersonID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id AddressID) String() string { return uuid.UUID(id).String() }
func (id AddressID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
