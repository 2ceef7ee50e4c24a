package system

import (
	"errors"
	"fmt"
	"log/slog"
	stdstrings "strings"

	"peoplereg/internal/people/metrics"
	"peoplereg/internal/people/models"
	dErrors "peoplereg/pkg/domain-errors"
	"peoplereg/pkg/platform/sentinel"
	"peoplereg/pkg/platform/strings"
	"peoplereg/pkg/result"
)

// NotFound is the name FindNameByEmailOrNotFound reports when no person matches.
const NotFound = "Not found"

const (
	msgPersonNil     = "Person cannot be null"
	msgDuplicateName = "A person with this name already exists"
)

// System is an in-memory registry of people.
//
// Invariants:
//   - No two stored people share a name (exact, case-sensitive match)
//   - People keep insertion order
//
// Uniqueness is checked when a person is added. Renaming a stored person with
// SetName is not re-checked, so duplicates can appear that way.
//
// System is not safe for concurrent use.
type System struct {
	people  []*models.Person
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *System)

func WithLogger(logger *slog.Logger) Option {
	return func(s *System) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *System) {
		s.metrics = m
	}
}

// New constructs an empty System. Without WithLogger nothing is logged.
func New(opts ...Option) *System {
	s := &System{people: []*models.Person{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TryAddPerson stores person unless it is nil or its name is already taken.
// On success the result holds a confirmation message naming the person.
func (s *System) TryAddPerson(person *models.Person) result.Result[string] {
	if person == nil {
		s.reject(metrics.ReasonNilPerson)
		return result.Fail[string](dErrors.New(dErrors.CodeValidation, msgPersonNil))
	}

	if s.findByName(person.Name()) != nil {
		s.reject(metrics.ReasonDuplicateName, "person_id", person.ID().String())
		return result.Fail[string](dErrors.Wrap(sentinel.ErrAlreadyUsed, dErrors.CodeConflict, msgDuplicateName))
	}

	s.people = append(s.people, person)
	s.log().Info("person added", "person_id", person.ID().String(), "people_stored", len(s.people))
	if s.metrics != nil {
		s.metrics.IncrementPersonAdded()
	}
	return result.Ok(fmt.Sprintf("Person %s added successfully", person.Name()))
}

// FindPersonByEmail returns the first person whose formatted email equals the
// lower-cased input, or nil. Blank input never matches.
func (s *System) FindPersonByEmail(email *string) *models.Person {
	if strings.IsBlank(email) {
		return nil
	}
	want := stdstrings.ToLower(*email)
	for _, p := range s.people {
		if got := p.FormattedEmail(nil); got != nil && *got == want {
			return p
		}
	}
	return nil
}

// FindNameByEmail returns the name of the person matching email, or
// defaultValue when there is none (including blank email).
func (s *System) FindNameByEmail(email, defaultValue *string) *string {
	if p := s.FindPersonByEmail(email); p != nil {
		return strings.Ptr(p.Name())
	}
	return defaultValue
}

// FindNameByEmailOrNotFound is FindNameByEmail with NotFound as the default.
func (s *System) FindNameByEmailOrNotFound(email *string) string {
	return *s.FindNameByEmail(email, strings.Ptr(NotFound))
}

// ValidateSystemState asserts the registry invariants that insertion cannot
// guarantee on its own. It is meant for tests and debugging and is never called
// implicitly. A nil collection is an empty registry, so the zero value passes.
//
// The returned error wraps both sentinel.ErrInvalidState and the first
// offending person's ValidateState error.
func (s *System) ValidateSystemState() error {
	for _, p := range s.people {
		if err := p.ValidateState(); err != nil {
			s.log().Warn("invalid person in registry", "person_id", p.ID().String(), "error", err)
			return dErrors.Wrap(errors.Join(sentinel.ErrInvalidState, err), dErrors.CodeInvalidEntityState, "all people must have a valid name")
		}
	}
	return nil
}

// People returns the stored people in insertion order. The slice is a copy.
func (s *System) People() []*models.Person {
	out := make([]*models.Person, len(s.people))
	copy(out, s.people)
	return out
}

func (s *System) Len() int {
	return len(s.people)
}

func (s *System) findByName(name string) *models.Person {
	for _, p := range s.people {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

var discardLogger = slog.New(slog.DiscardHandler)

func (s *System) log() *slog.Logger {
	if s.logger == nil {
		return discardLogger
	}
	return s.logger
}

func (s *System) reject(reason string, attributes ...any) {
	s.log().Debug("person rejected", append(attributes, "reason", reason)...)
	if s.metrics != nil {
		s.metrics.IncrementPersonRejected(reason)
	}
}
