package sentinel

import "errors"

// Sentinel errors for facts about stored entities. The registry wraps these
// inside domain errors so callers can test with errors.Is without depending on
// message text.
//
//   - ErrAlreadyUsed: a unique value (a person's name) is already taken
//   - ErrInvalidState: a stored entity no longer satisfies its invariants
var (
	ErrAlreadyUsed  = errors.New("already used")
	ErrInvalidState = errors.New("invalid state")
)
