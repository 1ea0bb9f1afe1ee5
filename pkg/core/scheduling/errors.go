package scheduling

import (
	"errors"
	"fmt"
)

// ErrDuplicatePreference is returned by RecordPreference when the employee
// already has a preference recorded for that day. The first preference wins;
// the duplicate is not stored.
var ErrDuplicatePreference = errors.New("preference already recorded for this day")

// InvalidInputError reports a malformed preference field: an unrecognized
// day or shift label, or an empty employee name.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}
