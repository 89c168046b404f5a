package calendar

import "fmt"

// ValidationError rejects a bad event draft or patch; it never crosses
// a rendering boundary, the caller shows the message inline.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a mutation referencing an unknown event id.
type NotFoundError struct {
	EventID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("event not found | id=%s", e.EventID)
}
