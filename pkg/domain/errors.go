package domain

import (
	"errors"
	"fmt"
)

// ErrContentIDMissing is returned by unpublish when no content id is given.
var ErrContentIDMissing = errors.New("Content id has not been supplied")

// ErrDestinationMissing is returned by path reservation when either the
// base path or the publishing app is missing. The message does not say which.
var ErrDestinationMissing = errors.New("The destination or path isn't supplied")

// ErrContentNotCreated is matched by CreationError.
var ErrContentNotCreated = errors.New("This content item has not been created")

// ValidationError names the first required field found missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("The %s isn't supplied", e.Field)
}

// CreationError is returned when the draft call came back with a failure
// status. The publish call is never issued after it.
type CreationError struct {
	ContentID  string
	StatusCode int
}

func (e *CreationError) Error() string {
	return ErrContentNotCreated.Error()
}

// Is makes errors.Is(err, ErrContentNotCreated) hold.
func (e *CreationError) Is(target error) bool {
	return target == ErrContentNotCreated
}
