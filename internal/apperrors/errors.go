package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRosterLoad indicates that the roster source could not be read or parsed.
// The system continues with an empty roster when this error is reported.
var ErrRosterLoad = errors.New("roster load failure")
