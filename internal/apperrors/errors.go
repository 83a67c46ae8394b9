package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrLookupFailed indicates that the external sales-total lookup failed.
// Recoverable via explicit retry; never blocks editing other fields.
var ErrLookupFailed = errors.New("sales lookup failed")

// ErrSubmissionRejected indicates the backend ledger refused or failed the
// submission POST. The draft is preserved so the user can retry.
var ErrSubmissionRejected = errors.New("submission rejected")
