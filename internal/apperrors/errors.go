package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateUnavailable indicates that no exchange rate could be obtained from the
// external provider: the network call failed, the response was non-success, or
// the payload did not contain the requested currency.
var ErrRateUnavailable = errors.New("rate unavailable")

// ErrPersistence indicates that a cache or store read/write failed.
var ErrPersistence = errors.New("persistence failure")

// ErrTradeLimitExceeded indicates that a client is over the trade threshold for
// the current window.
var ErrTradeLimitExceeded = errors.New("trade limit exceeded")

// ErrResolution is the catch-all for unexpected failures during rate resolution.
var ErrResolution = errors.New("rate resolution failed")
