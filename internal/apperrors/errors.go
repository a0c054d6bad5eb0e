package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller lacks permission for the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientFunds indicates an allocation exceeding the funds still
// available on the project's budget.
var ErrInsufficientFunds = errors.New("insufficient available funds")

// ErrAmountMismatch indicates a final invoice total that does not equal the
// amount of its billing request.
var ErrAmountMismatch = errors.New("invoice total does not match request amount")

// ErrProjectMismatch indicates a payment whose project differs from the
// project of the billing request it pays.
var ErrProjectMismatch = errors.New("payment project does not match request project")
