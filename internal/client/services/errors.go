package services

import "errors"

// Validation errors are raised client-side before any request is issued.
var (
	ErrAllFieldsRequired   = errors.New("all fields are required")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrPasswordTooWeak     = errors.New("password must be strong to continue")
	ErrSamePassword        = errors.New("new password cannot be the same as current password")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrNothingToUpdate     = errors.New("nothing to update")
)

// Admin workflow errors.
var (
	ErrSelfAction      = errors.New("you cannot activate/deactivate yourself")
	ErrActionPending   = errors.New("another action is awaiting confirmation")
	ErrNoPendingAction = errors.New("no action awaiting confirmation")
	ErrAlreadyActive   = errors.New("user is already active")
	ErrAlreadyInactive = errors.New("user is already inactive")
	ErrUserNotListed   = errors.New("user is not on the current page")
)
