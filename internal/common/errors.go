// Package common contains sentinel errors shared by all marketplace
// components. Components wrap them with fmt.Errorf("%w: ...") to attach
// the violated rule; callers match with errors.Is.
package common

import "errors"

var (

	// lookup errors
	ErrNotFound = errors.New("not found")

	// registration / profile errors
	ErrValidation     = errors.New("validation error")
	ErrDuplicateEmail = errors.New("account with this email already exists")

	// authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")

	// permission errors (role mismatch or anonymous actor)
	ErrForbidden = errors.New("forbidden")

	// cart errors
	ErrEmptyCart = errors.New("cart is empty")
)
