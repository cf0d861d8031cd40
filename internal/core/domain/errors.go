package domain

import "errors"

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrForbidden              = errors.New("access forbidden")
	ErrClassificationNotFound = errors.New("classification not found")
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrReviewNotFound         = errors.New("review not found")

	// Token verification outcomes. Callers redirect to login on either,
	// but metrics and logs distinguish them.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)
