package usecase

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrPostingUnreachable     = errors.New("posting unreachable")
)
