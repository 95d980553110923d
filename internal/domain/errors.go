package domain

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrOracleUnavailable   = errors.New("oracle unavailable")
	ErrNoImages            = errors.New("at least one image is required")
	ErrTooManyImages       = errors.New("too many images")
)
