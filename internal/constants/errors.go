package constants

import "errors"

// Configuration errors.
var (
	ErrMissingWebhookURL   = errors.New("webhook url is required")
	ErrMissingWebhookToken = errors.New("webhook token is required")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidID           = errors.New("invalid id")
	ErrEmptyMessage        = errors.New("message is empty")
)
