package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrInvalidDate     = errors.New("query param 'date' must be YYYY-MM-DD")
	ErrMissingSiteDate = errors.New("query params 'site' and 'date' are required")
)
