package cli

import (
	"errors"
	"fmt"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

func NotFoundError(message string) error {
	return fmt.Errorf("ERROR: RECORD_NOT_FOUND: %s", message)
}

func InvalidEventError(message string) error {
	return fmt.Errorf("ERROR: INVALID_EVENT: %s", message)
}

func InternalError(err error) error {
	return fmt.Errorf("ERROR: unexpected error: %w", err)
}

func mapError(err error) error {
	var domainErr domain.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrorCodeNotFound:
			return NotFoundError(domainErr.Message)
		case domain.ErrorCodeInvalidEvent:
			return InvalidEventError(domainErr.Message)
		default:
			return InternalError(err)
		}
	}
	return InternalError(err)
}
