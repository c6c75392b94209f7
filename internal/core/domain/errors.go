package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrQualityRejected   = errors.New("image quality below threshold")
	ErrTypeUndetermined  = errors.New("document type could not be determined")
	ErrTemporary         = errors.New("temporary failure")
	ErrRulesetInvalid    = errors.New("invalid ruleset configuration")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
