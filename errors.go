package safecharge

import (
	"errors"
	"fmt"

	"github.com/safecharge/safecharge-go/cashier"
	"github.com/safecharge/safecharge-go/consts"
)

// ValidationError indicates that a request is missing required fields or contains invalid data.
//
// It is produced before any HTTP call is made.
type ValidationError = cashier.ValidationError

type FieldError = cashier.FieldError

// IsValidationError checks whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// APIError represents a non-2xx response from the Cashier API.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if e == nil {
		return "safecharge api error"
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("safecharge api error: status %d", e.StatusCode)
	}
	b := e.Body
	if len(b) > 1024 {
		b = b[:1024]
	}
	return fmt.Sprintf("safecharge api error: status %d: %s", e.StatusCode, string(b))
}

// GatewayError represents a logical ERROR status returned in an otherwise
// successful HTTP response. The Cashier API reports failures in the body,
// not with HTTP status codes.
type GatewayError struct {
	ErrCode int
	Reason  string
}

func (e *GatewayError) Error() string {
	if e == nil {
		return "safecharge gateway error"
	}
	if e.Reason == "" {
		return fmt.Sprintf("safecharge gateway error: code %d", e.ErrCode)
	}
	return fmt.Sprintf("safecharge gateway error: code %d: %s", e.ErrCode, e.Reason)
}

// IsGatewayError checks whether err is a *GatewayError.
func IsGatewayError(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge)
}

func gatewayError(resp *cashier.Response) error {
	if resp == nil || resp.Status != consts.ResponseStatusError {
		return nil
	}
	return &GatewayError{ErrCode: resp.ErrCode, Reason: resp.Reason}
}
