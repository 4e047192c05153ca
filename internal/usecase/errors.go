package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrProviderTransport = errors.New("provider transport failure")
	ErrProviderStatus    = errors.New("provider returned non-success status")
	ErrProviderPayload   = errors.New("provider payload malformed")
	ErrInvalidRecord     = errors.New("invalid fixture record")
)

// ProviderTransportError means no HTTP status was received at all.
type ProviderTransportError struct {
	Timeout bool
	Reason  string
}

func (e *ProviderTransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: timeout: %s", ErrProviderTransport, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrProviderTransport, e.Reason)
}

func (e *ProviderTransportError) Is(target error) bool {
	return target == ErrProviderTransport
}

// ProviderStatusError carries the status of a non-200 provider response.
type ProviderStatusError struct {
	StatusCode int
	Body       string
}

func (e *ProviderStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status=%d", ErrProviderStatus, e.StatusCode)
	}
	return fmt.Sprintf("%s: status=%d body=%s", ErrProviderStatus, e.StatusCode, e.Body)
}

func (e *ProviderStatusError) Is(target error) bool {
	return target == ErrProviderStatus
}

// DescribeFailure turns a board failure into the single banner line shown to
// the user.
func DescribeFailure(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *ProviderStatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error API: %d", statusErr.StatusCode)
	}

	var transportErr *ProviderTransportError
	if errors.As(err, &transportErr) {
		if transportErr.Timeout {
			return "Error API: request timed out"
		}
		return "Error API: request failed"
	}

	switch {
	case errors.Is(err, ErrProviderTransport):
		return "Error API: request failed"
	case errors.Is(err, ErrProviderPayload):
		return "Error API: malformed response"
	case errors.Is(err, ErrInvalidInput):
		return "Error API: invalid query"
	default:
		return "Error API: unexpected failure"
	}
}
