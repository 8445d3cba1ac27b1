package availability

import (
	"errors"
	"fmt"
)

// ConfigurationError reports malformed or missing availability
// settings. It is fatal: no computation is attempted.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configurationError: %s", e.Reason)
}

// NewConfigurationError wraps a settings validation failure.
func NewConfigurationError(err error) error {
	return &ConfigurationError{Reason: err.Error()}
}

// UpstreamFetchError reports a failure resolving schedules, bookings
// or case data from a collaborator. The engine does not retry; the
// caller decides policy and renders the message.
type UpstreamFetchError struct {
	Source string
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Source, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}

// OwnershipError reports a request for an examination that belongs to
// a different claimant.
type OwnershipError struct {
	ExamID     string
	ClaimantID string
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("examination %s does not belong to claimant %s", e.ExamID, e.ClaimantID)
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsUpstreamFetchError reports whether err is an UpstreamFetchError.
func IsUpstreamFetchError(err error) bool {
	var ue *UpstreamFetchError
	return errors.As(err, &ue)
}

// IsOwnershipError reports whether err is an OwnershipError.
func IsOwnershipError(err error) bool {
	var oe *OwnershipError
	return errors.As(err, &oe)
}
