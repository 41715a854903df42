package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PIN length bounds accepted before any comparison happens.
const (
	MinPinLength = 4
	MaxPinLength = 20
)

var (
	// ErrNotConfigured means no admin secret is set server-side.
	// The validator fails closed in that case.
	ErrNotConfigured = errors.New("admin PIN is not configured")
	// ErrBadFormat means the submitted value is not a 4-20 character string.
	ErrBadFormat = errors.New("PIN must be between 4 and 20 characters")
)

// PinValidator checks a submitted PIN against the configured admin secret.
// It reports only validity, never why a well-formed PIN was rejected.
type PinValidator struct {
	secret     string
	secretHash string
}

// NewPinValidator creates a PinValidator. secretHash, when non-empty, is a
// bcrypt hash of the PIN and takes precedence over the plain secret.
func NewPinValidator(secret, secretHash string) *PinValidator {
	return &PinValidator{
		secret:     secret,
		secretHash: secretHash,
	}
}

// Configured reports whether any admin secret is set.
func (v *PinValidator) Configured() bool {
	return v.secret != "" || v.secretHash != ""
}

// Validate checks the submitted PIN. It returns ErrNotConfigured when no
// secret is set and ErrBadFormat when the submitted value is out of bounds;
// otherwise the boolean is the comparison result.
//
// The plain comparison uses subtle.ConstantTimeCompare so the work done is
// independent of where the first mismatching byte sits.
func (v *PinValidator) Validate(pin string) (bool, error) {
	if !v.Configured() {
		return false, ErrNotConfigured
	}
	if len(pin) < MinPinLength || len(pin) > MaxPinLength {
		return false, ErrBadFormat
	}

	if v.secretHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(v.secretHash), []byte(pin))
		return err == nil, nil
	}

	return subtle.ConstantTimeCompare([]byte(pin), []byte(v.secret)) == 1, nil
}
