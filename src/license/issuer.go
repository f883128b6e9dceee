package license

import (
	"fmt"
	"time"

	"masqr-license/src/config"

	"github.com/google/uuid"
)

// Issuer hands out grants to holders of an allowed PSK.
type Issuer struct {
	provider config.Provider
	now      func() time.Time
	newID    func() uuid.UUID
}

// Option customizes an Issuer.
type Option func(*Issuer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// WithIDSource replaces uuid.New.
func WithIDSource(newID func() uuid.UUID) Option {
	return func(i *Issuer) { i.newID = newID }
}

// NewIssuer returns an Issuer that reads the allow-list from p on every call.
func NewIssuer(p config.Provider, opts ...Option) *Issuer {
	i := &Issuer{
		provider: p,
		now:      time.Now,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue checks psk against the current allow-list and returns a new grant on a match.
func (i *Issuer) Issue(psk string) (*Grant, error) {
	allowed, err := LoadAllowList(i.provider)
	if err != nil {
		return nil, err
	}

	if !allowed.Contains(psk) {
		return nil, ErrUnauthorized
	}

	return i.grant(), nil
}

// Check loads the allow-list without issuing anything and returns its size.
func (i *Issuer) Check() (int, error) {
	allowed, err := LoadAllowList(i.provider)
	if err != nil {
		return 0, fmt.Errorf("allow-list check failed: %w", err)
	}
	return len(allowed), nil
}

// grant must only be called after a successful membership check.
func (i *Issuer) grant() *Grant {
	id := i.newID().String()
	return &Grant{
		AssignedLicense: id[:TokenLength],
		Expires:         i.now().Add(Validity).UnixMilli(),
	}
}
