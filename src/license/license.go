package license

import (
	"errors"
	"time"
)

// TokenLength is the number of characters kept from the generated UUID.
const TokenLength = 6

// Validity is how long an issued license stays valid.
const Validity = 3 * 24 * time.Hour

// Grant is a freshly issued license. Grants are never stored.
type Grant struct {
	AssignedLicense string `json:"assignedLicense"`
	Expires         int64  `json:"expires"` // milliseconds since epoch
}

// Reasons a grant was refused. They are only reported in logs and metrics; callers
// always see the same response.
var (
	ErrMissingPSK        = errors.New("PSK header missing")
	ErrConfigUnavailable = errors.New("PSK allow-list not configured")
	ErrConfigMalformed   = errors.New("PSK allow-list is not a JSON array of strings")
	ErrUnauthorized      = errors.New("PSK not in allow-list")
)

// Reason returns a short label for a refusal error, for use as a metric label.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingPSK):
		return "missing_psk"
	case errors.Is(err, ErrConfigUnavailable):
		return "config_unavailable"
	case errors.Is(err, ErrConfigMalformed):
		return "config_malformed"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	default:
		return "unknown"
	}
}
