package license

import (
	"encoding/json"
	"fmt"

	"masqr-license/src/config"
)

// AllowList is the set of PSKs permitted to request a license.
type AllowList []string

// LoadAllowList reads and parses the allow-list from p.
func LoadAllowList(p config.Provider) (AllowList, error) {
	raw, ok := p.Get(config.AllowListKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not set", ErrConfigUnavailable, config.AllowListKey)
	}

	var psks []string
	if err := json.Unmarshal([]byte(raw), &psks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
	}

	// json.Unmarshal accepts null for a slice.
	if psks == nil {
		return nil, fmt.Errorf("%w: got null", ErrConfigMalformed)
	}

	return AllowList(psks), nil
}

// Contains reports whether psk is an exact member of the list.
func (a AllowList) Contains(psk string) bool {
	for _, allowed := range a {
		if allowed == psk {
			return true
		}
	}
	return false
}
