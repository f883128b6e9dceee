package config

import "os"

// Provider looks up a single configuration value by key.
type Provider interface {
	Get(key string) (string, bool)
}

// EnvProvider reads values from the process environment at call time.
type EnvProvider struct{}

func (EnvProvider) Get(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapProvider serves values from a fixed map.
type MapProvider map[string]string

func (m MapProvider) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
