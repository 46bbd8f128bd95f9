package usecase

import "strings"

// Environment variables captured by a Dashboard
const (
	EnvActive          = "ACTIVE"
	EnvSiganiosEnabled = "SIGANIOS_ENABLED"
	EnvAlertsEnabled   = "ALERTS_ENABLED"
)

// EnvLookup returns the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it.
type EnvLookup func(key string) (string, bool)

// ParseEnvFlag reports whether value is truthy: "true" or "1", ignoring case.
// Every other value, including "yes" and "on", is false.
func ParseEnvFlag(value string) bool {
	return strings.EqualFold(value, "true") || value == "1"
}

func envFlag(lookup EnvLookup, key string) bool {
	v, ok := lookup(key)
	if !ok {
		return false
	}
	return ParseEnvFlag(v)
}
