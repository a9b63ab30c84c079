package model

import "strconv"

// Keys of the workspace config.
const (
	ConfigThreshold    = "threshold"
	ConfigMaxFunctions = "max-functions"
)

const (
	DefaultThreshold    = 15
	DefaultMaxFunctions = 20
)

// ConfigInt returns the value of a numeric config, or def when it is not set or
// not a number.
func ConfigInt(config map[string]string, key string, def int) int {
	v, ok := config[key]
	if !ok {
		return def
	}

	r, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return r
}

// IsKnownConfig says if key is one of the numeric configs above.
func IsKnownConfig(key string) bool {
	switch key {
	case ConfigThreshold, ConfigMaxFunctions:
		return true
	default:
		return false
	}
}
