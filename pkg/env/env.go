package env

import (
	"fmt"
	"os"
	"strings"
	"time"

	pkgstrings "github.com/placemarks-app/placemarks/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func ParseBool(key string) (bool, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return false, notFoundError(key, "boolean")
	}
	b, err := pkgstrings.ParseTypedValue[bool](str)
	if err != nil {
		return false, invalidValueError(key, "boolean")
	}
	return b, nil
}

func ParseBoolDefault(key string, defaultValue bool) bool {
	b, err := ParseBool(key)
	if err != nil {
		return defaultValue
	}
	return b
}

func ParseInt(key string) (int, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return 0, notFoundError(key, "integer")
	}
	i, err := pkgstrings.ParseTypedValue[int](str)
	if err != nil {
		return 0, invalidValueError(key, "integer")
	}
	return i, nil
}

func ParseIntDefault(key string, defaultValue int) int {
	i, err := ParseInt(key)
	if err != nil {
		return defaultValue
	}
	return i
}

func ParseString(key string) (string, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return "", notFoundError(key, "string")
	}
	return str, nil
}

func ParseStringDefault(key, defaultValue string) string {
	str, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(str) == "" {
		return defaultValue
	}
	return str
}

func ParseDuration(key string) (time.Duration, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return 0, notFoundError(key, "duration")
	}
	d, err := pkgstrings.ParseTypedValue[time.Duration](str)
	if err != nil {
		return 0, invalidValueError(key, "duration")
	}
	return d, nil
}

func ParseDurationDefault(key string, defaultValue time.Duration) time.Duration {
	d, err := ParseDuration(key)
	if err != nil {
		return defaultValue
	}
	return d
}

func notFoundError(key, varType string) error {
	return fmt.Errorf("env %s with type %s not found", key, varType)
}

func invalidValueError(key, varType string) error {
	return fmt.Errorf("env %s with type %s has invalid value", key, varType)
}
