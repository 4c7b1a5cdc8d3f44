package config

import (
	"os"
	"strconv"
)

// getEnvStr retrieves a string from an environment variable or returns a default value.
func getEnvStr(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

// getEnvInt64 retrieves an int64 from an environment variable or returns a default value.
// It returns the default when the variable is unset or not a valid int64.
func getEnvInt64(key string, def int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return def
	}
	return i
}

// getEnvInt32 retrieves an int32 from an environment variable or returns a default value.
// It returns the default when the variable is unset or not a valid int32.
func getEnvInt32(key string, def int32) int32 {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	i, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return def
	}
	return int32(i)
}

// containsInt checks whether an int64 slice contains a specific value.
func containsInt(list []int64, v int64) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
