package lib

import "os"

// LookupEnvFunc has the signature of os.LookupEnv.
// Resolvers take it as parameter, so tests never touch the process environment.
type LookupEnvFunc func(key string) (string, bool)

// GetEnvDefault returns value of env key or defaultValue.
// An empty value is treated the same as an unset one.
func GetEnvDefault(key, defaultValue string) string {
	return GetEnvDefaultFunc(os.LookupEnv, key, defaultValue)
}

// GetEnvDefaultFunc is GetEnvDefault over given lookup.
// The nil lookup means no environment at all.
func GetEnvDefaultFunc(lookup LookupEnvFunc, key, defaultValue string) string {
	if lookup == nil {
		return defaultValue
	}
	val, ok := lookup(key)
	if !ok || val == "" {
		return defaultValue
	}
	return val
}

// MapEnv returns lookup over fixed map
func MapEnv(env map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}
