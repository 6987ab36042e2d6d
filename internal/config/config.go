package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetFloat is Get for numeric settings. Unparseable values are logged and
// the fallback is used.
func GetFloat(key string, fallback float64) float64 {
	v := Get(key, "")
	if v == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid number key=%s value=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}
