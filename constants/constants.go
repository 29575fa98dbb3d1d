package constants

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

const AppName = "chordwatch"

// GetHTTPAddr is empty unless HTTP_ADDR is set, which keeps the status
// server off.
func GetHTTPAddr() string {
	return os.Getenv("HTTP_ADDR")
}

const DefaultDebounce = 15 * time.Millisecond

func GetDebounce() time.Duration {
	val := os.Getenv("DEBOUNCE")
	if val == "" {
		return DefaultDebounce
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Warnf("ignoring DEBOUNCE=%q: %v", val, err)
		return DefaultDebounce
	}
	return d
}

func GetLogLevel() log.Level {
	val := os.Getenv("LOG_LEVEL")
	if val == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(val)
	if err != nil {
		log.Warnf("ignoring LOG_LEVEL=%q: %v", val, err)
		return log.InfoLevel
	}
	return level
}

func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}
