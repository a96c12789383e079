package logging

import (
	"github.com/pion/logging"
)

const scopePrefix = "rgbconv/"

var loggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a leveled logger for scope. Levels are configured through
// the PION_LOG_* environment variables read by pion/logging.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scopePrefix + scope)
}
