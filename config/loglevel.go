package config

import "fmt"

//LogLevel is the verbosity configured with LogConfig.LogLevel
type LogLevel int

// Levels accepted in LogConfig.LogLevel
const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

//ParseLogLevel validates a configured level
func ParseLogLevel(level int) (LogLevel, error) {
	if level < int(LogLevelError) || level > int(LogLevelDebug) {
		return 0, fmt.Errorf("invalid LogConfig.LogLevel %d, expected 0-3", level)
	}
	return LogLevel(level), nil
}
