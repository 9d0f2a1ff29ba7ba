package resources

import (
	"io"
	"os"
	"path/filepath"

	"github.com/activecm/droplog/config"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// initLogger creates the logger for logging to stderr. When file logging is
// enabled every level is also written to its own rotating file.
func initLogger(logConfig *config.LogStaticCfg, level config.LogLevel, runID string) (*log.Logger, []io.Closer, error) {
	var logs = &log.Logger{}

	logs.Formatter = new(log.TextFormatter)

	logs.Out = os.Stderr
	logs.Hooks = make(log.LevelHooks)
	logs.Hooks.Add(runIDHook(runID))

	switch level {
	case config.LogLevelDebug:
		logs.Level = log.DebugLevel
	case config.LogLevelInfo:
		logs.Level = log.InfoLevel
	case config.LogLevelWarn:
		logs.Level = log.WarnLevel
	case config.LogLevelError:
		logs.Level = log.ErrorLevel
	}

	if !logConfig.LogToFile {
		return logs, nil, nil
	}

	closers, err := addFileLogger(logs, logConfig)
	if err != nil {
		return nil, nil, err
	}
	return logs, closers, nil
}

func addFileLogger(logger *log.Logger, logConfig *config.LogStaticCfg) ([]io.Closer, error) {
	if err := os.MkdirAll(logConfig.LogPath, 0755); err != nil {
		return nil, err
	}

	levels := map[log.Level]string{
		log.DebugLevel: "debug.log",
		log.InfoLevel:  "info.log",
		log.WarnLevel:  "warn.log",
		log.ErrorLevel: "error.log",
		log.FatalLevel: "fatal.log",
		log.PanicLevel: "panic.log",
	}

	writers := make(lfshook.WriterMap, len(levels))
	closers := make([]io.Closer, 0, len(levels))
	for level, name := range levels {
		w := &lumberjack.Logger{
			Filename:   filepath.Join(logConfig.LogPath, name),
			MaxSize:    logConfig.MaxSizeMB,
			MaxBackups: logConfig.MaxBackups,
			MaxAge:     logConfig.MaxAgeDays,
		}
		writers[level] = w
		closers = append(closers, w)
	}

	logger.Hooks.Add(lfshook.NewHook(writers, &log.JSONFormatter{}))
	return closers, nil
}

// runIDHook tags every entry with the id of the current run so the entries
// of one run can be picked out of the shared log files
type runIDHook string

func (h runIDHook) Levels() []log.Level {
	return log.AllLevels
}

func (h runIDHook) Fire(entry *log.Entry) error {
	entry.Data["run_id"] = string(h)
	return nil
}
