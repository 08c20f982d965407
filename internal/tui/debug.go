package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

// DebugLogger logs TUI state, keystrokes, and events to a rotating JSON file.
type DebugLogger struct {
	mu     sync.Mutex
	logger *zap.Logger
	sink   *lumberjack.Logger
	seq    int
}

// Global debug logger instance
var debugLog = &DebugLogger{logger: zap.NewNop()}

// InitDebugLogger opens path as the debug log when enabled. Disabled mode
// installs a no-op logger so the Log* helpers stay cheap.
func InitDebugLogger(enabled bool, path, level string) error {
	if !enabled {
		debugLog = &DebugLogger{logger: zap.NewNop()}
		return nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.MessageKey = "event"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(sink),
		lvl,
	)

	debugLog = &DebugLogger{
		logger: zap.New(core),
		sink:   sink,
	}
	debugLog.log("DEBUG_START", zap.String("log_file", path))

	return nil
}

// CloseDebugLogger flushes and closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil || debugLog.sink == nil {
		return
	}
	debugLog.log("DEBUG_END")
	_ = debugLog.logger.Sync()
	_ = debugLog.sink.Close()
	debugLog = &DebugLogger{logger: zap.NewNop()}
}

// Logger returns the zap logger behind the debug log, for handing to the
// classifier.
func Logger() *zap.Logger {
	if debugLog == nil {
		return zap.NewNop()
	}
	return debugLog.logger
}

// log writes a UI event at info level. Classifier transitions go out at debug
// level through Logger, so "info" keeps the events and drops the traces.
func (d *DebugLogger) log(event string, fields ...zap.Field) {
	if d == nil || d.sink == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.logger.Info(event, append([]zap.Field{zap.Int("seq", d.seq)}, fields...)...)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.log("KEY_PRESS", zap.String("key", msg.String()))
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if from == to {
		return
	}
	debugLog.log("MODE_CHANGE",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("reason", reason))
}

// LogCursorMove logs cursor movement.
func LogCursorMove(d dateutil.Date, reason string) {
	debugLog.log("CURSOR_MOVE", zap.Stringer("date", d), zap.String("reason", reason))
}

// LogYearChange logs switching the displayed year.
func LogYearChange(from, to int) {
	debugLog.log("YEAR_CHANGE", zap.Int("from", from), zap.Int("to", to))
}

// LogApplied logs a successful apply.
func LogApplied(r rangepick.ClassifiedRange) {
	debugLog.log("APPLIED",
		zap.Stringer("start", r.Start),
		zap.Stringer("end", r.End),
		zap.Int("weekdays", len(r.Weekdays)),
		zap.Int("weekend_days", len(r.WeekendDays)))
}

// LogError logs an error.
func LogError(context string, err error) {
	if err == nil {
		return
	}
	d := debugLog
	if d == nil || d.sink == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	d.logger.Error("ERROR", zap.Int("seq", d.seq), zap.String("context", context), zap.Error(err))
}
