package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger emits one structured JSON record per pipeline event. It wraps a
// zap logger configured to the pipeline's log schema: ts, level, message,
// plus the agent/stage/event/status fields and free-form extras.
type Logger struct {
	z *zap.Logger
}

// New creates a logger writing to logFile, or to stdout when logFile is
// empty. The caller owns the handle and passes it to each component at
// construction time.
func New(logFile string) (*Logger, error) {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		MessageKey:    "message",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    utcTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}

	sink := zapcore.Lock(os.Stdout)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		sink = zapcore.Lock(f)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, zap.InfoLevel)
	return &Logger{z: zap.New(core)}, nil
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Event records an info-level event with status "ok".
func (l *Logger) Event(agent, stage, event string, fields ...zap.Field) {
	l.log(zapcore.InfoLevel, agent, stage, event, "ok", fields...)
}

// Retrying records a warn-level event with status "retrying".
func (l *Logger) Retrying(agent, stage, event string, fields ...zap.Field) {
	l.log(zapcore.WarnLevel, agent, stage, event, "retrying", fields...)
}

// ErrorEvent records an error-level event with status "error".
func (l *Logger) ErrorEvent(agent, stage, event string, fields ...zap.Field) {
	l.log(zapcore.ErrorLevel, agent, stage, event, "error", fields...)
}

func (l *Logger) log(level zapcore.Level, agent, stage, event, status string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("agent", agent),
		zap.String("stage", stage),
		zap.String("event", event),
		zap.String("status", status),
	}
	if ce := l.z.Check(level, event); ce != nil {
		ce.Write(append(base, fields...)...)
	}
}

// Sync flushes buffered records to the sink.
func (l *Logger) Sync() {
	_ = l.z.Sync()
}

func utcTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z"))
}
