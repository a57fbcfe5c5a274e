package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// output is shared by every logger handed out by NewLogger, so the
// destination can be changed once config has been read.
var output = &switchableWriter{w: os.Stderr}

type switchableWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (sw *switchableWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}

func (sw *switchableWriter) Sync() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if s, ok := sw.w.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

func (sw *switchableWriter) set(w io.Writer) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.w = w
}

func NewLogger() *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(output),
		zapcore.DebugLevel,
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	// flushes buffer, if any
	defer logger.Sync()

	return logger.Sugar()
}

// SetOutput redirects all loggers to a rotating log file. When toConsole
// is set, lines are written to stderr as well. An empty filename keeps
// the stderr-only default.
func SetOutput(filename string, toConsole bool) {
	if filename == "" {
		output.set(os.Stderr)
		return
	}

	logFile := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	if toConsole {
		output.set(io.MultiWriter(os.Stderr, logFile))
		return
	}
	output.set(logFile)
}
