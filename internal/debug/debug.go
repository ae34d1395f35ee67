package debug

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable that enables logging without an
// explicit Init call.
const EnvVar = "UI_DEBUG"

// Config controls where debug output goes.
type Config struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

var (
	mu     sync.Mutex
	logger *zap.Logger
	sink   *lumberjack.Logger
	envSet bool
)

// Init installs a logger writing to cfg.File. An empty file disables logging.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(cfg)
}

func initLocked(cfg Config) error {
	closeLocked()
	if cfg.File == "" {
		logger = zap.NewNop()
		return nil
	}

	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return fmt.Errorf("invalid debug level %q: %w", cfg.Level, err)
		}
	}

	sink = &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(sink), level)
	logger = zap.New(core).Named("ui")
	return nil
}

// Close flushes and closes the current sink.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if logger != nil {
		_ = logger.Sync()
	}
	if sink != nil {
		err = sink.Close()
		sink = nil
	}
	logger = nil
	return err
}

// L returns the active logger, initialising from UI_DEBUG on first use.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return loggerLocked()
}

func loggerLocked() *zap.Logger {
	if logger == nil {
		if !envSet {
			envSet = true
			if path := os.Getenv(EnvVar); path != "" {
				if err := initLocked(Config{File: path}); err == nil {
					return logger
				}
			}
		}
		logger = zap.NewNop()
	}
	return logger
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	L().Sugar().Debugf(format, args...)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

// Errorf writes a formatted message at error level.
func Errorf(format string, args ...any) {
	L().Sugar().Errorf(format, args...)
}

// ResetForTest drops the logger and forgets the environment lookup.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	envSet = false
}
