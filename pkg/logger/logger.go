package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init replaces the package logger. mode "release" selects the production
// encoder, anything else the development one.
func Init(mode string) error {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the current logger.
func L() *zap.Logger { return log }

func Debug(msg string, fields ...zapcore.Field) { log.Debug(msg, fields...) }

func Info(msg string, fields ...zapcore.Field) { log.Info(msg, fields...) }

func Warn(msg string, fields ...zapcore.Field) { log.Warn(msg, fields...) }

func Error(msg string, fields ...zapcore.Field) { log.Error(msg, fields...) }

// Sync flushes buffered entries. Safe to call on shutdown.
func Sync() { _ = log.Sync() }
