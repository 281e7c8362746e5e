// Package logger builds the process-wide zap logger.  Console output is
// always on; a rotating JSON file is added when file logging is enabled.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the encoder and the optional file sink.
type Options struct {
	Mode       string // "production" selects JSON console output and info level
	FileEnable bool
	Filename   string
}

// New returns a logger configured from opts and installs it as the zap
// global so packages without an injected logger can use zap.S().
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Mode == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var (
		log *zap.Logger
		err error
	)
	if opts.FileEnable && opts.Filename != "" {
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(RotatingFile(opts.Filename)),
				cfg.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(cfg.EncoderConfig),
				zapcore.AddSync(os.Stdout),
				cfg.Level,
			),
		)
		log = zap.New(core, zap.AddCaller())
	} else {
		log, err = cfg.Build(zap.AddCaller())
		if err != nil {
			return nil, err
		}
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

// RotatingFile returns a size-rotated file writer.  The order consumer uses
// it for its append-only log as well.
func RotatingFile(filename string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    64, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
		Compress:   false,
	}
}
