package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"anchorpoint-it.com/infopanel/internal/config"
)

func productionConfig(cfg config.LogConfig) (zap.Config, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return zap.Config{}, fmt.Errorf("log setting: %w", err)
		}
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	if cfg.Format == "json" {
		cc.Encoding = "json"
	}
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	return cc, nil
}

// New builds the process logger. Output goes to cfg.Path when set,
// otherwise to stderr.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	cc, err := productionConfig(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Path != "" {
		cc.OutputPaths = []string{cfg.Path}
		cc.ErrorOutputPaths = []string{cfg.Path}
	}

	log, err := cc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return log, nil
}

// NewTo is New with w standing in for stderr when cfg.Path is empty.
func NewTo(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	if cfg.Path != "" {
		return New(cfg)
	}
	cc, err := productionConfig(cfg)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if cc.Encoding == "json" {
		enc = zapcore.NewJSONEncoder(cc.EncoderConfig)
	} else {
		enc = zapcore.NewConsoleEncoder(cc.EncoderConfig)
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), cc.Level)), nil
}

// NewQuiet is New for processes that own the terminal: without a
// configured path nothing is written.
func NewQuiet(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}
	return New(cfg)
}
