package logging

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the logging contract shared by all components.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config selects the level and output format of the root logger.
type Config struct {
	Level  string
	Format string
}

// Provider hands out named loggers backed by go-logger.
type Provider struct {
	root *glog.BaseLogger
}

func NewProvider(cfg Config) (*Provider, error) {
	options := []glog.Option{}

	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	return &Provider{root: glog.NewLogger(options...)}, nil
}

// GetLogger returns the logger for the named component.
func (p *Provider) GetLogger(name string) Logger {
	if p == nil {
		return NoOp()
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return p.root
	}

	return p.root.GetLogger(name)
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}

type noop struct{}

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}

// NoOp returns a logger that discards everything.
func NoOp() Logger {
	return noop{}
}
