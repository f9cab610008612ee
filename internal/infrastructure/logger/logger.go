package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields is an alias so callers do not import logrus directly.
type Fields = logrus.Fields

const (
	FieldRequestID = "request_id"
	FieldComponent = "component"
	FieldJobID     = "job_id"
	FieldOrderID   = "order_id"
	FieldBidID     = "bid_id"
	FieldActor     = "actor"
)

// Logger wraps logrus.Entry so fields can travel in a context.
type Logger struct {
	*logrus.Entry
}

type Config struct {
	Level       string
	Format      string
	ServiceName string
	Output      io.Writer

	// File enables rotation through lumberjack when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	defaultLogger   = New(Config{Level: "info", Format: "json", ServiceName: "kept-house"})
	defaultLoggerMu sync.RWMutex
	rotating        io.Closer
)

func New(cfg Config) *Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetReportCaller(true)

	if strings.EqualFold(cfg.Format, "text") {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  "2006-01-02T15:04:05.000Z07:00",
			CallerPrettyfier: callerPrettyfier,
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
			CallerPrettyfier: callerPrettyfier,
		})
	}

	writers := []io.Writer{os.Stdout}
	if cfg.Output != nil {
		writers = []io.Writer{cfg.Output}
	}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		writers = append(writers, lj)
		rotating = lj
	}
	log.SetOutput(io.MultiWriter(writers...))

	service := cfg.ServiceName
	if service == "" {
		service = "kept-house"
	}
	return &Logger{Entry: log.WithField("service", service)}
}

// SetDefault replaces the logger returned by FromContext when none is attached.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLoggerMu.Lock()
	defaultLogger = l
	defaultLoggerMu.Unlock()
}

func Default() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Sync closes the rotating file writer, if any.
func Sync() error {
	if rotating != nil {
		return rotating.Close()
	}
	return nil
}

func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}

type contextKey struct{}

func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger carried by ctx or the default one.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*Logger); ok {
			return l
		}
	}
	return Default()
}

// WithField returns a context whose logger carries an extra field.
func WithField(ctx context.Context, key string, value any) context.Context {
	return FromContext(ctx).WithField(key, value).WithContext(ctx)
}

func WithFields(ctx context.Context, fields Fields) context.Context {
	return FromContext(ctx).WithFields(fields).WithContext(ctx)
}

// Component tags the logger with the bracketed component used in messages,
// e.g. Component(ctx, "finance", "usecase") logs as [finance][usecase].
func Component(ctx context.Context, parts ...string) *Logger {
	return FromContext(ctx).WithField(FieldComponent, "["+strings.Join(parts, "][")+"]")
}

func callerPrettyfier(frame *runtime.Frame) (string, string) {
	fn := frame.Function
	if i := strings.LastIndex(fn, "/"); i != -1 {
		fn = fn[i+1:]
	}
	return fn, filepath.Base(frame.File) + ":" + strconv.Itoa(frame.Line)
}
