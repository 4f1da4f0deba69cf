package logging

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData aggregates per-request fields and timings so a handler emits a
// single structured entry instead of a trail of partial lines.
type LogData struct {
	mu        sync.Mutex
	timeItems map[string]int64
	dataItems map[string]interface{}
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timeItems: make(map[string]int64),
		dataItems: make(map[string]interface{}),
		logger:    logger,
	}
}

// AddTiming starts a timer for entryName and returns the function that
// stops it and records the elapsed milliseconds.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timeItems[entryName] = timeSince
	}
}

// AddData records an arbitrary field on the eventual log entry.
func (l *LogData) AddData(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dataItems[key] = value
}

// Log builds the aggregated entry.
func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, value := range l.dataItems {
		entry = entry.WithField(key, value)
	}
	for key, value := range l.timeItems {
		entry = entry.WithField(key, value)
	}
	return entry
}

type logDataKey struct{}

// LogDataKey is the context key under which the per-request LogData is
// stored. Exported so context carriers outside this package (the huma
// middleware) can attach it.
var LogDataKey = logDataKey{}

// WithLogData attaches a LogData to the context for downstream handlers.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, LogDataKey, logData)
}

// GetLogData returns the request's LogData, or nil when none is attached.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(LogDataKey).(*LogData)
	return logData
}
