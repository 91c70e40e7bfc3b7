// Package audit records tool invocations for after-the-fact review. Desktop
// automation moves the operator's mouse and keyboard, so the server keeps a
// durable trail of what was asked and how it concluded.
package audit

import (
	"context"
	"time"
)

// Record captures one tool invocation.
type Record struct {
	Tool      string
	Outcome   string
	Detail    string
	Duration  time.Duration
	CreatedAt time.Time
}

// Recorder persists invocation records. Implementations must tolerate
// concurrent callers.
type Recorder interface {
	Put(ctx context.Context, record Record) error
}

// NopRecorder discards records. It is the default when no audit database is
// configured.
type NopRecorder struct{}

// Put discards the record.
func (NopRecorder) Put(context.Context, Record) error { return nil }
