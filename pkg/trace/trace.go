// Package trace provides the context-carried tracer used by the command
// line front end. The enumeration library itself is pure computation and
// never logs; tracing exists so the CLI can narrate what it is doing when
// asked to be verbose.
package trace

import (
	"context"
	"fmt"
	"log"
)

// Level controls how much a Tracer emits.
type Level int

const (
	// LevelNormal emits user-facing messages only.
	LevelNormal Level = iota
	// LevelVerbose adds debug detail.
	LevelVerbose
	// LevelTrace emits everything.
	LevelTrace
)

type contextKey struct{}

// Tracer writes leveled, prefixed messages through the standard logger.
type Tracer struct {
	prefix string
	level  Level
}

// New returns a Tracer with the given prefix and level.
func New(prefix string, level Level) *Tracer {
	return &Tracer{prefix: prefix, level: level}
}

// WithPrefix returns a Tracer at the same level under a different prefix.
func (t *Tracer) WithPrefix(prefix string) *Tracer {
	return &Tracer{prefix: prefix, level: t.level}
}

// Verbose reports whether debug output is enabled.
func (t *Tracer) Verbose() bool {
	return t.level >= LevelVerbose
}

// Infof logs a message regardless of level.
func (t *Tracer) Infof(format string, args ...interface{}) {
	t.emit("", format, args...)
}

// Debugf logs a message when the level is verbose or higher.
func (t *Tracer) Debugf(format string, args ...interface{}) {
	if t.level < LevelVerbose {
		return
	}
	t.emit("", format, args...)
}

// Tracef logs a message at the most detailed level only.
func (t *Tracer) Tracef(format string, args ...interface{}) {
	if t.level < LevelTrace {
		return
	}
	t.emit("TRACE", format, args...)
}

// Error logs an error regardless of level.
func (t *Tracer) Error(err error) {
	t.emit("ERROR", "%v", err)
}

func (t *Tracer) emit(tag, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	switch {
	case t.prefix != "" && tag != "":
		log.Printf("%s %s: %s", t.prefix, tag, msg)
	case t.prefix != "":
		log.Printf("%s: %s", t.prefix, msg)
	case tag != "":
		log.Printf("%s: %s", tag, msg)
	default:
		log.Print(msg)
	}
}

// WithContext returns a context carrying the tracer.
func WithContext(ctx context.Context, tracer *Tracer) context.Context {
	return context.WithValue(ctx, contextKey{}, tracer)
}

// FromContext returns the tracer carried by ctx, or a quiet default tracer
// when ctx carries none.
func FromContext(ctx context.Context) *Tracer {
	if tracer, ok := ctx.Value(contextKey{}).(*Tracer); ok {
		return tracer
	}
	return New("", LevelNormal)
}
