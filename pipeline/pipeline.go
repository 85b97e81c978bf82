// Package pipeline runs a value through an ordered chain of handlers.
// Callers register handlers up front and hand control over: the pipeline
// decides when each handler runs, handlers only transform what they are
// given.
package pipeline

import "log/slog"

// Handler transforms a value and passes it on.
type Handler[T any] func(T) T

// Option configures a Pipeline created by New.
type Option func(*config)

type config struct {
	log *slog.Logger
}

// WithLogger routes the pipeline's diagnostic output to log instead of
// slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// Pipeline is an ordered chain of handlers over T. Register handlers with
// Use during setup; Run is read-only and safe to call from any goroutine
// once setup is done.
type Pipeline[T any] struct {
	handlers []Handler[T]
	log      *slog.Logger
}

// New returns an empty Pipeline.
func New[T any](opts ...Option) *Pipeline[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	if c.log == nil {
		c.log = slog.Default()
	}

	return &Pipeline[T]{log: c.log}
}

// Use appends handlers to the chain, keeping registration order.
// Nil handlers are skipped.
func (p *Pipeline[T]) Use(handlers ...Handler[T]) *Pipeline[T] {
	for _, handler := range handlers {
		if handler == nil {
			continue
		}

		p.handlers = append(p.handlers, handler)
		p.log.Debug("Registering pipeline handler.", "position", len(p.handlers)-1)
	}

	return p
}

// Len reports how many handlers are registered.
func (p *Pipeline[T]) Len() int {
	return len(p.handlers)
}

// Run passes value through every handler in registration order and returns
// the final result. With no handlers registered it returns value unchanged.
func (p *Pipeline[T]) Run(value T) T {
	p.log.Debug("Running pipeline.", "handlers", len(p.handlers))

	for _, handler := range p.handlers {
		value = handler(value)
	}

	return value
}
