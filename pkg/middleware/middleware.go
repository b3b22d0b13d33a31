package middleware

import (
	"context"

	"github.com/vango-dev/tagmaker/pkg/tag"
)

// Operation names.
const (
	OpCreate = "create"
	OpDecode = "decode"
)

// Operation is a single create or decode call travelling through the
// middleware chain.
type Operation struct {
	// Name is OpCreate or OpDecode.
	Name string

	// Input is the rule or HTML being processed.
	Input string

	// Element is set by the final handler when the operation succeeds.
	Element *tag.Element

	ctx context.Context
}

// NewOperation creates an operation bound to ctx.
func NewOperation(ctx context.Context, name, input string) *Operation {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Operation{Name: name, Input: input, ctx: ctx}
}

// Context returns the operation's context.
func (o *Operation) Context() context.Context {
	return o.ctx
}

// SetContext replaces the operation's context. Middleware uses it to
// hand a derived context (a span, for instance) to the rest of the chain.
func (o *Operation) SetContext(ctx context.Context) {
	if ctx != nil {
		o.ctx = ctx
	}
}

// Middleware wraps an operation.
type Middleware interface {
	Handle(op *Operation, next func() error) error
}

// MiddlewareFunc adapts a function to Middleware.
type MiddlewareFunc func(op *Operation, next func() error) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(op *Operation, next func() error) error {
	return f(op, next)
}

// Compose runs handler behind mw. Middleware is executed in order
// (first to last), with the handler at the end.
func Compose(op *Operation, mw []Middleware, handler func() error) error {
	if len(mw) == 0 {
		return handler()
	}

	chain := handler
	for i := len(mw) - 1; i >= 0; i-- {
		m := mw[i]
		next := chain
		chain = func() error {
			return m.Handle(op, next)
		}
	}

	return chain()
}

// Chain creates a middleware that combines multiple middleware in order.
func Chain(middleware ...Middleware) Middleware {
	return MiddlewareFunc(func(op *Operation, next func() error) error {
		return Compose(op, middleware, next)
	})
}

// Only runs mw for operations matching condition and skips it otherwise.
func Only(condition func(op *Operation) bool, mw Middleware) Middleware {
	return MiddlewareFunc(func(op *Operation, next func() error) error {
		if !condition(op) {
			return next()
		}
		return mw.Handle(op, next)
	})
}
