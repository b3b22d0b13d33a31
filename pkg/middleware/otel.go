package middleware

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "tagmaker"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "tagmaker").
	TracerName string

	// IncludeInput records the rule or HTML as a span attribute.
	// Inputs may carry user content, so it is disabled by default.
	IncludeInput bool

	// Filter determines which operations to trace. If nil, all are.
	Filter func(op *Operation) bool

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeInput enables recording the operation input on spans.
func WithIncludeInput(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeInput = include
	}
}

// WithOperationFilter sets a filter function for operations.
func WithOperationFilter(filter func(op *Operation) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// OpenTelemetry creates middleware that traces every operation.
//
// The span is started from op.Context() and the span context replaces it
// for the rest of the chain, so SpanFromOperation works in later
// middleware. Errors are recorded and set the span status.
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return MiddlewareFunc(func(op *Operation, next func() error) error {
		if config.Filter != nil && !config.Filter(op) {
			return next()
		}

		attrs := []attribute.KeyValue{
			attribute.String("tagmaker.operation", op.Name),
		}
		if config.IncludeInput {
			attrs = append(attrs, attribute.String("tagmaker.input", op.Input))
		}

		parent := op.Context()
		ctx, span := config.tracer.Start(
			parent,
			fmt.Sprintf("tagmaker.%s", op.Name),
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		op.SetContext(ctx)
		err := next()
		op.SetContext(parent)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		span.SetStatus(codes.Ok, "")
		if op.Element != nil {
			span.SetAttributes(
				attribute.String("tagmaker.tag", op.Element.Tag()),
				attribute.Int("tagmaker.attribute_count", op.Element.Attributes().Len()),
				attribute.Bool("tagmaker.self_closing", op.Element.IsSelfClosing()),
			)
		}
		return nil
	})
}

// SpanFromOperation returns the span carried by the operation's context.
// Outside OpenTelemetry middleware this is a no-op span.
func SpanFromOperation(op *Operation) trace.Span {
	return trace.SpanFromContext(op.Context())
}
