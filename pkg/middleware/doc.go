// Package middleware provides observability middleware for tagmaker
// operations.
//
// Every Create and Decode run by a tagmaker.Maker passes through its
// middleware chain as an *Operation. This package includes:
//   - Prometheus metrics middleware
//   - OpenTelemetry tracing middleware
//   - slog logging middleware
//
// # Prometheus Metrics
//
//	maker := tagmaker.New(tagmaker.Config{
//	    Middleware: []middleware.Middleware{
//	        middleware.Prometheus(middleware.WithNamespace("myapp")),
//	    },
//	})
//
// Metrics collected:
//   - tagmaker_operations_total{operation,status}
//   - tagmaker_operation_duration_seconds{operation}
//   - tagmaker_operation_errors_total{operation,code}
//   - tagmaker_element_attributes: attributes per produced element
//
// # OpenTelemetry
//
// OpenTelemetry starts one span per operation from the operation's
// context, using the global tracer provider:
//
//	middleware.OpenTelemetry(middleware.WithTracerName("my-app"))
//
// Use Maker.CreateContext to parent the span under an existing trace.
package middleware
