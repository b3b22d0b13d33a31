package middleware

import (
	"log/slog"
	"time"

	"github.com/vango-dev/tagmaker/internal/errors"
)

// Logging creates middleware that logs each operation at debug level and
// failures at warn level. A nil logger uses slog.Default().
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}

	return MiddlewareFunc(func(op *Operation, next func() error) error {
		start := time.Now()
		err := next()
		attrs := []any{
			"operation", op.Name,
			"input", op.Input,
			"duration", time.Since(start),
		}

		if err != nil {
			logger.WarnContext(op.Context(), "operation failed",
				append(attrs, "code", errors.CodeOf(err), "error", err)...)
			return err
		}

		if op.Element != nil {
			attrs = append(attrs, "tag", op.Element.Tag())
		}
		logger.DebugContext(op.Context(), "operation complete", attrs...)
		return nil
	})
}
