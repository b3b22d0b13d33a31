package tagmaker

import (
	"log/slog"

	"github.com/vango-dev/tagmaker/pkg/middleware"
	"github.com/vango-dev/tagmaker/pkg/tag"
)

// Config configures a Maker.
type Config struct {
	// Logger is the structured logger for the Maker.
	// If set, every operation is logged through middleware.Logging
	// ahead of Middleware. If nil, slog.Default() is used and nothing
	// is logged per operation.
	Logger *slog.Logger

	// Middleware wraps every create and decode operation, first to last.
	Middleware []middleware.Middleware

	// Escape makes Maker.Render escape attribute values and content.
	Escape bool
}

// CreateOption configures a single Create call.
type CreateOption func(*createOptions)

type createOptions struct {
	content    string
	hasContent bool
	attributes *tag.Attributes
}

// WithContent replaces the rule's inline content. An empty string still
// replaces it.
func WithContent(content string) CreateOption {
	return func(o *createOptions) {
		o.content = content
		o.hasContent = true
	}
}

// WithAttributes merges attrs over the attributes parsed from the rule.
// Repeated calls accumulate, later keys winning.
func WithAttributes(attrs *tag.Attributes) CreateOption {
	return func(o *createOptions) {
		if attrs == nil {
			return
		}
		if o.attributes == nil {
			o.attributes = &tag.Attributes{}
		}
		o.attributes.Merge(attrs)
	}
}
