// Package tagmaker builds HTML elements from compact rules and from
// literal HTML tags.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/tagmaker"
//
// Usage:
//
//	el, err := tagmaker.Create("a.btn#link",
//	    tagmaker.WithContent("Click here"),
//	    tagmaker.WithAttributes(tag.NewAttributes(tag.Valued("href", "#"))),
//	)
//	fmt.Println(el.Render()) // <a class="btn" id="link" href="#">Click here</a>
//
//	el, err = tagmaker.Decode(`<input type="checkbox" checked />`)
package tagmaker

import (
	"context"
	"log/slog"

	"github.com/vango-dev/tagmaker/pkg/decoder"
	"github.com/vango-dev/tagmaker/pkg/interpreter"
	"github.com/vango-dev/tagmaker/pkg/middleware"
	"github.com/vango-dev/tagmaker/pkg/tag"
)

// Maker creates and decodes elements, running every operation through
// its middleware chain. A Maker is safe for concurrent use; the elements
// it returns are not.
type Maker struct {
	logger     *slog.Logger
	middleware []middleware.Middleware
	renderer   *tag.Renderer
}

// New creates a Maker from config.
func New(config Config) *Maker {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var mw []middleware.Middleware
	if config.Logger != nil {
		mw = append(mw, middleware.Logging(config.Logger))
	}
	mw = append(mw, config.Middleware...)

	return &Maker{
		logger:     logger,
		middleware: mw,
		renderer:   tag.NewRenderer(tag.RendererConfig{Escape: config.Escape}),
	}
}

// Logger returns the Maker's logger.
func (m *Maker) Logger() *slog.Logger {
	return m.logger
}

// Create parses rule into an element and applies opts on top of it.
func (m *Maker) Create(rule string, opts ...CreateOption) (*tag.Element, error) {
	return m.CreateContext(context.Background(), rule, opts...)
}

// CreateContext is Create with a context for the middleware chain.
//
// Content given with WithContent replaces the rule's {content}.
// Attributes given with WithAttributes are merged last and win over the
// rule's id, classes and bracket attributes.
func (m *Maker) CreateContext(ctx context.Context, rule string, opts ...CreateOption) (*tag.Element, error) {
	var o createOptions
	for _, opt := range opts {
		opt(&o)
	}

	op := middleware.NewOperation(ctx, middleware.OpCreate, rule)
	err := middleware.Compose(op, m.middleware, func() error {
		parsed, err := interpreter.ParseRule(rule)
		if err != nil {
			return err
		}

		if o.hasContent {
			parsed.Content = o.content
		}

		el, err := parsed.Element()
		if err != nil {
			return err
		}
		if o.attributes != nil {
			el.MergeAttributes(o.attributes)
		}

		op.Element = el
		return nil
	})
	if err != nil {
		return nil, err
	}
	return op.Element, nil
}

// Decode parses a single literal HTML tag into an element.
func (m *Maker) Decode(html string) (*tag.Element, error) {
	return m.DecodeContext(context.Background(), html)
}

// DecodeContext is Decode with a context for the middleware chain.
func (m *Maker) DecodeContext(ctx context.Context, html string) (*tag.Element, error) {
	op := middleware.NewOperation(ctx, middleware.OpDecode, html)
	err := middleware.Compose(op, m.middleware, func() error {
		el, err := decoder.DecodeElement(html)
		if err != nil {
			return err
		}
		op.Element = el
		return nil
	})
	if err != nil {
		return nil, err
	}
	return op.Element, nil
}

// Render renders el with the Maker's renderer configuration.
func (m *Maker) Render(el *tag.Element) (string, error) {
	return m.renderer.RenderToString(el)
}

// Renderer returns the Maker's renderer.
func (m *Maker) Renderer() *tag.Renderer {
	return m.renderer
}

var defaultMaker = New(Config{})

// Create parses rule with the default Maker.
func Create(rule string, opts ...CreateOption) (*tag.Element, error) {
	return defaultMaker.Create(rule, opts...)
}

// Decode parses html with the default Maker.
func Decode(html string) (*tag.Element, error) {
	return defaultMaker.Decode(html)
}
