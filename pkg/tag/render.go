package tag

import (
	"bytes"
	"io"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Escape enables HTML escaping of attribute values and content.
	// Off by default: elements render their values verbatim.
	Escape bool
}

// Renderer writes elements as HTML.
type Renderer struct {
	config RendererConfig
}

var defaultRenderer = NewRenderer(RendererConfig{})

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

// RenderToString renders an element to an HTML string.
func (r *Renderer) RenderToString(e *Element) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, e); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams an element to the given writer.
//
//	<tag a="1" b />          self-closing
//	<tag a="1" b>text</tag>  otherwise
func (r *Renderer) RenderToWriter(w io.Writer, e *Element) error {
	if e == nil {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteByte('<')
	buf.WriteString(e.tag)
	r.renderAttributes(&buf, e.attributes)

	if e.selfClosing {
		buf.WriteString(" />")
	} else {
		buf.WriteByte('>')
		buf.WriteString(r.text(e.content))
		buf.WriteString("</")
		buf.WriteString(e.tag)
		buf.WriteByte('>')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// renderAttributes writes each attribute preceded by a space.
func (r *Renderer) renderAttributes(buf *bytes.Buffer, attrs *Attributes) {
	attrs.Each(func(attr Attr) bool {
		buf.WriteByte(' ')
		buf.WriteString(attr.Key)
		if !attr.Isolated {
			buf.WriteString(`="`)
			buf.WriteString(r.attr(attr.Value))
			buf.WriteByte('"')
		}
		return true
	})
}

func (r *Renderer) text(s string) string {
	if !r.config.Escape {
		return s
	}
	return escapeHTML(s)
}

func (r *Renderer) attr(s string) string {
	if !r.config.Escape {
		return s
	}
	return escapeAttr(s)
}
