// Package decoder turns a single literal HTML tag into a tag.Element.
//
// The decoder is lenient by design: it reads one top-level tag with at
// most one level of content and never rejects its input. Text without a
// tag decodes to no tag and the whole text as content; a self-closing or
// unclosed tag decodes to no content.
package decoder

import (
	"regexp"
	"strings"

	"github.com/vango-dev/tagmaker/pkg/tag"
)

var (
	tagPattern        = regexp.MustCompile(`<([\w-]+)`)
	contentPattern    = regexp.MustCompile(`<.*>(.*)<.*>`)
	openPattern       = regexp.MustCompile(`<([^<]*)>`)
	valuedAttrPattern = regexp.MustCompile(`(.*)=["'](.*)["']`)
)

// ExtractTag returns the tag name that follows the first '<'.
func ExtractTag(html string) (string, bool) {
	m := tagPattern.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractContent returns the text between the end of the opening tag and
// the start of the closing tag. Input without a tag is returned whole.
func ExtractContent(html string) (string, bool) {
	if _, ok := ExtractTag(html); !ok {
		return html, true
	}
	m := contentPattern.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractAttributes returns the attributes of the opening tag in source
// order. key="value" and key='value' tokens are valued; any other token
// except a lone '/' is isolated.
func ExtractAttributes(html string) *tag.Attributes {
	attrs := &tag.Attributes{}
	if _, ok := ExtractTag(html); !ok {
		return attrs
	}

	m := openPattern.FindStringSubmatch(html)
	if m == nil {
		return attrs
	}

	parts := strings.Split(strings.TrimSpace(m[1]), " ")
	for _, part := range parts[1:] {
		if part == "" || part == "/" {
			continue
		}
		if kv := valuedAttrPattern.FindStringSubmatch(part); kv != nil {
			attrs.Set(kv[1], kv[2])
		} else {
			attrs.SetIsolated(part)
		}
	}
	return attrs
}

// DecodeElement composes the extractors into an element. Text without a
// tag cannot form an element and fails with errors.ErrBlankTag; that is
// the only error it returns, and it comes from element construction.
func DecodeElement(html string) (*tag.Element, error) {
	name, _ := ExtractTag(html)
	content, _ := ExtractContent(html)
	return tag.New(name, content, ExtractAttributes(html))
}
