package tag

import (
	"strings"

	"github.com/vango-dev/tagmaker/internal/errors"
)

// Element is a single HTML tag with content and ordered attributes.
// An Element is not safe for concurrent mutation.
type Element struct {
	tag         string
	content     string
	attributes  *Attributes
	selfClosing bool
}

// New creates an element. attrs is copied; nil means no attributes.
// A blank tag fails with errors.ErrBlankTag.
func New(tag, content string, attrs *Attributes) (*Element, error) {
	e := &Element{attributes: &Attributes{}}
	if err := e.SetTag(tag); err != nil {
		return nil, err
	}
	e.content = content
	e.SetAttributes(attrs)
	return e, nil
}

// Tag returns the tag name.
func (e *Element) Tag() string {
	return e.tag
}

// SetTag trims and stores tag, recomputing the self-closing flag.
func (e *Element) SetTag(tag string) error {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return errors.New(errors.CodeBlankTag).WithSubject(quoteBlank(tag))
	}
	e.tag = trimmed
	e.selfClosing = IsDefaultSelfClosing(trimmed)
	return nil
}

// Content returns the text content.
func (e *Element) Content() string {
	return e.content
}

// SetContent sets the text content. Self-closing elements keep it but
// never render it.
func (e *Element) SetContent(content string) {
	e.content = content
}

// IsSelfClosing reports whether the element renders as <tag />.
func (e *Element) IsSelfClosing() bool {
	return e.selfClosing
}

// SetSelfClosing overrides the flag derived from the tag name.
func (e *Element) SetSelfClosing(flag bool) {
	e.selfClosing = flag
}

// Copy returns an element with the same tag, content and self-closing
// flag and an independent copy of the attributes.
func (e *Element) Copy() *Element {
	return &Element{
		tag:         e.tag,
		content:     e.content,
		attributes:  e.attributes.Clone(),
		selfClosing: e.selfClosing,
	}
}

// Equal reports whether both elements have the same tag, content,
// self-closing flag and attributes in the same order.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.tag == other.tag &&
		e.content == other.content &&
		e.selfClosing == other.selfClosing &&
		e.attributes.Equal(other.attributes)
}

// =============================================================================
// Attributes
// =============================================================================

// Attributes returns a copy of the attribute collection.
func (e *Element) Attributes() *Attributes {
	return e.attributes.Clone()
}

// SetAttributes replaces all attributes with a copy of attrs.
func (e *Element) SetAttributes(attrs *Attributes) {
	e.attributes = attrs.Clone()
}

// MergeAttributes applies every attribute of attrs with override
// semantics, keeping existing keys that attrs does not mention.
func (e *Element) MergeAttributes(attrs *Attributes) {
	e.attributes.Merge(attrs)
}

// ClearAttributes removes every attribute.
func (e *Element) ClearAttributes() {
	e.attributes.Reset()
}

// AttributeExists reports whether key is present in either form.
func (e *Element) AttributeExists(key string) bool {
	return e.attributes.Has(key)
}

// IsIsolatedAttribute reports whether key is present without a value.
func (e *Element) IsIsolatedAttribute(key string) bool {
	attr, ok := e.attributes.Get(key)
	return ok && attr.Isolated
}

// IsValuedAttribute reports whether key is present with a value.
func (e *Element) IsValuedAttribute(key string) bool {
	attr, ok := e.attributes.Get(key)
	return ok && !attr.Isolated
}

// GetAttribute returns the attribute stored under key, failing with
// errors.ErrUndefinedAttribute when it is absent.
func (e *Element) GetAttribute(key string) (Attr, error) {
	attr, ok := e.attributes.Get(key)
	if !ok {
		return Attr{}, errors.New(errors.CodeUndefinedAttribute).WithSubject(key)
	}
	return attr, nil
}

// LookupAttribute returns the attribute stored under key and whether it
// exists. Absence is not an error.
func (e *Element) LookupAttribute(key string) (Attr, bool) {
	return e.attributes.Get(key)
}

// SetAttribute stores a valued attribute, overriding any existing entry.
func (e *Element) SetAttribute(key, value string) {
	e.attributes.Set(key, value)
}

// SetIsolatedAttribute stores an isolated attribute, overriding any
// existing entry.
func (e *Element) SetIsolatedAttribute(key string) {
	e.attributes.SetIsolated(key)
}

// AddAttribute stores a valued attribute, failing with
// errors.ErrExistentAttribute when key already exists.
func (e *Element) AddAttribute(key, value string) error {
	if e.AttributeExists(key) {
		return existentAttribute(key)
	}
	e.SetAttribute(key, value)
	return nil
}

// AddIsolatedAttribute stores an isolated attribute, failing with
// errors.ErrExistentAttribute when key already exists.
func (e *Element) AddIsolatedAttribute(key string) error {
	if e.AttributeExists(key) {
		return existentAttribute(key)
	}
	e.SetIsolatedAttribute(key)
	return nil
}

// RemoveAttribute removes key in whichever form it is present.
// Removing a missing key is a no-op.
func (e *Element) RemoveAttribute(key string) {
	e.attributes.Delete(key)
}

// AppendAttribute adds value to the end of an attribute:
// class="link" + "btn" gives class="link btn". An isolated attribute is
// replaced by the valued one and a missing attribute is created.
func (e *Element) AppendAttribute(key, value string) {
	e.joinAttribute(key, value, false)
}

// PrependAttribute adds value to the start of an attribute:
// class="link" + "btn" gives class="btn link".
func (e *Element) PrependAttribute(key, value string) {
	e.joinAttribute(key, value, true)
}

func (e *Element) joinAttribute(key, value string, prepend bool) {
	attr, ok := e.attributes.Get(key)
	switch {
	case !ok:
		e.SetAttribute(key, value)
	case attr.Isolated:
		// No prior value to join with: the isolated form moves to the end
		// as a valued attribute.
		e.RemoveAttribute(key)
		e.SetAttribute(key, value)
	case prepend:
		e.SetAttribute(key, value+" "+attr.Value)
	default:
		e.SetAttribute(key, attr.Value+" "+value)
	}
}

// =============================================================================
// Rendering
// =============================================================================

// Render returns the canonical HTML for the element. Attribute values
// and content are written verbatim.
func (e *Element) Render() string {
	s, _ := defaultRenderer.RenderToString(e)
	return s
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	return e.Render()
}

func existentAttribute(key string) error {
	return errors.New(errors.CodeExistentAttribute).
		WithSubject(key).
		WithSuggestion("Use SetAttribute(\"" + key + "\", ...) to override it")
}

func quoteBlank(tag string) string {
	return `"` + tag + `"`
}
