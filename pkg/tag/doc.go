// Package tag provides the element model for tagmaker.
//
// An Element is a single HTML tag: a tag name, optional text content, an
// ordered attribute collection and a self-closing flag. Elements are
// mutable and render to canonical HTML:
//
//	el, _ := tag.New("a", "Link", tag.NewAttributes(tag.Valued("class", "btn")))
//	el.AppendAttribute("class", "large")
//	el.SetIsolatedAttribute("download")
//	fmt.Println(el) // <a class="btn large" download>Link</a>
//
// # Attributes
//
// Attributes keep insertion order and hold two forms under unique keys:
// valued attributes render as key="value", isolated attributes render as
// a bare key (checked, disabled). Setting either form on an existing key
// replaces the previous entry in place.
//
// # Self-closing tags
//
// The self-closing flag is derived from the tag name when the element is
// created or retagged (br, img, input, ...) and can be overridden with
// SetSelfClosing. Self-closing elements render as <tag attrs /> and never
// emit content.
//
// # Accessors
//
// Invoke and InvokeMethod expose attribute operations through a verb and
// an attribute name, so "append_class" or "getId" resolve to the generic
// attribute operations without per-attribute methods.
package tag
