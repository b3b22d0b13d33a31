package tag

import (
	"sort"
	"strings"
)

// Attr is a single attribute. Isolated attributes have no value and
// render as a bare key.
type Attr struct {
	Key      string
	Value    string
	Isolated bool
}

// Valued creates a key="value" attribute.
func Valued(key, value string) Attr { return Attr{Key: key, Value: value} }

// Isolated creates a value-less attribute such as checked.
func Isolated(key string) Attr { return Attr{Key: key, Isolated: true} }

// IsEmpty returns true if this is an empty/zero attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// String renders the attribute without escaping.
func (a Attr) String() string {
	if a.Isolated {
		return a.Key
	}
	return a.Key + `="` + a.Value + `"`
}

// Attributes is an insertion-ordered attribute collection with unique
// keys. The zero value is ready to use; a nil *Attributes reads as empty.
type Attributes struct {
	entries []Attr
}

// NewAttributes builds a collection from attrs. A later attribute with
// the same key replaces the earlier one.
func NewAttributes(attrs ...Attr) *Attributes {
	a := &Attributes{entries: make([]Attr, 0, len(attrs))}
	for _, attr := range attrs {
		a.Put(attr)
	}
	return a
}

// FromMap builds a collection of valued attributes with keys in sorted
// order. Maps carry no order, so callers that care about it should use
// NewAttributes.
func FromMap(m map[string]string) *Attributes {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	a := &Attributes{entries: make([]Attr, 0, len(m))}
	for _, k := range keys {
		a.Set(k, m[k])
	}
	return a
}

func (a *Attributes) indexOf(key string) int {
	if a == nil {
		return -1
	}
	for i, e := range a.entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Put stores attr, replacing any entry with the same key in place.
// Attributes with an empty key are ignored.
func (a *Attributes) Put(attr Attr) {
	if attr.Key == "" {
		return
	}
	if attr.Isolated {
		attr.Value = ""
	}
	if i := a.indexOf(attr.Key); i >= 0 {
		a.entries[i] = attr
		return
	}
	a.entries = append(a.entries, attr)
}

// Set stores a valued attribute.
func (a *Attributes) Set(key, value string) { a.Put(Valued(key, value)) }

// SetIsolated stores an isolated attribute.
func (a *Attributes) SetIsolated(key string) { a.Put(Isolated(key)) }

// Get returns the attribute stored under key.
func (a *Attributes) Get(key string) (Attr, bool) {
	i := a.indexOf(key)
	if i < 0 {
		return Attr{}, false
	}
	return a.entries[i], true
}

// Value returns the value of a valued attribute, or "" otherwise.
func (a *Attributes) Value(key string) string {
	attr, _ := a.Get(key)
	return attr.Value
}

// Has reports whether key is present in either form.
func (a *Attributes) Has(key string) bool {
	return a.indexOf(key) >= 0
}

// Delete removes key and reports whether it was present.
func (a *Attributes) Delete(key string) bool {
	i := a.indexOf(key)
	if i < 0 {
		return false
	}
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	return true
}

// Reset removes every attribute.
func (a *Attributes) Reset() {
	a.entries = a.entries[:0]
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// Keys returns the attribute keys in order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.entries))
	for i, e := range a.entries {
		keys[i] = e.Key
	}
	return keys
}

// All returns a copy of the attributes in order.
func (a *Attributes) All() []Attr {
	if a == nil {
		return nil
	}
	out := make([]Attr, len(a.entries))
	copy(out, a.entries)
	return out
}

// Each calls fn for every attribute in order until fn returns false.
func (a *Attributes) Each(fn func(Attr) bool) {
	if a == nil {
		return
	}
	for _, e := range a.entries {
		if !fn(e) {
			return
		}
	}
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	return &Attributes{entries: a.All()}
}

// Merge puts every attribute of other into a, in other's order.
func (a *Attributes) Merge(other *Attributes) {
	other.Each(func(attr Attr) bool {
		a.Put(attr)
		return true
	})
}

// Equal reports whether both collections hold the same attributes in
// the same order.
func (a *Attributes) Equal(other *Attributes) bool {
	if a.Len() != other.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// String renders the attributes space-separated, without escaping.
func (a *Attributes) String() string {
	parts := make([]string, 0, a.Len())
	a.Each(func(attr Attr) bool {
		parts = append(parts, attr.String())
		return true
	})
	return strings.Join(parts, " ")
}
