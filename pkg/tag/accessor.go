package tag

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vango-dev/tagmaker/internal/errors"
)

// Verb is an attribute accessor operation.
type Verb uint8

const (
	VerbGet     Verb = iota // get_class
	VerbSet                 // set_class
	VerbAppend              // append_class
	VerbPrepend             // prepend_class
	VerbAdd                 // add_class
)

var verbNames = [...]string{
	VerbGet:     "get",
	VerbSet:     "set",
	VerbAppend:  "append",
	VerbPrepend: "prepend",
	VerbAdd:     "add",
}

// String returns the verb name.
func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "unknown"
}

// ParseVerb resolves a verb by name.
func ParseVerb(name string) (Verb, bool) {
	for v, n := range verbNames {
		if n == name {
			return Verb(v), true
		}
	}
	return 0, false
}

// Invoke runs an accessor verb against the named attribute and returns
// the attribute as it stands afterward.
//
// set and add take an optional value; without one they store an isolated
// attribute. append and prepend require exactly one value.
func (e *Element) Invoke(verb Verb, name string, args ...string) (Attr, error) {
	if name == "" {
		return Attr{}, unknownAccessor(verb.String()+"_", "missing attribute name")
	}
	if len(args) > 1 {
		return Attr{}, unknownAccessor(verb.String()+"_"+name, "takes at most one value")
	}

	switch verb {
	case VerbGet:
		if len(args) != 0 {
			return Attr{}, unknownAccessor("get_"+name, "takes no value")
		}
		return e.GetAttribute(name)

	case VerbSet:
		if len(args) == 0 {
			e.SetIsolatedAttribute(name)
		} else {
			e.SetAttribute(name, args[0])
		}

	case VerbAdd:
		var err error
		if len(args) == 0 {
			err = e.AddIsolatedAttribute(name)
		} else {
			err = e.AddAttribute(name, args[0])
		}
		if err != nil {
			return Attr{}, err
		}

	case VerbAppend, VerbPrepend:
		if len(args) != 1 {
			return Attr{}, unknownAccessor(verb.String()+"_"+name, "requires a value")
		}
		e.joinAttribute(name, args[0], verb == VerbPrepend)

	default:
		return Attr{}, unknownAccessor(verb.String()+"_"+name, "")
	}

	attr, _ := e.attributes.Get(name)
	return attr, nil
}

// InvokeMethod resolves a method-style accessor name and runs it.
//
// Two spellings are accepted: snake form, where everything after the
// first underscore is the attribute name verbatim ("get_class",
// "set_data-id"), and camel form, where the first letter after the verb
// is lowercased ("getClass", "appendId").
func (e *Element) InvokeMethod(method string, args ...string) (Attr, error) {
	verb, name, ok := splitAccessor(method)
	if !ok {
		return Attr{}, unknownAccessor(method, "")
	}
	return e.Invoke(verb, name, args...)
}

// splitAccessor splits "get_class" or "getClass" into verb and name.
func splitAccessor(method string) (Verb, string, bool) {
	if prefix, rest, found := strings.Cut(method, "_"); found {
		verb, ok := ParseVerb(prefix)
		return verb, rest, ok && rest != ""
	}

	for v, prefix := range verbNames {
		rest, found := strings.CutPrefix(method, prefix)
		if !found || rest == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		if !unicode.IsUpper(r) {
			continue
		}
		return Verb(v), string(unicode.ToLower(r)) + rest[size:], true
	}
	return 0, "", false
}

func unknownAccessor(method, detail string) error {
	err := errors.New(errors.CodeUnknownAccessor).WithSubject(method)
	if detail != "" {
		err = err.WithDetail(method + " " + detail)
	}
	return err
}
