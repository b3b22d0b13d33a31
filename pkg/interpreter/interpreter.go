// Package interpreter parses element rules, a CSS-selector-like shorthand
// for a single element:
//
//	tag#id.class1.class2[key=value,flag]{content}
//
// Every part is optional. A rule without a leading tag name produces a
// div, so ".content" and "#main" are valid rules.
package interpreter

import (
	"regexp"
	"strings"

	"github.com/vango-dev/tagmaker/internal/errors"
	"github.com/vango-dev/tagmaker/pkg/tag"
)

// DefaultTag is used when a rule has no leading tag name.
const DefaultTag = "div"

var (
	tagPattern        = regexp.MustCompile(`^[\w-]*`)
	idPattern         = regexp.MustCompile(`#([\w-]*)`)
	classPattern      = regexp.MustCompile(`\.([\w-]*)`)
	attributesPattern = regexp.MustCompile(`\[(.*)\]`)
	contentPattern    = regexp.MustCompile(`\{(.*)\}`)
)

// Rule is the parsed form of an element rule.
type Rule struct {
	Tag        string
	Attributes *tag.Attributes

	// Content is the text between braces. HasContent distinguishes an
	// empty "{}" from a rule without braces.
	Content    string
	HasContent bool
}

// Element builds an element from the rule.
func (r *Rule) Element() (*tag.Element, error) {
	return tag.New(r.Tag, r.Content, r.Attributes)
}

// ParseRule parses rule into its tag, attributes and content.
//
// Each part is read by its own pass over the whole trimmed rule: the tag
// is anchored at the start, the id is the first '#' name, classes are
// every '.' name, and the bracket and brace bodies are matched greedily.
// A '.' or '#' inside [...] or {...} therefore still counts as a class
// or id. Attributes are merged in order: bracket attributes, then class,
// then id, later ones overriding earlier keys.
//
// A blank rule, or a bracket segment with more than one '=', fails with
// errors.ErrInvalidRule.
func ParseRule(rule string) (*Rule, error) {
	rule = normalize(rule)
	if rule == "" {
		return nil, errors.New(errors.CodeInvalidRule).
			WithSubject("blank rule").
			WithSuggestion(`Use a tag name such as "div" or a selector such as ".content"`)
	}

	out := &Rule{Tag: ExtractTag(rule)}
	out.Content, out.HasContent = ExtractContent(rule)

	attrs := &tag.Attributes{}
	if loc := attributesPattern.FindStringSubmatchIndex(rule); loc != nil {
		var err error
		attrs, err = parseAttributeList(rule[loc[2]:loc[3]], rule, loc[2])
		if err != nil {
			return nil, err
		}
	}

	if classes := ExtractClasses(rule); len(classes) > 0 {
		attrs.Set("class", strings.Join(classes, " "))
	}
	if id, ok := ExtractID(rule); ok {
		attrs.Set("id", id)
	}

	out.Attributes = attrs
	return out, nil
}

// ExtractTag returns the run of word characters and hyphens at the start
// of rule, or DefaultTag when there is none.
func ExtractTag(rule string) string {
	if t := tagPattern.FindString(normalize(rule)); t != "" {
		return t
	}
	return DefaultTag
}

// ExtractID returns the name after the first '#'. A bare '#' counts as
// no id.
func ExtractID(rule string) (string, bool) {
	m := idPattern.FindStringSubmatch(normalize(rule))
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// ExtractClasses returns the name following every '.', in order. A '.'
// not followed by a name yields an empty class, so "p.a..b" gives
// "a", "", "b".
func ExtractClasses(rule string) []string {
	var classes []string
	for _, m := range classPattern.FindAllStringSubmatch(normalize(rule), -1) {
		classes = append(classes, m[1])
	}
	return classes
}

// ExtractContent returns the text between the first '{' and the last '}'.
func ExtractContent(rule string) (string, bool) {
	m := contentPattern.FindStringSubmatch(normalize(rule))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractAttributes parses a comma separated attribute list such as
// "key1=value1,single_attr,key2=value2". Segments without '=' become
// isolated attributes and empty segments are skipped. A segment with
// more than one '=' fails with errors.ErrInvalidRule.
func ExtractAttributes(list string) (*tag.Attributes, error) {
	return parseAttributeList(list, list, 0)
}

// parseAttributeList parses list, reporting errors against input where
// list starts at offset.
func parseAttributeList(list, input string, offset int) (*tag.Attributes, error) {
	attrs := &tag.Attributes{}
	if list == "" {
		return attrs, nil
	}

	pos := offset
	for _, segment := range strings.Split(list, ",") {
		parts := strings.Split(segment, "=")
		switch {
		case len(parts) > 2:
			return nil, errors.New(errors.CodeInvalidRule).
				WithSubject(segment).
				WithInput(input, pos+1).
				WithSuggestion("An attribute value cannot contain '='")
		case len(parts) == 2:
			attrs.Set(parts[0], parts[1])
		case segment != "":
			attrs.SetIsolated(segment)
		}
		pos += len(segment) + 1
	}
	return attrs, nil
}

func normalize(rule string) string {
	return strings.TrimSpace(rule)
}

