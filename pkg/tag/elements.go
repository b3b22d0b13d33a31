package tag

import "strings"

// selfClosingElements are the tags that start out self-closing.
var selfClosingElements = map[string]bool{
	"area":     true,
	"base":     true,
	"basefont": true,
	"br":       true,
	"hr":       true,
	"input":    true,
	"img":      true,
	"link":     true,
	"meta":     true,
}

// IsDefaultSelfClosing reports whether tag is self-closing by default.
// The match is case-insensitive.
func IsDefaultSelfClosing(tag string) bool {
	return selfClosingElements[strings.ToLower(tag)]
}
