package interpreter

import (
	"errors"
	"reflect"
	"testing"

	tmerrors "github.com/vango-dev/tagmaker/internal/errors"
	"github.com/vango-dev/tagmaker/pkg/tag"
)

func TestExtractAttributes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []tag.Attr
	}{
		{"empty", "", nil},
		{"two pairs", "key1=value1,key2=value2", []tag.Attr{tag.Valued("key1", "value1"), tag.Valued("key2", "value2")}},
		{"single pair", "key=value", []tag.Attr{tag.Valued("key", "value")}},
		{
			"mixed",
			"key=value,alone,alone2,a=b",
			[]tag.Attr{tag.Valued("key", "value"), tag.Isolated("alone"), tag.Isolated("alone2"), tag.Valued("a", "b")},
		},
		{"trailing comma", "a=b,", []tag.Attr{tag.Valued("a", "b")}},
		{"empty value", "alt=", []tag.Attr{tag.Valued("alt", "")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := ExtractAttributes(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := attrs.All(); !reflect.DeepEqual(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidExtractAttributes(t *testing.T) {
	_, err := ExtractAttributes("ok=1,key=v=alue")
	if !errors.Is(err, tmerrors.ErrInvalidRule) {
		t.Fatalf("error = %v, want InvalidRule", err)
	}

	var te *tmerrors.TagError
	if !errors.As(err, &te) {
		t.Fatal("expected *TagError")
	}
	if te.Subject != "key=v=alue" {
		t.Errorf("Subject = %q", te.Subject)
	}
	if te.Location == nil || te.Location.Column != 6 {
		t.Errorf("Location = %v, want column 6", te.Location)
	}
}

func TestValidElementRules(t *testing.T) {
	rules := []string{
		"a ",
		"ul#main",
		"li.active",
		"a.free-link",
		"div.span1.span3",
		"div.valid_class",
		"div#valid_id",
		"form[name=new]",
		"p{text}",
	}

	for _, rule := range rules {
		t.Run(rule, func(t *testing.T) {
			if _, err := ParseRule(rule); err != nil {
				t.Errorf("ParseRule(%q) error: %v", rule, err)
			}
		})
	}
}

func TestBlankRules(t *testing.T) {
	for _, rule := range []string{"", "   ", "\t\n"} {
		if _, err := ParseRule(rule); !errors.Is(err, tmerrors.ErrInvalidRule) {
			t.Errorf("ParseRule(%q) error = %v, want InvalidRule", rule, err)
		}
	}
}

func TestPlainTagRules(t *testing.T) {
	for _, rule := range []string{"a", "section", "tag-with-dash", "h1", "x_y"} {
		r, err := ParseRule(rule)
		if err != nil {
			t.Fatal(err)
		}
		if r.Tag != rule {
			t.Errorf("Tag = %q, want %q", r.Tag, rule)
		}
		if r.Attributes.Len() != 0 {
			t.Errorf("%q has attributes %v", rule, r.Attributes)
		}
		if r.HasContent {
			t.Errorf("%q should have no content", rule)
		}
	}
}

func TestExtractTag(t *testing.T) {
	tests := []struct {
		rule string
		want string
	}{
		{"", "div"},
		{"a", "a"},
		{".post#test", "div"},
		{"section", "section"},
		{"article#post", "article"},
		{"tag-with-dash.post", "tag-with-dash"},
		{"tag_with_underscore#post", "tag_with_underscore"},
		{"   ul   ", "ul"},
	}

	for _, tt := range tests {
		if got := ExtractTag(tt.rule); got != tt.want {
			t.Errorf("ExtractTag(%q) = %q, want %q", tt.rule, got, tt.want)
		}
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		rule   string
		want   string
		wantOK bool
	}{
		{"#id", "id", true},
		{"a.class#id", "id", true},
		{"article.class#id-dash.post", "id-dash", true},
		{"article.class#id_underscore.post", "id_underscore", true},
		{"#first#second", "first", true},
		{"div", "", false},
		{"div#", "", false},
	}

	for _, tt := range tests {
		got, ok := ExtractID(tt.rule)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ExtractID(%q) = %q, %v; want %q, %v", tt.rule, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractClasses(t *testing.T) {
	tests := []struct {
		rule string
		want []string
	}{
		{".class", []string{"class"}},
		{"div.main", []string{"main"}},
		{"div.class-dash", []string{"class-dash"}},
		{"div.class_underscore", []string{"class_underscore"}},
		{"li.class1.class2#id.class3", []string{"class1", "class2", "class3"}},
		{"div.", []string{""}},
		{"p.a..b", []string{"a", "", "b"}},
		{"a[href=x.com]", []string{"com"}},
		{"div", nil},
	}

	for _, tt := range tests {
		if got := ExtractClasses(tt.rule); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExtractClasses(%q) = %v, want %v", tt.rule, got, tt.want)
		}
	}
}

func TestExtractContent(t *testing.T) {
	if got, ok := ExtractContent("p{Hello}"); !ok || got != "Hello" {
		t.Errorf("got %q, %v", got, ok)
	}
	if got, ok := ExtractContent("p{}"); !ok || got != "" {
		t.Errorf("empty braces = %q, %v", got, ok)
	}
	if _, ok := ExtractContent("p"); ok {
		t.Error("no braces should report absence")
	}
	if got, _ := ExtractContent("p{a}{b}"); got != "a}{b" {
		t.Errorf("greedy match = %q", got)
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		name        string
		rule        string
		wantTag     string
		wantAttrs   []tag.Attr
		wantContent string
		hasContent  bool
	}{
		{
			name:    "tag only",
			rule:    "section",
			wantTag: "section",
		},
		{
			name:      "class only",
			rule:      ".content",
			wantTag:   "div",
			wantAttrs: []tag.Attr{tag.Valued("class", "content")},
		},
		{
			name:      "id only",
			rule:      "#main",
			wantTag:   "div",
			wantAttrs: []tag.Attr{tag.Valued("id", "main")},
		},
		{
			name:      "several classes",
			rule:      "body.content.span12.box",
			wantTag:   "body",
			wantAttrs: []tag.Attr{tag.Valued("class", "content span12 box")},
		},
		{
			name:      "classes around id",
			rule:      "li.class1.class2#id.class3",
			wantTag:   "li",
			wantAttrs: []tag.Attr{tag.Valued("class", "class1 class2 class3"), tag.Valued("id", "id")},
		},
		{
			name:    "everything",
			rule:    "form.form-inline.small[name=new]#new",
			wantTag: "form",
			wantAttrs: []tag.Attr{
				tag.Valued("name", "new"),
				tag.Valued("class", "form-inline small"),
				tag.Valued("id", "new"),
			},
		},
		{
			name:      "selector overrides bracket",
			rule:      "a.btn#go[class=ignored,id=ignored,checked]",
			wantTag:   "a",
			wantAttrs: []tag.Attr{tag.Valued("class", "btn"), tag.Valued("id", "go"), tag.Isolated("checked")},
		},
		{
			name:        "content",
			rule:        "p.lead{Hello, world}",
			wantTag:     "p",
			wantAttrs:   []tag.Attr{tag.Valued("class", "lead")},
			wantContent: "Hello, world",
			hasContent:  true,
		},
		{
			name:    "dots and hashes inside brackets and braces",
			rule:    "a[href=http://example.com/#top]{See fig. 1 #2}",
			wantTag: "a",
			wantAttrs: []tag.Attr{
				tag.Valued("href", "http://example.com/#top"),
				tag.Valued("class", "com "),
				tag.Valued("id", "top"),
			},
			wantContent: "See fig. 1 #2",
			hasContent:  true,
		},
		{
			name:        "brackets inside content",
			rule:        "span{[1]}",
			wantTag:     "span",
			wantAttrs:   []tag.Attr{tag.Isolated("1")},
			wantContent: "[1]",
			hasContent:  true,
		},
		{
			name:      "leading brackets",
			rule:      "[type=text]input",
			wantTag:   "div",
			wantAttrs: []tag.Attr{tag.Valued("type", "text")},
		},
		{
			name:      "leading brackets before a name",
			rule:      "[a=b]span",
			wantTag:   "div",
			wantAttrs: []tag.Attr{tag.Valued("a", "b")},
		},
		{
			name:        "leading braces",
			rule:        "{x}p",
			wantTag:     "div",
			wantContent: "x",
			hasContent:  true,
		},
		{
			name:      "empty class names are kept",
			rule:      "p.a..b",
			wantTag:   "p",
			wantAttrs: []tag.Attr{tag.Valued("class", "a  b")},
		},
		{
			name:      "bare dot",
			rule:      "p.",
			wantTag:   "p",
			wantAttrs: []tag.Attr{tag.Valued("class", "")},
		},
		{
			name:      "surrounding whitespace",
			rule:      "  input[type=checkbox,checked]  ",
			wantTag:   "input",
			wantAttrs: []tag.Attr{tag.Valued("type", "checkbox"), tag.Isolated("checked")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRule(tt.rule)
			if err != nil {
				t.Fatalf("ParseRule(%q) error: %v", tt.rule, err)
			}
			if r.Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", r.Tag, tt.wantTag)
			}
			if got := r.Attributes.All(); !reflect.DeepEqual(got, tt.wantAttrs) && !(len(got) == 0 && len(tt.wantAttrs) == 0) {
				t.Errorf("Attributes = %v, want %v", got, tt.wantAttrs)
			}
			if r.Content != tt.wantContent || r.HasContent != tt.hasContent {
				t.Errorf("Content = %q (%v), want %q (%v)", r.Content, r.HasContent, tt.wantContent, tt.hasContent)
			}
		})
	}
}

func TestParseRuleInvalidAttributes(t *testing.T) {
	_, err := ParseRule("form[key=v=alue]")
	var te *tmerrors.TagError
	if !errors.As(err, &te) || te.Code != tmerrors.CodeInvalidRule {
		t.Fatalf("error = %v, want InvalidRule", err)
	}
	if te.Location == nil || te.Location.Input != "form[key=v=alue]" || te.Location.Column != 6 {
		t.Errorf("Location = %+v, want column 6 of the rule", te.Location)
	}
}

func TestRuleElement(t *testing.T) {
	r, err := ParseRule("a.btn[href=#]{Click}")
	if err != nil {
		t.Fatal(err)
	}
	e, err := r.Element()
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Render(); got != `<a href="#" class="btn">Click</a>` {
		t.Errorf("Render() = %q", got)
	}
}
