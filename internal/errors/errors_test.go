package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "blank tag",
			code:    CodeBlankTag,
			wantMsg: "Blank tag",
			wantCat: CategoryElement,
		},
		{
			name:    "existent attribute",
			code:    CodeExistentAttribute,
			wantMsg: "Attribute already exists",
			wantCat: CategoryAttribute,
		},
		{
			name:    "invalid rule",
			code:    CodeInvalidRule,
			wantMsg: "Invalid rule",
			wantCat: CategoryRule,
		},
		{
			name:    "unknown error code",
			code:    "T999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "tagmaker.json")
	if err.Message != `file "tagmaker.json" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "tagmaker.json" not found`)
	}
	if err.Error() != `file "tagmaker.json" not found` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestTagError_Error(t *testing.T) {
	err := New(CodeUndefinedAttribute).WithSubject("id")
	if got, want := err.Error(), "T003: Attribute does not exist: id"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err2 := &TagError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestTagError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same code", New(CodeBlankTag), ErrBlankTag, true},
		{"different code", New(CodeBlankTag), ErrInvalidRule, false},
		{"wrapped", fmt.Errorf("create: %w", New(CodeInvalidRule)), ErrInvalidRule, true},
		{"accessor is undefined attribute", New(CodeUnknownAccessor), ErrUndefinedAttribute, true},
		{"undefined attribute is not accessor", New(CodeUndefinedAttribute), New(CodeUnknownAccessor), false},
		{"plain error", stderrors.New("boom"), ErrBlankTag, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stderrors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagError_Wrap(t *testing.T) {
	inner := stderrors.New("read failed")
	outer := New(CodeConfigInvalid).Wrap(inner)

	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
	if !stderrors.Is(outer, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeConfigInvalid) != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	te := New(CodeBlankTag)
	if FromError(te, CodeConfigInvalid) != te {
		t.Error("FromError should return TagError as-is")
	}

	stdErr := stderrors.New("test error")
	result := FromError(stdErr, CodeConfigInvalid)
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
	if result.Code != CodeConfigInvalid {
		t.Errorf("Code = %q, want %q", result.Code, CodeConfigInvalid)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(fmt.Errorf("outer: %w", New(CodeExistentAttribute))); got != CodeExistentAttribute {
		t.Errorf("CodeOf() = %q, want %q", got, CodeExistentAttribute)
	}
	if got := CodeOf(stderrors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Errorf("CodeOf(nil) = %q, want empty", got)
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{"nil location", nil, ""},
		{"with column", &Location{Input: "a[x=y=z]", Column: 3}, `"a[x=y=z]":3`},
		{"without column", &Location{Input: "  "}, `"  "`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeInvalidRule).
		WithSubject("key=v=alue").
		WithInput("form[key=v=alue]", 6).
		WithSuggestion("Quote-free values cannot contain '='")

	out := err.Format()

	for _, want := range []string{
		"ERROR T004: Invalid rule: key=v=alue",
		"  form[key=v=alue]\n",
		"       ^\n",
		"at most one '='",
		"Hint: Quote-free values",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New(CodeInvalidRule).WithSubject("a=b=c").WithInput("p[a=b=c]", 3)
	want := `"p[a=b=c]":3: T004: Invalid rule: a=b=c`
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestPrintError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	PrintError(&buf, New(CodeBlankTag))
	if !strings.Contains(buf.String(), "ERROR T001: Blank tag") {
		t.Errorf("PrintError(TagError) = %q", buf.String())
	}

	buf.Reset()
	PrintError(&buf, stderrors.New("boom"))
	if !strings.Contains(buf.String(), "ERROR: boom") {
		t.Errorf("PrintError(plain) = %q", buf.String())
	}
}

func TestRegistryComplete(t *testing.T) {
	for _, code := range GetAllCodes() {
		tmpl, ok := GetTemplate(code)
		if !ok {
			t.Fatalf("GetTemplate(%q) not found", code)
		}
		if tmpl.Message == "" || tmpl.Detail == "" || tmpl.Category == "" {
			t.Errorf("template %q is incomplete: %+v", code, tmpl)
		}
	}
}
