package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Element Errors (T001)
	// ============================================

	CodeBlankTag: {
		Category: CategoryElement,
		Message:  "Blank tag",
		Detail:   "An element needs a tag name. Empty and whitespace-only tags are rejected when the element is created or retagged.",
	},

	// ============================================
	// Attribute Errors (T002-T005)
	// ============================================

	CodeExistentAttribute: {
		Category: CategoryAttribute,
		Message:  "Attribute already exists",
		Detail:   "AddAttribute refuses to overwrite an existing attribute. Use SetAttribute to override it.",
	},
	CodeUndefinedAttribute: {
		Category: CategoryAttribute,
		Message:  "Attribute does not exist",
		Detail:   "The attribute is not present on the element. Use LookupAttribute to read it without an error.",
	},
	CodeUnknownAccessor: {
		Category: CategoryAttribute,
		Message:  "Unknown accessor",
		Detail:   "Accessors are named get_, set_, append_, prepend_ or add_ followed by the attribute name.",
	},

	// ============================================
	// Rule Errors (T004)
	// ============================================

	CodeInvalidRule: {
		Category: CategoryRule,
		Message:  "Invalid rule",
		Detail:   "Rules must not be blank, and an attribute segment inside [...] may contain at most one '='.",
	},

	// ============================================
	// Config Errors (T010-T019)
	// ============================================

	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "tagmaker.json could not be read or contains an invalid value.",
	},
	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No tagmaker.json was found at the given path.",
	},

	// ============================================
	// CLI Errors (T020-T029)
	// ============================================

	CodeInvalidArgument: {
		Category: CategoryCLI,
		Message:  "Invalid argument",
		Detail:   "A command-line argument could not be parsed.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
