// Package errors provides structured, coded errors for tagmaker.
//
// Every failure the library can report is registered under a short code
// that maps to a category, a one-line message, and a longer explanation:
//
//	T001  BlankTag            element    tag is empty or whitespace
//	T002  ExistentAttribute   attribute  AddAttribute on an existing key
//	T003  UndefinedAttribute  attribute  GetAttribute on a missing key
//	T004  InvalidRule         rule       blank rule or ambiguous "a=b=c"
//	T005  UnknownAccessor     attribute  accessor verb not recognized
//	T010  ConfigInvalid       config     tagmaker.json failed validation
//	T011  ConfigNotFound      config     --config names a missing file
//	T020  InvalidArgument     cli        malformed command-line argument
//
// Callers match kinds with the standard library:
//
//	if errors.Is(err, tmerrors.ErrInvalidRule) { ... }
//
// # Usage
//
//	err := errors.New(errors.CodeInvalidRule).
//	    WithSubject("key=v=alue").
//	    WithInput("form[key=v=alue]", 5)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR T004: Invalid rule: key=v=alue
//	//
//	//   form[key=v=alue]
//	//        ^
//	//
//	//   Rules must not be blank, and an attribute segment may contain ...
package errors
