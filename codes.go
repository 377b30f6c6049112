// codes.go — built-in parse failure codes.
//
// Conventions (documented, not enforced here):
//   - Codes are lowercase snake_case ASCII.
//   - Parsers may define their own codes; the core attaches no policy to them
//     beyond the helpers in predicates.go.
package parsectx

const (
	// CodeExpected: the input did not contain a required value.
	CodeExpected Code = "expected"
	// CodeInvalid: a value was present but could not be interpreted.
	CodeInvalid Code = "invalid"
	// CodeIncomplete: the input ended before the parse could finish. Callers
	// streaming input may retry once Needed() more bytes are available.
	CodeIncomplete Code = "incomplete"
	// CodeTrailing: the parse finished but input remained.
	CodeTrailing Code = "trailing"
	// CodeForeign: a non-parse error was adopted by From or Wrap.
	CodeForeign Code = "foreign"
)

var allBuiltinCodes = []Code{
	CodeExpected,
	CodeInvalid,
	CodeIncomplete,
	CodeTrailing,
	CodeForeign,
}

var builtinCodeSet = map[Code]struct{}{
	CodeExpected:   {},
	CodeInvalid:    {},
	CodeIncomplete: {},
	CodeTrailing:   {},
	CodeForeign:    {},
}

// BuiltinCodes returns a copy of the built-in codes in a stable order.
func BuiltinCodes() []Code {
	out := make([]Code, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is one of the built-in codes.
func (c Code) IsBuiltin() bool {
	_, ok := builtinCodeSet[c]
	return ok
}
