package errors

// Error codes for the HydroScript front end.
//
// Error code ranges:
// E0100-E0189: Parser errors
// E0190-E0199: Internal and tokenizer errors

const (
	// E0100: Token type does not match the grammar
	ErrorUnexpectedToken = "E0100"

	// E0101: Object literal repeats a key
	ErrorDuplicateKey = "E0101"

	// E0102: Second :options: directive in one file
	ErrorDuplicateOptions = "E0102"

	// E0103: Environment directive nested below the file root
	ErrorDirectiveNotAtRoot = "E0103"

	// E0104: Environment directive other than options
	ErrorUnknownDirective = "E0104"

	// E0105: static used outside a class body
	ErrorStaticOutsideClass = "E0105"

	// E0106: Assignment expression required
	ErrorExpectedAssignment = "E0106"

	// E0107: Class field defined with an operator other than =
	ErrorClassAssignOperator = "E0107"

	// E0108: Class body member of a disallowed kind
	ErrorInvalidClassMember = "E0108"

	// E0109: More than one constructor
	ErrorDuplicateConstructor = "E0109"

	// E0110: Constructor declared with >>-
	ErrorAsyncConstructor = "E0110"

	// E0111: new applied to something other than a call
	ErrorNewWithoutCall = "E0111"

	// E0112: Statement found where a value is required
	ErrorExpectedExpression = "E0112"

	// E0113: Nesting exceeds the configured depth
	ErrorNestingTooDeep = "E0113"

	// E0190: Parser invariant violated
	ErrorInternal = "E0190"

	// E0191: Source could not be tokenized
	ErrorTokenize = "E0191"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "Token does not fit the grammar at this point"
	case ErrorDuplicateKey:
		return "Object literal declares the same key twice"
	case ErrorDuplicateOptions:
		return "Options directive is already set"
	case ErrorDirectiveNotAtRoot:
		return "Environment directives must be in the root of a file"
	case ErrorUnknownDirective:
		return "Unknown environment directive"
	case ErrorStaticOutsideClass:
		return "Static property declaration outside of a class body"
	case ErrorExpectedAssignment:
		return "Assignment expression required"
	case ErrorClassAssignOperator:
		return "Class field definitions must use ="
	case ErrorInvalidClassMember:
		return "Class body member is not allowed"
	case ErrorDuplicateConstructor:
		return "Class declares more than one constructor"
	case ErrorAsyncConstructor:
		return "Constructor cannot be asynchronous"
	case ErrorNewWithoutCall:
		return "new must be applied to a function call"
	case ErrorExpectedExpression:
		return "Expression required but a statement was found"
	case ErrorNestingTooDeep:
		return "Source nesting exceeds the parser depth limit"
	case ErrorInternal:
		return "Internal parser error"
	case ErrorTokenize:
		return "Source could not be tokenized"
	default:
		return "Unknown error code"
	}
}

// GetErrorHelp returns a short fix-it hint for codes that have one.
func GetErrorHelp(code string) string {
	switch code {
	case ErrorDuplicateKey:
		return "remove or rename one of the entries"
	case ErrorDuplicateOptions:
		return "merge both directives into a single :options: { ... }"
	case ErrorDirectiveNotAtRoot:
		return "move the directive to the top level of the file"
	case ErrorStaticOutsideClass:
		return "static declarations are only valid directly inside class { ... }"
	case ErrorClassAssignOperator:
		return "use `name = value` for class fields"
	case ErrorInvalidClassMember:
		return "class bodies accept `name`, `name = value`, `static name = value` and one constructor"
	case ErrorAsyncConstructor:
		return "declare the constructor with >- instead of >>-"
	case ErrorNewWithoutCall:
		return "call the class: new Name(...)"
	default:
		return ""
	}
}

// IsInternal reports whether the code marks an implementation bug.
func IsInternal(code string) bool {
	return code == ErrorInternal
}
