package types

// ErrorKind is the closed set of conversion failures.
//
// IMPORTANT: numeric values are part of the external contract (they are
// reported as the error code). Add new kinds at the END only.
type ErrorKind int

const (
	KindSyntax ErrorKind = iota // Generic syntax error

	// Resource
	KindOutOfMemory // Output buffer exceeded its limit

	// Structural
	KindMissingLBrace     // '{' required here
	KindPrefixSuperscript // '^' with nothing before it
	KindPrefixSubscript   // '_' with nothing before it
	KindMisplacedColumnSeparator
	KindMoreRBraceThanLBrace
	KindControlNameTooLong
	KindMisplacedRowSeparator
	KindUndefinedControlSequence
	KindMisplacedInlineFormula
	KindMissingParameter
	KindMoreLBraceThanRBrace

	// Scripting semantics
	KindDoubleSuperscript
	KindDoubleSubscript
	KindUseSubscriptFirst // x^a_b: the element is <msubsup>, subscript goes first

	KindInternal
	KindMissingEndTag

	// Environments
	KindUndefinedEnvironment
	KindUnknownAlignmentCharacter
	KindMissingBegin
	KindMissingEnd
	KindMismatchedEnvironment
	KindTooManyColumns

	KindUnknownAttribute
	KindMisplacedLimits
	KindNoCommandAllowed
	KindMissingFenceParameter
	KindNotMathMode
	KindMissingRightBracket
	KindMissingDollar
	KindMissingLeftFence
	KindMissingRightFence
	KindAmbiguousScript
	KindMisplacedEqno
	KindDuplicateEqno
	KindMissingColumnAlignment
	KindMissingSubSupBase
	KindUnknownCharacter
	KindUnhandledMathType

	// Added at end to preserve existing codes
	KindNestingTooDeep
	KindNothingToConvert
	KindEmptyOutput
)

var kindNames = [...]string{
	KindSyntax:                    "SYNTAX",
	KindOutOfMemory:               "OUT_OF_MEMORY",
	KindMissingLBrace:             "MISSING_LBRACE",
	KindPrefixSuperscript:         "PREFIX_SUPERSCRIPT",
	KindPrefixSubscript:           "PREFIX_SUBSCRIPT",
	KindMisplacedColumnSeparator:  "MISPLACED_COLUMN_SEPARATOR",
	KindMoreRBraceThanLBrace:      "MORE_RBRACE_THAN_LBRACE",
	KindControlNameTooLong:        "CONTROL_NAME_TOO_LONG",
	KindMisplacedRowSeparator:     "MISPLACED_ROW_SEPARATOR",
	KindUndefinedControlSequence:  "UNDEFINED_CONTROL_SEQUENCE",
	KindMisplacedInlineFormula:    "MISPLACED_INLINE_FORMULA",
	KindMissingParameter:          "MISSING_PARAMETER",
	KindMoreLBraceThanRBrace:      "MORE_LBRACE_THAN_RBRACE",
	KindDoubleSuperscript:         "DOUBLE_SUPERSCRIPT",
	KindDoubleSubscript:           "DOUBLE_SUBSCRIPT",
	KindUseSubscriptFirst:         "USE_SUBSCRIPT_FIRST",
	KindInternal:                  "INTERNAL",
	KindMissingEndTag:             "MISSING_END_TAG",
	KindUndefinedEnvironment:      "UNDEFINED_ENVIRONMENT",
	KindUnknownAlignmentCharacter: "UNKNOWN_ALIGNMENT_CHARACTER",
	KindMissingBegin:              "MISSING_BEGIN",
	KindMissingEnd:                "MISSING_END",
	KindMismatchedEnvironment:     "MISMATCHED_ENVIRONMENT",
	KindTooManyColumns:            "TOO_MANY_COLUMNS",
	KindUnknownAttribute:          "UNKNOWN_ATTRIBUTE",
	KindMisplacedLimits:           "MISPLACED_LIMITS",
	KindNoCommandAllowed:          "NO_COMMAND_ALLOWED",
	KindMissingFenceParameter:     "MISSING_FENCE_PARAMETER",
	KindNotMathMode:               "NOT_MATH_MODE",
	KindMissingRightBracket:       "MISSING_RIGHT_BRACKET",
	KindMissingDollar:             "MISSING_DOLLAR",
	KindMissingLeftFence:          "MISSING_LEFT_FENCE",
	KindMissingRightFence:         "MISSING_RIGHT_FENCE",
	KindAmbiguousScript:           "AMBIGUOUS_SCRIPT",
	KindMisplacedEqno:             "MISPLACED_EQNO",
	KindDuplicateEqno:             "DUPLICATE_EQNO",
	KindMissingColumnAlignment:    "MISSING_COLUMN_ALIGNMENT",
	KindMissingSubSupBase:         "MISSING_SUBSUP_BASE",
	KindUnknownCharacter:          "UNKNOWN_CHARACTER",
	KindUnhandledMathType:         "UNHANDLED_MATH_TYPE",
	KindNestingTooDeep:            "NESTING_TOO_DEEP",
	KindNothingToConvert:          "NOTHING_TO_CONVERT",
	KindEmptyOutput:               "EMPTY_OUTPUT",
}

// String returns the stable upper-snake name of the kind.
func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Code returns the numeric error code reported to callers.
func (k ErrorKind) Code() int {
	return int(k)
}

// Kinds returns every defined kind in code order.
func Kinds() []ErrorKind {
	kinds := make([]ErrorKind, len(kindNames))
	for i := range kindNames {
		kinds[i] = ErrorKind(i)
	}
	return kinds
}
