package tables

import "github.com/pgfjr/tex2mml/core/types"

var messages = map[types.ErrorKind]string{
	types.KindSyntax:                    "Syntax error",
	types.KindOutOfMemory:               "Out of memory",
	types.KindMissingLBrace:             "Missing '{'",
	types.KindPrefixSuperscript:         "Illegal prefix superscript: use the '\\lsup' command",
	types.KindPrefixSubscript:           "Illegal prefix subscript: use the '\\lsub' command",
	types.KindMisplacedColumnSeparator:  "Misplaced column separator",
	types.KindMoreRBraceThanLBrace:      "Syntax error: more '}' than '{'",
	types.KindControlNameTooLong:        "Control name too long: maximum is 32",
	types.KindMisplacedRowSeparator:     "Misplaced row separator",
	types.KindUndefinedControlSequence:  "Undefined control sequence",
	types.KindMisplacedInlineFormula:    "Misplaced inline formula",
	types.KindMissingParameter:          "Missing parameter",
	types.KindMoreLBraceThanRBrace:      "Syntax error: more '{' than '}'",
	types.KindDoubleSuperscript:         "Double superscript",
	types.KindDoubleSubscript:           "Double subscript",
	types.KindUseSubscriptFirst:         "Use subscript first as the element is <msubsup>",
	types.KindInternal:                  "Internal error",
	types.KindMissingEndTag:             "Missing end tag",
	types.KindUndefinedEnvironment:      "Undefined environment type",
	types.KindUnknownAlignmentCharacter: "Unknown alignment character",
	types.KindMissingBegin:              "Missing \\begin",
	types.KindMissingEnd:                "Missing \\end",
	types.KindMismatchedEnvironment:     "Mismatched environment type",
	types.KindTooManyColumns:            "Too many columns",
	types.KindUnknownAttribute:          "Unknown attribute",
	types.KindMisplacedLimits:           "Limit controls must follow a math operator",
	types.KindNoCommandAllowed:          "Command not allowed here",
	types.KindMissingFenceParameter:     "Missing fence parameter",
	types.KindNotMathMode:               "Not in math mode",
	types.KindMissingRightBracket:       "Missing ']'",
	types.KindMissingDollar:             "Missing '$'",
	types.KindMissingLeftFence:          "Missing \\left",
	types.KindMissingRightFence:         "Missing \\right",
	types.KindAmbiguousScript:           "Ambiguous script; use \\left and \\right",
	types.KindMisplacedEqno:             "Equation number not allowed here",
	types.KindDuplicateEqno:             "Duplicate equation number",
	types.KindMissingColumnAlignment:    "Missing column alignment",
	types.KindMissingSubSupBase:         "Missing subscript/superscript base",
	types.KindUnknownCharacter:          "Internal error: Unknown character",
	types.KindUnhandledMathType:         "Internal error: unhandled math type",
	types.KindNestingTooDeep:            "Nesting too deep",
	types.KindNothingToConvert:          "Nothing to convert",
	types.KindEmptyOutput:               "Empty",
}

// Message returns the human-readable text for kind.
func Message(kind types.ErrorKind) string {
	if msg, ok := messages[kind]; ok {
		return msg
	}
	return messages[types.KindInternal]
}
