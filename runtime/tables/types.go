// Package tables holds the fixed TeX vocabulary recognised by the converter:
// commands, entities, functions, environments, fences, symbols and math
// variants, plus the human-readable error messages.
//
// All tables are immutable maps built once at package initialisation.
// Lookups are exact-match and case-sensitive.
package tables

import "fmt"

// MathType classifies the role of a symbol, entity or function.
type MathType int

const (
	MathUnknown MathType = iota
	MathIdent
	MathDigit
	MathOrd
	MathBin
	MathUnary
	MathBinUnary
	MathRel
	MathLeftFence
	MathRightFence
	MathFence
	MathMovableLimits // sum-like: stacked in display style, corner scripts inline
	MathLimits        // integral-like: corner scripts unless \limits
	MathFunc
	MathFuncLimits
	MathText
	MathPunct
)

var mathTypeNames = [...]string{
	MathUnknown:       "unknown",
	MathIdent:         "ident",
	MathDigit:         "digit",
	MathOrd:           "ord",
	MathBin:           "bin",
	MathUnary:         "unary",
	MathBinUnary:      "bin_unary",
	MathRel:           "rel",
	MathLeftFence:     "left_fence",
	MathRightFence:    "right_fence",
	MathFence:         "fence",
	MathMovableLimits: "movable_limits",
	MathLimits:        "limits",
	MathFunc:          "func",
	MathFuncLimits:    "func_limits",
	MathText:          "text",
	MathPunct:         "punct",
}

func (m MathType) String() string {
	if m < 0 || int(m) >= len(mathTypeNames) {
		return fmt.Sprintf("MathType(%d)", int(m))
	}
	return mathTypeNames[m]
}

// IsFence reports whether the type is any kind of delimiter.
func (m MathType) IsFence() bool {
	return m == MathLeftFence || m == MathRightFence || m == MathFence
}

// HasLimits reports whether scripts attached to this type go through
// limits placement.
func (m MathType) HasLimits() bool {
	return m == MathLimits || m == MathMovableLimits || m == MathFuncLimits
}

// CommandID identifies the renderer a command dispatches to.
type CommandID int

const (
	CmdUnknown CommandID = iota
	CmdAccent
	CmdBegin
	CmdBinom
	CmdCfrac
	CmdEnd
	CmdEqno
	CmdExtArrow
	CmdFrac
	CmdFunc
	CmdHfill
	CmdLeft
	CmdLeqno
	CmdLimits
	CmdLsub
	CmdLsubsup
	CmdLsup
	CmdMathBin
	CmdMathFont
	CmdMathOp
	CmdMathOrd
	CmdMathRel
	CmdMathString
	CmdMenclose
	CmdMfrac
	CmdMi
	CmdMn
	CmdMo
	CmdNolimits
	CmdPhantom
	CmdRight
	CmdSqrt
	CmdStack
	CmdStackrel
	CmdStrut
	CmdText
	CmdUnderOverBrace
)

// ParamKind tells how a command reads its arguments.
type ParamKind int

const (
	// ParamPlain reads one token or a braced group as literal font content.
	ParamPlain ParamKind = iota
	// ParamOne wraps a single math argument in TagOn/TagOff.
	ParamOne
	// ParamTwo wraps two math arguments in TagOn/TagOff.
	ParamTwo
	// ParamSpecial has a dedicated renderer.
	ParamSpecial
)

// Command is a control sequence with its own rendering rule.
type Command struct {
	Name   string
	ID     CommandID
	Param  ParamKind
	TagOn  string
	TagOff string
}

// Entity is a control sequence rendered as a single character.
type Entity struct {
	Name string
	Code rune
	Type MathType
}

// Function is a control sequence rendered as an upright identifier.
type Function struct {
	Name   string
	Output string
	Type   MathType
}

// EnvironmentID identifies an environment for \begin/\end matching.
type EnvironmentID int

const (
	EnvUnknown EnvironmentID = iota
	EnvArray
	EnvBmatrix
	EnvBbraceMatrix
	EnvCases
	EnvEqnarray
	EnvMatrix
	EnvPmatrix
	EnvVmatrix
	EnvDoubleVmatrix
)

// Environment describes a \begin{name} ... \end{name} block.
type Environment struct {
	Name   string
	ID     EnvironmentID
	TagOn  string
	TagOff string
	// MaxColumns caps the cells per row; zero means unlimited.
	MaxColumns int
	// ColumnSpec is set when the environment takes an {lcr} argument.
	ColumnSpec bool
}

// Fence is a delimiter accepted after \left or \right.
type Fence struct {
	Name string
	Code rune // 0 renders as an empty delimiter
	Type MathType
}

// Output returns the attribute value for the delimiter.
func (f Fence) Output() string {
	switch {
	case f.Code == 0:
		return ""
	case f.Code == '<':
		return "&lt;"
	case f.Code == '>':
		return "&gt;"
	case f.Code == '&':
		return "&amp;"
	case f.Code == '\'':
		return "&apos;"
	case f.Code < 256:
		return string(f.Code)
	default:
		return fmt.Sprintf("&#x%x;", f.Code)
	}
}

// Symbol is a punctuation character or control symbol.
type Symbol struct {
	Name string
	// Literal is used inside font and text runs.
	Literal string
	// Element is the standalone MathML element.
	Element string
	Type    MathType
}

// ControlKind is the class a control name resolved to.
type ControlKind int

const (
	ControlUnknown ControlKind = iota
	ControlCommand
	ControlEntity
	ControlFunction
)

func (k ControlKind) String() string {
	switch k {
	case ControlCommand:
		return "command"
	case ControlEntity:
		return "entity"
	case ControlFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Control is the result of resolving a control name.
type Control struct {
	Kind     ControlKind
	Name     string
	Command  *Command
	Entity   *Entity
	Function *Function
}
