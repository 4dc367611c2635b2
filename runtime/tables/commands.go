package tables

const (
	overAccent       = "<mover accent='true'>"
	overDecoration   = "<mover accent='false'>"
	underAccent      = "<munder accentunder='true'>"
	underDecoration  = "<munder accentunder='false'>"
	textTagOff       = "</mtext>"
	mathFontTagOff   = "</mi>"
	multiscriptsOn   = "<mmultiscripts>"
	multiscriptsOff  = "</mmultiscripts>"
	labeledRowTagOff = "</mtd><mtd>"
)

var commandList = []Command{
	{"Overleftarrow", CmdAccent, ParamOne, overAccent, "<mo stretchy='true'>&#x21D0;</mo></mover>"},
	{"Overleftrightarrow", CmdAccent, ParamOne, overAccent, "<mo stretchy='true'>&#x21D4;</mo></mover>"},
	{"Overrightarrow", CmdAccent, ParamOne, overAccent, "<mo stretchy='true'>&#x21D2;</mo></mover>"},
	{"actuarial", CmdMenclose, ParamOne, "<menclose notation='actuarial'>", "</menclose>"},
	{"acute", CmdAccent, ParamOne, overAccent, "<mo>&#x00B4;</mo></mover>"},
	{"bar", CmdAccent, ParamOne, overAccent, "<mo stretchy='false'>&#x00AF;</mo></mover>"},
	{"begin", CmdBegin, ParamSpecial, "", ""},
	{"binom", CmdBinom, ParamTwo, "<mfenced><mrow><mfrac linethickness='0'>", "</mfrac></mrow></mfenced>"},
	{"box", CmdMenclose, ParamOne, "<menclose notation='box'>", "</menclose>"},
	{"breve", CmdAccent, ParamOne, overAccent, "<mo>&#x02D8;</mo></mover>"},
	{"cancel", CmdMenclose, ParamOne, "<menclose notation='updiagonalstrike'>", "</menclose>"},
	{"cfrac", CmdCfrac, ParamSpecial, "<mfrac>", "</mstyle></mfrac>"},
	{"check", CmdAccent, ParamOne, overAccent, "<mo>&#x02C7;</mo></mover>"},
	{"ddddot", CmdAccent, ParamOne, overAccent, "<mo>&#x00A8;&#x00A8;</mo></mover>"},
	{"dddot", CmdAccent, ParamOne, overAccent, "<mo>&#x20DB;</mo></mover>"},
	{"ddot", CmdAccent, ParamOne, overAccent, "<mo>&#x00A8;</mo></mover>"},
	{"dfrac", CmdMfrac, ParamTwo, "<mstyle displaystyle='true' scriptlevel='0'><mfrac>", "</mfrac></mstyle>"},
	{"dot", CmdAccent, ParamOne, overAccent, "<mo>&#x02D9;</mo></mover>"},
	{"end", CmdEnd, ParamSpecial, "", ""},
	{"eqno", CmdEqno, ParamSpecial, "<mtable><mlabeledtr><mtd>", labeledRowTagOff},
	{"frac", CmdFrac, ParamTwo, "<mfrac>", "</mfrac>"},
	{"func", CmdFunc, ParamPlain, "<mi>", "</mi>"},
	{"grave", CmdAccent, ParamOne, overAccent, "<mo>&#x0300;</mo></mover>"},
	{"hat", CmdAccent, ParamOne, overAccent, "<mo>&#x02c6;</mo></mover>"},
	{"hfill", CmdHfill, ParamSpecial, "", ""},
	{"hphantom", CmdPhantom, ParamOne, "<mphantom><mpadded height='0%' depth='0'>", "</mpadded></mphantom>"},
	{"hungarumlaut", CmdAccent, ParamOne, overAccent, "<mo>&#x02DD;</mo></mover>"},
	{"left", CmdLeft, ParamSpecial, "<mfenced>", "</mrow></mfenced>"},
	{"leqno", CmdLeqno, ParamSpecial, "<mtable side='left'><mlabeledtr><mtd>", labeledRowTagOff},
	{"limits", CmdLimits, ParamSpecial, "", ""},
	{"longdiv", CmdMenclose, ParamOne, "<menclose notation='longdiv'>", "</menclose>"},
	{"lsub", CmdLsub, ParamSpecial, multiscriptsOn, multiscriptsOff},
	{"lsubsup", CmdLsubsup, ParamSpecial, multiscriptsOn, multiscriptsOff},
	{"lsup", CmdLsup, ParamSpecial, multiscriptsOn, multiscriptsOff},
	{"mathbb", CmdMathFont, ParamPlain, "<mi mathvariant='double-struck'>", mathFontTagOff},
	{"mathbf", CmdMathFont, ParamPlain, "<mi mathvariant='bold'>", mathFontTagOff},
	{"mathbfrak", CmdMathFont, ParamPlain, "<mi mathvariant='bold-fraktur'>", mathFontTagOff},
	{"mathbi", CmdMathFont, ParamPlain, "<mi mathvariant='bold-italic'>", mathFontTagOff},
	{"mathbin", CmdMathBin, ParamPlain, "<mo lspace='.222222em' rspace='.222222em'>", "</mo>"},
	{"mathbsc", CmdMathFont, ParamPlain, "<mi mathvariant='bold-script'>", mathFontTagOff},
	{"mathbss", CmdMathFont, ParamPlain, "<mi mathvariant='bold-sans-serif'>", mathFontTagOff},
	{"mathcal", CmdMathFont, ParamPlain, "<mi mathvariant='script'>", mathFontTagOff},
	{"mathfrak", CmdMathFont, ParamPlain, "<mi mathvariant='fraktur'>", mathFontTagOff},
	{"mathit", CmdMathFont, ParamPlain, "<mi mathvariant='italic'>", mathFontTagOff},
	{"mathop", CmdMathOp, ParamPlain, "<mo>", "</mo>"},
	{"mathord", CmdMathOrd, ParamPlain, "<mo lspace='0' rspace='0'>", "</mo>"},
	{"mathrel", CmdMathRel, ParamPlain, "<mo lspace='.27777em' rspace='.27777em'>", "</mo>"},
	{"mathring", CmdAccent, ParamOne, overAccent, "<mo>&#x02DA;</mo></mover>"},
	{"mathrm", CmdMathFont, ParamPlain, "<mi mathvariant='normal'>", mathFontTagOff},
	{"mathsc", CmdMathFont, ParamPlain, "<mi mathvariant='script'>", mathFontTagOff},
	{"mathsf", CmdMathFont, ParamPlain, "<mi mathvariant='sans-serif'>", mathFontTagOff},
	{"mathss", CmdMathFont, ParamPlain, "<mi mathvariant='sans-serif'>", mathFontTagOff},
	{"mathssbi", CmdMathFont, ParamPlain, "<mi mathvariant='sans-serif-bold-italic'>", mathFontTagOff},
	{"mathssi", CmdMathFont, ParamPlain, "<mi mathvariant='sans-serif-italic'>", mathFontTagOff},
	{"mathstrut", CmdStrut, ParamSpecial, "<mphantom><mpadded width='0%' lspace='0'><mo>(</mo></mpadded></mphantom>", ""},
	{"mathtt", CmdMathFont, ParamPlain, "<mi mathvariant='monospace'>", mathFontTagOff},
	{"mi", CmdMi, ParamPlain, "<mi>", "</mi>"},
	{"mn", CmdMn, ParamPlain, "<mn>", "</mn>"},
	{"mo", CmdMo, ParamPlain, "<mo>", "</mo>"},
	{"ms", CmdMathString, ParamSpecial, "<ms>", "</ms>"},
	{"nolimits", CmdNolimits, ParamSpecial, "", ""},
	{"overbrace", CmdUnderOverBrace, ParamSpecial, overDecoration, "<mo stretchy='true'>&#xFE37;</mo></mover>"},
	{"overbrack", CmdAccent, ParamOne, overDecoration, "<mo stretchy='true'>&#x23B4;</mo></mover>"},
	{"overleftarrow", CmdAccent, ParamOne, overAccent, "<mo stretchy='true'>&#x2190;</mo></mover>"},
	{"overleftrightarrow", CmdAccent, ParamOne, overAccent, "<mo stretchy='true'>&#x2194;</mo></mover>"},
	{"overline", CmdAccent, ParamOne, overDecoration, "<mo stretchy='true'>&#x00AF;</mo></mover>"},
	{"overparen", CmdAccent, ParamOne, overDecoration, "<mo stretchy='true'>&#x2322;</mo></mover>"},
	{"overrightarrow", CmdAccent, ParamOne, overAccent, "<mo stretchy='true'>&#x2192;</mo></mover>"},
	{"phantom", CmdPhantom, ParamOne, "<mphantom>", "</mphantom>"},
	{"qdot", CmdAccent, ParamOne, overAccent, "<mo>&#x00A8;&#x00A8;</mo></mover>"},
	{"right", CmdRight, ParamSpecial, "", ""},
	{"sqrt", CmdSqrt, ParamSpecial, "<msqrt>", "</msqrt>"},
	{"stack", CmdStack, ParamTwo, "<mfrac linethickness='0'>", "</mfrac>"},
	{"stackrel", CmdStackrel, ParamSpecial, "<mover>", "</mover>"},
	{"strut", CmdStrut, ParamSpecial, "<mspace width='0pt' height='8.5pt' depth='3.5pt'/>", ""},
	{"tbinom", CmdBinom, ParamTwo, "<mstyle scriptlevel='1'><mfenced><mrow><mfrac linethickness='0'>", "</mfrac></mrow></mfenced></mstyle>"},
	{"tdot", CmdAccent, ParamOne, overAccent, "<mo>&#x20DB;</mo></mover>"},
	{"text", CmdText, ParamSpecial, "<mtext>", textTagOff},
	{"textbf", CmdText, ParamSpecial, "<mtext mathvariant='bold'>", textTagOff},
	{"textbi", CmdText, ParamSpecial, "<mtext mathvariant='bold-italic'>", textTagOff},
	{"textbsf", CmdText, ParamSpecial, "<mtext mathvariant='bold-sans-serif'>", textTagOff},
	{"textit", CmdText, ParamSpecial, "<mtext mathvariant='italic'>", textTagOff},
	{"textrm", CmdText, ParamSpecial, "<mtext>", textTagOff},
	{"textsf", CmdText, ParamSpecial, "<mtext mathvariant='sans-serif'>", textTagOff},
	{"textsfbi", CmdText, ParamSpecial, "<mtext mathvariant='sans-serif-bold-italic'>", textTagOff},
	{"textsfit", CmdText, ParamSpecial, "<mtext mathvariant='sans-serif-italic'>", textTagOff},
	{"texttt", CmdText, ParamSpecial, "<mtext mathvariant='monospace'>", textTagOff},
	{"tfrac", CmdMfrac, ParamTwo, "<mstyle displaystyle='false' scriptlevel='0'><mfrac>", "</mfrac></mstyle>"},
	{"tilde", CmdAccent, ParamOne, overAccent, "<mo stretchy='false'>&#x02DC;</mo></mover>"},
	{"underbrace", CmdUnderOverBrace, ParamSpecial, underDecoration, "<mo stretchy='true'>&#xFE38;</mo></munder>"},
	{"underbrack", CmdAccent, ParamOne, underDecoration, "<mo stretchy='true'>&#x23B5;</mo></munder>"},
	{"underleftarrow", CmdAccent, ParamOne, underAccent, "<mo stretchy='true'>&#x2190;</mo></munder>"},
	{"underleftrightarrow", CmdAccent, ParamOne, underAccent, "<mo stretchy='true'>&#x2194;</mo></munder>"},
	{"underline", CmdAccent, ParamOne, underDecoration, "<mo stretchy='true'>&#x0332;</mo></munder>"},
	{"underparen", CmdAccent, ParamOne, underDecoration, "<mo stretchy='true'>&#x23DD;</mo></munder>"},
	{"underrightarrow", CmdAccent, ParamOne, underAccent, "<mo stretchy='true'>&#x2192;</mo></munder>"},
	{"undertilde", CmdAccent, ParamOne, underDecoration, "<mo stretchy='true'>&#x02DC;</mo></munder>"},
	{"vec", CmdAccent, ParamOne, overAccent, "<mo stretchy='false'>&#x2192;</mo></mover>"},
	{"vphantom", CmdPhantom, ParamOne, "<mphantom><mpadded width='0%' lspace='0'>", "</mpadded></mphantom>"},
	{"widehat", CmdAccent, ParamOne, overAccent, "<mo stretchy='true'>&#x0302;</mo></mover>"},
	{"widetilde", CmdAccent, ParamOne, overAccent, "<mo stretchy='true'>&#x02DC;</mo></mover>"},
	{"widevec", CmdAccent, ParamOne, overAccent, "<mo stretchy='true'>&#x2192;</mo></mover>"},
	{"xleftarrow", CmdExtArrow, ParamSpecial, "<mo stretchy='true'>&#x2190;</mo>", "</mover>"},
	{"xleftrightarrow", CmdExtArrow, ParamSpecial, "<mo stretchy='true'>&#x2194;</mo>", "</mover>"},
	{"xrightarrow", CmdExtArrow, ParamSpecial, "<mo stretchy='true'>&#x2192;</mo>", "</mover>"},
}
