package tables

var functionList = []Function{
	{"Pr", "Pr", MathFuncLimits},
	{"arccos", "arccos", MathFunc},
	{"arcsin", "arcsin", MathFunc},
	{"arctan", "arctan", MathFunc},
	{"arg", "arg", MathFunc},
	{"cos", "cos", MathFunc},
	{"cosh", "cosh", MathFunc},
	{"cot", "cot", MathFunc},
	{"coth", "coth", MathFunc},
	{"csc", "csc", MathFunc},
	{"deg", "deg", MathFunc},
	{"det", "det", MathFuncLimits},
	{"dim", "dim", MathFunc},
	{"exp", "exp", MathFunc},
	{"gcd", "gcd", MathFuncLimits},
	{"hom", "hom", MathFunc},
	{"inf", "inf", MathFuncLimits},
	{"ker", "ker", MathFunc},
	{"lg", "lg", MathFunc},
	{"lim", "lim", MathFuncLimits},
	{"liminf", "lim&#x2009;inf", MathFuncLimits},
	{"limsup", "lim&#x2009;sup", MathFuncLimits},
	{"ln", "ln", MathFunc},
	{"log", "log", MathFunc},
	{"max", "max", MathFuncLimits},
	{"min", "min", MathFuncLimits},
	{"sec", "sec", MathFunc},
	{"sin", "sin", MathFunc},
	{"sinh", "sinh", MathFunc},
	{"sup", "sup", MathFuncLimits},
	{"tan", "tan", MathFunc},
	{"tanh", "tanh", MathFunc},
}
