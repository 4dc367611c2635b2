package tables

var entityList = []Entity{
	// Greek
	{"alpha", 0x3B1, MathIdent},
	{"beta", 0x3B2, MathIdent},
	{"gamma", 0x3B3, MathIdent},
	{"delta", 0x3B4, MathIdent},
	{"epsilon", 0x3B5, MathIdent},
	{"varepsilon", 0x3B5, MathIdent},
	{"zeta", 0x3B6, MathIdent},
	{"eta", 0x3B7, MathIdent},
	{"theta", 0x3B8, MathIdent},
	{"vartheta", 0x3D1, MathIdent},
	{"iota", 0x3B9, MathIdent},
	{"kappa", 0x3BA, MathIdent},
	{"lambda", 0x3BB, MathIdent},
	{"mu", 0x3BC, MathIdent},
	{"nu", 0x3BD, MathIdent},
	{"xi", 0x3BE, MathIdent},
	{"omicron", 0x3BF, MathIdent},
	{"pi", 0x3C0, MathIdent},
	{"varpi", 0x3D6, MathIdent},
	{"rho", 0x3C1, MathIdent},
	{"varrho", 0x3F1, MathIdent},
	{"sigma", 0x3C3, MathIdent},
	{"varsigma", 0x3C2, MathIdent},
	{"tau", 0x3C4, MathIdent},
	{"upsilon", 0x3C5, MathIdent},
	{"phi", 0x3C6, MathIdent},
	{"varphi", 0x3D5, MathIdent},
	{"chi", 0x3C7, MathIdent},
	{"psi", 0x3C8, MathIdent},
	{"omega", 0x3C9, MathIdent},
	{"Gamma", 0x393, MathIdent},
	{"Delta", 0x394, MathIdent},
	{"Theta", 0x398, MathIdent},
	{"Lambda", 0x39B, MathIdent},
	{"Xi", 0x39E, MathIdent},
	{"Pi", 0x3A0, MathIdent},
	{"Sigma", 0x3A3, MathIdent},
	{"Upsilon", 0x3A5, MathIdent},
	{"Phi", 0x3A6, MathIdent},
	{"Psi", 0x3A8, MathIdent},
	{"Omega", 0x3A9, MathIdent},

	// Letter-like
	{"aleph", 0x2135, MathIdent},
	{"ell", 0x2113, MathIdent},
	{"hbar", 0x210F, MathIdent},
	{"Im", 0x2111, MathIdent},
	{"Re", 0x211C, MathIdent},
	{"nabla", 0x2207, MathIdent},

	// Large operators
	{"bigcap", 0x22C2, MathMovableLimits},
	{"bigcup", 0x22C3, MathMovableLimits},
	{"bigodot", 0x2299, MathMovableLimits},
	{"bigoplus", 0x2295, MathMovableLimits},
	{"bigotimes", 0x2297, MathMovableLimits},
	{"bigsqcup", 0x2A06, MathMovableLimits},
	{"biguplus", 0x2A04, MathMovableLimits},
	{"bigvee", 0x22C1, MathMovableLimits},
	{"bigwedge", 0x22C0, MathMovableLimits},
	{"coprod", 0x2210, MathMovableLimits},
	{"prod", 0x220F, MathMovableLimits},
	{"sum", 0x2211, MathMovableLimits},
	{"int", 0x222B, MathLimits},
	{"iint", 0x222C, MathLimits},
	{"iiint", 0x222D, MathLimits},
	{"iiiint", 0x2A0C, MathLimits},
	{"oint", 0x222E, MathLimits},

	// Binary operators
	{"ast", 0x2A, MathBin},
	{"bullet", 0x2022, MathBin},
	{"cap", 0x2229, MathBin},
	{"cdot", 0xB7, MathBin},
	{"centerdot", 0xB7, MathBin},
	{"circ", 0x2218, MathBin},
	{"cup", 0x222A, MathBin},
	{"dagger", 0x2020, MathBin},
	{"div", 0xF7, MathBin},
	{"mp", 0x2213, MathBin},
	{"odot", 0x2299, MathBin},
	{"oplus", 0x2295, MathBin},
	{"otimes", 0x2297, MathBin},
	{"setminus", 0x2216, MathBin},
	{"star", 0x22C6, MathBin},
	{"times", 0xD7, MathBin},
	{"vee", 0x2228, MathBin},
	{"wedge", 0x2227, MathBin},

	// Relations and arrows
	{"approx", 0x2248, MathRel},
	{"cong", 0x2245, MathRel},
	{"equiv", 0x2261, MathRel},
	{"ge", 0x2265, MathRel},
	{"geq", 0x2265, MathRel},
	{"gg", 0x226B, MathRel},
	{"in", 0x2208, MathRel},
	{"infinity", 0x221E, MathRel},
	{"le", 0x2264, MathRel},
	{"leq", 0x2264, MathRel},
	{"ll", 0x226A, MathRel},
	{"mid", 0x2223, MathRel},
	{"ne", 0x2260, MathRel},
	{"neq", 0x2260, MathRel},
	{"ni", 0x220B, MathRel},
	{"notin", 0x2209, MathRel},
	{"parallel", 0x2225, MathRel},
	{"perp", 0x22A5, MathRel},
	{"pm", 0xB1, MathRel},
	{"prec", 0x227A, MathRel},
	{"propto", 0x221D, MathRel},
	{"sim", 0x223C, MathRel},
	{"simeq", 0x2243, MathRel},
	{"subset", 0x2282, MathRel},
	{"subseteq", 0x2286, MathRel},
	{"succ", 0x227B, MathRel},
	{"supset", 0x2283, MathRel},
	{"supseteq", 0x2287, MathRel},
	{"leftarrow", 0x2190, MathRel},
	{"rightarrow", 0x2192, MathRel},
	{"leftrightarrow", 0x2194, MathRel},
	{"Leftarrow", 0x21D0, MathRel},
	{"Rightarrow", 0x21D2, MathRel},
	{"Leftrightarrow", 0x21D4, MathRel},
	{"mapsto", 0x21A6, MathRel},
	{"to", 0x2192, MathRel},

	// Ordinary symbols
	{"angle", 0x2220, MathOrd},
	{"cdots", 0x22EF, MathOrd},
	{"ddots", 0x22F1, MathOrd},
	{"dots", 0x2026, MathOrd},
	{"emptyset", 0x2205, MathOrd},
	{"exists", 0x2203, MathOrd},
	{"forall", 0x2200, MathOrd},
	{"infty", 0x221E, MathOrd},
	{"ldots", 0x2026, MathOrd},
	{"neg", 0xAC, MathOrd},
	{"partial", 0x2202, MathOrd},
	{"prime", 0x2032, MathOrd},
	{"vdots", 0x22EE, MathOrd},
}
