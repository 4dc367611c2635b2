package tables

// Spacing widths: thin .16667em, medium .222222em, thick .27777em.
var symbolList = []Symbol{
	{"\\ ", "&#x00a0;", "<mspace width='.25em'/>", MathOrd},
	{"\\,", "&#x2006;", "<mspace width='.16667em'/>", MathOrd},
	{"\\:", "&#x205f;", "<mspace width='.222222em'/>", MathOrd},
	{"\\>", "&#x205f;", "<mspace width='.222222em'/>", MathOrd},
	{"\\;", "&#x2005;", "<mspace width='.27777em'/>", MathOrd},
	{"\\!", "&#x200a;", "<mspace width='-.16667em'/>", MathOrd},
	{"\\|", "&#x2016;", "<mo mathsize='1'>&#x2016;</mo>", MathFence},
	{"\\{", "{", "<mo mathsize='1'>{</mo>", MathLeftFence},
	{"\\}", "}", "<mo mathsize='1'>}</mo>", MathRightFence},
	{"\\#", "&#x00023;", "<mo>&#x00023;</mo>", MathOrd},
	{"\\$", "$", "<mtext>$</mtext>", MathOrd},
	{"\\^", "&#x02C6;", "<mo>&#x02C6;</mo>", MathOrd},
	{"\\&", "&amp;", "<mo>&amp;</mo>", MathOrd},
	{"\\_", "&#x0005F;", "<mo>&#x0005F;</mo>", MathOrd},
	{"\\-", "&#x200b;", "<mo>&#x200b;</mo>", MathOrd},
	{"|", "|", "<mo mathsize='1'>|</mo>", MathOrd},
	{"[", "[", "<mo mathsize='1'>[</mo>", MathLeftFence},
	{"]", "]", "<mo mathsize='1'>]</mo>", MathRightFence},
	{"(", "(", "<mo mathsize='1'>(</mo>", MathLeftFence},
	{")", ")", "<mo mathsize='1'>)</mo>", MathRightFence},
	{"<", "&lt;", "<mo mathsize='1'>&lt;</mo>", MathLeftFence},
	{">", "&gt;", "<mo mathsize='1'>&gt;</mo>", MathRightFence},
	{"-", "-", "<mo>&#x2212;</mo>", MathBinUnary},
	{"+", "+", "<mo>+</mo>", MathBinUnary},
	{"=", "=", "<mo>=</mo>", MathBin},
	{":", ":", "<mo>:</mo>", MathBin},
	{"`", "&#x0300;", "<mo>&#x0300;</mo>", MathOrd},
	{"@", "&#x0040;", "<mo>&#x0040;</mo>", MathOrd},
	{"*", "*", "<mo>*</mo>", MathOrd},
	{"\"", "&#x0201D;", "<mo>&#x0201D;</mo>", MathOrd},
	{"/", "/", "<mtext>/</mtext>", MathOrd},
	{"~", "&#x00a0;", "<mtext>&#x00A0;</mtext>", MathOrd},
	{"!", "!", "<mo>!</mo>", MathOrd},
	{";", ";", "<mo>;</mo>", MathOrd},
	{",", ",", "<mo>,</mo>", MathPunct},
	{".", ".", "<mo>.</mo>", MathOrd},
	{"?", "?", "<mo>?</mo>", MathOrd},
}

// primes holds the prime runs by length.
var primes = [...]Symbol{
	{"'", "&#x02032;", "<mo>&#x02032;</mo>", MathOrd},
	{"''", "&#x02033;", "<mo>&#x02033;</mo>", MathOrd},
	{"'''", "&#x02034;", "<mo>&#x02034;</mo>", MathOrd},
}

// MaxPrimes is the longest prime run rendered as one symbol.
const MaxPrimes = len(primes)

// Prime returns the symbol for a run of n primes, 1 <= n <= MaxPrimes.
func Prime(n int) Symbol {
	if n < 1 {
		n = 1
	}
	if n > MaxPrimes {
		n = MaxPrimes
	}
	return primes[n-1]
}
