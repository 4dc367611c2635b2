package tables

var fenceList = []Fence{
	{"(", '(', MathLeftFence},
	{")", ')', MathRightFence},
	{"[", '[', MathLeftFence},
	{"]", ']', MathRightFence},
	{"\\{", '{', MathLeftFence},
	{"\\}", '}', MathRightFence},
	{"/", '/', MathOrd},
	{"|", '|', MathOrd},
	{"\\|", 0x2016, MathOrd},
	{"<", 0x2329, MathLeftFence},
	{">", 0x232A, MathRightFence},
	{".", 0, MathOrd},
	{"lgroup", '(', MathLeftFence},
	{"rgroup", ')', MathRightFence},
	{"langle", 0x2329, MathLeftFence},
	{"rangle", 0x232A, MathRightFence},
	{"lAngle", 0x300A, MathLeftFence},
	{"rAngle", 0x300B, MathRightFence},
	{"lfloor", 0x230A, MathLeftFence},
	{"rfloor", 0x230B, MathRightFence},
	{"lceil", 0x2308, MathLeftFence},
	{"rceil", 0x2309, MathRightFence},
	{"lbrack", '[', MathLeftFence},
	{"rbrack", ']', MathRightFence},
	{"lBrack", 0x301A, MathLeftFence},
	{"rBrack", 0x301B, MathRightFence},
	{"lbrace", '{', MathLeftFence},
	{"rbrace", '}', MathRightFence},
	{"backslash", '\\', MathOrd},
	{"vert", '|', MathOrd},
	{"Vert", 0x2016, MathOrd},
	{"uparrow", 0x2191, MathOrd},
	{"Uparrow", 0x21D1, MathOrd},
	{"downarrow", 0x2193, MathOrd},
	{"Downarrow", 0x21D3, MathOrd},
	{"updownarrow", 0x2195, MathOrd},
	{"Updownarrow", 0x21D5, MathOrd},
	{"lmoustache", 0x23B0, MathLeftFence},
	{"rmoustache", 0x23B1, MathRightFence},
	{"lmoust", 0x23B0, MathLeftFence},
	{"rmoust", 0x23B1, MathRightFence},
}
