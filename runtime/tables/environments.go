package tables

const (
	tableOpen  = "<mtable><mtr><mtd>"
	tableClose = "</mtd></mtr></mtable>"
)

var environmentList = []Environment{
	{Name: "array", ID: EnvArray, TagOn: tableOpen, TagOff: tableClose, ColumnSpec: true},
	{Name: "bmatrix", ID: EnvBmatrix,
		TagOn:  "<mfenced open='[' close=']' separators=''>" + tableOpen,
		TagOff: tableClose + "</mfenced>"},
	{Name: "Bmatrix", ID: EnvBbraceMatrix,
		TagOn:  "<mfenced open='{' close='}' separators=''>" + tableOpen,
		TagOff: tableClose + "</mfenced>"},
	{Name: "cases", ID: EnvCases,
		TagOn:  "<mfenced open='{' close='' separators=''>" + tableOpen,
		TagOff: tableClose + "</mfenced>"},
	{Name: "eqnarray", ID: EnvEqnarray,
		TagOn:      "<mtable columnalign='right center left' columnspacing='.222222em'><mtr><mtd>",
		TagOff:     tableClose,
		MaxColumns: 3},
	{Name: "matrix", ID: EnvMatrix, TagOn: tableOpen, TagOff: tableClose},
	{Name: "pmatrix", ID: EnvPmatrix,
		TagOn:  "<mfenced separators=''>" + tableOpen,
		TagOff: tableClose + "</mfenced>"},
	{Name: "vmatrix", ID: EnvVmatrix,
		TagOn:  "<mfenced open='|' close='|' separators=''>" + tableOpen,
		TagOff: tableClose + "</mfenced>"},
	{Name: "Vmatrix", ID: EnvDoubleVmatrix,
		TagOn:  "<mfenced open='&#x2016;' close='&#x2016;' separators=''>" + tableOpen,
		TagOff: tableClose + "</mfenced>"},
}
