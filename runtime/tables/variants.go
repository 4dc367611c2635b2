package tables

var mathVariants = map[string]string{
	"bb":    "double-struck",
	"bf":    "bold",
	"bfrak": "bold-fraktur",
	"bi":    "bold-italic",
	"bsc":   "bold-script",
	"bss":   "bold-sans-serif",
	"frak":  "fraktur",
	"it":    "italic",
	"rm":    "normal",
	"sc":    "script",
	"ss":    "sans-serif",
	"ssbi":  "sans-serif-bold-italic",
	"ssi":   "sans-serif-italic",
	"tt":    "monospace",
}

// MathVariant maps a short attribute key such as "bf" to its mathvariant
// value.
func MathVariant(key string) (string, bool) {
	v, ok := mathVariants[key]
	return v, ok
}
