// Package tex2mml converts TeX math formulas into MathML presentation
// markup.
//
//	out, err := tex2mml.Convert(`\frac{a}{b}`, true)
//	// <math display='block'><mfrac><mi>a</mi><mi>b</mi></mfrac></math>
//
// Failures are *parser.ConvertError values carrying the byte offset and
// kind of the first problem found.
package tex2mml

import (
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/pgfjr/tex2mml/runtime/parser"
)

// Namespace is the MathML XML namespace.
const Namespace = "http://www.w3.org/1998/Math/MathML"

// Option configures Convert and Converter
type Option func(*config)

type config struct {
	namespace bool
	parser    []parser.ParserOpt
}

// WithNamespace adds the MathML xmlns attribute to the <math> element.
func WithNamespace() Option {
	return func(c *config) {
		c.namespace = true
	}
}

// WithParserOptions passes options through to the conversion engine.
// The display style is always taken from the display argument.
func WithParserOptions(opts ...parser.ParserOpt) Option {
	return func(c *config) {
		c.parser = append(c.parser, opts...)
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert converts input into a complete <math> element. display selects
// block layout; inline layout otherwise.
func Convert(input string, display bool, opts ...Option) (string, error) {
	return convert(newConfig(opts), input, display)
}

func convert(c *config, input string, display bool) (string, error) {
	parserOpts := append(append([]parser.ParserOpt{}, c.parser...), parser.WithDisplayStyle(display))
	result, err := parser.Convert(input, parserOpts...)
	if err != nil {
		return "", err
	}
	return wrapMath(result.MathML, display, c.namespace), nil
}

func wrapMath(body string, display, namespace bool) string {
	var b strings.Builder
	b.Grow(len(body) + 80)
	b.WriteString("<math")
	if namespace {
		b.WriteString(" xmlns='" + Namespace + "'")
	}
	if display {
		b.WriteString(" display='block'>")
	} else {
		b.WriteString(" display='inline'>")
	}
	b.WriteString(body)
	b.WriteString("</math>")
	return b.String()
}

// DefaultCacheSize is the number of results a Converter keeps by default.
const DefaultCacheSize = 1024

// Converter memoizes successful conversions. It is safe for concurrent use.
type Converter struct {
	config  *config
	mu      sync.RWMutex
	cache   map[[blake2b.Size256]byte]string
	maxSize int
}

// NewConverter creates a Converter holding up to maxSize results.
// Non-positive sizes use DefaultCacheSize.
func NewConverter(maxSize int, opts ...Option) *Converter {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &Converter{
		config:  newConfig(opts),
		cache:   make(map[[blake2b.Size256]byte]string),
		maxSize: maxSize,
	}
}

// Convert behaves like the package-level Convert. Errors are not cached.
func (c *Converter) Convert(input string, display bool) (string, error) {
	key := cacheKey(input, display)

	c.mu.RLock()
	out, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return out, nil
	}

	out, err := convert(c.config, input, display)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Simple eviction: if cache full, clear it
	if len(c.cache) >= c.maxSize {
		c.cache = make(map[[blake2b.Size256]byte]string)
	}
	c.cache[key] = out
	return out, nil
}

// Len returns the number of cached results.
func (c *Converter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

func cacheKey(input string, display bool) [blake2b.Size256]byte {
	buf := make([]byte, 0, len(input)+1)
	if display {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = append(buf, input...)
	return blake2b.Sum256(buf)
}
