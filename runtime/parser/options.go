package parser

import (
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultMaxDepth bounds group and environment nesting.
	DefaultMaxDepth = 128
	// DefaultMaxOutput bounds the size of any output buffer in bytes.
	DefaultMaxOutput = 4 << 20
)

// ParserOpt represents a parser configuration option
type ParserOpt func(*ParserConfig)

// TelemetryMode controls telemetry collection (production-safe)
type TelemetryMode int

const (
	TelemetryOff    TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                       // Counts only
	TelemetryTiming                      // Counts + timing per phase
)

// DebugLevel controls debug tracing (development only)
type DebugLevel int

const (
	DebugOff      DebugLevel = iota // No debug info (default)
	DebugPaths                      // Group and command tracing
	DebugDetailed                   // Token-level tracing
)

// ParserConfig holds parser configuration
type ParserConfig struct {
	display   bool
	maxDepth  int
	maxOutput int
	logger    *slog.Logger
	telemetry TelemetryMode
	debug     DebugLevel
}

func newConfig(opts []ParserOpt) *ParserConfig {
	config := &ParserConfig{
		maxDepth:  DefaultMaxDepth,
		maxOutput: DefaultMaxOutput,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.logger == nil {
		config.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return config
}

// WithDisplayStyle selects block (true) or inline (false) layout. Movable
// limits default to stacked placement in block layout.
func WithDisplayStyle(display bool) ParserOpt {
	return func(c *ParserConfig) {
		c.display = display
	}
}

// WithMaxDepth sets the nesting limit. Non-positive values keep the default.
func WithMaxDepth(depth int) ParserOpt {
	return func(c *ParserConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithMaxOutput sets the buffer size limit in bytes. Zero disables it.
func WithMaxOutput(size int) ParserOpt {
	return func(c *ParserConfig) {
		if size >= 0 {
			c.maxOutput = size
		}
	}
}

// WithLogger routes debug records to logger
func WithLogger(logger *slog.Logger) ParserOpt {
	return func(c *ParserConfig) {
		c.logger = logger
	}
}

// WithTelemetryBasic enables basic telemetry (counts only)
func WithTelemetryBasic() ParserOpt {
	return func(c *ParserConfig) {
		c.telemetry = TelemetryBasic
	}
}

// WithTelemetryTiming enables timing telemetry (counts + timing per phase)
func WithTelemetryTiming() ParserOpt {
	return func(c *ParserConfig) {
		c.telemetry = TelemetryTiming
	}
}

// WithDebugPaths enables debug path tracing (development only)
func WithDebugPaths() ParserOpt {
	return func(c *ParserConfig) {
		c.debug = DebugPaths
	}
}

// WithDebugDetailed enables detailed debug tracing (development only)
func WithDebugDetailed() ParserOpt {
	return func(c *ParserConfig) {
		c.debug = DebugDetailed
	}
}

// ParseTelemetry holds conversion metrics (production-safe)
type ParseTelemetry struct {
	PreconditionTime time.Duration // Time spent in the structural pre-scan
	ConvertTime      time.Duration // Time spent in the engine
	TotalTime        time.Duration // Total conversion time
	TokenCount       int           // Tokens read by the engine
	GroupCount       int           // Sub-expressions entered
	ScriptCount      int           // Scripts and limits attached
	MaxDepth         int           // Deepest nesting reached
	OutputBytes      int           // Size of the produced markup
	ErrorCount       int           // Conversion errors (0 or 1)
}

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Timestamp time.Time
	Event     string // "enter_group", "command", "token", ...
	Offset    int    // Input offset when the event was recorded
	Context   string // Additional context
}
