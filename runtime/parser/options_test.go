package parser

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgfjr/tex2mml/core/types"
)

func TestTelemetryOff(t *testing.T) {
	result, err := Convert("x^2")
	require.NoError(t, err)
	assert.Nil(t, result.Telemetry)
	assert.Nil(t, result.DebugEvents)
}

func TestTelemetryBasic(t *testing.T) {
	result, err := Convert("x^2", WithTelemetryBasic())
	require.NoError(t, err)
	require.NotNil(t, result.Telemetry)

	tel := result.Telemetry
	assert.Equal(t, 1, tel.ScriptCount)
	assert.Equal(t, 1, tel.GroupCount)
	assert.Equal(t, 1, tel.MaxDepth)
	assert.Equal(t, len(result.MathML), tel.OutputBytes)
	assert.Equal(t, 0, tel.ErrorCount)
	assert.Positive(t, tel.TokenCount)
	assert.Zero(t, tel.TotalTime, "basic telemetry records no timing")
}

func TestTelemetryTiming(t *testing.T) {
	result, err := Convert(`\frac{a}{b}`, WithTelemetryTiming())
	require.NoError(t, err)
	require.NotNil(t, result.Telemetry)
	assert.Positive(t, result.Telemetry.TotalTime)
	assert.GreaterOrEqual(t, result.Telemetry.TotalTime, result.Telemetry.ConvertTime)
}

func TestTelemetryOnError(t *testing.T) {
	result, err := Convert("}", WithTelemetryBasic())
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.MathML)
	assert.Equal(t, 1, result.Telemetry.ErrorCount)
}

func TestDebugPaths(t *testing.T) {
	result, err := Convert(`{\alpha}`, WithDebugPaths())
	require.NoError(t, err)

	var events []string
	for _, e := range result.DebugEvents {
		events = append(events, e.Event+":"+e.Context)
	}
	assert.Equal(t, []string{
		"precondition:ok",
		"enter_group:default",
		"enter_group:braced",
		"control:entity alpha",
	}, events)
}

func TestDebugDetailed(t *testing.T) {
	result, err := Convert("ab", WithDebugDetailed())
	require.NoError(t, err)

	var tokens []string
	for _, e := range result.DebugEvents {
		if e.Event == "token" {
			tokens = append(tokens, e.Context)
		}
	}
	assert.Equal(t, []string{`LETTER("a")@0`, "EOF@2"}, tokens)
}

func TestLoggerReceivesErrors(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Convert(`x+\badname`, WithLogger(logger))
	require.Error(t, err)

	log := out.String()
	assert.Contains(t, log, "[PARSER] convert")
	assert.Contains(t, log, "[PARSER] error")
	assert.Contains(t, log, "kind=UNDEFINED_CONTROL_SEQUENCE")
	assert.Contains(t, log, "offset=2")
}

func TestMaxDepth(t *testing.T) {
	_, err := Convert("{{x}}", WithMaxDepth(3))
	require.NoError(t, err)

	convErr := convertError(t, "{{{x}}}", WithMaxDepth(3))
	assert.Equal(t, types.KindNestingTooDeep, convErr.Kind)

	deep := strings.Repeat("{", DefaultMaxDepth+10) + "x" + strings.Repeat("}", DefaultMaxDepth+10)
	convErr = convertError(t, deep)
	assert.Equal(t, types.KindNestingTooDeep, convErr.Kind)

	// \frac arguments nest without braces
	chain := strings.Repeat(`\frac`, 1000) + strings.Repeat("1", 1001)
	convErr = convertError(t, chain, WithMaxDepth(8))
	assert.Equal(t, types.KindNestingTooDeep, convErr.Kind)

	convErr = convertError(t, "x^"+chain, WithMaxDepth(8))
	assert.Equal(t, types.KindNestingTooDeep, convErr.Kind)

	convErr = convertError(t, strings.Repeat(`\frac`, DefaultMaxDepth+10)+strings.Repeat("1", DefaultMaxDepth+11))
	assert.Equal(t, types.KindNestingTooDeep, convErr.Kind)

	_, err = Convert(strings.Repeat(`\frac`, 4)+"12345", WithMaxDepth(8))
	require.NoError(t, err)

	// Non-positive values keep the default
	_, err = Convert("{{{x}}}", WithMaxDepth(0))
	require.NoError(t, err)
}

func TestMaxOutput(t *testing.T) {
	convErr := convertError(t, "abcdefghij", WithMaxOutput(32))
	assert.Equal(t, types.KindOutOfMemory, convErr.Kind)

	result, err := Convert("abcdefghij", WithMaxOutput(0))
	require.NoError(t, err)
	assert.Len(t, result.MathML, 10*len("<mi>a</mi>")+len("<mrow></mrow>"))
}
