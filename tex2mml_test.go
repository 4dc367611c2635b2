package tex2mml

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgfjr/tex2mml/core/types"
	"github.com/pgfjr/tex2mml/runtime/parser"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		display bool
		opts    []Option
		want    string
	}{
		{"superscript inline", "x^2", false, nil,
			"<math display='inline'><msup><mi>x</mi><mn>2</mn></msup></math>"},
		{"fraction block", `\frac12`, true, nil,
			"<math display='block'><mfrac><mn>1</mn><mn>2</mn></mfrac></math>"},
		{"subsup", "x_2^3", false, nil,
			"<math display='inline'><msubsup><mi>x</mi><mn>2</mn><mn>3</mn></msubsup></math>"},
		{"namespace", "x", true, []Option{WithNamespace()},
			"<math xmlns='http://www.w3.org/1998/Math/MathML' display='block'><mi>x</mi></math>"},
		{"display drives limits", `\sum_0`, true, nil,
			"<math display='block'><munder><mo>&#x2211;</mo><mn>0</mn></munder></math>"},
		{"display overrides parser option", `\sum_0`, false, []Option{WithParserOptions(parser.WithDisplayStyle(true))},
			"<math display='inline'><msub><mo>&#x2211;</mo><mn>0</mn></msub></math>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input, tt.display, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertError(t *testing.T) {
	_, err := Convert(`\badname`, false)
	require.Error(t, err)

	var convErr *parser.ConvertError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, types.KindUndefinedControlSequence, convErr.Kind)
	assert.Equal(t, 0, convErr.Position)
	assert.Contains(t, convErr.Message, `\badname`)

	_, err = Convert("}", true)
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, types.KindMoreRBraceThanLBrace, convErr.Kind)
}

func TestConvertParserOptions(t *testing.T) {
	_, err := Convert("{{x}}", false, WithParserOptions(parser.WithMaxDepth(2)))
	var convErr *parser.ConvertError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, types.KindNestingTooDeep, convErr.Kind)
}

func TestConverterCaches(t *testing.T) {
	c := NewConverter(0)

	first, err := c.Convert("x^2", false)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	second, err := c.Convert("x^2", false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())

	// Display style is part of the key
	block, err := c.Convert("x^2", true)
	require.NoError(t, err)
	assert.NotEqual(t, first, block)
	assert.Equal(t, 2, c.Len())

	// Failures are not cached
	_, err = c.Convert("}", false)
	require.Error(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestConverterEviction(t *testing.T) {
	c := NewConverter(2)
	for _, input := range []string{"a", "b"} {
		_, err := c.Convert(input, false)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())

	_, err := c.Convert("c", false)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestConverterNamespace(t *testing.T) {
	c := NewConverter(4, WithNamespace())
	out, err := c.Convert("x", false)
	require.NoError(t, err)
	assert.Equal(t, "<math xmlns='http://www.w3.org/1998/Math/MathML' display='inline'><mi>x</mi></math>", out)
}

func TestConcurrentConversions(t *testing.T) {
	inputs := []string{`\sum_{i=1}^n i^2`, `\frac{a}{b}`, `\begin{matrix}a&b\\c&d\end{matrix}`, `\sqrt[3]{x}`}
	want := make([]string, len(inputs))
	for i, input := range inputs {
		out, err := Convert(input, true)
		require.NoError(t, err)
		want[i] = out
	}

	c := NewConverter(8)
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i, input := range inputs {
				idx := (i + g) % len(inputs)
				input = inputs[idx]

				out, err := Convert(input, true)
				if err != nil || out != want[idx] {
					errs <- fmt.Errorf("Convert(%q) = %q, %v", input, out, err)
					return
				}
				out, err = c.Convert(input, true)
				if err != nil || out != want[idx] {
					errs <- fmt.Errorf("Converter.Convert(%q) = %q, %v", input, out, err)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
