package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pgfjr/tex2mml"
	"github.com/pgfjr/tex2mml/runtime/parser"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitConvertError = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	code := app.execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// app holds the streams and flags shared by every subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	file    string
	inline  bool
	xmlns   bool
	debug   bool
	noColor bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		FormatError(a.stderr, err, ShouldUseColor(a.noColor))
		if _, ok := err.(*conversionError); ok {
			return ExitConvertError
		}
		return ExitFailure
	}
	return ExitSuccess
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tex2mml [formula]",
		Short: "Convert TeX math formulas to MathML",
		Long: `Convert a TeX math formula to a MathML <math> element.

The formula is taken from the argument, from --file, or from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(args)
		},
	}

	rootCmd.Flags().StringVarP(&a.file, "file", "f", "", "Read the formula from a file (- for stdin)")
	rootCmd.Flags().BoolVar(&a.inline, "inline", false, "Use inline layout instead of block")
	rootCmd.PersistentFlags().BoolVar(&a.xmlns, "xmlns", false, "Add the MathML namespace to <math>")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", os.Getenv("TEX2MML_DEBUG") != "", "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(a.batchCmd(), a.watchCmd(), a.tokensCmd())
	return rootCmd
}

func (a *app) runConvert(args []string) error {
	if len(args) == 1 && a.file != "" {
		return fmt.Errorf("give either a formula argument or --file, not both")
	}

	var (
		input    string
		filename string
	)
	if len(args) == 1 {
		input = args[0]
	} else {
		data, name, err := a.readInput(a.file)
		if err != nil {
			return err
		}
		input, filename = string(data), name
	}

	out, err := tex2mml.Convert(input, !a.inline, a.options()...)
	if err != nil {
		return newConversionError(err, input, filename)
	}
	_, err = fmt.Fprintln(a.stdout, out)
	return err
}

func (a *app) options() []tex2mml.Option {
	opts := []tex2mml.Option{tex2mml.WithParserOptions(parser.WithLogger(a.logger()))}
	if a.xmlns {
		opts = append(opts, tex2mml.WithNamespace())
	}
	return opts
}

// logger writes debug records to stderr without time and level attrs.
func (a *app) logger() *slog.Logger {
	logLevel := slog.LevelInfo
	if a.debug {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey || attr.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return attr
		},
	}))
}

// readInput handles the input modes of the convert and tokens commands:
// explicit stdin with "-", a named file, or piped stdin when no file is set.
func (a *app) readInput(file string) ([]byte, string, error) {
	switch file {
	case "-":
		data, err := io.ReadAll(a.stdin)
		return data, "<stdin>", err
	case "":
		if !hasPipedInput(a.stdin) {
			return nil, "", fmt.Errorf("no formula given: pass it as an argument, with --file, or on stdin")
		}
		data, err := io.ReadAll(a.stdin)
		return data, "<stdin>", err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, "", fmt.Errorf("error opening file %s: %w", file, err)
	}
	return data, file, nil
}

// hasPipedInput reports whether r carries data rather than a terminal.
// Readers that are not files are treated as piped.
func hasPipedInput(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	// Pipes may not report a size, so only the mode is checked
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// conversionError carries the source needed to render a conversion failure.
type conversionError struct {
	err      *parser.ConvertError
	source   string
	filename string
}

func newConversionError(err error, source, filename string) error {
	convErr, ok := err.(*parser.ConvertError)
	if !ok {
		return err
	}
	return &conversionError{err: convErr, source: source, filename: filename}
}

func (e *conversionError) Error() string {
	if e.filename != "" {
		return e.filename + ": " + e.err.Error()
	}
	return e.err.Error()
}

func (e *conversionError) Unwrap() error { return e.err }
