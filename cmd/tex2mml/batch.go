package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgfjr/tex2mml"
	"github.com/pgfjr/tex2mml/runtime/batch"
)

func (a *app) batchCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "batch <manifest>",
		Short: "Convert every formula listed in a manifest",
		Long: `Convert every formula listed in a YAML or JSON manifest.

Each formula produces either its MathML or the error that stopped it.
Failed formulas do not stop the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := batch.ParseFormat(format)
			if err != nil {
				return err
			}

			manifest, err := batch.Load(args[0])
			if err != nil {
				return err
			}

			logger := a.logger()
			runner := batch.NewRunner(tex2mml.NewConverter(len(manifest.Formulas), a.options()...), logger)
			results, err := runner.Run(cmd.Context(), manifest)
			if err != nil {
				return err
			}

			if output == "" {
				if err := batch.Encode(a.stdout, results, f); err != nil {
					return fmt.Errorf("encode results: %w", err)
				}
			} else {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("error creating output %s: %w", output, err)
				}
				if err := writeResults(file, results, f); err != nil {
					return fmt.Errorf("write results to %s: %w", output, err)
				}
			}
			logger.Debug("[BATCH] wrote results", "format", string(f), "output", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(batch.FormatJSON), "Output format: json, yaml or cbor")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write results to a file instead of stdout")
	return cmd
}

// writeResults encodes results into wc and closes it. A failed close is
// reported when encoding succeeded.
func writeResults(wc io.WriteCloser, results []batch.Result, format batch.Format) error {
	if err := batch.Encode(wc, results, format); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
