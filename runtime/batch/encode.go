package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the result encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML, FormatCBOR:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or cbor)", s)
}

// Encode writes results to w in the given format. CBOR output uses the
// canonical encoding so identical results produce identical bytes.
func Encode(w io.Writer, results []Result, format Format) error {
	if results == nil {
		results = []Result{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(results)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("YAML encoding failed: %w", err)
		}
		return enc.Close()

	case FormatCBOR:
		encMode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return fmt.Errorf("failed to create CBOR encoder: %w", err)
		}
		data, err := encMode.Marshal(results)
		if err != nil {
			return fmt.Errorf("CBOR encoding failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	return fmt.Errorf("unknown format %q", format)
}
