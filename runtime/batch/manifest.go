// Package batch converts the formulas listed in a manifest file and encodes
// the per-formula results as JSON, YAML or CBOR.
package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is wrapped by every manifest decoding or validation failure.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest lists the formulas of one batch run.
type Manifest struct {
	Version  string    `json:"version"`
	Display  *bool     `json:"display,omitempty"`
	Formulas []Formula `json:"formulas"`
}

// Formula is one manifest entry. Display overrides the manifest default.
type Formula struct {
	ID      string `json:"id"`
	TeX     string `json:"tex"`
	Display *bool  `json:"display,omitempty"`
}

// DisplayFor reports the display style used for f. Block layout is the
// default when neither the formula nor the manifest sets one.
func (m *Manifest) DisplayFor(f Formula) bool {
	if f.Display != nil {
		return *f.Display
	}
	if m.Display != nil {
		return *m.Display
	}
	return true
}

const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "formulas"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "format": "semver"},
    "display": {"type": "boolean"},
    "formulas": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "tex"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "tex": {"type": "string"},
          "display": {"type": "boolean"}
        }
      }
    }
  }
}`

const schemaURL = "schema://manifest.json"

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON manifest, validates it against the manifest
// schema and checks that formula ids are unique.
func Parse(data []byte) (*Manifest, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidManifest)
	}

	// Round-trip through JSON so the validator sees JSON types.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	var m Manifest
	if err := json.Unmarshal(jsonData, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	seen := make(map[string]int, len(m.Formulas))
	for i, f := range m.Formulas {
		if prev, ok := seen[f.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate formula id %q (entries %d and %d)", ErrInvalidManifest, f.ID, prev, i)
		}
		seen[f.ID] = i
	}

	return &m, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(interface{}) bool)
	}
	compiler.Formats["semver"] = isSemver

	if err := compiler.AddResource(schemaURL, strings.NewReader(manifestSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

func isSemver(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return true // Type validation happens separately
	}
	// semver.IsValid requires the "v" prefix
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	return semver.IsValid(s)
}
