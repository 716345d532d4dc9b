package coach

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache holds compiled schemas by contract name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// decodeContract is the single parse-then-validate stage shared by all
// contracts: parse the extracted text as generic JSON, validate it against the
// contract's schema, then decode it into the typed value. All-or-nothing; a
// failure never yields a partially populated contract.
func decodeContract[T any](schema *Schema, raw string) (T, error) {
	var out T

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return out, &ErrMalformedJSON{Content: json.RawMessage(raw), Err: err}
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return out, fmt.Errorf("compile %s schema: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return out, &ErrSchemaMismatch{
			Contract: schema.Name,
			Field:    offendingField(err),
			Err:      err,
		}
	}

	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, &ErrSchemaMismatch{Contract: schema.Name, Err: err}
	}
	return out, nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value; round-trip the definition map
	// to normalize ints to float64 etc.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}

// offendingField extracts the instance path of the first leaf failure,
// e.g. "/scores/2/score".
func offendingField(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return ""
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if len(ve.InstanceLocation) == 0 {
		return "/"
	}
	return "/" + strings.Join(ve.InstanceLocation, "/")
}

// DecodeTelemetry validates an inbound telemetry body against the full
// record schema and decodes it. A body missing any field fails; a partially
// populated record is never returned.
func DecodeTelemetry(raw []byte) (TelemetryData, error) {
	return decodeContract[TelemetryData](telemetrySchema, string(raw))
}

// checkScoreCriteria enforces the fixed rubric order the schema alone cannot
// express: five criteria, named exactly and in order.
func checkScoreCriteria(scores []CriterionScore) error {
	for i, want := range scoreCriteria {
		if got := scores[i].Criterion; got != want {
			return &ErrSchemaMismatch{
				Contract: scoreSchema.Name,
				Field:    fmt.Sprintf("/scores/%d/criterion", i),
				Err:      fmt.Errorf("expected criterion %q, got %q", want, got),
			}
		}
	}
	return nil
}
