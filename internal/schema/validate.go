// Package schema enforces the shape contract of every result family.
// Schemas are embedded JSON Schema documents compiled once; validation
// rejects payloads with missing aggregates, wrongly shaped entries, or
// mixed action-variant fields. Nothing here coerces: an ambiguous
// payload is a hard failure.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/deixis/foreman/internal/result"
)

// Error reports a result payload that failed shape validation.
type Error struct {
	Family  result.Family
	Compact bool
	Err     error
}

func (e *Error) Error() string {
	form := "full"
	if e.Compact {
		form = "compact"
	}
	return fmt.Sprintf("%s result failed %s-form validation: %v", e.Family, form, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type familySchemas struct {
	full    *jsonschema.Schema
	compact *jsonschema.Schema
}

var (
	compiled    map[result.Family]*familySchemas
	compileOnce sync.Once
	compileErr  error
)

// compileSchemas compiles every embedded family schema once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, f := range result.Families {
			name := string(f) + ".schema.json"
			data, err := schemaFS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s: %w", name, err)
				return
			}
		}

		byID := make(map[result.Family]*familySchemas, len(result.Families))
		for _, f := range result.Families {
			name := string(f) + ".schema.json"
			full, err := compiler.Compile(name + "#/$defs/full")
			if err != nil {
				compileErr = fmt.Errorf("compile %s full: %w", name, err)
				return
			}
			compact, err := compiler.Compile(name + "#/$defs/compact")
			if err != nil {
				compileErr = fmt.Errorf("compile %s compact: %w", name, err)
				return
			}
			byID[f] = &familySchemas{full: full, compact: compact}
		}
		compiled = byID
	})
	return compileErr
}

// Validate checks a canonical result against its family's full-form
// schema. Failures are *Error; they are never coerced or softened.
func Validate(r result.Result) error {
	return validate(r.Family(), r, false)
}

// ValidateCompact checks a compact result against its family's
// compact-form schema.
func ValidateCompact(c result.Compact) error {
	return validate(c.Family(), c, true)
}

// ValidateBytes checks a raw JSON payload against a family's full or
// compact schema. Callers holding typed results use Validate or
// ValidateCompact instead.
func ValidateBytes(f result.Family, compact bool, data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	fs, ok := compiled[f]
	if !ok {
		return fmt.Errorf("no schema for family %q", f)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s payload: %w", f, err)
	}

	s := fs.full
	if compact {
		s = fs.compact
	}
	if err := s.Validate(doc); err != nil {
		return &Error{Family: f, Compact: compact, Err: err}
	}
	return nil
}

func validate(f result.Family, v any, compact bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s result: %w", f, err)
	}
	return ValidateBytes(f, compact, data)
}
