package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://settings.json"

// schemaDocument describes a settings file. Each field also has its own
// $defs entry so values from env and flags can be checked one at a time.
var schemaDocument = map[string]any{
	"type": "object",
	"propertyNames": map[string]any{
		"enum": []any{KeyNumQuestions, KeyNumOptions, KeyTimeLimitMinutes, KeyDifficulty},
	},
	"properties": map[string]any{
		KeyNumQuestions:     map[string]any{"$ref": "#/$defs/" + KeyNumQuestions},
		KeyNumOptions:       map[string]any{"$ref": "#/$defs/" + KeyNumOptions},
		KeyTimeLimitMinutes: map[string]any{"$ref": "#/$defs/" + KeyTimeLimitMinutes},
		KeyDifficulty:       map[string]any{"$ref": "#/$defs/" + KeyDifficulty},
	},
	"$defs": map[string]any{
		KeyNumQuestions: map[string]any{
			"type":    "integer",
			"minimum": 1,
			"maximum": MaxQuestions,
		},
		KeyNumOptions: map[string]any{
			"type":    "integer",
			"minimum": 2,
			"maximum": MaxOptions,
		},
		KeyTimeLimitMinutes: map[string]any{
			"type":             "number",
			"exclusiveMinimum": 0,
			"maximum":          1440,
		},
		KeyDifficulty: map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
	},
}

type compiledSchemas struct {
	document *jsonschema.Schema
	fields   map[string]*jsonschema.Schema
}

var loadSchemas = sync.OnceValues(func() (*compiledSchemas, error) {
	// The compiler wants the generic form produced by its own decoder.
	raw, err := json.Marshal(schemaDocument)
	if err != nil {
		return nil, fmt.Errorf("marshal settings schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse settings schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	out := &compiledSchemas{fields: make(map[string]*jsonschema.Schema, len(Keys))}
	if out.document, err = c.Compile(schemaURL); err != nil {
		return nil, fmt.Errorf("compile settings schema: %w", err)
	}
	for _, key := range Keys {
		s, err := c.Compile(schemaURL + "#/$defs/" + key)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", key, err)
		}
		out.fields[key] = s
	}
	return out, nil
})

// fieldValue is a validated settings value.
type fieldValue struct {
	number float64
	text   string
}

// checkField validates one raw value against its field schema.
func checkField(key string, raw any) (fieldValue, error) {
	schemas, err := loadSchemas()
	if err != nil {
		return fieldValue{}, err
	}
	schema, ok := schemas.fields[key]
	if !ok {
		return fieldValue{}, fmt.Errorf("unknown field %q", key)
	}

	inst, err := instance(raw)
	if err != nil {
		return fieldValue{}, err
	}
	if err := schema.Validate(inst); err != nil {
		return fieldValue{}, fmt.Errorf("%s", reason(err))
	}

	switch v := inst.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fieldValue{}, err
		}
		return fieldValue{number: f}, nil
	case string:
		return fieldValue{text: v}, nil
	}
	return fieldValue{}, fmt.Errorf("unexpected value %v", inst)
}

// checkDocument validates the shape of a whole settings file. Field values
// are left to checkField so a bad value falls back instead of failing.
func checkDocument(doc map[string]any) error {
	schemas, err := loadSchemas()
	if err != nil {
		return err
	}
	keys := make(map[string]any, len(doc))
	for k := range doc {
		keys[k] = nil
	}
	inst, err := instance(keys)
	if err != nil {
		return err
	}
	if err := schemas.document.Validate(inst); err != nil {
		return fmt.Errorf("%s", reason(err))
	}
	return nil
}

// instance converts a raw value from YAML, env or flags into the form the
// validator expects. Numeric strings become numbers; other strings are
// trimmed and lowercased.
func instance(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("%q is not a finite number", v)
			}
			return json.Number(strconv.FormatFloat(f, 'f', -1, 64)), nil
		}
		return strings.ToLower(s), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%v is not a finite number", v)
		}
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("unsupported value %v: %w", raw, err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(b))
}

// reason reduces a validation error to its innermost message.
func reason(err error) string {
	lines := strings.Split(strings.TrimSpace(err.Error()), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	last = strings.TrimPrefix(last, "- ")
	if i := strings.Index(last, "': "); strings.HasPrefix(last, "at '") && i >= 0 {
		last = last[i+3:]
	}
	return last
}
