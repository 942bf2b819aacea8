package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/haroldmt/resume-parser/internal/entity"
)

// BuildResumeJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. It constrains the parsed payload before it is stored
// or handed to downstream consumers.
func BuildResumeJSONSchema() map[string]any {
	str := func() map[string]any { return map[string]any{"type": "string"} }
	nullableDate := map[string]any{
		"type":   []string{"string", "null"},
		"format": "date-time",
	}

	contactProps := map[string]any{
		"first_name":   str(),
		"last_name":    str(),
		"city":         str(),
		"state":        str(),
		"zip_code":     map[string]any{"type": "string", "pattern": `^(\d{5}(-\d{4})?)?$`},
		"phone":        str(),
		"email":        str(),
		"linkedin_url": str(),
		"website_url":  str(),
		"summary":      str(),
	}

	experienceItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"id":              map[string]any{"type": "integer", "minimum": 0},
			"job_title":       str(),
			"employer":        str(),
			"location":        str(),
			"remote":          map[string]any{"type": "boolean"},
			"start_date":      nullableDate,
			"end_date":        nullableDate,
			"current":         map[string]any{"type": "boolean"},
			"accomplishments": str(),
		},
		"required": []string{"job_title", "current"},
	}

	educationProps := map[string]any{
		"school":     str(),
		"location":   str(),
		"degree":     str(),
		"field":      str(),
		"grad_year":  map[string]any{"type": "string", "pattern": `^(\d{4})?$`},
		"grad_month": str(),
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"contact": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           contactProps,
			},
			"work_experiences": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    experienceItem,
			},
			"education": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           educationProps,
			},
			"skills": map[string]any{
				"type":     "array",
				"maxItems": 50,
				"items":    str(),
			},
			"summary":  str(),
			"raw_text": str(),
		},
		"required": []string{"contact", "work_experiences"},
	}
}

// ValidateParsedResume checks an assembled result against the resume
// schema. A failure here means the assembler broke an invariant, not
// that the input document was bad.
func ValidateParsedResume(data entity.ParsedResumeData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal parsed resume: %w", err)
	}
	return validateAgainstSchema(BuildResumeJSONSchema(), payload)
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
