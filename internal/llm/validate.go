package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled schemas keyed by Schema.Name.
var schemaCache sync.Map

// ExtractJSON returns the JSON document inside model output. Models
// sometimes wrap the document in a ```json fence or surround it with prose;
// the outermost object is returned in that case.
func ExtractJSON(raw []byte) json.RawMessage {
	s := bytes.TrimSpace(raw)
	if json.Valid(s) {
		return json.RawMessage(s)
	}

	if start := bytes.Index(s, []byte("```")); start >= 0 {
		body := s[start+3:]
		if nl := bytes.IndexByte(body, '\n'); nl >= 0 {
			body = body[nl+1:]
		}
		if end := bytes.Index(body, []byte("```")); end >= 0 {
			body = body[:end]
		}
		if b := bytes.TrimSpace(body); json.Valid(b) {
			return json.RawMessage(b)
		}
	}

	open, end := bytes.IndexByte(s, '{'), bytes.LastIndexByte(s, '}')
	if open >= 0 && end > open && json.Valid(s[open:end+1]) {
		return json.RawMessage(s[open : end+1])
	}
	return json.RawMessage(s)
}

// finish extracts, checks for truncation and validates provider output.
func finish(schema *Schema, stopReason string, raw []byte) (json.RawMessage, error) {
	content := ExtractJSON(raw)
	if err := checkTruncated(stopReason, content); err != nil {
		return nil, err
	}
	if err := validateResponse(schema, content); err != nil {
		return nil, err
	}
	return content, nil
}

// validateResponse checks raw against schema and returns *ErrInvalidResponse
// on failure. A nil schema accepts anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants decoded JSON values, not Go maps with typed slices.
	data, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := "schema://" + schema.Name + ".json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
