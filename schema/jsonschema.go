package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type jsonSchema struct {
	schema *gojsonschema.Schema
}

// JSON compiles a JSON Schema document. Parsing yields the decoded document,
// a map[string]any for objects.
func JSON(document []byte) (Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, fmt.Errorf("compile json schema: %w", err)
	}
	return jsonSchema{schema: compiled}, nil
}

// MustJSON is like JSON but panics on an invalid document
func MustJSON(document []byte) Schema {
	s, err := JSON(document)
	if err != nil {
		panic(err)
	}
	return s
}

func (s jsonSchema) Parse(raw any) (any, error) {
	var doc any
	switch in := raw.(type) {
	case []byte:
		if len(strings.TrimSpace(string(in))) == 0 {
			return nil, ErrEmptyBody
		}
		if err := json.Unmarshal(in, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case map[string]string:
		m := make(map[string]any, len(in))
		for k, v := range in {
			m[k] = v
		}
		doc = m
	case nil:
		return nil, ErrEmptyBody
	default:
		doc = in
	}

	result, err := s.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, err
	}
	if !result.Valid() {
		var messages []string
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return nil, errors.New(strings.Join(messages, "; "))
	}
	return doc, nil
}
