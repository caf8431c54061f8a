package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"shop-api/validator"
)

// ErrEmptyBatch is returned for a bulk payload with no items
var ErrEmptyBatch = errors.New("request body must contain at least one item")

// Payload is a create body holding either one item or a batch.
// The only implementations are Single and Bulk.
type Payload[T any] interface {
	Items() []T
	payload()
}

// Single is a payload sent as a JSON object
type Single[T any] struct {
	Item T
}

// Items returns the item as a one-element slice
func (s Single[T]) Items() []T { return []T{s.Item} }

func (Single[T]) payload() {}

// Bulk is a payload sent as a JSON array
type Bulk[T any] struct {
	Values []T
}

// Items returns the batch
func (b Bulk[T]) Items() []T { return b.Values }

func (Bulk[T]) payload() {}

// DecodePayload decodes a JSON object or array body without validating it
func DecodePayload[T any](body []byte) (Payload[T], error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrEmptyBody
	}

	if trimmed[0] == '[' {
		var values []T
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		if len(values) == 0 {
			return nil, ErrEmptyBatch
		}
		return Bulk[T]{Values: values}, nil
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return Single[T]{Item: item}, nil
}

type oneOrManySchema[T any] struct {
	validator *validator.Validator
}

// OneOrMany returns a body schema accepting a single T or a non-empty array of T.
// Every item is validated; the parsed value is a Payload[T].
func OneOrMany[T any](v *validator.Validator) Schema {
	return oneOrManySchema[T]{validator: v}
}

func (s oneOrManySchema[T]) Parse(raw any) (any, error) {
	body, ok := raw.([]byte)
	if !ok {
		return nil, fmt.Errorf("unsupported input %T", raw)
	}

	p, err := DecodePayload[T](body)
	if err != nil {
		return nil, err
	}

	items := p.Items()
	for i := range items {
		if err := s.validator.Validate(&items[i]); err != nil {
			if _, bulk := p.(Bulk[T]); bulk {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			return nil, err
		}
	}
	return p, nil
}
