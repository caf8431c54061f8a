// Package schema validates raw request data against per-route schemas.
//
// A route declares at most one schema for each request part. Query and route
// params arrive as string maps, the body as raw JSON bytes. A schema turns the
// raw input into a typed value or fails.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"shop-api/validator"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrEmptyBody is returned when a body schema receives no content
var ErrEmptyBody = errors.New("request body is empty")

// Schema parses and validates one request part
type Schema interface {
	Parse(raw any) (any, error)
}

// Func adapts a function to the Schema interface
type Func func(raw any) (any, error)

// Parse calls f(raw)
func (f Func) Parse(raw any) (any, error) {
	return f(raw)
}

type structSchema[T any] struct {
	validator *validator.Validator
}

// Struct returns a schema that decodes into T and validates T's struct tags.
// JSON names are taken from the json tags. Query and param strings are
// converted to the field types (e.g. "42" into a uint).
func Struct[T any](v *validator.Validator) Schema {
	return structSchema[T]{validator: v}
}

func (s structSchema[T]) Parse(raw any) (any, error) {
	var out T
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// decode fills out from a JSON body or a string map
func decode(raw any, out any) error {
	switch in := raw.(type) {
	case []byte:
		if len(bytes.TrimSpace(in)) == 0 {
			return ErrEmptyBody
		}
		if err := json.Unmarshal(in, out); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		return nil
	case map[string]string, map[string]any:
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.DecodeHookFuncType(decimalStrings),
			Result:           out,
		})
		if err != nil {
			return err
		}
		return decoder.Decode(in)
	case nil:
		return ErrEmptyBody
	default:
		return fmt.Errorf("unsupported input %T", raw)
	}
}

// decimalStrings parses numeric strings in base 10 only, so "010" is 10 and
// "0x8" or "1_0" are rejected
func decimalStrings(from reflect.Type, to reflect.Type, data any) (any, error) {
	str, ok := data.(string)
	if !ok || from.Kind() != reflect.String || str == "" {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 10, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as %s", str, to.Kind())
		}
		return reflect.ValueOf(n).Convert(to).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 10, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as %s", str, to.Kind())
		}
		return reflect.ValueOf(n).Convert(to).Interface(), nil
	case reflect.Float32, reflect.Float64:
		if strings.ContainsAny(str, "xX_") {
			return nil, fmt.Errorf("cannot parse %q as %s", str, to.Kind())
		}
		f, err := strconv.ParseFloat(str, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as %s", str, to.Kind())
		}
		return reflect.ValueOf(f).Convert(to).Interface(), nil
	default:
		return data, nil
	}
}
