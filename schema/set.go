package schema

import "shop-api/response"

// Request part names, used as the message prefix of validation errors
const (
	PartQuery  = "Query"
	PartParams = "Params"
	PartBody   = "Body"
)

// Raw holds the unvalidated request parts
type Raw struct {
	Query  map[string]string
	Params map[string]string
	Body   []byte
}

// Values holds validated request parts. A part without a schema is nil.
type Values struct {
	Query  any
	Params any
	Body   any
}

// Set is the optional schemas of one route
type Set struct {
	Query  Schema
	Params Schema
	Body   Schema
}

// Validate checks query, then params, then body. The first failure is returned
// as a validation error naming the part, and later parts are not checked.
func (s Set) Validate(raw Raw) (Values, error) {
	var values Values

	steps := []struct {
		part   string
		schema Schema
		input  any
		out    *any
	}{
		{PartQuery, s.Query, raw.Query, &values.Query},
		{PartParams, s.Params, raw.Params, &values.Params},
		{PartBody, s.Body, raw.Body, &values.Body},
	}

	for _, step := range steps {
		if step.schema == nil {
			continue
		}
		parsed, err := step.schema.Parse(step.input)
		if err != nil {
			return Values{}, response.Validation(step.part, err)
		}
		*step.out = parsed
	}

	return values, nil
}
