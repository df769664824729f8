// Package forms checks submitted login payloads in two stages: a static
// schema contract on the raw JSON object, then form field rules on the
// cleaned values.
package forms

import "github.com/sbilibin2017/gw-formtest/internal/models"

// Kind is the JSON type a contract field must carry.
type Kind string

const (
	KindString Kind = "string"
)

// Schema error types.
const (
	SchemaErrMissing    = "missing"
	SchemaErrStringType = "string_type"
)

// Field is a single required member of a contract.
type Field struct {
	Name string
	Kind Kind
}

// Contract is an ordered set of required fields.
type Contract struct {
	Fields []Field
}

// LoginContract is the shape every login payload must have.
var LoginContract = Contract{
	Fields: []Field{
		{Name: "username", Kind: KindString},
		{Name: "password", Kind: KindString},
	},
}

// Check returns the contract violations of payload in field order.
// A nil result means the payload matches.
func (c Contract) Check(payload map[string]any) []models.SchemaError {
	var errs []models.SchemaError

	for _, f := range c.Fields {
		v, ok := payload[f.Name]
		if !ok {
			errs = append(errs, models.SchemaError{
				Type:  SchemaErrMissing,
				Loc:   []string{f.Name},
				Msg:   "Field required",
				Input: payload,
			})
			continue
		}

		switch f.Kind {
		case KindString:
			if _, isString := v.(string); !isString {
				errs = append(errs, models.SchemaError{
					Type:  SchemaErrStringType,
					Loc:   []string{f.Name},
					Msg:   "Input should be a valid string",
					Input: v,
				})
			}
		}
	}

	return errs
}
