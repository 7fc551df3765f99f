// Package validation checks raw JSON records against declared per-entity
// schemas. Every field has a declared kind that is checked strictly before
// its rules run, and fields are checked in declaration order so the reported
// failure is deterministic.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

// Record is an undecoded JSON object as received on the wire.
type Record map[string]json.RawMessage

// Kind is the declared JSON type of a field.
type Kind int

const (
	Text Kind = iota
	Number
	Integer
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Number:
		return "a number"
	case Integer:
		return "an integer"
	default:
		return "unknown"
	}
}

// Field declares one schema field. Rules is a go-playground/validator tag
// evaluated against the typed value.
type Field struct {
	Name  string
	Kind  Kind
	Rules string
	// Required fields must be present on create. Optional fields are only
	// checked when supplied.
	Required bool
	// CreateOnly fields are ignored by Update.
	CreateOnly bool
}

// Schema is the ordered list of fields accepted for an entity.
type Schema struct {
	Entity string
	Fields []Field
}

var rules = newRules()

func newRules() *validator.Validate {
	v := validator.New()
	// maxbytes bounds the encoded length of a string; bcrypt rejects input past 72 bytes.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return v
}

// Create validates a full record. Every required field must be present.
func (s Schema) Create(rec Record) (Values, error) {
	return s.check(rec, false)
}

// Update validates a partial record. Only supplied fields are checked and
// returned; CreateOnly fields are ignored.
func (s Schema) Update(rec Record) (Values, error) {
	return s.check(rec, true)
}

func (s Schema) check(rec Record, partial bool) (Values, error) {
	out := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		if partial && f.CreateOnly {
			continue
		}
		raw, ok := rec[f.Name]
		if !ok {
			if f.Required && !partial {
				return nil, &domain.ValidationError{Field: f.Name, Reason: "is required"}
			}
			continue
		}

		v, err := decode(f.Kind, raw)
		if err != nil {
			return nil, &domain.ValidationError{Field: f.Name, Reason: "must be " + f.Kind.String()}
		}
		if f.Rules != "" {
			if err := rules.Var(v, f.Rules); err != nil {
				return nil, &domain.ValidationError{Field: f.Name, Reason: ruleReason(err, f.Kind)}
			}
		}
		out[f.Name] = v
	}
	return out, nil
}

// decode enforces the declared kind. JSON null, booleans, arrays and objects
// never satisfy any kind.
func decode(kind Kind, raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	switch kind {
	case Text:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case Number:
		if n, ok := v.(json.Number); ok {
			return n.Float64()
		}
	case Integer:
		if n, ok := v.(json.Number); ok {
			return n.Int64()
		}
	}
	return nil, errors.New("wrong kind")
}

// ruleReason converts the first failed rule into a readable reason.
func ruleReason(err error, kind Kind) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "is invalid"
	}
	fe := ve[0]
	switch fe.Tag() {
	case "required":
		if kind == Text {
			return "must be non-empty text"
		}
		return "is required"
	case "max":
		if kind == Text {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("must be at most %s bytes", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
