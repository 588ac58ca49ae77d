// Package validation implements the request-body gate: a declarative rule set
// per route, evaluated against the decoded JSON body before the handler runs.
// Every violation is collected (the gate never stops at the first one) and the
// request is rejected with the full ordered list.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/pipeline"
)

// maxBodyBytes bounds how much of a request body the gate will read.
const maxBodyBytes = 1 << 20

// Kind is the expected JSON type of a field.
type Kind int

const (
	// String requires a JSON string.
	String Kind = iota
	// Enum requires a JSON string from a fixed set of values.
	Enum
)

// Rule describes one body field.
type Rule struct {
	Field    string
	Required bool
	Kind     Kind
	Values   []string // allowed values for Enum
}

// Required declares a mandatory, non-empty string field.
func Required(field string) Rule {
	return Rule{Field: field, Required: true, Kind: String}
}

// Optional declares a string field that may be absent or null.
func Optional(field string) Rule {
	return Rule{Field: field, Kind: String}
}

// OneOf declares an enum field. Pass required=false for an optional one.
func OneOf(field string, required bool, values ...string) Rule {
	return Rule{Field: field, Required: required, Kind: Enum, Values: values}
}

// Rules is an ordered rule set; violations are reported in this order.
type Rules []Rule

// validate is shared by all gates; validator.Validate caches and is safe for concurrent use.
var validate = validator.New()

// Check evaluates every rule against body and returns all violations.
func (rs Rules) Check(body map[string]interface{}) []apperror.FieldError {
	var out []apperror.FieldError
	for _, rule := range rs {
		if fe, bad := rule.check(body); bad {
			out = append(out, fe)
		}
	}
	return out
}

func (r Rule) check(body map[string]interface{}) (apperror.FieldError, bool) {
	raw, present := body[r.Field]
	if !present || raw == nil {
		if r.Required {
			return r.fail("%s is required", r.Field)
		}
		return apperror.FieldError{}, false
	}

	s, ok := raw.(string)
	if !ok {
		return r.fail("%s must be a string", r.Field)
	}
	if r.Required && validate.Var(s, "required") != nil {
		return r.fail("%s is required", r.Field)
	}
	if r.Kind == Enum {
		if validate.Var(s, "oneof="+strings.Join(r.Values, " ")) != nil {
			return r.fail("%s must be one of [%s]", r.Field, strings.Join(r.Values, " "))
		}
	}
	return apperror.FieldError{}, false
}

func (r Rule) fail(format string, args ...interface{}) (apperror.FieldError, bool) {
	return apperror.FieldError{Field: r.Field, Message: fmt.Sprintf(format, args...)}, true
}

// Gate returns the pipeline stage that enforces rules on the request body.
// The body is restored afterwards so the handler can decode it again.
func Gate(rules ...Rule) pipeline.Stage {
	rs := Rules(rules)
	return func(r *http.Request) (*http.Request, error) {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
		if err != nil {
			return nil, apperror.NewBadRequestError("could not read request body", err)
		}
		if len(raw) > maxBodyBytes {
			return nil, apperror.NewBadRequestError("request body too large", nil)
		}

		body := map[string]interface{}{}
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil || body == nil {
				return nil, apperror.NewValidationError("invalid input", []apperror.FieldError{
					{Field: "body", Message: "body must be a JSON object"},
				})
			}
		}

		if violations := rs.Check(body); len(violations) > 0 {
			return nil, apperror.NewValidationError("invalid input", violations)
		}

		r.Body = io.NopCloser(bytes.NewReader(raw))
		return r, nil
	}
}

// Body wraps Gate as chi middleware, for use with `r.With(validation.Body(...))`.
func Body(rules ...Rule) func(next http.Handler) http.Handler {
	return pipeline.Middleware(Gate(rules...))
}

// Decode reads the JSON body into v. An empty body leaves v untouched, which is
// what routes whose fields are all optional expect.
func Decode(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return apperror.NewBadRequestError("invalid request body", err)
	}
	return nil
}
