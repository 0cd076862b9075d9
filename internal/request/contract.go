// Package request validates decoded JSON bodies against per-route field
// contracts. Every mutating route declares an ordered contract of field
// names and kinds; validation produces a single diagnostic message, or
// an empty string when the body matches.
package request

import "fmt"

// Kind is the expected JSON shape of a contract field.
type Kind int

const (
	String Kind = iota
	Bool
	List
)

func (k Kind) String() string {
	switch k {
	case String:
		return "str"
	case Bool:
		return "bool"
	case List:
		return "list"
	}
	return "unknown"
}

func (k Kind) matches(v interface{}) bool {
	switch k {
	case String:
		_, ok := v.(string)
		return ok
	case Bool:
		_, ok := v.(bool)
		return ok
	case List:
		_, ok := v.([]interface{})
		return ok
	}
	return false
}

// Field pairs a body key with its expected kind.
type Field struct {
	Name string
	Kind Kind
}

// Contract is an ordered field list. Order matters: the first missing
// or mistyped field, in declaration order, is the one reported.
type Contract []Field

// Validate checks a decoded body against the contract and returns a
// diagnostic message, or "" when the body is valid. Checks are applied
// in fixed precedence: the body must be a JSON object, its key count
// must equal the contract size, then each contract field must be
// present and of the declared kind. The count check runs before the
// per-field checks, so a body with the wrong number of keys always
// reports the count message even when a more specific mismatch exists.
func (c Contract) Validate(body interface{}) string {
	obj, ok := body.(map[string]interface{})
	if !ok {
		return "Request must be in JSON"
	}
	if len(obj) != len(c) {
		return fmt.Sprintf("Request needs %d fields exactly", len(c))
	}
	for _, f := range c {
		v, present := obj[f.Name]
		if !present {
			return fmt.Sprintf("Request missing field '%s'", f.Name)
		}
		if !f.Kind.matches(v) {
			return fmt.Sprintf("Field '%s' is supposed to be a %s", f.Name, f.Kind)
		}
	}
	return ""
}
