package intakeform

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the shapes a field response can take.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindList
)

// Value is a tagged variant holding one field response: a string for
// text/textarea/select/radio/date fields, a number for scale answers, or a
// string list for checkbox fields. The zero Value is empty.
type Value struct {
	kind Kind
	str  string
	num  float64
	list []string
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

func List(items []string) Value {
	return Value{kind: KindList, list: items}
}

func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the value should be treated as unanswered: unset,
// an empty string, or an empty list. Numbers are never empty (0 is a valid
// scale answer).
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindString:
		return v.str == ""
	case KindNumber:
		return false
	case KindList:
		return len(v.list) == 0
	default:
		return true
	}
}

// Text returns the display rendering of the value. Lists are comma-joined.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindList:
		return strings.Join(v.list, ", ")
	default:
		return ""
	}
}

// Equals compares the value against a conditional's expected string. Only
// string values can satisfy a conditional.
func (v Value) Equals(s string) bool {
	return v.kind == KindString && v.str == s
}

func (v Value) Items() []string {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindList:
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Value{}
	case string:
		*v = String(t)
	case float64:
		*v = Number(t)
	case []interface{}:
		items := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("response list items must be strings, got %T", item)
			}
			items = append(items, s)
		}
		*v = List(items)
	default:
		return fmt.Errorf("unsupported response value type %T", t)
	}
	return nil
}

// Values is the response set for one intake session, keyed by field id.
type Values map[string]Value

// Clone returns a shallow copy so an in-flight save never observes later
// edits.
func (vs Values) Clone() Values {
	out := make(Values, len(vs))
	for k, v := range vs {
		out[k] = v
	}
	return out
}

// Merge overlays other onto vs, key by key. Existing keys absent from other
// are kept.
func (vs Values) Merge(other Values) {
	for k, v := range other {
		vs[k] = v
	}
}
