package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind discriminates the answer value union.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindText
	KindList
	KindNumber
	KindBool
)

// Value is a single questionnaire answer. Templates define their own field
// identifiers, so a value can be free text, a multi-select list, a number or
// a boolean; Absent stands in for a question that was never answered.
type Value struct {
	kind ValueKind
	text string
	list []string
	num  float64
	b    bool
}

// Absent is the zero Value.
var Absent = Value{}

func Text(s string) Value     { return Value{kind: KindText, text: s} }
func List(ss ...string) Value { return Value{kind: KindList, list: ss} }
func Number(f float64) Value  { return Value{kind: KindNumber, num: f} }
func Bool(b bool) Value       { return Value{kind: KindBool, b: b} }

func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the value is missing entirely.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsEmpty reports whether the value should be treated as "no answer":
// absent, empty text, or an empty list. Numbers and booleans are never empty.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindText:
		return v.text == ""
	case KindList:
		return len(v.list) == 0
	default:
		return false
	}
}

// IsList reports whether the value is a multi-select answer.
func (v Value) IsList() bool { return v.kind == KindList }

// Strings returns the list items, or nil for non-list values.
func (v Value) Strings() []string { return v.list }

// Num returns the numeric value (0 for non-numbers).
func (v Value) Num() float64 { return v.num }

// String coerces the value to its display representation. Lists collapse to
// a comma-joined string; callers that want ", "-joined output or bullets go
// through the markdown helpers instead.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindList:
		return strings.Join(v.list, ",")
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Equals reports whether the value is the given text (radio/select answers).
func (v Value) Equals(s string) bool { return v.kind == KindText && v.text == s }

// Contains reports whether a list value contains the given item.
func (v Value) Contains(s string) bool {
	for _, it := range v.list {
		if it == s {
			return true
		}
	}
	return false
}

// MarshalJSON renders the value in its wire form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindList:
		return json.Marshal(v.list)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a string, string array, number, bool or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = Absent
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	case '[':
		var ss []string
		if err := json.Unmarshal(data, &ss); err != nil {
			return fmt.Errorf("answer arrays must contain strings: %w", err)
		}
		*v = List(ss...)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("unsupported answer value %s", trimmed)
		}
		*v = Number(f)
		return nil
	}
}

// AnswerSet maps template-defined field identifiers to answer values.
type AnswerSet map[string]Value

// Get returns the value for a field, Absent when the field was never set.
func (a AnswerSet) Get(field string) Value {
	if a == nil {
		return Absent
	}
	return a[field]
}

// Has reports whether the field carries a non-empty answer.
func (a AnswerSet) Has(field string) bool { return !a.Get(field).IsEmpty() }
