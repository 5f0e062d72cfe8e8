// Package markdown holds the primitive formatters shared by every brief
// generator: section headers, labeled fields and bullet lists.
package markdown

import (
	"fmt"
	"strings"

	"github.com/brieffast/brieffast-server/internal/model"
)

// Section renders a level-two heading with surrounding blank lines.
func Section(title string) string {
	return fmt.Sprintf("\n## %s\n\n", title)
}

// Field renders a bold label/value pair. Empty values (absent, empty text,
// empty list) render nothing; list values are joined with ", ".
func Field(name string, value model.Value) string {
	if value.IsEmpty() {
		return ""
	}
	if value.IsList() {
		return fmt.Sprintf("**%s:** %s\n\n", name, strings.Join(value.Strings(), ", "))
	}
	return fmt.Sprintf("**%s:** %s\n\n", name, value.String())
}

// FieldText is Field for plain strings (normalizer output).
func FieldText(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("**%s:** %s\n\n", name, value)
}

// ConditionalField is an alias of Field kept for call-site intent: the value
// may legitimately be missing and the caller expects silence when it is.
func ConditionalField(name string, value model.Value) string {
	return Field(name, value)
}

// ConditionalFieldText mirrors FieldText for normalized string values.
func ConditionalFieldText(name, value string) string {
	return FieldText(name, value)
}

// List renders the surviving (non-empty) items as bullets with a trailing
// blank line, or nothing when no item survives.
func List(items []string) string {
	var b strings.Builder
	for _, it := range items {
		if it == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s\n", it)
	}
	if b.Len() == 0 {
		return ""
	}
	return b.String() + "\n"
}

// MappedList renders items as bullets, translating each code through
// labels. An item equal to otherKey is replaced by otherValue when one is
// present (joined with ", " for list values). Codes missing from labels fall
// back to the raw code; missing map entries are expected, not errors.
func MappedList(items []string, labels map[string]string, otherValue model.Value, otherKey string) string {
	if otherKey == "" {
		otherKey = "other"
	}
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for _, it := range items {
		if it == otherKey && !otherValue.IsAbsent() {
			if otherValue.IsList() {
				fmt.Fprintf(&b, "- %s\n", strings.Join(otherValue.Strings(), ", "))
			} else {
				fmt.Fprintf(&b, "- %s\n", otherValue.String())
			}
			continue
		}
		if label, ok := labels[it]; ok {
			fmt.Fprintf(&b, "- %s\n", label)
		} else {
			fmt.Fprintf(&b, "- %s\n", it)
		}
	}
	return b.String() + "\n"
}
