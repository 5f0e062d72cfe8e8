package brief

import (
	"fmt"
	"sort"
)

// MappingIssue reports a normalizer candidate key that no declared
// questionnaire question can ever populate.
type MappingIssue struct {
	MappingKey string
	TemplateID string
	FieldID    string
}

func (i MappingIssue) String() string {
	return fmt.Sprintf("mapping %q: template %q has no question %q", i.MappingKey, i.TemplateID, i.FieldID)
}

// CheckMappings cross-checks the field normalizer against the declared
// questionnaires. declared maps a template ID to the set of question IDs it
// defines (including "-other" companions). Templates without a declared
// questionnaire are skipped: their candidate keys cannot be verified.
func CheckMappings(declared map[string]map[string]bool) []MappingIssue {
	var issues []MappingIssue
	for _, m := range fieldMappings {
		for templateID, ids := range m.Fields {
			questions, ok := declared[templateID]
			if !ok {
				continue
			}
			for _, id := range ids {
				if !questions[id] {
					issues = append(issues, MappingIssue{MappingKey: m.Key, TemplateID: templateID, FieldID: id})
				}
			}
		}
	}
	sort.Slice(issues, func(a, b int) bool {
		if issues[a].MappingKey != issues[b].MappingKey {
			return issues[a].MappingKey < issues[b].MappingKey
		}
		if issues[a].TemplateID != issues[b].TemplateID {
			return issues[a].TemplateID < issues[b].TemplateID
		}
		return issues[a].FieldID < issues[b].FieldID
	})
	return issues
}
