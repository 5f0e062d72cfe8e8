// Package questionnaire declares the question sets behind each brief
// template and validates submitted answers against them.
package questionnaire

import (
	"regexp"

	"github.com/brieffast/brieffast-server/internal/model"
)

type QuestionType string

const (
	TypeText        QuestionType = "text"
	TypeTextarea    QuestionType = "textarea"
	TypeSelect      QuestionType = "select"
	TypeMultiSelect QuestionType = "multiselect"
	TypeRadio       QuestionType = "radio"
	TypeCheckbox    QuestionType = "checkbox"
	TypeDate        QuestionType = "date"
	TypeNumber      QuestionType = "number"
	TypeEmail       QuestionType = "email"
)

type RuleType string

const (
	RuleRequired  RuleType = "required"
	RuleEmail     RuleType = "email"
	RuleMinLength RuleType = "minLength"
	RuleMaxLength RuleType = "maxLength"
	RuleMin       RuleType = "min"
	RuleMax       RuleType = "max"
	RulePattern   RuleType = "pattern"
)

// Rule is one declarative validation constraint on a question's answer.
// Limit carries the bound for length and numeric rules; Pattern is set only
// for RulePattern.
type Rule struct {
	Type    RuleType
	Limit   float64
	Pattern *regexp.Regexp
	Message string
}

type Operator string

const (
	OpEq       Operator = "=="
	OpNeq      Operator = "!="
	OpIncludes Operator = "includes"
	OpGT       Operator = ">"
	OpLT       Operator = "<"
	OpGTE      Operator = ">="
	OpLTE      Operator = "<="
)

// Condition gates a question on another question's answer.
type Condition struct {
	QuestionID string
	Operator   Operator
	Value      model.Value
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Label       string       `json:"label"`
	Placeholder string       `json:"placeholder,omitempty"`
	HelpText    string       `json:"helpText,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Validation  []Rule       `json:"-"`
	Conditions  []Condition  `json:"-"`
	Step        int          `json:"step"`
}

type Step struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type Questionnaire struct {
	ID          string     `json:"id"`
	TemplateID  string     `json:"templateId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Steps       []Step     `json:"steps"`
	Questions   []Question `json:"questions"`
}

// Questionnaires lists every declared questionnaire. Templates without an
// entry here accept free-form answers.
var Questionnaires = []Questionnaire{WebDevelopment}

// ByTemplateID returns the questionnaire declared for a template.
func ByTemplateID(templateID string) (Questionnaire, bool) {
	for _, q := range Questionnaires {
		if q.TemplateID == templateID {
			return q, true
		}
	}
	return Questionnaire{}, false
}

// QuestionsForStep returns the questions belonging to one wizard step.
func (q Questionnaire) QuestionsForStep(stepID int) []Question {
	var out []Question
	for _, question := range q.Questions {
		if question.Step == stepID {
			out = append(out, question)
		}
	}
	return out
}

// FieldIDs returns the set of question identifiers the questionnaire
// declares, used to cross-check the field normalizer.
func (q Questionnaire) FieldIDs() map[string]bool {
	ids := make(map[string]bool, len(q.Questions))
	for _, question := range q.Questions {
		ids[question.ID] = true
	}
	return ids
}

// DeclaredFields maps each declared template to its question ID set.
func DeclaredFields() map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(Questionnaires))
	for _, q := range Questionnaires {
		out[q.TemplateID] = q.FieldIDs()
	}
	return out
}

// ShouldShow reports whether a question applies given the current answers.
// Every condition must hold; conditions on unanswered questions fail.
func ShouldShow(q Question, answers model.AnswerSet) bool {
	for _, c := range q.Conditions {
		if !c.holds(answers) {
			return false
		}
	}
	return true
}

func (c Condition) holds(answers model.AnswerSet) bool {
	ans := answers.Get(c.QuestionID)
	if ans.IsAbsent() {
		return false
	}
	switch c.Operator {
	case OpEq:
		return valueEq(ans, c.Value)
	case OpNeq:
		return !valueEq(ans, c.Value)
	case OpIncludes:
		return ans.IsList() && ans.Contains(c.Value.String())
	case OpGT:
		return bothNumbers(ans, c.Value) && ans.Num() > c.Value.Num()
	case OpLT:
		return bothNumbers(ans, c.Value) && ans.Num() < c.Value.Num()
	case OpGTE:
		return bothNumbers(ans, c.Value) && ans.Num() >= c.Value.Num()
	case OpLTE:
		return bothNumbers(ans, c.Value) && ans.Num() <= c.Value.Num()
	default:
		return false
	}
}

func valueEq(a, b model.Value) bool {
	return a.Kind() == b.Kind() && a.String() == b.String()
}

func bothNumbers(a, b model.Value) bool {
	return a.Kind() == model.KindNumber && b.Kind() == model.KindNumber
}
