package questionnaire

import (
	"errors"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/brieffast/brieffast-server/internal/model"
)

// Validate checks submitted answers against the questionnaire's declared
// rules. Questions hidden by their conditions are skipped entirely, so an
// answer to a hidden "other" field is never required. The returned error is
// a validation.Errors keyed by question ID, nil when everything passes.
func (q Questionnaire) Validate(answers model.AnswerSet) error {
	errs := validation.Errors{}
	for _, question := range q.Questions {
		if !ShouldShow(question, answers) {
			continue
		}
		if err := question.validate(answers.Get(question.ID)); err != nil {
			errs[question.ID] = err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (q Question) validate(v model.Value) error {
	for _, rule := range q.Validation {
		if rule.Type == RuleRequired {
			if v.IsEmpty() {
				return errors.New(rule.Message)
			}
			continue
		}
		// Non-required rules only constrain present answers.
		if v.IsEmpty() {
			continue
		}
		if err := rule.apply(v); err != nil {
			return err
		}
	}
	return nil
}

func (r Rule) apply(v model.Value) error {
	fail := errors.New(r.Message)
	switch r.Type {
	case RuleEmail:
		if validation.Validate(v.String(), is.Email) != nil {
			return fail
		}
	case RuleMinLength:
		if utf8.RuneCountInString(v.String()) < int(r.Limit) {
			return fail
		}
	case RuleMaxLength:
		if utf8.RuneCountInString(v.String()) > int(r.Limit) {
			return fail
		}
	case RuleMin:
		if v.Kind() != model.KindNumber || v.Num() < r.Limit {
			return fail
		}
	case RuleMax:
		if v.Kind() != model.KindNumber || v.Num() > r.Limit {
			return fail
		}
	case RulePattern:
		if r.Pattern == nil || !r.Pattern.MatchString(v.String()) {
			return fail
		}
	}
	return nil
}
