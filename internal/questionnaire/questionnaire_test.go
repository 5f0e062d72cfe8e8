package questionnaire

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieffast/brieffast-server/internal/model"
)

func TestByTemplateID(t *testing.T) {
	q, ok := ByTemplateID("web-development")
	require.True(t, ok)
	assert.Equal(t, "web-development-questionnaire", q.ID)

	_, ok = ByTemplateID("tech-product-saas")
	assert.False(t, ok)
}

func TestQuestionsForStep(t *testing.T) {
	qs := WebDevelopment.QuestionsForStep(1)
	require.Len(t, qs, 4)
	assert.Equal(t, "project-name", qs[0].ID)
	assert.Equal(t, "project-type-other", qs[3].ID)

	assert.Empty(t, WebDevelopment.QuestionsForStep(99))
}

func TestShouldShow(t *testing.T) {
	var other Question
	for _, q := range WebDevelopment.Questions {
		if q.ID == "project-type-other" {
			other = q
		}
	}
	require.NotEmpty(t, other.ID)

	// Condition on an unanswered question hides the dependent one.
	assert.False(t, ShouldShow(other, model.AnswerSet{}))
	assert.False(t, ShouldShow(other, model.AnswerSet{"project-type": model.Text("ecommerce")}))
	assert.True(t, ShouldShow(other, model.AnswerSet{"project-type": model.Text("other")}))
}

func TestShouldShowIncludes(t *testing.T) {
	q := Question{
		ID: "technologies-other",
		Conditions: []Condition{
			{QuestionID: "technologies", Operator: OpIncludes, Value: model.Text("other")},
		},
	}
	assert.False(t, ShouldShow(q, model.AnswerSet{"technologies": model.List("react")}))
	assert.True(t, ShouldShow(q, model.AnswerSet{"technologies": model.List("react", "other")}))
	// A text answer never satisfies includes.
	assert.False(t, ShouldShow(q, model.AnswerSet{"technologies": model.Text("other")}))
}

func TestConditionNumericOperators(t *testing.T) {
	q := Question{
		ID: "scale-notes",
		Conditions: []Condition{
			{QuestionID: "team-size", Operator: OpGTE, Value: model.Number(10)},
		},
	}
	assert.True(t, ShouldShow(q, model.AnswerSet{"team-size": model.Number(10)}))
	assert.False(t, ShouldShow(q, model.AnswerSet{"team-size": model.Number(3)}))
	// Type mismatches fail closed.
	assert.False(t, ShouldShow(q, model.AnswerSet{"team-size": model.Text("10")}))
}

func validWebDevAnswers() model.AnswerSet {
	return model.AnswerSet{
		"project-name":        model.Text("Acme Relaunch"),
		"project-description": model.Text("Rebuild the marketing site with a CMS and a careers board behind it."),
		"project-type":        model.Text("new-website"),
		"primary-goals":       model.List("lead-generation"),
		"target-audience":     model.Text("CTOs"),
		"success-metrics":     model.Text("Double inbound leads"),
		"features":            model.List("cms"),
		"design-preferences":  model.Text("new-design"),
		"responsive-design":   model.List("mobile"),
		"timeline":            model.Text("3-6-months"),
		"start-date":          model.Text("2026-10-01"),
		"budget-range":        model.Text("10k-25k"),
	}
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, WebDevelopment.Validate(validWebDevAnswers()))
}

func TestValidateRequired(t *testing.T) {
	answers := validWebDevAnswers()
	delete(answers, "project-name")
	answers["primary-goals"] = model.List()

	err := WebDevelopment.Validate(answers)
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.EqualError(t, errs["project-name"], "Project name is required")
	assert.EqualError(t, errs["primary-goals"], "Please select at least one goal")
}

func TestValidateMinLength(t *testing.T) {
	answers := validWebDevAnswers()
	answers["project-description"] = model.Text("too short")

	err := WebDevelopment.Validate(answers)
	require.Error(t, err)
	errs := err.(validation.Errors)
	assert.EqualError(t, errs["project-description"], "Please provide at least 50 characters")
}

func TestValidateSkipsHiddenQuestions(t *testing.T) {
	// project-type-other is required only when project-type is "other".
	answers := validWebDevAnswers()
	require.NoError(t, WebDevelopment.Validate(answers))

	answers["project-type"] = model.Text("other")
	err := WebDevelopment.Validate(answers)
	require.Error(t, err)
	errs := err.(validation.Errors)
	assert.EqualError(t, errs["project-type-other"], "Please specify the project type")

	answers["project-type-other"] = model.Text("Kiosk app")
	assert.NoError(t, WebDevelopment.Validate(answers))
}

func TestValidateOptionalRulesSkipEmpty(t *testing.T) {
	q := Question{
		ID: "contact-email",
		Validation: []Rule{
			{Type: RuleEmail, Message: "Please enter a valid email"},
		},
	}
	assert.NoError(t, q.validate(model.Absent))
	assert.NoError(t, q.validate(model.Text("dev@example.com")))
	assert.EqualError(t, q.validate(model.Text("not-an-email")), "Please enter a valid email")
}

func TestDeclaredFields(t *testing.T) {
	declared := DeclaredFields()
	require.Contains(t, declared, "web-development")
	assert.True(t, declared["web-development"]["project-name"])
	assert.True(t, declared["web-development"]["additional-info"])
	assert.False(t, declared["web-development"]["made-up"])
}
