// Package validate declares the API request payloads and their validation
// rules.
package validate

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/brieffast/brieffast-server/internal/model"
)

// CreateBriefingRequest is the body of POST /api/briefings.
type CreateBriefingRequest struct {
	Category string              `json:"category"`
	Data     *model.BriefingData `json:"data"`
}

func (r CreateBriefingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category, validation.Required.Error("category is required")),
		validation.Field(&r.Data, validation.NotNil.Error("data is required")),
	)
}

// UpdateBriefingRequest is the body of PUT /api/briefings. The payload
// replaces the stored data wholesale.
type UpdateBriefingRequest struct {
	Data *model.BriefingData `json:"data"`
}

func (r UpdateBriefingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Data, validation.NotNil.Error("data is required")),
	)
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	TemplateID string          `json:"templateId"`
	Answers    model.AnswerSet `json:"answers"`
}

func (r GenerateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TemplateID, validation.Required.Error("templateId is required")),
	)
}
