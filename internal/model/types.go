package model

import "time"

// BriefingData is the replace-whole payload stored inside a Briefing.
// Updates never patch individual fields; the entire payload is swapped.
type BriefingData struct {
	Answers  AnswerSet `json:"answers"`
	Markdown string    `json:"markdown"`
}

// Briefing is the persisted unit combining a template category, the
// questionnaire answers and the generated Markdown.
type Briefing struct {
	ID        string       `json:"id"`
	Category  string       `json:"category"`
	Data      BriefingData `json:"data"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
