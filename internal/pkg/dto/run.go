package dto

import "questionnaire-service/internal/app/models"

// QuestionView is the render-ready form of one question in the current
// questionset: alias targets already resolved, requiredness already
// evaluated for the subject.
type QuestionView struct {
	Number        string          `json:"number"`
	DisplayNumber string          `json:"display_number"`
	Text          string          `json:"text"`
	Type          string          `json:"type"`
	Extra         string          `json:"extra"`
	Footer        string          `json:"footer"`
	Choices       []models.Choice `json:"choices"`
	Required      bool            `json:"required"`
}

// SubmitAnswersResult reports where a run stands after one submission.
type SubmitAnswersResult struct {
	Completed         bool   `json:"completed"`
	RedirectURL       string `json:"redirect_url,omitempty"`
	NextQuestionSetID string `json:"next_questionset_id,omitempty"`
}
