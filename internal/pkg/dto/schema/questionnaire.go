// Package schema defines the versioned portable document format a
// questionnaire tree is exported to and imported from. Field order in the
// document follows sortid/number order, never storage order.
package schema

type QuestionnaireDocument struct {
	SchemaVersion int                   `json:"schema_version" validate:"required"`
	Name          string                `json:"name" validate:"required"`
	RedirectURL   string                `json:"redirect_url"`
	QuestionSets  []QuestionSetDocument `json:"questionsets" validate:"dive"`
}

type QuestionSetDocument struct {
	SortID    int                `json:"sortid"`
	Heading   string             `json:"heading" validate:"required"`
	Checks    string             `json:"checks"`
	Text      string             `json:"text"`
	Questions []QuestionDocument `json:"questions" validate:"dive"`
}

type QuestionDocument struct {
	Number  string           `json:"number" validate:"required,question_number"`
	Text    string           `json:"text"`
	Type    string           `json:"type" validate:"required"`
	Extra   string           `json:"extra"`
	Checks  string           `json:"checks"`
	Choices []ChoiceDocument `json:"choices" validate:"dive"`
}

type ChoiceDocument struct {
	SortID int    `json:"sortid"`
	Value  string `json:"value" validate:"required"`
	Text   string `json:"text"`
}
