package models

// QuestionSet is one page of questions within a questionnaire. SortID is
// the explicit display order; it is never inferred from storage order.
type QuestionSet struct {
	ID              string `bson:"_id,omitempty" json:"id"`
	QuestionnaireID string `bson:"questionnaireId" json:"questionnaire_id"`
	SortID          int    `bson:"sortId" json:"sortid"`
	Heading         string `bson:"heading" json:"heading"`
	Checks          string `bson:"checks" json:"checks"`
	Text            string `bson:"text" json:"text"`
}
