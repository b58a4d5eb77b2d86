package models

import "questionnaire-service/internal/pkg/constvars"

// Question belongs to exactly one QuestionSet. Number is unique within
// the questionnaire and doubles as the ordering key and the lookup key
// for sameas indirection. For sameas questions the Checks field holds the
// aliased question's number instead of a checks expression.
type Question struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	QuestionSetID string `bson:"questionSetId" json:"questionset_id"`
	Number        string `bson:"number" json:"number"`
	Text          string `bson:"text" json:"text"`
	Type          string `bson:"type" json:"type"`
	Extra         string `bson:"extra" json:"extra"`
	Checks        string `bson:"checks" json:"checks"`
	Footer        string `bson:"footer" json:"footer"`
}

func (q Question) IsSameAs() bool {
	return q.Type == constvars.QuestionTypeSameAs
}

func (q Question) IsYesNo() bool {
	return constvars.YesNoQuestionTypes[q.Type]
}
