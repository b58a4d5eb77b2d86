package models

type Choice struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	QuestionID string `bson:"questionId" json:"question_id"`
	SortID     int    `bson:"sortId" json:"sortid"`
	Value      string `bson:"value" json:"value"`
	Text       string `bson:"text" json:"text"`
}
