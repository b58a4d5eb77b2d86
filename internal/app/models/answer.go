package models

import "time"

// Answer stores one answer value for (subject, question number, run).
// The value is raw text: a JSON-encoded list for choice answers, or
// legacy plain text on old records.
type Answer struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	SubjectID      string    `bson:"subjectId" json:"subject_id"`
	QuestionNumber string    `bson:"questionNumber" json:"question_number"`
	RunID          string    `bson:"runId" json:"run_id"`
	Answer         string    `bson:"answer" json:"answer"`
	Created        time.Time `bson:"created" json:"created"`
}
