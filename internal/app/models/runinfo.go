package models

import (
	"strings"
	"time"
)

// RunInfo is one active administration of a questionnaire to one subject.
// QuestionSetID is the current position; an empty value means the run is
// complete, although the record is archived and deleted at that point
// anyway. Tags and Skipped are comma-separated text fields, Cookies a JSON
// object in a text field.
type RunInfo struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	SubjectID       string    `bson:"subjectId" json:"subject_id"`
	QuestionnaireID string    `bson:"questionnaireId" json:"questionnaire_id"`
	RunID           string    `bson:"runId" json:"run_id"`
	Random          string    `bson:"random" json:"random"`
	QuestionSetID   string    `bson:"questionSetId" json:"questionset_id"`
	State           string    `bson:"state" json:"state"`
	Cookies         string    `bson:"cookies" json:"cookies"`
	Tags            string    `bson:"tags" json:"tags"`
	Skipped         string    `bson:"skipped" json:"skipped"`
	Created         time.Time `bson:"created" json:"created"`
}

func (r RunInfo) TagList() []string {
	return splitCommaList(r.Tags)
}

func (r RunInfo) SkippedList() []string {
	return splitCommaList(r.Skipped)
}

func (r RunInfo) HasSkipped(number string) bool {
	for _, skipped := range r.SkippedList() {
		if skipped == number {
			return true
		}
	}
	return false
}

func (r *RunInfo) AddSkipped(number string) {
	if r.HasSkipped(number) {
		return
	}
	list := append(r.SkippedList(), number)
	r.Skipped = strings.Join(list, ",")
}

// RunInfoHistory is the archived record of a completed run.
type RunInfoHistory struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	SubjectID       string    `bson:"subjectId" json:"subject_id"`
	QuestionnaireID string    `bson:"questionnaireId" json:"questionnaire_id"`
	RunID           string    `bson:"runId" json:"run_id"`
	Tags            string    `bson:"tags" json:"tags"`
	Skipped         string    `bson:"skipped" json:"skipped"`
	Completed       time.Time `bson:"completed" json:"completed"`
}

func splitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
