package models

import (
	"questionnaire-service/internal/pkg/constvars"
	"strings"
)

type Questionnaire struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	RedirectURL string `bson:"redirectUrl" json:"redirect_url"`
}

// RedirectURLFor expands the $SUBJECTID, $RUNID and $LANG macros for a
// completed run.
func (q Questionnaire) RedirectURLFor(subjectID, runID, language string) string {
	url := q.RedirectURL
	url = strings.ReplaceAll(url, constvars.RedirectMacroSubjectID, subjectID)
	url = strings.ReplaceAll(url, constvars.RedirectMacroRunID, runID)
	url = strings.ReplaceAll(url, constvars.RedirectMacroLanguage, language)
	return url
}
