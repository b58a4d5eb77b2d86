package answers

import (
	"context"
	"questionnaire-service/internal/app/models"
)

// AnswerRepository is the append-only answer store. Writes for a given
// (subject, question, run) are append-only except by explicit correction,
// which replaces the stored value.
type AnswerRepository interface {
	SaveAnswer(ctx context.Context, answer *models.Answer) (string, error)
	FindAnswers(ctx context.Context, subjectID, runID string) ([]models.Answer, error)
}
