package questionnaires

import (
	"context"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/pkg/dto/schema"
)

type QuestionnaireUsecase interface {
	Export(ctx context.Context, questionnaireID string, schemaVersion int) (*schema.QuestionnaireDocument, error)
	Import(ctx context.Context, document *schema.QuestionnaireDocument) (*models.Questionnaire, error)
	Lint(ctx context.Context, questionnaireID string) ([]string, error)
}

// QuestionnaireRepository is the definition-tree side of the persistence
// collaborator. Questionsets and choices come back ordered by their sort
// key; questions come back unordered and are sorted by the alphanumeric
// comparator in the resolver. Find methods return nil, nil when nothing
// matches.
type QuestionnaireRepository interface {
	CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	CreateQuestionSet(ctx context.Context, questionSet *models.QuestionSet) (string, error)
	FindQuestionSets(ctx context.Context, questionnaireID string) ([]models.QuestionSet, error)
	CreateQuestion(ctx context.Context, question *models.Question) (string, error)
	FindQuestions(ctx context.Context, questionSetID string) ([]models.Question, error)
	FindQuestionByNumber(ctx context.Context, questionnaireID, number string) (*models.Question, error)
	CreateChoice(ctx context.Context, choice *models.Choice) (string, error)
	FindChoices(ctx context.Context, questionID string) ([]models.Choice, error)
}
