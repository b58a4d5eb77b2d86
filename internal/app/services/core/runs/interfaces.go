package runs

import (
	"context"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/pkg/dto"
)

// RunUsecase drives the lifecycle of one questionnaire administration.
// The subject is supplied by the caller on every step that needs gender
// or language; the engine itself does not manage subject records.
type RunUsecase interface {
	StartRun(ctx context.Context, subject *models.Subject, questionnaireID, runID string, tags []string) (*models.RunInfo, error)
	CurrentQuestionSet(ctx context.Context, subject *models.Subject, runInfoID string) (*models.QuestionSet, error)
	Questions(ctx context.Context, subject *models.Subject, runInfoID string) ([]dto.QuestionView, error)
	SubmitAnswers(ctx context.Context, subject *models.Subject, runInfoID string, given map[string][]string) (*dto.SubmitAnswersResult, error)
	CompleteRun(ctx context.Context, subject *models.Subject, runInfoID string) (string, error)
	SetCookie(ctx context.Context, runInfoID, key string, value interface{}) error
	GetCookie(ctx context.Context, runInfoID, key string, def interface{}) (interface{}, error)
	SkipQuestion(ctx context.Context, runInfoID, number string) error
}

// RunRepository persists active runs and their archive. Find methods
// return nil, nil when nothing matches.
type RunRepository interface {
	CreateRunInfo(ctx context.Context, runInfo *models.RunInfo) (string, error)
	FindRunInfoByID(ctx context.Context, runInfoID string) (*models.RunInfo, error)
	UpdateRunInfo(ctx context.Context, runInfo *models.RunInfo) error
	DeleteRunInfo(ctx context.Context, runInfoID string) error
	CreateRunInfoHistory(ctx context.Context, history *models.RunInfoHistory) (string, error)
	FindRunInfoHistoryBySubject(ctx context.Context, subjectID string) ([]models.RunInfoHistory, error)
}
