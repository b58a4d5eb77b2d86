package answers

import (
	"context"
	"sync"

	"questionnaire-service/internal/app/models"

	"github.com/google/uuid"
)

// AnswerMemoryRepository is the in-process reference collaborator used by
// tests and the CLI. Write serialization is the collaborator's concern,
// hence the mutex.
type AnswerMemoryRepository struct {
	mu      sync.RWMutex
	answers map[string]models.Answer
}

func NewAnswerMemoryRepository() AnswerRepository {
	return &AnswerMemoryRepository{
		answers: map[string]models.Answer{},
	}
}

func (repo *AnswerMemoryRepository) SaveAnswer(ctx context.Context, answer *models.Answer) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := answer.SubjectID + "/" + answer.RunID + "/" + answer.QuestionNumber
	stored := *answer
	if existing, ok := repo.answers[key]; ok {
		stored.ID = existing.ID
	} else if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	repo.answers[key] = stored
	return stored.ID, nil
}

func (repo *AnswerMemoryRepository) FindAnswers(ctx context.Context, subjectID, runID string) ([]models.Answer, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var results []models.Answer
	for _, answer := range repo.answers {
		if answer.SubjectID == subjectID && answer.RunID == runID {
			results = append(results, answer)
		}
	}
	return results, nil
}
