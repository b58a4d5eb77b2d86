package questionnaires

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"questionnaire-service/internal/app/models"
)

// QuestionnaireMemoryRepository keeps the definition tree in process
// memory. It backs the import/lint CLI in offline mode and the package
// tests.
type QuestionnaireMemoryRepository struct {
	mu             sync.RWMutex
	questionnaires map[string]models.Questionnaire
	questionSets   map[string]models.QuestionSet
	questions      map[string]models.Question
	choices        map[string]models.Choice
}

func NewQuestionnaireMemoryRepository() *QuestionnaireMemoryRepository {
	return &QuestionnaireMemoryRepository{
		questionnaires: map[string]models.Questionnaire{},
		questionSets:   map[string]models.QuestionSet{},
		questions:      map[string]models.Question{},
		choices:        map[string]models.Choice{},
	}
}

func (repo *QuestionnaireMemoryRepository) CreateQuestionnaire(_ context.Context, questionnaire *models.Questionnaire) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if questionnaire.ID == "" {
		questionnaire.ID = uuid.NewString()
	}
	repo.questionnaires[questionnaire.ID] = *questionnaire
	return questionnaire.ID, nil
}

func (repo *QuestionnaireMemoryRepository) FindQuestionnaireByID(_ context.Context, questionnaireID string) (*models.Questionnaire, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	questionnaire, ok := repo.questionnaires[questionnaireID]
	if !ok {
		return nil, nil
	}
	return &questionnaire, nil
}

func (repo *QuestionnaireMemoryRepository) CreateQuestionSet(_ context.Context, questionSet *models.QuestionSet) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if questionSet.ID == "" {
		questionSet.ID = uuid.NewString()
	}
	repo.questionSets[questionSet.ID] = *questionSet
	return questionSet.ID, nil
}

func (repo *QuestionnaireMemoryRepository) FindQuestionSets(_ context.Context, questionnaireID string) ([]models.QuestionSet, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	var results []models.QuestionSet
	for _, questionSet := range repo.questionSets {
		if questionSet.QuestionnaireID == questionnaireID {
			results = append(results, questionSet)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SortID < results[j].SortID
	})
	return results, nil
}

func (repo *QuestionnaireMemoryRepository) CreateQuestion(_ context.Context, question *models.Question) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	repo.questions[question.ID] = *question
	return question.ID, nil
}

func (repo *QuestionnaireMemoryRepository) FindQuestions(_ context.Context, questionSetID string) ([]models.Question, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	var results []models.Question
	for _, question := range repo.questions {
		if question.QuestionSetID == questionSetID {
			results = append(results, question)
		}
	}
	return results, nil
}

func (repo *QuestionnaireMemoryRepository) FindQuestionByNumber(_ context.Context, questionnaireID, number string) (*models.Question, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	for _, question := range repo.questions {
		questionSet, ok := repo.questionSets[question.QuestionSetID]
		if !ok || questionSet.QuestionnaireID != questionnaireID {
			continue
		}
		if question.Number == number {
			result := question
			return &result, nil
		}
	}
	return nil, nil
}

func (repo *QuestionnaireMemoryRepository) CreateChoice(_ context.Context, choice *models.Choice) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if choice.ID == "" {
		choice.ID = uuid.NewString()
	}
	repo.choices[choice.ID] = *choice
	return choice.ID, nil
}

func (repo *QuestionnaireMemoryRepository) FindChoices(_ context.Context, questionID string) ([]models.Choice, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	var results []models.Choice
	for _, choice := range repo.choices {
		if choice.QuestionID == questionID {
			results = append(results, choice)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SortID < results[j].SortID
	})
	return results, nil
}
