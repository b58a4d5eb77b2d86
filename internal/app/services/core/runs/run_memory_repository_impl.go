package runs

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"questionnaire-service/internal/app/models"
)

// RunMemoryRepository is the in-process RunRepository used by tests and
// offline tooling.
type RunMemoryRepository struct {
	mu      sync.RWMutex
	runs    map[string]models.RunInfo
	history map[string]models.RunInfoHistory
}

func NewRunMemoryRepository() *RunMemoryRepository {
	return &RunMemoryRepository{
		runs:    map[string]models.RunInfo{},
		history: map[string]models.RunInfoHistory{},
	}
}

func (repo *RunMemoryRepository) CreateRunInfo(_ context.Context, runInfo *models.RunInfo) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if runInfo.ID == "" {
		runInfo.ID = uuid.NewString()
	}
	repo.runs[runInfo.ID] = *runInfo
	return runInfo.ID, nil
}

func (repo *RunMemoryRepository) FindRunInfoByID(_ context.Context, runInfoID string) (*models.RunInfo, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	runInfo, ok := repo.runs[runInfoID]
	if !ok {
		return nil, nil
	}
	return &runInfo, nil
}

func (repo *RunMemoryRepository) UpdateRunInfo(_ context.Context, runInfo *models.RunInfo) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.runs[runInfo.ID] = *runInfo
	return nil
}

func (repo *RunMemoryRepository) DeleteRunInfo(_ context.Context, runInfoID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.runs, runInfoID)
	return nil
}

func (repo *RunMemoryRepository) CreateRunInfoHistory(_ context.Context, history *models.RunInfoHistory) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if history.ID == "" {
		history.ID = uuid.NewString()
	}
	repo.history[history.ID] = *history
	return history.ID, nil
}

func (repo *RunMemoryRepository) FindRunInfoHistoryBySubject(_ context.Context, subjectID string) ([]models.RunInfoHistory, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	var results []models.RunInfoHistory
	for _, history := range repo.history {
		if history.SubjectID == subjectID {
			results = append(results, history)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Completed.Before(results[j].Completed)
	})
	return results, nil
}
