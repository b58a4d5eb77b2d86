package questionnaires

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
)

// seedQuestionnaire builds one questionnaire with a single questionset
// and the given questions in a fresh memory repository.
func seedQuestionnaire(t *testing.T, questions []models.Question) (*QuestionnaireMemoryRepository, string, string) {
	t.Helper()
	ctx := context.Background()
	repo := NewQuestionnaireMemoryRepository()

	questionnaireID, err := repo.CreateQuestionnaire(ctx, &models.Questionnaire{Name: "intake"})
	require.NoError(t, err)
	questionSetID, err := repo.CreateQuestionSet(ctx, &models.QuestionSet{
		QuestionnaireID: questionnaireID,
		SortID:          1,
		Heading:         "Background",
	})
	require.NoError(t, err)

	for i := range questions {
		questions[i].QuestionSetID = questionSetID
		_, err := repo.CreateQuestion(ctx, &questions[i])
		require.NoError(t, err)
	}
	return repo, questionnaireID, questionSetID
}

func TestResolverResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Plain Question Resolves To Itself", func(t *testing.T) {
		repo, questionnaireID, questionSetID := seedQuestionnaire(t, []models.Question{
			{Number: "1", Type: constvars.QuestionTypeOpen},
		})
		resolver := NewResolver(repo, questionnaireID)

		questions, err := resolver.Questions(ctx, questionSetID)
		require.NoError(t, err)
		require.Len(t, questions, 1)

		resolved, err := resolver.Resolve(ctx, &questions[0])
		require.NoError(t, err)
		assert.Equal(t, questions[0].ID, resolved.ID)
	})

	t.Run("Alias Resolves To Target", func(t *testing.T) {
		repo, questionnaireID, questionSetID := seedQuestionnaire(t, []models.Question{
			{Number: "1", Type: constvars.QuestionTypeChoiceYesNo, Checks: "required"},
			{Number: "2", Type: constvars.QuestionTypeSameAs, Checks: "1"},
		})
		resolver := NewResolver(repo, questionnaireID)

		questions, err := resolver.Questions(ctx, questionSetID)
		require.NoError(t, err)
		alias := &questions[1]

		resolved, err := resolver.Resolve(ctx, alias)
		require.NoError(t, err)
		assert.Equal(t, "1", resolved.Number)
		assert.Equal(t, constvars.QuestionTypeChoiceYesNo, resolved.Type)

		// The alias inherits the target's rules, attributed to itself.
		rules, err := resolver.Rules(ctx, alias)
		require.NoError(t, err)
		assert.True(t, rules.Required)
	})

	t.Run("Dangling Alias Degrades To Comment", func(t *testing.T) {
		repo, questionnaireID, questionSetID := seedQuestionnaire(t, []models.Question{
			{Number: "2", Type: constvars.QuestionTypeSameAs, Checks: "99"},
		})
		resolver := NewResolver(repo, questionnaireID)

		questions, err := resolver.Questions(ctx, questionSetID)
		require.NoError(t, err)

		resolved, err := resolver.Resolve(ctx, &questions[0])
		require.NoError(t, err)
		assert.Equal(t, constvars.QuestionTypeComment, resolved.Type)

		questionType, err := resolver.TypeOf(ctx, &questions[0])
		require.NoError(t, err)
		assert.Equal(t, constvars.QuestionTypeComment, questionType)

		choices, err := resolver.Choices(ctx, &questions[0])
		require.NoError(t, err)
		assert.Empty(t, choices)
	})

	t.Run("Questions Sorted Alphanumerically", func(t *testing.T) {
		repo, questionnaireID, questionSetID := seedQuestionnaire(t, []models.Question{
			{Number: "10a", Type: constvars.QuestionTypeOpen},
			{Number: "2b", Type: constvars.QuestionTypeOpen},
			{Number: "2a", Type: constvars.QuestionTypeOpen},
		})
		resolver := NewResolver(repo, questionnaireID)

		questions, err := resolver.Questions(ctx, questionSetID)
		require.NoError(t, err)
		numbers := []string{questions[0].Number, questions[1].Number, questions[2].Number}
		assert.Equal(t, []string{"2a", "2b", "10a"}, numbers)
	})
}

func TestResolverTypeOf(t *testing.T) {
	ctx := context.Background()

	t.Run("Custom Question Uses Declared Type", func(t *testing.T) {
		repo, questionnaireID, questionSetID := seedQuestionnaire(t, []models.Question{
			{Number: "1", Type: constvars.QuestionTypeCustom, Checks: "type=timeperiod"},
		})
		resolver := NewResolver(repo, questionnaireID)

		questions, err := resolver.Questions(ctx, questionSetID)
		require.NoError(t, err)

		questionType, err := resolver.TypeOf(ctx, &questions[0])
		require.NoError(t, err)
		assert.Equal(t, "timeperiod", questionType)

		custom, err := resolver.IsCustom(ctx, &questions[0])
		require.NoError(t, err)
		assert.True(t, custom)
	})

	t.Run("Custom Question Without Declaration Fails", func(t *testing.T) {
		repo, questionnaireID, questionSetID := seedQuestionnaire(t, []models.Question{
			{Number: "1", Type: constvars.QuestionTypeCustom, Checks: "required"},
		})
		resolver := NewResolver(repo, questionnaireID)

		questions, err := resolver.Questions(ctx, questionSetID)
		require.NoError(t, err)

		_, err = resolver.TypeOf(ctx, &questions[0])
		require.Error(t, err)
		assert.True(t, exceptions.IsConfiguration(err))
	})

	t.Run("Malformed Checks Attributed To Question", func(t *testing.T) {
		repo, questionnaireID, questionSetID := seedQuestionnaire(t, []models.Question{
			{Number: "7", Type: constvars.QuestionTypeOpen, Checks: "nonsense"},
		})
		resolver := NewResolver(repo, questionnaireID)

		questions, err := resolver.Questions(ctx, questionSetID)
		require.NoError(t, err)

		_, err = resolver.Rules(ctx, &questions[0])
		require.Error(t, err)
		assert.True(t, exceptions.IsConfiguration(err))
		assert.Contains(t, err.Error(), `"7"`)
	})
}
