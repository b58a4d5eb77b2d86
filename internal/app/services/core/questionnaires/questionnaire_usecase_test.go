package questionnaires

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/schema"
	"questionnaire-service/internal/pkg/exceptions"
)

func intakeDocument() *schema.QuestionnaireDocument {
	return &schema.QuestionnaireDocument{
		SchemaVersion: constvars.SchemaVersionCurrent,
		Name:          "intake",
		RedirectURL:   "https://example.org/done?subject=$SUBJECTID&run=$RUNID",
		QuestionSets: []schema.QuestionSetDocument{
			{
				SortID:  1,
				Heading: "Background",
				Questions: []schema.QuestionDocument{
					{
						Number: "1",
						Text:   "Do you smoke?",
						Type:   constvars.QuestionTypeChoiceYesNo,
						Checks: "required",
					},
					{
						Number: "2",
						Text:   "Which brands?",
						Type:   constvars.QuestionTypeChoiceMultiple,
						Checks: `requiredif="1,yes"`,
						Choices: []schema.ChoiceDocument{
							{SortID: 1, Value: "a", Text: "Brand A"},
							{SortID: 2, Value: "b", Text: "Brand B"},
						},
					},
					{
						Number: "2a",
						Text:   "Still?",
						Type:   constvars.QuestionTypeSameAs,
						Checks: "1",
					},
				},
			},
			{
				SortID:  2,
				Heading: "Pregnancy",
				Checks:  "femaleonly",
				Questions: []schema.QuestionDocument{
					{Number: "10", Text: "Are you pregnant?", Type: constvars.QuestionTypeChoiceYesNo},
				},
			},
		},
	}
}

func newTestUsecase(t *testing.T) (QuestionnaireUsecase, *QuestionnaireMemoryRepository) {
	t.Helper()
	repo := NewQuestionnaireMemoryRepository()
	usecase := NewQuestionnaireUsecase(repo, zap.NewNop(), nil)
	return usecase, repo
}

func TestQuestionnaireImportExport(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip Preserves Structure", func(t *testing.T) {
		usecase, _ := newTestUsecase(t)

		document := intakeDocument()
		questionnaire, err := usecase.Import(ctx, document)
		require.NoError(t, err)
		require.NotEmpty(t, questionnaire.ID)

		exported, err := usecase.Export(ctx, questionnaire.ID, constvars.SchemaVersionCurrent)
		require.NoError(t, err)
		assert.Equal(t, document, exported)
	})

	t.Run("Alias Exports Its Own Reference", func(t *testing.T) {
		usecase, _ := newTestUsecase(t)

		questionnaire, err := usecase.Import(ctx, intakeDocument())
		require.NoError(t, err)

		exported, err := usecase.Export(ctx, questionnaire.ID, constvars.SchemaVersionCurrent)
		require.NoError(t, err)
		alias := exported.QuestionSets[0].Questions[2]
		assert.Equal(t, constvars.QuestionTypeSameAs, alias.Type)
		assert.Equal(t, "1", alias.Checks)
	})

	t.Run("Unsupported Version Rejected On Import", func(t *testing.T) {
		usecase, _ := newTestUsecase(t)

		document := intakeDocument()
		document.SchemaVersion = 2
		_, err := usecase.Import(ctx, document)
		require.Error(t, err)
		assert.True(t, exceptions.IsConfiguration(err))
	})

	t.Run("Unsupported Version Rejected On Export", func(t *testing.T) {
		usecase, _ := newTestUsecase(t)

		questionnaire, err := usecase.Import(ctx, intakeDocument())
		require.NoError(t, err)

		_, err = usecase.Export(ctx, questionnaire.ID, 2)
		require.Error(t, err)
		assert.True(t, exceptions.IsConfiguration(err))
	})

	t.Run("Unknown Question Type Rejected", func(t *testing.T) {
		usecase, _ := newTestUsecase(t)

		document := intakeDocument()
		document.QuestionSets[0].Questions[0].Type = "telepathy"
		_, err := usecase.Import(ctx, document)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telepathy")
	})

	t.Run("Extra Question Types Extend The Enumeration", func(t *testing.T) {
		repo := NewQuestionnaireMemoryRepository()
		usecase := NewQuestionnaireUsecase(repo, zap.NewNop(), []string{"telepathy"})

		document := intakeDocument()
		document.QuestionSets[0].Questions[0].Type = "telepathy"
		_, err := usecase.Import(ctx, document)
		require.NoError(t, err)
	})

	t.Run("Duplicate Question Number Rejected", func(t *testing.T) {
		usecase, _ := newTestUsecase(t)

		document := intakeDocument()
		document.QuestionSets[1].Questions[0].Number = "1"
		_, err := usecase.Import(ctx, document)
		require.Error(t, err)
	})

	t.Run("Export Of Missing Questionnaire Fails", func(t *testing.T) {
		usecase, _ := newTestUsecase(t)

		_, err := usecase.Export(ctx, "nope", constvars.SchemaVersionCurrent)
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})
}

func TestQuestionnaireLint(t *testing.T) {
	ctx := context.Background()

	t.Run("Clean Questionnaire Has No Findings", func(t *testing.T) {
		usecase, _ := newTestUsecase(t)

		questionnaire, err := usecase.Import(ctx, intakeDocument())
		require.NoError(t, err)

		findings, err := usecase.Lint(ctx, questionnaire.ID)
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("Reports Parse Errors Custom Types And Dangling Aliases", func(t *testing.T) {
		usecase, repo := newTestUsecase(t)

		questionnaire, err := usecase.Import(ctx, intakeDocument())
		require.NoError(t, err)

		sets, err := repo.FindQuestionSets(ctx, questionnaire.ID)
		require.NoError(t, err)
		questions, err := repo.FindQuestions(ctx, sets[0].ID)
		require.NoError(t, err)

		// Break the deployed questionnaire in three distinct ways.
		for i := range questions {
			q := questions[i]
			switch q.Number {
			case "1":
				q.Checks = "requird"
			case "2":
				q.Type = constvars.QuestionTypeCustom
				q.Checks = "required"
			case "2a":
				q.Checks = "99"
			}
			_, err := repo.CreateQuestion(ctx, &q)
			require.NoError(t, err)
		}

		findings, err := usecase.Lint(ctx, questionnaire.ID)
		require.NoError(t, err)
		assert.Len(t, findings, 3)
	})
}
