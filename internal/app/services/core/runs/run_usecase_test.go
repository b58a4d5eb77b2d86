package runs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/app/services/core/answers"
	"questionnaire-service/internal/app/services/core/questionnaires"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/schema"
	"questionnaire-service/internal/pkg/exceptions"
)

type runFixture struct {
	Usecase         RunUsecase
	RunRepo         *RunMemoryRepository
	QuestionnaireID string
	SetIDs          []string
}

// intake: set 1 (smoking, with a conditional follow-up), set 2 femaleonly,
// set 3 shown only to smokers.
func newRunFixture(t *testing.T) *runFixture {
	t.Helper()
	ctx := context.Background()

	questionnaireRepo := questionnaires.NewQuestionnaireMemoryRepository()
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(questionnaireRepo, zap.NewNop(), nil)

	questionnaire, err := questionnaireUsecase.Import(ctx, &schema.QuestionnaireDocument{
		SchemaVersion: constvars.SchemaVersionCurrent,
		Name:          "intake",
		RedirectURL:   "https://example.org/done?s=$SUBJECTID&r=$RUNID&l=$LANG",
		QuestionSets: []schema.QuestionSetDocument{
			{
				SortID:  1,
				Heading: "Smoking",
				Questions: []schema.QuestionDocument{
					{Number: "1", Text: "Do you smoke?", Type: constvars.QuestionTypeChoiceYesNo, Checks: "required"},
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
				},
			},
			{
				SortID:  2,
				Heading: "Pregnancy",
				Checks:  "femaleonly",
				Questions: []schema.QuestionDocument{
					{Number: "10", Text: "Are you pregnant?", Type: constvars.QuestionTypeChoiceYesNo, Checks: "required-no"},
				},
			},
			{
				SortID:  3,
				Heading: "Cessation",
				Checks:  `shownif="1,yes"`,
				Questions: []schema.QuestionDocument{
					{Number: "20", Text: "Want to quit?", Type: constvars.QuestionTypeChoiceYesNo},
				},
			},
		},
	})
	require.NoError(t, err)

	sets, err := questionnaireRepo.FindQuestionSets(ctx, questionnaire.ID)
	require.NoError(t, err)
	setIDs := make([]string, len(sets))
	for i := range sets {
		setIDs[i] = sets[i].ID
	}

	runRepo := NewRunMemoryRepository()
	usecase := NewRunUsecase(runRepo, questionnaireRepo, answers.NewAnswerMemoryRepository(), zap.NewNop())
	return &runFixture{
		Usecase:         usecase,
		RunRepo:         runRepo,
		QuestionnaireID: questionnaire.ID,
		SetIDs:          setIDs,
	}
}

func maleSubject() *models.Subject {
	return &models.Subject{
		ID:       "subj-m",
		State:    constvars.SubjectStateActive,
		Gender:   constvars.GenderMale,
		Language: "en",
	}
}

func femaleSubject() *models.Subject {
	return &models.Subject{
		ID:       "subj-f",
		State:    constvars.SubjectStateActive,
		Gender:   constvars.GenderFemale,
		Language: "nl",
	}
}

func TestStartRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Positions At First Questionset", func(t *testing.T) {
		fixture := newRunFixture(t)
		run, err := fixture.Usecase.StartRun(ctx, maleSubject(), fixture.QuestionnaireID, "2026", []string{"intake", "annual"})
		require.NoError(t, err)
		assert.Equal(t, fixture.SetIDs[0], run.QuestionSetID)
		assert.Equal(t, constvars.RunStateActive, run.State)
		assert.Equal(t, []string{"intake", "annual"}, run.TagList())
		assert.NotEmpty(t, run.Random)
		assert.Equal(t, strings.ToLower(run.Random), run.Random)
	})

	t.Run("Scheduled Run Uses The Subject's Next Run Id", func(t *testing.T) {
		fixture := newRunFixture(t)
		subject := maleSubject()
		nextRun := time.Date(2027, time.March, 14, 9, 0, 0, 0, time.UTC)
		subject.NextRun = &nextRun

		run, err := fixture.Usecase.StartRun(ctx, subject, fixture.QuestionnaireID, subject.NextRunID(), nil)
		require.NoError(t, err)
		assert.Equal(t, "2027", run.RunID)
	})

	t.Run("Unknown Questionnaire Fails", func(t *testing.T) {
		fixture := newRunFixture(t)
		_, err := fixture.Usecase.StartRun(ctx, maleSubject(), "nope", "2026", nil)
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})
}

func TestCurrentQuestionSet(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns The Set At The Position", func(t *testing.T) {
		fixture := newRunFixture(t)
		run, err := fixture.Usecase.StartRun(ctx, femaleSubject(), fixture.QuestionnaireID, "2026", nil)
		require.NoError(t, err)

		set, err := fixture.Usecase.CurrentQuestionSet(ctx, femaleSubject(), run.ID)
		require.NoError(t, err)
		require.NotNil(t, set)
		assert.Equal(t, "Smoking", set.Heading)
	})

	t.Run("Skips Sets Inapplicable To The Subject", func(t *testing.T) {
		fixture := newRunFixture(t)
		subject := maleSubject()
		run, err := fixture.Usecase.StartRun(ctx, subject, fixture.QuestionnaireID, "2026", nil)
		require.NoError(t, err)

		// Male smoker answers set 1, then the position is forced back onto
		// the femaleonly set.
		_, err = fixture.Usecase.SubmitAnswers(ctx, subject, run.ID, map[string][]string{
			"1": {"yes"},
			"2": {"a"},
		})
		require.NoError(t, err)

		run, err = fixture.RunRepo.FindRunInfoByID(ctx, run.ID)
		require.NoError(t, err)
		run.QuestionSetID = fixture.SetIDs[1]
		require.NoError(t, fixture.RunRepo.UpdateRunInfo(ctx, run))

		set, err := fixture.Usecase.CurrentQuestionSet(ctx, subject, run.ID)
		require.NoError(t, err)
		require.NotNil(t, set)
		assert.Equal(t, "Cessation", set.Heading)

		// The position moved past the inapplicable set.
		run, err = fixture.RunRepo.FindRunInfoByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, fixture.SetIDs[2], run.QuestionSetID)
	})
}

func TestQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("Views Carry Resolved Types Choices And Requiredness", func(t *testing.T) {
		fixture := newRunFixture(t)
		subject := maleSubject()
		run, err := fixture.Usecase.StartRun(ctx, subject, fixture.QuestionnaireID, "2026", nil)
		require.NoError(t, err)

		views, err := fixture.Usecase.Questions(ctx, subject, run.ID)
		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, "1", views[0].Number)
		assert.Equal(t, constvars.QuestionTypeChoiceYesNo, views[0].Type)
		assert.True(t, views[0].Required)

		assert.Equal(t, "2", views[1].Number)
		require.Len(t, views[1].Choices, 2)
		assert.Equal(t, "Brand A", views[1].Choices[0].Text)
		assert.False(t, views[1].Required, "follow-up not required before question 1 answered yes")
	})
}

func TestSubmitAnswers(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Required Answer Rejected", func(t *testing.T) {
		fixture := newRunFixture(t)
		subject := maleSubject()
		run, err := fixture.Usecase.StartRun(ctx, subject, fixture.QuestionnaireID, "2026", nil)
		require.NoError(t, err)

		_, err = fixture.Usecase.SubmitAnswers(ctx, subject, run.ID, map[string][]string{})
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidInput))
	})

	t.Run("Conditional Requirement Sees Same Submission", func(t *testing.T) {
		fixture := newRunFixture(t)
		subject := maleSubject()
		run, err := fixture.Usecase.StartRun(ctx, subject, fixture.QuestionnaireID, "2026", nil)
		require.NoError(t, err)

		// Answering yes to 1 makes 2 required within the same submission.
		_, err = fixture.Usecase.SubmitAnswers(ctx, subject, run.ID, map[string][]string{
			"1": {"yes"},
		})
		require.Error(t, err)

		result, err := fixture.Usecase.SubmitAnswers(ctx, subject, run.ID, map[string][]string{
			"1": {"yes"},
			"2": {"a", "b"},
		})
		require.NoError(t, err)
		assert.False(t, result.Completed)
		assert.Equal(t, fixture.SetIDs[2], result.NextQuestionSetID, "male subject jumps over the femaleonly set")
	})

	t.Run("Skipped Question Is Exempt", func(t *testing.T) {
		fixture := newRunFixture(t)
		subject := maleSubject()
		run, err := fixture.Usecase.StartRun(ctx, subject, fixture.QuestionnaireID, "2026", nil)
		require.NoError(t, err)

		require.NoError(t, fixture.Usecase.SkipQuestion(ctx, run.ID, "1"))
		result, err := fixture.Usecase.SubmitAnswers(ctx, subject, run.ID, map[string][]string{})
		require.NoError(t, err)
		assert.True(t, result.Completed, "non-smoker male has no further applicable sets")
	})

	t.Run("Required No Pins The Answer Value", func(t *testing.T) {
		fixture := newRunFixture(t)
		subject := femaleSubject()
		run, err := fixture.Usecase.StartRun(ctx, subject, fixture.QuestionnaireID, "2026", nil)
		require.NoError(t, err)

		result, err := fixture.Usecase.SubmitAnswers(ctx, subject, run.ID, map[string][]string{"1": {"no"}})
		require.NoError(t, err)
		assert.Equal(t, fixture.SetIDs[1], result.NextQuestionSetID)

		_, err = fixture.Usecase.SubmitAnswers(ctx, subject, run.ID, map[string][]string{"10": {"yes"}})
		require.Error(t, err)

		result, err = fixture.Usecase.SubmitAnswers(ctx, subject, run.ID, map[string][]string{"10": {"no"}})
		require.NoError(t, err)
		assert.True(t, result.Completed, "non-smoker skips the cessation set")
	})

	t.Run("Completion Archives And Expands Redirect", func(t *testing.T) {
		fixture := newRunFixture(t)
		subject := maleSubject()
		run, err := fixture.Usecase.StartRun(ctx, subject, fixture.QuestionnaireID, "2026", nil)
		require.NoError(t, err)

		result, err := fixture.Usecase.SubmitAnswers(ctx, subject, run.ID, map[string][]string{"1": {"no"}})
		require.NoError(t, err)
		require.True(t, result.Completed)
		assert.Equal(t, "https://example.org/done?s=subj-m&r=2026&l=en", result.RedirectURL)

		gone, err := fixture.RunRepo.FindRunInfoByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Nil(t, gone, "active run deleted on completion")

		history, err := fixture.RunRepo.FindRunInfoHistoryBySubject(ctx, subject.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "2026", history[0].RunID)
	})
}

func TestRunCookies(t *testing.T) {
	ctx := context.Background()

	t.Run("Cookies Persist Across Loads", func(t *testing.T) {
		fixture := newRunFixture(t)
		subject := maleSubject()
		run, err := fixture.Usecase.StartRun(ctx, subject, fixture.QuestionnaireID, "2026", nil)
		require.NoError(t, err)

		require.NoError(t, fixture.Usecase.SetCookie(ctx, run.ID, "Track", "b"))
		value, err := fixture.Usecase.GetCookie(ctx, run.ID, "track", "default")
		require.NoError(t, err)
		assert.Equal(t, "b", value)

		value, err = fixture.Usecase.GetCookie(ctx, run.ID, "absent", "default")
		require.NoError(t, err)
		assert.Equal(t, "default", value)
	})

	t.Run("Unknown Run Fails", func(t *testing.T) {
		fixture := newRunFixture(t)
		err := fixture.Usecase.SetCookie(ctx, "nope", "k", "v")
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})
}
