package runs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/app/services/core/answers"
	"questionnaire-service/internal/app/services/core/checks"
	"questionnaire-service/internal/app/services/core/questionnaires"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/utils"
)

type runUsecase struct {
	RunRepository           RunRepository
	QuestionnaireRepository questionnaires.QuestionnaireRepository
	AnswerRepository        answers.AnswerRepository
	Logger                  *zap.Logger
}

func NewRunUsecase(
	runRepository RunRepository,
	questionnaireRepository questionnaires.QuestionnaireRepository,
	answerRepository answers.AnswerRepository,
	logger *zap.Logger,
) RunUsecase {
	return &runUsecase{
		RunRepository:           runRepository,
		QuestionnaireRepository: questionnaireRepository,
		AnswerRepository:        answerRepository,
		Logger:                  logger,
	}
}

func (uc *runUsecase) StartRun(ctx context.Context, subject *models.Subject, questionnaireID, runID string, tags []string) (*models.RunInfo, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(questionnaireID)
	}

	questionSets, err := uc.QuestionnaireRepository.FindQuestionSets(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	runInfo := &models.RunInfo{
		SubjectID:       subject.ID,
		QuestionnaireID: questionnaireID,
		RunID:           runID,
		Random:          strings.ToLower(uuid.NewString()),
		State:           constvars.RunStateActive,
		Tags:            strings.Join(tags, ","),
		Created:         time.Now().UTC(),
	}
	if len(questionSets) > 0 {
		runInfo.QuestionSetID = questionSets[0].ID
	}

	runInfoID, err := uc.RunRepository.CreateRunInfo(ctx, runInfo)
	if err != nil {
		return nil, err
	}
	runInfo.ID = runInfoID

	utils.LogBusinessEvent(uc.Logger, "Run started", runInfo.RunID,
		zap.String(constvars.LoggingSubjectIDKey, subject.ID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)
	return runInfo, nil
}

func (uc *runUsecase) CurrentQuestionSet(ctx context.Context, subject *models.Subject, runInfoID string) (*models.QuestionSet, error) {
	runInfo, err := uc.loadRun(ctx, runInfoID)
	if err != nil {
		return nil, err
	}
	resolver := questionnaires.NewResolver(uc.QuestionnaireRepository, runInfo.QuestionnaireID)

	stored, err := uc.storedAnswers(ctx, resolver, runInfo)
	if err != nil {
		return nil, err
	}
	questionSet, _, err := uc.currentApplicableSet(ctx, resolver, subject, runInfo, stored)
	if err != nil {
		return nil, err
	}
	if questionSet == nil {
		return nil, nil
	}

	// Persist the position when inapplicable sets were stepped over.
	if runInfo.QuestionSetID != questionSet.ID {
		runInfo.QuestionSetID = questionSet.ID
		if err := uc.RunRepository.UpdateRunInfo(ctx, runInfo); err != nil {
			return nil, err
		}
	}
	return questionSet, nil
}

func (uc *runUsecase) Questions(ctx context.Context, subject *models.Subject, runInfoID string) ([]dto.QuestionView, error) {
	runInfo, err := uc.loadRun(ctx, runInfoID)
	if err != nil {
		return nil, err
	}
	resolver := questionnaires.NewResolver(uc.QuestionnaireRepository, runInfo.QuestionnaireID)

	stored, err := uc.storedAnswers(ctx, resolver, runInfo)
	if err != nil {
		return nil, err
	}
	questionSet, _, err := uc.currentApplicableSet(ctx, resolver, subject, runInfo, stored)
	if err != nil {
		return nil, err
	}
	if questionSet == nil {
		return []dto.QuestionView{}, nil
	}

	questions, err := resolver.Questions(ctx, questionSet.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.QuestionView, 0, len(questions))
	for i := range questions {
		question := &questions[i]
		rules, err := resolver.Rules(ctx, question)
		if err != nil {
			uc.logConfigurationError(runInfo, err)
			return nil, err
		}
		questionType, err := resolver.TypeOf(ctx, question)
		if err != nil {
			uc.logConfigurationError(runInfo, err)
			return nil, err
		}
		resolved, err := resolver.Resolve(ctx, question)
		if err != nil {
			return nil, err
		}
		choices, err := resolver.Choices(ctx, question)
		if err != nil {
			return nil, err
		}

		text := question.Text
		if text == "" {
			text = resolved.Text
		}
		required := rules.Applicable(subject.Gender, stored) &&
			rules.RequiredNow(stored) &&
			!runInfo.HasSkipped(question.Number)

		views = append(views, dto.QuestionView{
			Number:        question.Number,
			DisplayNumber: utils.DisplayNumber(question.Number),
			Text:          text,
			Type:          questionType,
			Extra:         question.Extra,
			Footer:        question.Footer,
			Choices:       choices,
			Required:      required,
		})
	}
	return views, nil
}

func (uc *runUsecase) SubmitAnswers(ctx context.Context, subject *models.Subject, runInfoID string, given map[string][]string) (*dto.SubmitAnswersResult, error) {
	runInfo, err := uc.loadRun(ctx, runInfoID)
	if err != nil {
		return nil, err
	}
	resolver := questionnaires.NewResolver(uc.QuestionnaireRepository, runInfo.QuestionnaireID)

	stored, err := uc.storedAnswers(ctx, resolver, runInfo)
	if err != nil {
		return nil, err
	}
	merged := checks.Answers{}
	for number, values := range stored {
		merged[number] = values
	}
	for number, values := range given {
		if hasValue(values) {
			merged[number] = values
		}
	}

	questionSet, setIndex, err := uc.currentApplicableSet(ctx, resolver, subject, runInfo, merged)
	if err != nil {
		return nil, err
	}
	if questionSet != nil {
		if err := uc.validateRequired(ctx, resolver, subject, runInfo, questionSet, merged); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	for number, values := range given {
		if !hasValue(values) {
			continue
		}
		encoded, err := answers.Encode(values)
		if err != nil {
			return nil, err
		}
		answer := &models.Answer{
			SubjectID:      runInfo.SubjectID,
			QuestionNumber: number,
			RunID:          runInfo.RunID,
			Answer:         encoded,
			Created:        now,
		}
		if _, err := uc.AnswerRepository.SaveAnswer(ctx, answer); err != nil {
			return nil, err
		}
	}

	nextSet, err := uc.nextApplicableSet(ctx, resolver, subject, merged, setIndex)
	if err != nil {
		return nil, err
	}
	if nextSet != nil {
		runInfo.QuestionSetID = nextSet.ID
		if err := uc.RunRepository.UpdateRunInfo(ctx, runInfo); err != nil {
			return nil, err
		}
		utils.LogBusinessEvent(uc.Logger, "Answers submitted", runInfo.RunID,
			zap.String(constvars.LoggingQuestionSetKey, nextSet.ID),
		)
		return &dto.SubmitAnswersResult{NextQuestionSetID: nextSet.ID}, nil
	}

	redirectURL, err := uc.complete(ctx, subject, runInfo)
	if err != nil {
		return nil, err
	}
	return &dto.SubmitAnswersResult{Completed: true, RedirectURL: redirectURL}, nil
}

func (uc *runUsecase) CompleteRun(ctx context.Context, subject *models.Subject, runInfoID string) (string, error) {
	runInfo, err := uc.loadRun(ctx, runInfoID)
	if err != nil {
		return "", err
	}
	return uc.complete(ctx, subject, runInfo)
}

func (uc *runUsecase) SetCookie(ctx context.Context, runInfoID, key string, value interface{}) error {
	runInfo, err := uc.loadRun(ctx, runInfoID)
	if err != nil {
		return err
	}
	jar, err := models.DecodeCookies(runInfo.Cookies)
	if err != nil {
		return err
	}
	if err := jar.Set(key, value); err != nil {
		return err
	}
	encoded, err := jar.Encode()
	if err != nil {
		return err
	}
	runInfo.Cookies = encoded
	return uc.RunRepository.UpdateRunInfo(ctx, runInfo)
}

func (uc *runUsecase) GetCookie(ctx context.Context, runInfoID, key string, def interface{}) (interface{}, error) {
	runInfo, err := uc.loadRun(ctx, runInfoID)
	if err != nil {
		return nil, err
	}
	jar, err := models.DecodeCookies(runInfo.Cookies)
	if err != nil {
		return nil, err
	}
	return jar.Get(key, def), nil
}

func (uc *runUsecase) SkipQuestion(ctx context.Context, runInfoID, number string) error {
	runInfo, err := uc.loadRun(ctx, runInfoID)
	if err != nil {
		return err
	}
	runInfo.AddSkipped(number)
	if err := uc.RunRepository.UpdateRunInfo(ctx, runInfo); err != nil {
		return err
	}
	utils.LogBusinessEvent(uc.Logger, "Question skipped", runInfo.RunID,
		zap.String(constvars.LoggingQuestionNumberKey, number),
	)
	return nil
}

func (uc *runUsecase) loadRun(ctx context.Context, runInfoID string) (*models.RunInfo, error) {
	runInfo, err := uc.RunRepository.FindRunInfoByID(ctx, runInfoID)
	if err != nil {
		return nil, err
	}
	if runInfo == nil {
		return nil, exceptions.ErrRunNotFound(runInfoID)
	}
	return runInfo, nil
}

// storedAnswers decodes every stored answer of the run into the evaluator
// map. Decoding goes through the resolved question type so legacy
// multi-choice records split correctly; answers for numbers that no
// longer exist decode with an empty type.
func (uc *runUsecase) storedAnswers(ctx context.Context, resolver *questionnaires.Resolver, runInfo *models.RunInfo) (checks.Answers, error) {
	records, err := uc.AnswerRepository.FindAnswers(ctx, runInfo.SubjectID, runInfo.RunID)
	if err != nil {
		return nil, err
	}

	result := checks.Answers{}
	for _, record := range records {
		questionType := ""
		question, err := uc.QuestionnaireRepository.FindQuestionByNumber(ctx, runInfo.QuestionnaireID, record.QuestionNumber)
		if err != nil {
			return nil, err
		}
		if question != nil {
			resolved, err := resolver.Resolve(ctx, question)
			if err != nil {
				return nil, err
			}
			questionType = resolved.Type
		}
		result[record.QuestionNumber] = answers.Split(questionType, record.Answer)
	}
	return result, nil
}

// currentApplicableSet returns the set at the run's position, or the next
// later one whose rules apply to the subject, together with its index in
// the ordered set list. nil when every remaining set is inapplicable.
func (uc *runUsecase) currentApplicableSet(ctx context.Context, resolver *questionnaires.Resolver, subject *models.Subject, runInfo *models.RunInfo, answerMap checks.Answers) (*models.QuestionSet, int, error) {
	questionSets, err := resolver.QuestionSets(ctx)
	if err != nil {
		return nil, -1, err
	}

	start := 0
	if runInfo.QuestionSetID != "" {
		found := false
		for i := range questionSets {
			if questionSets[i].ID == runInfo.QuestionSetID {
				start = i
				found = true
				break
			}
		}
		if !found {
			return nil, -1, exceptions.ErrQuestionSetNotFound(runInfo.QuestionSetID)
		}
	}

	for i := start; i < len(questionSets); i++ {
		questionSet := &questionSets[i]
		rules, err := resolver.SetRules(questionSet)
		if err != nil {
			uc.logConfigurationError(runInfo, err)
			return nil, -1, err
		}
		if rules.Applicable(subject.Gender, answerMap) {
			return questionSet, i, nil
		}
	}
	return nil, len(questionSets), nil
}

func (uc *runUsecase) nextApplicableSet(ctx context.Context, resolver *questionnaires.Resolver, subject *models.Subject, answerMap checks.Answers, afterIndex int) (*models.QuestionSet, error) {
	questionSets, err := resolver.QuestionSets(ctx)
	if err != nil {
		return nil, err
	}
	for i := afterIndex + 1; i < len(questionSets); i++ {
		questionSet := &questionSets[i]
		rules, err := resolver.SetRules(questionSet)
		if err != nil {
			return nil, err
		}
		if rules.Applicable(subject.Gender, answerMap) {
			return questionSet, nil
		}
	}
	return nil, nil
}

// validateRequired enforces the current set's rules against the merged
// answer map. Skipped questions are exempt; inapplicable questions are
// never checked; required-yes/required-no additionally pin the answer
// value on yes/no typed questions.
func (uc *runUsecase) validateRequired(ctx context.Context, resolver *questionnaires.Resolver, subject *models.Subject, runInfo *models.RunInfo, questionSet *models.QuestionSet, merged checks.Answers) error {
	questions, err := resolver.Questions(ctx, questionSet.ID)
	if err != nil {
		return err
	}

	for i := range questions {
		question := &questions[i]
		rules, err := resolver.Rules(ctx, question)
		if err != nil {
			uc.logConfigurationError(runInfo, err)
			return err
		}
		if !rules.Applicable(subject.Gender, merged) {
			continue
		}
		if runInfo.HasSkipped(question.Number) {
			continue
		}

		answered := hasValue(merged[question.Number])
		if rules.RequiredNow(merged) && !answered {
			return exceptions.ErrRequiredAnswerMissing(question.Number)
		}

		if want, ok := rules.RequiredValue(); ok {
			resolved, err := resolver.Resolve(ctx, question)
			if err != nil {
				return err
			}
			if resolved.IsYesNo() && !merged.Contains(question.Number, want) {
				return exceptions.ErrRequiredAnswerValue(question.Number, want)
			}
		}
	}
	return nil
}

func (uc *runUsecase) complete(ctx context.Context, subject *models.Subject, runInfo *models.RunInfo) (string, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, runInfo.QuestionnaireID)
	if err != nil {
		return "", err
	}
	if questionnaire == nil {
		return "", exceptions.ErrQuestionnaireNotFound(runInfo.QuestionnaireID)
	}

	history := &models.RunInfoHistory{
		SubjectID:       runInfo.SubjectID,
		QuestionnaireID: runInfo.QuestionnaireID,
		RunID:           runInfo.RunID,
		Tags:            runInfo.Tags,
		Skipped:         runInfo.Skipped,
		Completed:       time.Now().UTC(),
	}
	if _, err := uc.RunRepository.CreateRunInfoHistory(ctx, history); err != nil {
		return "", err
	}
	if err := uc.RunRepository.DeleteRunInfo(ctx, runInfo.ID); err != nil {
		return "", err
	}

	redirectURL := questionnaire.RedirectURLFor(runInfo.SubjectID, runInfo.RunID, subject.Language)
	utils.LogBusinessEvent(uc.Logger, "Run completed", runInfo.RunID,
		zap.String(constvars.LoggingSubjectIDKey, runInfo.SubjectID),
		zap.String(constvars.LoggingQuestionnaireIDKey, runInfo.QuestionnaireID),
	)
	return redirectURL, nil
}

func (uc *runUsecase) logConfigurationError(runInfo *models.RunInfo, err error) {
	uc.Logger.Error("Questionnaire configuration error",
		zap.String(constvars.LoggingRunIDKey, runInfo.RunID),
		zap.String(constvars.LoggingQuestionnaireIDKey, runInfo.QuestionnaireID),
		zap.Error(err),
	)
}

func hasValue(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
