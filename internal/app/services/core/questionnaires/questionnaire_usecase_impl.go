package questionnaires

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/schema"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/utils"
)

type questionnaireUsecase struct {
	QuestionnaireRepository QuestionnaireRepository
	Logger                  *zap.Logger
	allowedTypes            map[string]bool
}

// NewQuestionnaireUsecase builds the definition usecase. extraTypes
// extends the closed question-type enumeration for deployments with extra
// custom templates; the built-in set is never mutated.
func NewQuestionnaireUsecase(
	questionnaireRepository QuestionnaireRepository,
	logger *zap.Logger,
	extraTypes []string,
) QuestionnaireUsecase {
	allowed := make(map[string]bool, len(constvars.QuestionTypes)+len(extraTypes))
	for questionType := range constvars.QuestionTypes {
		allowed[questionType] = true
	}
	for _, questionType := range extraTypes {
		allowed[questionType] = true
	}
	return &questionnaireUsecase{
		QuestionnaireRepository: questionnaireRepository,
		Logger:                  logger,
		allowedTypes:            allowed,
	}
}

// supportOnlyVersions is the hard schema-version gate. It is re-checked
// at every level of the tree so a mixed-version document can never be
// partially processed.
func supportOnlyVersions(version int, supported ...int) error {
	for _, v := range supported {
		if version == v {
			return nil
		}
	}
	return exceptions.ErrUnsupportedSchemaVersion(version)
}

func (uc *questionnaireUsecase) Export(ctx context.Context, questionnaireID string, schemaVersion int) (*schema.QuestionnaireDocument, error) {
	if err := supportOnlyVersions(schemaVersion, constvars.SchemaVersionCurrent); err != nil {
		return nil, err
	}

	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(questionnaireID)
	}

	resolver := NewResolver(uc.QuestionnaireRepository, questionnaireID)
	questionSets, err := resolver.QuestionSets(ctx)
	if err != nil {
		return nil, err
	}

	document := &schema.QuestionnaireDocument{
		SchemaVersion: schemaVersion,
		Name:          questionnaire.Name,
		RedirectURL:   questionnaire.RedirectURL,
	}
	for i := range questionSets {
		questionSetDocument, err := uc.exportQuestionSet(ctx, resolver, &questionSets[i], schemaVersion)
		if err != nil {
			return nil, err
		}
		document.QuestionSets = append(document.QuestionSets, *questionSetDocument)
	}

	uc.Logger.Info("Questionnaire exported",
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.Int(constvars.LoggingSchemaVersionKey, schemaVersion),
	)
	return document, nil
}

func (uc *questionnaireUsecase) exportQuestionSet(ctx context.Context, resolver *Resolver, questionSet *models.QuestionSet, schemaVersion int) (*schema.QuestionSetDocument, error) {
	if err := supportOnlyVersions(schemaVersion, constvars.SchemaVersionCurrent); err != nil {
		return nil, err
	}

	questions, err := resolver.Questions(ctx, questionSet.ID)
	if err != nil {
		return nil, err
	}

	document := &schema.QuestionSetDocument{
		SortID:  questionSet.SortID,
		Heading: questionSet.Heading,
		Checks:  questionSet.Checks,
		Text:    questionSet.Text,
	}
	for i := range questions {
		questionDocument, err := uc.exportQuestion(ctx, &questions[i], schemaVersion)
		if err != nil {
			return nil, err
		}
		document.Questions = append(document.Questions, *questionDocument)
	}
	return document, nil
}

// exportQuestion dumps the question's own fields: a sameas alias exports
// its own type and target reference, never the resolved target's fields,
// so the indirection survives a round trip.
func (uc *questionnaireUsecase) exportQuestion(ctx context.Context, question *models.Question, schemaVersion int) (*schema.QuestionDocument, error) {
	if err := supportOnlyVersions(schemaVersion, constvars.SchemaVersionCurrent); err != nil {
		return nil, err
	}

	choices, err := uc.QuestionnaireRepository.FindChoices(ctx, question.ID)
	if err != nil {
		return nil, err
	}

	document := &schema.QuestionDocument{
		Number: question.Number,
		Text:   question.Text,
		Type:   question.Type,
		Extra:  question.Extra,
		Checks: question.Checks,
	}
	for _, choice := range choices {
		document.Choices = append(document.Choices, schema.ChoiceDocument{
			SortID: choice.SortID,
			Value:  choice.Value,
			Text:   choice.Text,
		})
	}
	return document, nil
}

func (uc *questionnaireUsecase) Import(ctx context.Context, document *schema.QuestionnaireDocument) (*models.Questionnaire, error) {
	if err := supportOnlyVersions(document.SchemaVersion, constvars.SchemaVersionCurrent); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(document); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if err := uc.checkDocumentInvariants(document); err != nil {
		return nil, err
	}

	questionnaire := &models.Questionnaire{
		Name:        document.Name,
		RedirectURL: document.RedirectURL,
	}
	questionnaireID, err := uc.QuestionnaireRepository.CreateQuestionnaire(ctx, questionnaire)
	if err != nil {
		return nil, err
	}
	questionnaire.ID = questionnaireID

	for i := range document.QuestionSets {
		if err := uc.importQuestionSet(ctx, &document.QuestionSets[i], document.SchemaVersion, questionnaireID); err != nil {
			return nil, err
		}
	}

	uc.Logger.Info("Questionnaire imported",
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.Int(constvars.LoggingSchemaVersionKey, document.SchemaVersion),
	)
	return questionnaire, nil
}

// checkDocumentInvariants rejects unknown question types and duplicate
// numbers before anything is written, so a bad document cannot leave a
// partial tree behind.
func (uc *questionnaireUsecase) checkDocumentInvariants(document *schema.QuestionnaireDocument) error {
	seen := map[string]bool{}
	for _, questionSet := range document.QuestionSets {
		for _, question := range questionSet.Questions {
			if !uc.allowedTypes[question.Type] {
				return exceptions.ErrUnknownQuestionType(question.Number, question.Type)
			}
			if seen[question.Number] {
				return exceptions.ErrDuplicateQuestionNumber(question.Number)
			}
			seen[question.Number] = true
		}
	}
	return nil
}

func (uc *questionnaireUsecase) importQuestionSet(ctx context.Context, document *schema.QuestionSetDocument, schemaVersion int, questionnaireID string) error {
	if err := supportOnlyVersions(schemaVersion, constvars.SchemaVersionCurrent); err != nil {
		return err
	}

	questionSet := &models.QuestionSet{
		QuestionnaireID: questionnaireID,
		SortID:          document.SortID,
		Heading:         document.Heading,
		Checks:          document.Checks,
		Text:            document.Text,
	}
	questionSetID, err := uc.QuestionnaireRepository.CreateQuestionSet(ctx, questionSet)
	if err != nil {
		return err
	}

	for i := range document.Questions {
		if err := uc.importQuestion(ctx, &document.Questions[i], schemaVersion, questionSetID); err != nil {
			return err
		}
	}
	return nil
}

func (uc *questionnaireUsecase) importQuestion(ctx context.Context, document *schema.QuestionDocument, schemaVersion int, questionSetID string) error {
	if err := supportOnlyVersions(schemaVersion, constvars.SchemaVersionCurrent); err != nil {
		return err
	}

	question := &models.Question{
		QuestionSetID: questionSetID,
		Number:        document.Number,
		Text:          document.Text,
		Type:          document.Type,
		Extra:         document.Extra,
		Checks:        document.Checks,
	}
	questionID, err := uc.QuestionnaireRepository.CreateQuestion(ctx, question)
	if err != nil {
		return err
	}

	for _, choiceDocument := range document.Choices {
		choice := &models.Choice{
			QuestionID: questionID,
			SortID:     choiceDocument.SortID,
			Value:      choiceDocument.Value,
			Text:       choiceDocument.Text,
		}
		if _, err := uc.QuestionnaireRepository.CreateChoice(ctx, choice); err != nil {
			return err
		}
	}
	return nil
}

// Lint walks the whole tree and reports every configuration problem the
// evaluator would hit at administration time: malformed checks, custom
// questions without a type declaration, dangling sameas targets.
func (uc *questionnaireUsecase) Lint(ctx context.Context, questionnaireID string) ([]string, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(questionnaireID)
	}

	resolver := NewResolver(uc.QuestionnaireRepository, questionnaireID)
	questionSets, err := resolver.QuestionSets(ctx)
	if err != nil {
		return nil, err
	}

	var findings []string
	for i := range questionSets {
		questionSet := &questionSets[i]
		if _, err := resolver.SetRules(questionSet); err != nil {
			findings = append(findings, err.Error())
		}

		questions, err := resolver.Questions(ctx, questionSet.ID)
		if err != nil {
			return nil, err
		}
		for j := range questions {
			question := &questions[j]
			if question.IsSameAs() {
				target, err := uc.QuestionnaireRepository.FindQuestionByNumber(ctx, questionnaireID, question.Checks)
				if err != nil {
					return nil, err
				}
				if target == nil {
					findings = append(findings, fmt.Sprintf("question %s: sameas target %q does not exist", question.Number, question.Checks))
					continue
				}
			}
			if _, err := resolver.Rules(ctx, question); err != nil {
				findings = append(findings, err.Error())
				continue
			}
			if _, err := resolver.TypeOf(ctx, question); err != nil {
				findings = append(findings, err.Error())
			}
		}
	}
	return findings, nil
}
