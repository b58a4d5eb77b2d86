package questionnaires

import (
	"context"
	"sort"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/app/services/core/checks"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/utils"
)

// Resolver carries the memoization for a single evaluation pass over one
// questionnaire: resolved sameas targets and parsed rule sets, keyed by
// entity identity. Definitions are immutable within a pass, so the caches
// never invalidate; a new pass gets a new Resolver.
type Resolver struct {
	repo            QuestionnaireRepository
	questionnaireID string

	resolved map[string]*models.Question
	rules    map[string]*checks.RuleSet
	setRules map[string]*checks.RuleSet
}

func NewResolver(repo QuestionnaireRepository, questionnaireID string) *Resolver {
	return &Resolver{
		repo:            repo,
		questionnaireID: questionnaireID,
		resolved:        map[string]*models.Question{},
		rules:           map[string]*checks.RuleSet{},
		setRules:        map[string]*checks.RuleSet{},
	}
}

func (r *Resolver) QuestionnaireID() string {
	return r.questionnaireID
}

// Resolve follows sameas indirection: for an alias, the question in the
// same questionnaire whose number equals the alias's Checks field. A
// dangling alias degrades to an inert comment placeholder so display-time
// lookups never fail on it. Non-alias questions resolve to themselves.
func (r *Resolver) Resolve(ctx context.Context, question *models.Question) (*models.Question, error) {
	if !question.IsSameAs() {
		return question, nil
	}
	if target, ok := r.resolved[question.ID]; ok {
		return target, nil
	}

	target, err := r.repo.FindQuestionByNumber(ctx, r.questionnaireID, question.Checks)
	if err != nil {
		return nil, err
	}
	if target == nil {
		target = &models.Question{Type: constvars.QuestionTypeComment}
	}
	r.resolved[question.ID] = target
	return target, nil
}

// Rules returns the parsed rule set governing a question. An alias
// inherits its target's rule set entirely; its own Checks field holds the
// target number, not an expression. Parse failures are configuration
// errors attributed to the asking question's number.
func (r *Resolver) Rules(ctx context.Context, question *models.Question) (*checks.RuleSet, error) {
	if rules, ok := r.rules[question.ID]; ok {
		return rules, nil
	}

	resolved, err := r.Resolve(ctx, question)
	if err != nil {
		return nil, err
	}
	rules, parseErr := checks.Parse(resolved.Checks)
	if parseErr != nil {
		return nil, exceptions.ErrChecksParse(parseErr, "question", question.Number)
	}
	r.rules[question.ID] = rules
	return rules, nil
}

// SetRules parses a questionset's checks, attributed to its heading.
func (r *Resolver) SetRules(questionSet *models.QuestionSet) (*checks.RuleSet, error) {
	if rules, ok := r.setRules[questionSet.ID]; ok {
		return rules, nil
	}

	rules, parseErr := checks.Parse(questionSet.Checks)
	if parseErr != nil {
		return nil, exceptions.ErrChecksParse(parseErr, "questionset", questionSet.Heading)
	}
	r.setRules[questionSet.ID] = rules
	return rules, nil
}

// TypeOf returns the effective type name, following sameas first. For
// custom questions the type=<name> declaration in the resolved checks is
// mandatory; its absence is a configuration error, not a dangling-alias
// case.
func (r *Resolver) TypeOf(ctx context.Context, question *models.Question) (string, error) {
	resolved, err := r.Resolve(ctx, question)
	if err != nil {
		return "", err
	}
	if resolved.Type != constvars.QuestionTypeCustom {
		return resolved.Type, nil
	}

	rules, err := r.Rules(ctx, question)
	if err != nil {
		return "", err
	}
	name, ok := rules.CustomType()
	if !ok {
		return "", exceptions.ErrCustomTypeMissing(question.Number)
	}
	return name, nil
}

func (r *Resolver) IsCustom(ctx context.Context, question *models.Question) (bool, error) {
	resolved, err := r.Resolve(ctx, question)
	if err != nil {
		return false, err
	}
	return resolved.Type == constvars.QuestionTypeCustom, nil
}

// Choices reads through the resolved question, ordered by sort key. A
// dangling alias has an empty choice list.
func (r *Resolver) Choices(ctx context.Context, question *models.Question) ([]models.Choice, error) {
	resolved, err := r.Resolve(ctx, question)
	if err != nil {
		return nil, err
	}
	if resolved.ID == "" {
		return nil, nil
	}
	return r.repo.FindChoices(ctx, resolved.ID)
}

// QuestionSets returns the questionnaire's sets in sortid order.
func (r *Resolver) QuestionSets(ctx context.Context) ([]models.QuestionSet, error) {
	return r.repo.FindQuestionSets(ctx, r.questionnaireID)
}

// Questions returns a set's questions in alphanumeric number order.
func (r *Resolver) Questions(ctx context.Context, questionSetID string) ([]models.Question, error) {
	questions, err := r.repo.FindQuestions(ctx, questionSetID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return utils.CompareNumbers(questions[i].Number, questions[j].Number) < 0
	})
	return questions, nil
}
