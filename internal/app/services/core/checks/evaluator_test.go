package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questionnaire-service/internal/pkg/constvars"
)

func mustParse(t *testing.T, s string) *RuleSet {
	t.Helper()
	rules, err := Parse(s)
	require.NoError(t, err)
	return rules
}

func TestConditionEval(t *testing.T) {
	t.Run("Single Clause", func(t *testing.T) {
		rules := mustParse(t, `requiredif="Q1,yes"`)
		assert.True(t, rules.RequiredIf.Eval(Answers{"Q1": {"yes"}}))
		assert.False(t, rules.RequiredIf.Eval(Answers{"Q1": {"no"}}))
	})

	t.Run("Negated Clause", func(t *testing.T) {
		rules := mustParse(t, `requiredif="Q1,!yes"`)
		assert.False(t, rules.RequiredIf.Eval(Answers{"Q1": {"yes"}}))
		assert.True(t, rules.RequiredIf.Eval(Answers{"Q1": {"no"}}))
	})

	t.Run("Unanswered Question Is False Even When Negated", func(t *testing.T) {
		rules := mustParse(t, `requiredif="Q1,!yes"`)
		assert.False(t, rules.RequiredIf.Eval(Answers{}))
	})

	t.Run("Left To Right Fold Without Precedence", func(t *testing.T) {
		// ((A and B) or C), not (A and (B or C)).
		rules := mustParse(t, `requiredif="A,1 and B,1 or C,1"`)
		assert.True(t, rules.RequiredIf.Eval(Answers{"A": {"0"}, "B": {"0"}, "C": {"1"}}))
		assert.True(t, rules.RequiredIf.Eval(Answers{"A": {"1"}, "B": {"1"}, "C": {"0"}}))
		assert.False(t, rules.RequiredIf.Eval(Answers{"A": {"1"}, "B": {"0"}, "C": {"0"}}))

		// (A or B) folds first here, then "and C".
		rules = mustParse(t, `requiredif="A,1 or B,1 and C,1"`)
		assert.False(t, rules.RequiredIf.Eval(Answers{"A": {"1"}, "B": {"0"}, "C": {"0"}}))
		assert.True(t, rules.RequiredIf.Eval(Answers{"A": {"1"}, "B": {"0"}, "C": {"1"}}))
	})

	t.Run("Multi Valued Answers Match Any Element", func(t *testing.T) {
		rules := mustParse(t, `requiredif="Q3,smoker"`)
		assert.True(t, rules.RequiredIf.Eval(Answers{"Q3": {"drinker", "smoker"}}))
	})
}

func TestRuleSetApplicable(t *testing.T) {
	t.Run("Gender Restrictions", func(t *testing.T) {
		rules := mustParse(t, "maleonly")
		assert.True(t, rules.Applicable(constvars.GenderMale, Answers{}))
		assert.False(t, rules.Applicable(constvars.GenderFemale, Answers{}))
		assert.False(t, rules.Applicable(constvars.GenderUnset, Answers{}))

		rules = mustParse(t, "femaleonly")
		assert.True(t, rules.Applicable(constvars.GenderFemale, Answers{}))
		assert.False(t, rules.Applicable(constvars.GenderMale, Answers{}))
	})

	t.Run("Shownif Gates Visibility", func(t *testing.T) {
		rules := mustParse(t, `shownif="Q1,yes"`)
		assert.True(t, rules.Applicable(constvars.GenderUnset, Answers{"Q1": {"yes"}}))
		assert.False(t, rules.Applicable(constvars.GenderUnset, Answers{}))
	})

	t.Run("No Rules Means Shown", func(t *testing.T) {
		rules := mustParse(t, "")
		assert.True(t, rules.Applicable(constvars.GenderUnset, Answers{}))
	})
}

func TestRuleSetRequiredNow(t *testing.T) {
	t.Run("Unconditional Flags", func(t *testing.T) {
		assert.True(t, mustParse(t, "required").RequiredNow(Answers{}))
		assert.True(t, mustParse(t, "required-yes").RequiredNow(Answers{}))
		assert.True(t, mustParse(t, "required-no").RequiredNow(Answers{}))
	})

	t.Run("Conditional Requirement", func(t *testing.T) {
		rules := mustParse(t, `requiredif="Q1,yes"`)
		assert.True(t, rules.RequiredNow(Answers{"Q1": {"yes"}}))
		assert.False(t, rules.RequiredNow(Answers{"Q1": {"no"}}))
		assert.False(t, rules.RequiredNow(Answers{}))
	})

	t.Run("No Rules Never Required", func(t *testing.T) {
		assert.False(t, mustParse(t, "").RequiredNow(Answers{}))
	})
}
