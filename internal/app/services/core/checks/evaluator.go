package checks

import "questionnaire-service/internal/pkg/constvars"

// Answers maps a question number to its decoded answer values for the
// current run.
type Answers map[string][]string

// Contains reports whether the given question's answer list holds value.
func (a Answers) Contains(number, value string) bool {
	for _, v := range a[number] {
		if v == value {
			return true
		}
	}
	return false
}

// Eval folds the clauses strictly left to right with equal precedence for
// and/or.
func (c *Condition) Eval(answers Answers) bool {
	result := false
	for i, clause := range c.Clauses {
		value := clause.eval(answers)
		switch {
		case i == 0:
			result = value
		case clause.Op == constvars.CheckOperatorAnd:
			result = result && value
		default:
			result = result || value
		}
	}
	return result
}

// eval is false when the referenced question has no answer yet, even for
// negated clauses: a forward reference defaults to "no match" rather than
// an error or a vacuous truth.
func (cl Clause) eval(answers Answers) bool {
	values, answered := answers[cl.Number]
	if !answered {
		return false
	}
	contains := false
	for _, v := range values {
		if v == cl.Value {
			contains = true
			break
		}
	}
	if cl.Negate {
		return !contains
	}
	return contains
}

// Applicable decides whether a questionset is shown to the subject:
// gender restrictions first, then the shownif condition, defaulting to
// shown.
func (rs *RuleSet) Applicable(gender string, answers Answers) bool {
	if rs.MaleOnly && gender != constvars.GenderMale {
		return false
	}
	if rs.FemaleOnly && gender != constvars.GenderFemale {
		return false
	}
	if rs.ShownIf != nil {
		return rs.ShownIf.Eval(answers)
	}
	return true
}

// RequiredNow decides whether a question must currently be answered. The
// unconditional flags win; otherwise the requiredif condition decides; a
// rule set with neither never requires an answer.
func (rs *RuleSet) RequiredNow(answers Answers) bool {
	if rs.Required || rs.RequiredYes || rs.RequiredNo {
		return true
	}
	if rs.RequiredIf != nil {
		return rs.RequiredIf.Eval(answers)
	}
	return false
}
