// Package checks implements the mini-language stored in the "checks"
// field of questions and questionsets: bare validation flags, scalar
// key=value assignments, and the quoted requiredif/shownif boolean
// expressions evaluated against previously given answers.
package checks

import "questionnaire-service/internal/pkg/constvars"

// RuleSet is the parsed form of a checks string. Flags form a closed set;
// unknown bare keywords and unknown quoted keys are rejected at parse
// time so the evaluator never meets an unrecognized rule.
type RuleSet struct {
	Required    bool
	RequiredYes bool
	RequiredNo  bool
	MaleOnly    bool
	FemaleOnly  bool
	RequiredIf  *Condition
	ShownIf     *Condition
	// Scalars holds open-ended key=value assignments, notably the
	// type=<name> declaration on custom questions.
	Scalars map[string]string
}

// CustomType returns the type=<name> scalar, if declared.
func (rs *RuleSet) CustomType() (string, bool) {
	name, ok := rs.Scalars[constvars.CheckCustomType]
	return name, ok
}

// RequiredValue returns the specific answer mandated by required-yes or
// required-no on yes/no typed questions.
func (rs *RuleSet) RequiredValue() (string, bool) {
	switch {
	case rs.RequiredYes:
		return constvars.AnswerYes, true
	case rs.RequiredNo:
		return constvars.AnswerNo, true
	}
	return "", false
}

// Condition is an ordered sequence of clauses joined by and/or. There is
// no operator precedence: the clauses fold strictly left to right, so
// "A and B or C" reads ((A and B) or C). Changing this would silently
// alter which questions are required on deployed questionnaires.
type Condition struct {
	Clauses []Clause
}

// Clause is one QuestionNumber,Value atom with its joining operator. Op
// is "and" or "or" and is ignored for the first clause of a condition.
type Clause struct {
	Op     string
	Number string
	Value  string
	Negate bool
}
