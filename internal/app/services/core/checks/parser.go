package checks

import (
	"fmt"
	"strings"

	"questionnaire-service/internal/pkg/constvars"
)

// ParseError reports a malformed checks string. Callers are expected to
// wrap it with the owning question or questionset identifier so the
// broken definition can be located.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s in %q", e.Reason, e.Token)
}

// Parse parses a checks string into a RuleSet. Parsing is referentially
// transparent; callers memoize the result per entity for the lifetime of
// an evaluation pass.
func Parse(s string) (*RuleSet, error) {
	rules := &RuleSet{Scalars: map[string]string{}}

	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	for _, token := range tokens {
		eq := strings.Index(token, "=")
		if eq < 0 {
			if err := rules.setFlag(token); err != nil {
				return nil, err
			}
			continue
		}

		key, value := token[:eq], token[eq+1:]
		if key == "" {
			return nil, &ParseError{Token: token, Reason: "missing key"}
		}

		if strings.HasPrefix(value, `"`) {
			if len(value) < 2 || !strings.HasSuffix(value, `"`) {
				return nil, &ParseError{Token: token, Reason: "unbalanced quote"}
			}
			condition, err := parseCondition(value[1 : len(value)-1])
			if err != nil {
				return nil, err
			}
			switch key {
			case constvars.CheckRequiredIf:
				rules.RequiredIf = condition
			case constvars.CheckShownIf:
				rules.ShownIf = condition
			default:
				return nil, &ParseError{Token: token, Reason: "unknown condition key"}
			}
			continue
		}

		if strings.Contains(value, `"`) {
			return nil, &ParseError{Token: token, Reason: "unbalanced quote"}
		}
		rules.Scalars[key] = value
	}

	return rules, nil
}

func (rs *RuleSet) setFlag(keyword string) error {
	switch keyword {
	case constvars.CheckRequired:
		rs.Required = true
	case constvars.CheckRequiredYes:
		rs.RequiredYes = true
	case constvars.CheckRequiredNo:
		rs.RequiredNo = true
	case constvars.CheckMaleOnly:
		rs.MaleOnly = true
	case constvars.CheckFemaleOnly:
		rs.FemaleOnly = true
	default:
		return &ParseError{Token: keyword, Reason: "unknown keyword"}
	}
	return nil
}

// tokenize splits on spaces while keeping quoted expression values, which
// may themselves contain spaces, inside a single token.
func tokenize(s string) ([]string, error) {
	var tokens []string
	i := 0
	for i < len(s) {
		if s[i] == ' ' {
			i++
			continue
		}
		start := i
		inQuote := false
		for i < len(s) {
			c := s[i]
			if inQuote {
				if c == '"' {
					inQuote = false
				}
			} else if c == '"' {
				inQuote = true
			} else if c == ' ' {
				break
			}
			i++
		}
		if inQuote {
			return nil, &ParseError{Token: s[start:], Reason: "unbalanced quote"}
		}
		tokens = append(tokens, s[start:i])
	}
	return tokens, nil
}

// parseCondition parses the boolean expression inside requiredif/shownif
// quotes: clauses of QuestionNumber,Value or QuestionNumber,!Value joined
// by the words and/or.
func parseCondition(expr string) (*Condition, error) {
	words := strings.Fields(expr)
	if len(words) == 0 {
		return nil, &ParseError{Token: expr, Reason: "empty condition"}
	}

	condition := &Condition{}
	expectClause := true
	op := ""
	for _, word := range words {
		if expectClause {
			clause, err := parseClause(word)
			if err != nil {
				return nil, err
			}
			clause.Op = op
			condition.Clauses = append(condition.Clauses, clause)
			expectClause = false
			continue
		}
		if word != constvars.CheckOperatorAnd && word != constvars.CheckOperatorOr {
			return nil, &ParseError{Token: word, Reason: "expected and/or"}
		}
		op = word
		expectClause = true
	}
	if expectClause {
		return nil, &ParseError{Token: expr, Reason: "dangling operator"}
	}
	return condition, nil
}

func parseClause(word string) (Clause, error) {
	comma := strings.Index(word, ",")
	if comma < 0 {
		return Clause{}, &ParseError{Token: word, Reason: "clause must be QuestionNumber,Value"}
	}
	number, value := word[:comma], word[comma+1:]
	if number == "" || value == "" {
		return Clause{}, &ParseError{Token: word, Reason: "empty clause"}
	}
	clause := Clause{Number: number, Value: value}
	if strings.HasPrefix(value, "!") {
		if len(value) == 1 {
			return Clause{}, &ParseError{Token: word, Reason: "empty clause"}
		}
		clause.Negate = true
		clause.Value = value[1:]
	}
	return clause, nil
}
