// Package answers normalizes stored answer values and owns the answer
// repository contract.
package answers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
)

// Split decodes a stored answer value into a canonical list of chosen
// values. Structured answers are JSON lists; on plain-text legacy records
// it falls back to splitting multi-choice answers on "; " and wrapping
// anything else as a single element. It never fails: the worst malformed
// legacy text still yields the one-element fallback.
func Split(questionType, raw string) []string {
	var decoded []interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		values := make([]string, 0, len(decoded))
		for _, element := range decoded {
			values = append(values, stringify(element))
		}
		return values
	}
	if strings.Contains(questionType, "multiple") {
		return strings.Split(raw, constvars.AnswerLegacySeparator)
	}
	return []string{raw}
}

// Encode produces the canonical stored form of an answer value list.
func Encode(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	return string(data), nil
}

// ChoiceText renders the chosen values through a question's choice list,
// keeping freeform values that match no choice as-is.
func ChoiceText(choices []models.Choice, values []string) string {
	var parts []string
	for _, value := range values {
		text := value
		for _, choice := range choices {
			if choice.Value == value {
				text = choice.Text
				break
			}
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", ")
}

func stringify(element interface{}) string {
	switch v := element.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
