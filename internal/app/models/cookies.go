package models

import (
	"strings"

	"github.com/goccy/go-json"

	"questionnaire-service/internal/pkg/exceptions"
)

// CookieJar is the decoded form of RunInfo.Cookies: a flat key to scalar
// mapping serialized as a JSON object in a single text field. Keys are
// lower-cased and trimmed before storage and lookup.
type CookieJar map[string]interface{}

func DecodeCookies(raw string) (CookieJar, error) {
	jar := CookieJar{}
	if strings.TrimSpace(raw) == "" {
		return jar, nil
	}
	if err := json.Unmarshal([]byte(raw), &jar); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return jar, nil
}

// Set stores a scalar under the normalized key. A nil value deletes the
// cookie. Only strings and numbers may be stored.
func (jar CookieJar) Set(key string, value interface{}) error {
	key = normalizeCookieKey(key)
	if value == nil {
		delete(jar, key)
		return nil
	}
	switch v := value.(type) {
	case string:
		jar[key] = v
	case int:
		jar[key] = v
	case int64:
		jar[key] = v
	case float64:
		jar[key] = v
	default:
		return exceptions.ErrCookieValueUnsupported(key)
	}
	return nil
}

func (jar CookieJar) Get(key string, def interface{}) interface{} {
	if value, ok := jar[normalizeCookieKey(key)]; ok {
		return value
	}
	return def
}

func (jar CookieJar) Encode() (string, error) {
	data, err := json.Marshal(jar)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	return string(data), nil
}

func normalizeCookieKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
