package constvars

const (
	// RegexQuestionNumber matches an optional numeric prefix followed by an
	// optional alphabetic suffix, eg. "1", "2a", "12c". The prefix defaults
	// to 0 when absent, so a bare suffix is still well-formed.
	RegexQuestionNumber = `^[0-9]*[a-zA-Z]*$`
)
