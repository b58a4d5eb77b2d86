package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"numeric":         "must be a number",
	"oneof":           "must be one of [%s]",
	"gte":             "must be greater than or equal to %s",
	"url":             "must be a valid URL",
	"question_number": "must be digits optionally followed by lowercase letters, eg. 1, 2a, 12c",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
}

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientQuestionnaireBroken           = "this questionnaire is misconfigured and cannot be administered"
	ErrClientRunNotFound                   = "the questionnaire run could not be found"
	ErrClientQuestionnaireNotFound         = "the questionnaire could not be found"
	ErrClientAnswerRequired                = "please answer all required questions"
)

const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevChecksParseFailed         = "cannot parse checks expression for %s %q: %s"
	ErrDevCustomTypeMissing         = "question %q uses a custom type but has no type=<name> in its checks"
	ErrDevUnsupportedSchemaVersion  = "schema version not supported: %d"
	ErrDevUnknownQuestionType       = "question %q has unknown type %q"
	ErrDevDuplicateQuestionNumber   = "question number %q appears more than once"
	ErrDevQuestionnaireNotFound     = "questionnaire %q does not exist"
	ErrDevQuestionSetNotFound       = "questionset %q does not exist"
	ErrDevRunNotFound               = "run %q does not exist"
	ErrDevRequiredAnswerMissing     = "question %s requires an answer"
	ErrDevRequiredAnswerValue       = "question %s requires the answer %q"
	ErrDevCookieValueUnsupported    = "cookie values must be strings, numbers or nil"
	ErrDevMongoDBInsertDocument     = "cannot insert document to MongoDB"
	ErrDevMongoDBFindDocument       = "cannot find document in MongoDB"
	ErrDevMongoDBUpdateDocument     = "cannot update document in MongoDB"
	ErrDevMongoDBDeleteDocument     = "cannot delete document in MongoDB"
)
