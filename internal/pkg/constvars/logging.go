package constvars

const (
	LoggingQuestionnaireIDKey = "questionnaire_id"
	LoggingQuestionNumberKey  = "question_number"
	LoggingQuestionSetKey     = "questionset"
	LoggingRunIDKey           = "run_id"
	LoggingSubjectIDKey       = "subject_id"
	LoggingSchemaVersionKey   = "schema_version"
)
