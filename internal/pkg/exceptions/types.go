package exceptions

import (
	"fmt"
	"questionnaire-service/internal/pkg/constvars"
)

var (
	// ErrChecksParse is the ConfigurationError raised when a question's or
	// questionset's checks string is malformed. entity is "question" or
	// "questionset", identifier the number or heading.
	ErrChecksParse = func(err error, entity, identifier string) *CustomError {
		return BuildNewCustomError(nil, KindConfiguration, constvars.ErrClientQuestionnaireBroken,
			fmt.Sprintf(constvars.ErrDevChecksParseFailed, entity, identifier, err.Error()))
	}
	ErrCustomTypeMissing = func(questionNumber string) *CustomError {
		return BuildNewCustomError(nil, KindConfiguration, constvars.ErrClientQuestionnaireBroken,
			fmt.Sprintf(constvars.ErrDevCustomTypeMissing, questionNumber))
	}
	ErrUnsupportedSchemaVersion = func(version int) *CustomError {
		return BuildNewCustomError(nil, KindConfiguration, constvars.ErrClientCannotProcessRequest,
			fmt.Sprintf(constvars.ErrDevUnsupportedSchemaVersion, version))
	}
	ErrUnknownQuestionType = func(questionNumber, questionType string) *CustomError {
		return BuildNewCustomError(nil, KindConfiguration, constvars.ErrClientQuestionnaireBroken,
			fmt.Sprintf(constvars.ErrDevUnknownQuestionType, questionNumber, questionType))
	}
	ErrDuplicateQuestionNumber = func(questionNumber string) *CustomError {
		return BuildNewCustomError(nil, KindConfiguration, constvars.ErrClientQuestionnaireBroken,
			fmt.Sprintf(constvars.ErrDevDuplicateQuestionNumber, questionNumber))
	}
	ErrQuestionnaireNotFound = func(questionnaireID string) *CustomError {
		return BuildNewCustomError(nil, KindNotFound, constvars.ErrClientQuestionnaireNotFound,
			fmt.Sprintf(constvars.ErrDevQuestionnaireNotFound, questionnaireID))
	}
	ErrQuestionSetNotFound = func(questionSetID string) *CustomError {
		return BuildNewCustomError(nil, KindNotFound, constvars.ErrClientQuestionnaireNotFound,
			fmt.Sprintf(constvars.ErrDevQuestionSetNotFound, questionSetID))
	}
	ErrRunNotFound = func(runInfoID string) *CustomError {
		return BuildNewCustomError(nil, KindNotFound, constvars.ErrClientRunNotFound,
			fmt.Sprintf(constvars.ErrDevRunNotFound, runInfoID))
	}
	ErrRequiredAnswerMissing = func(questionNumber string) *CustomError {
		return BuildNewCustomError(nil, KindInvalidInput, constvars.ErrClientAnswerRequired,
			fmt.Sprintf(constvars.ErrDevRequiredAnswerMissing, questionNumber))
	}
	ErrRequiredAnswerValue = func(questionNumber, value string) *CustomError {
		return BuildNewCustomError(nil, KindInvalidInput, constvars.ErrClientAnswerRequired,
			fmt.Sprintf(constvars.ErrDevRequiredAnswerValue, questionNumber, value))
	}
	ErrCookieValueUnsupported = func(key string) *CustomError {
		return BuildNewCustomError(nil, KindInvalidInput, constvars.ErrClientCannotProcessRequest,
			constvars.ErrDevCookieValueUnsupported+": "+key)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidInput, FormatFirstValidationError(err),
			constvars.ErrDevValidationFailed+": "+FormatAllValidationErrors(err))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidInput, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBDeleteDocument)
	}
)
