package constvars

// Question types understood by the engine. The set is closed at build
// time; deployments needing additional custom types register them through
// InternalConfig.Questionnaire.ExtraQuestionTypes, never by mutating this
// list.
const (
	QuestionTypeOpen                   = "open"
	QuestionTypeOpenTextfield          = "open-textfield"
	QuestionTypeChoice                 = "choice"
	QuestionTypeChoiceFreeform         = "choice-freeform"
	QuestionTypeChoiceMultiple         = "choice-multiple"
	QuestionTypeChoiceMultipleFreeform = "choice-multiple-freeform"
	QuestionTypeChoiceYesNo            = "choice-yesno"
	QuestionTypeChoiceYesNoComment     = "choice-yesnocomment"
	QuestionTypeChoiceYesNoDontKnow    = "choice-yesnodontknow"
	QuestionTypeRange                  = "range"
	QuestionTypeNumber                 = "number"
	QuestionTypeTimePeriod             = "timeperiod"
	QuestionTypeCustom                 = "custom"
	QuestionTypeComment                = "comment"
	QuestionTypeSameAs                 = "sameas"
)

var QuestionTypes = map[string]bool{
	QuestionTypeOpen:                   true,
	QuestionTypeOpenTextfield:          true,
	QuestionTypeChoice:                 true,
	QuestionTypeChoiceFreeform:         true,
	QuestionTypeChoiceMultiple:         true,
	QuestionTypeChoiceMultipleFreeform: true,
	QuestionTypeChoiceYesNo:            true,
	QuestionTypeChoiceYesNoComment:     true,
	QuestionTypeChoiceYesNoDontKnow:    true,
	QuestionTypeRange:                  true,
	QuestionTypeNumber:                 true,
	QuestionTypeTimePeriod:             true,
	QuestionTypeCustom:                 true,
	QuestionTypeComment:                true,
	QuestionTypeSameAs:                 true,
}

// YesNoQuestionTypes are the types whose answers are constrained by the
// required-yes and required-no checks flags.
var YesNoQuestionTypes = map[string]bool{
	QuestionTypeChoiceYesNo:         true,
	QuestionTypeChoiceYesNoComment:  true,
	QuestionTypeChoiceYesNoDontKnow: true,
}

const (
	GenderUnset  = "unset"
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	SubjectStateActive   = "active"
	SubjectStateInactive = "inactive"
)

const (
	SubjectFormTypeEmail     = "email"
	SubjectFormTypePaperform = "paperform"
)

// RunStateActive is the only persisted run state: completed runs are
// archived to history and deleted rather than flagged.
const RunStateActive = "active"

// Checks mini-language keywords.
const (
	CheckRequired    = "required"
	CheckRequiredYes = "required-yes"
	CheckRequiredNo  = "required-no"
	CheckMaleOnly    = "maleonly"
	CheckFemaleOnly  = "femaleonly"
	CheckRequiredIf  = "requiredif"
	CheckShownIf     = "shownif"
	CheckCustomType  = "type"
	CheckOperatorAnd = "and"
	CheckOperatorOr  = "or"
)

const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// Legacy plain-text multi-choice answers were stored joined on this
// separator.
const AnswerLegacySeparator = "; "

// SchemaVersionCurrent is the only export/import document version the
// engine understands.
const SchemaVersionCurrent = 1

// Redirect URL macros expanded when a run completes.
const (
	RedirectMacroSubjectID = "$SUBJECTID"
	RedirectMacroRunID     = "$RUNID"
	RedirectMacroLanguage  = "$LANG"
)

const (
	MongoCollectionQuestionnaires = "questionnaires"
	MongoCollectionQuestionSets   = "questionsets"
	MongoCollectionQuestions      = "questions"
	MongoCollectionChoices        = "choices"
	MongoCollectionRunInfo        = "runinfo"
	MongoCollectionRunInfoHistory = "runinfo_history"
	MongoCollectionAnswers        = "answers"
)
