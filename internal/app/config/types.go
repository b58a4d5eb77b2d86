package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Logger  Logger
	}

	InternalConfig struct {
		App           App
		Questionnaire Questionnaire
	}

	MongoDB struct {
		Port           string
		Host           string
		DbName         string
		Username       string
		Password       string
		TimeoutSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	App struct {
		Env      string
		Version  string
		Timezone string
	}

	// Questionnaire tunes the engine itself. ExtraQuestionTypes extends
	// the built-in question type enumeration for deployments that ship
	// their own custom templates.
	Questionnaire struct {
		ExtraQuestionTypes []string
	}
)
