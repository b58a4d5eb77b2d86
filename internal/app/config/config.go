package config

import (
	"strings"

	"questionnaire-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:           utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:           utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:         utils.GetEnvString("MONGODB_DB_NAME", "questionnaire"),
			Username:       utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password:       utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			TimeoutSeconds: utils.GetEnvInt("MONGODB_TIMEOUT_SECONDS", 10),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "1.0.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "UTC"),
		},
		Questionnaire: Questionnaire{
			ExtraQuestionTypes: splitEnvList(utils.GetEnvString("QUESTIONNAIRE_EXTRA_QUESTION_TYPES", "")),
		},
	}
}

func splitEnvList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
