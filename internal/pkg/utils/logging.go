package utils

import (
	"time"

	"questionnaire-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogBusinessEvent records lifecycle events such as run start and
// completion.
func LogBusinessEvent(logger *zap.Logger, event string, runID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String("business_event", event),
		zap.Time("timestamp", time.Now()),
	}
	allFields = append(allFields, fields...)

	logger.Info("Business event occurred", allFields...)
}
