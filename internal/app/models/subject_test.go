package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRunID(t *testing.T) {
	t.Run("Year Of The Scheduled Run", func(t *testing.T) {
		nextRun := time.Date(2027, time.March, 14, 9, 0, 0, 0, time.UTC)
		subject := Subject{NextRun: &nextRun}
		assert.Equal(t, "2027", subject.NextRunID())
	})

	t.Run("Empty When Nothing Scheduled", func(t *testing.T) {
		assert.Equal(t, "", Subject{}.NextRunID())
	})
}
