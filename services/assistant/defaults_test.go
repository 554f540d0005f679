package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"schedula/models"
)

func TestApplyDefaultsEmptyCommand(t *testing.T) {
	d := ApplyDefaults(models.ExtractedCommand{Intent: models.IntentCreate}, fixedNow)

	assert.Equal(t, time.Date(2025, time.July, 6, 10, 0, 0, 0, time.UTC), d.StartTime)
	assert.Equal(t, time.Date(2025, time.July, 6, 11, 0, 0, 0, time.UTC), d.EndTime)
	assert.Equal(t, "Training", d.Category)
	assert.Equal(t, "Training Session", d.Title)
	assert.Equal(t, "Client", d.ClientName)
}

func TestApplyDefaultsExplicitFields(t *testing.T) {
	date := time.Date(2025, time.July, 12, 0, 0, 0, 0, time.UTC)
	cmd := models.ExtractedCommand{
		Intent:   models.IntentCreate,
		Date:     &date,
		Time:     &models.ClockTime{Hour: 14},
		Duration: 2,
		Category: "Azure",
	}
	d := ApplyDefaults(cmd, fixedNow)

	assert.Equal(t, time.Date(2025, time.July, 12, 14, 0, 0, 0, time.UTC), d.StartTime)
	assert.Equal(t, time.Date(2025, time.July, 12, 16, 0, 0, 0, time.UTC), d.EndTime)
	assert.Equal(t, "Azure", d.Category)
	assert.Equal(t, "Azure Training", d.Title)
}

func TestApplyDefaultsEndTimeWinsOverDuration(t *testing.T) {
	date := time.Date(2025, time.July, 12, 0, 0, 0, 0, time.UTC)
	cmd := models.ExtractedCommand{
		Intent:   models.IntentCreate,
		Date:     &date,
		Time:     &models.ClockTime{Hour: 9},
		EndTime:  &models.ClockTime{Hour: 12},
		Duration: 1,
	}
	d := ApplyDefaults(cmd, fixedNow)

	assert.Equal(t, 9, d.StartTime.Hour())
	assert.Equal(t, 12, d.EndTime.Hour())
}

func TestApplyDefaultsTimeWithoutDate(t *testing.T) {
	// A time alone books tomorrow at that time.
	cmd := models.ExtractedCommand{
		Intent: models.IntentCreate,
		Time:   &models.ClockTime{Hour: 15, Minute: 30},
	}
	d := ApplyDefaults(cmd, fixedNow)

	assert.Equal(t, time.Date(2025, time.July, 6, 15, 30, 0, 0, time.UTC), d.StartTime)
	assert.Equal(t, time.Date(2025, time.July, 6, 16, 30, 0, 0, time.UTC), d.EndTime)
}
