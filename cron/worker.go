package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"schedula/config"
	conversationRepo "schedula/database/repository/conversation"
	"schedula/utils"
)

// InitRetentionWorker schedules the daily transcript cleanup job. Transcripts
// older than the configured retention window are purged.
func InitRetentionWorker(convRepo conversationRepo.Repository) *cron.Cron {
	logger := utils.GetLogger()
	c := cron.New()

	_, err := c.AddFunc("@daily", func() {
		retentionDays := config.AppConfig.TranscriptRetentionDays
		if retentionDays <= 0 {
			retentionDays = 30
		}
		cutoff := time.Now().AddDate(0, 0, -retentionDays)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		deleted, err := convRepo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("transcript retention job failed", zap.Error(err))
			return
		}
		logger.Info("transcript retention job completed",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff))
	})
	if err != nil {
		logger.Error("failed to schedule transcript retention job", zap.Error(err))
		return c
	}

	c.Start()
	return c
}
