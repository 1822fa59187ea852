package jobs

import (
	"context"
	"time"

	"rakshak-backend/internal/logger"
)

// PurgeExpiredResetTokens deletes password reset tokens past their expiry.
func (jr *JobRunner) PurgeExpiredResetTokens() {
	jr.runWithRecovery("PurgeExpiredResetTokens", func() {
		ctx := context.Background()

		deleted, err := jr.store.PasswordResetTokenRepository.DeleteExpired(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to purge expired reset tokens", "error", err)
			return
		}
		logger.Info("Purged expired reset tokens", "count", deleted)
	})
}

// ExpireScheduledNotifications deactivates notifications whose scheduled
// window has passed so they stop showing up in role feeds.
func (jr *JobRunner) ExpireScheduledNotifications() {
	jr.runWithRecovery("ExpireScheduledNotifications", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -notificationRetentionDays)
		expired, err := jr.store.NotificationRepository.DeactivateExpired(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire notifications", "error", err)
			return
		}
		logger.Info("Deactivated expired notifications", "count", expired)
	})
}

// Notifications older than this many days are considered stale.
const notificationRetentionDays = 30
