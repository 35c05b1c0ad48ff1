package notification

import (
	"context"
	"encoding/json"
	"time"

	"amora/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultNotificationService logs every message and publishes it on a Redis
// channel so connected clients can surface toasts.
type DefaultNotificationService struct {
	Redis *redis.Client
}

type payload struct {
	SessionID string `json:"sessionId"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	SentAt    int64  `json:"sentAt"`
}

func (s *DefaultNotificationService) Success(ctx context.Context, sessionID, message string) {
	s.publish(ctx, sessionID, "success", message)
}

func (s *DefaultNotificationService) Warning(ctx context.Context, sessionID, message string) {
	s.publish(ctx, sessionID, "warning", message)
}

func (s *DefaultNotificationService) Error(ctx context.Context, sessionID, message string) {
	s.publish(ctx, sessionID, "error", message)
}

func (s *DefaultNotificationService) publish(ctx context.Context, sessionID, severity, message string) {
	logger := utils.GetLogger()
	logger.Info("User notification",
		zap.String("sessionID", sessionID),
		zap.String("severity", severity),
		zap.String("message", message),
	)
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(payload{
		SessionID: sessionID,
		Severity:  severity,
		Message:   message,
		SentAt:    time.Now().Unix(),
	})
	if err != nil {
		logger.Error("Failed to marshal notification", zap.Error(err))
		return
	}
	if err := s.Redis.Publish(ctx, utils.NotificationChannel, data).Err(); err != nil {
		logger.Warn("Failed to publish notification", zap.Error(err))
	}
}
