package registration

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"amora/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SaveRegistrationSession saves the wizard session to Redis with the specified TTL.
func SaveRegistrationSession(client *redis.Client, session *Session, ttl time.Duration) error {
	ctx := context.Background()
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		utils.GetLogger().Error("Failed to marshal registration session", zap.Error(err))
		return err
	}
	if err := client.Set(ctx, utils.RegSessionPrefix+session.ID, data, ttl).Err(); err != nil {
		utils.GetLogger().Error("Failed to save registration session", zap.String("sessionID", session.ID), zap.Error(err))
		return err
	}
	return nil
}

// GetRegistrationSession retrieves the wizard session from Redis by sessionID.
func GetRegistrationSession(client *redis.Client, sessionID string) (*Session, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, utils.RegSessionPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		utils.GetLogger().Error("Failed to get registration session", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		utils.GetLogger().Error("Failed to unmarshal registration session", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}
	return &session, nil
}

// DeleteRegistrationSession removes the wizard session from Redis.
func DeleteRegistrationSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	if err := client.Del(ctx, utils.RegSessionPrefix+sessionID).Err(); err != nil {
		utils.GetLogger().Error("Failed to delete registration session", zap.String("sessionID", sessionID), zap.Error(err))
		return err
	}
	return nil
}
