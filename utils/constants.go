package utils

import "time"

const (
	// RegSessionPrefix namespaces registration wizard sessions in Redis.
	RegSessionPrefix = "regsession:"

	// NotificationChannel is the Redis pub/sub channel user-facing messages are published on.
	NotificationChannel = "amora:notifications"

	// DefaultSessionTTL is used when no session TTL is configured.
	DefaultSessionTTL = 30 * time.Minute

	// AuthTokenTTL is the lifetime of tokens issued on successful registration.
	AuthTokenTTL = 24 * time.Hour
)
