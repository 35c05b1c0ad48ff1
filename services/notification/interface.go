package notification

import "context"

// NotificationService is a fire-and-forget sink for user-facing messages.
// Implementations must never fail the caller; delivery problems are logged
// and swallowed.
type NotificationService interface {
	Success(ctx context.Context, sessionID, message string)
	Warning(ctx context.Context, sessionID, message string)
	Error(ctx context.Context, sessionID, message string)
}
