package registration

import (
	"context"
	"time"

	questionRepo "amora/database/repository/question"
	"amora/models"

	"github.com/go-redis/redis/v8"
)

// RegistrationService drives the wizard: it compiles the catalog into a
// session, applies field updates, gates navigation, and runs the submission
// pipeline from the terminal step.
type RegistrationService interface {
	// Start fetches the enabled catalog, compiles schema/defaults/steps and
	// opens a new wizard session.
	Start(ctx context.Context) (*StepView, error)
	// Get returns the current step payload for a session.
	Get(ctx context.Context, sessionID string) (*StepView, error)
	// UpdateFields applies a batch of field values, recomputing derived
	// fields as needed.
	UpdateFields(ctx context.Context, sessionID string, fields map[string]any) (*StepView, error)
	// Next advances the wizard if the current step validates.
	Next(ctx context.Context, sessionID string) (*StepView, error)
	// Prev moves back one step unconditionally.
	Prev(ctx context.Context, sessionID string) (*StepView, error)
	// JumpTo targets an arbitrary step (forward jumps validate on the way).
	JumpTo(ctx context.Context, sessionID string, step int) (*StepView, error)
	// AttachPhoto holds a local image in the session pending upload.
	AttachPhoto(ctx context.Context, sessionID, contentType string, data []byte) (*StepView, error)
	// RemovePhoto discards a pending photo by its attachment index.
	RemovePhoto(ctx context.Context, sessionID string, index int) (*StepView, error)
	// Submit validates everything and runs the submission pipeline.
	Submit(ctx context.Context, sessionID string) (*models.AuthResponse, error)
}

// DefaultRegistrationService is the production implementation.
type DefaultRegistrationService struct {
	Questions  questionRepo.QuestionRepository
	Pipeline   *SubmissionPipeline
	Sessions   *redis.Client
	SessionTTL time.Duration
}
