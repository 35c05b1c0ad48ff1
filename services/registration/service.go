package registration

import (
	"context"
	"fmt"
	"time"

	"amora/models"
	"amora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultRegistrationService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return utils.DefaultSessionTTL
}

// Start fetches the enabled catalog, compiles it and opens a session.
func (s *DefaultRegistrationService) Start(ctx context.Context) (*StepView, error) {
	questions, err := s.Questions.GetEnabled()
	if err != nil {
		utils.GetLogger().Error("Start: failed to fetch question catalog", zap.Error(err))
		return nil, fmt.Errorf("failed to load registration questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, &CatalogError{Reason: "no enabled questions configured"}
	}

	schema := BuildSchema(questions)
	defaults := BuildDefaults(questions)
	steps := ComputeSteps(questions)

	sess := &Session{
		ID:        uuid.New().String(),
		Questions: questions,
		Steps:     steps,
		Form:      NewFormModel(schema, defaults),
		Nav:       NavigatorState{CurrentStep: 1, CompletedSteps: []int{}},
		CreatedAt: time.Now(),
	}
	if err := SaveRegistrationSession(s.Sessions, sess, s.ttl()); err != nil {
		return nil, fmt.Errorf("failed to save registration session: %w", err)
	}
	return sess.View(), nil
}

// Get returns the current step payload.
func (s *DefaultRegistrationService) Get(ctx context.Context, sessionID string) (*StepView, error) {
	sess, err := GetRegistrationSession(s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.View(), nil
}

// UpdateFields applies a batch of field values and persists the session.
func (s *DefaultRegistrationService) UpdateFields(ctx context.Context, sessionID string, fields map[string]any) (*StepView, error) {
	sess, err := GetRegistrationSession(s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	sess.Form.SetValues(fields)
	if err := SaveRegistrationSession(s.Sessions, sess, s.ttl()); err != nil {
		return nil, err
	}
	return sess.View(), nil
}

// Next advances the wizard when the current step validates. On a blocked
// step the session (with its field errors) is still persisted, and the
// returned view carries them alongside the StepIncompleteError.
func (s *DefaultRegistrationService) Next(ctx context.Context, sessionID string) (*StepView, error) {
	sess, err := GetRegistrationSession(s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	navErr := sess.Navigator().Next()
	if saveErr := SaveRegistrationSession(s.Sessions, sess, s.ttl()); saveErr != nil {
		return nil, saveErr
	}
	return sess.View(), navErr
}

// Prev moves back one step.
func (s *DefaultRegistrationService) Prev(ctx context.Context, sessionID string) (*StepView, error) {
	sess, err := GetRegistrationSession(s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	sess.Navigator().Prev()
	if err := SaveRegistrationSession(s.Sessions, sess, s.ttl()); err != nil {
		return nil, err
	}
	return sess.View(), nil
}

// JumpTo targets an arbitrary step.
func (s *DefaultRegistrationService) JumpTo(ctx context.Context, sessionID string, step int) (*StepView, error) {
	sess, err := GetRegistrationSession(s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	navErr := sess.Navigator().JumpTo(step)
	if saveErr := SaveRegistrationSession(s.Sessions, sess, s.ttl()); saveErr != nil {
		return nil, saveErr
	}
	return sess.View(), navErr
}

// AttachPhoto stores a local image in the session and appends a pending ref
// to the photos form value. Nothing is uploaded until submission.
func (s *DefaultRegistrationService) AttachPhoto(ctx context.Context, sessionID, contentType string, data []byte) (*StepView, error) {
	sess, err := GetRegistrationSession(s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return sess.View(), fmt.Errorf("photo data is empty")
	}

	index := 0
	for _, p := range sess.PendingPhotos {
		if p.Index >= index {
			index = p.Index + 1
		}
	}
	sess.PendingPhotos = append(sess.PendingPhotos, models.PendingPhoto{
		Index:       index,
		ContentType: contentType,
		Data:        data,
	})
	sess.Form.SetValue("photos", pendingRefs(sess.PendingPhotos))

	if err := SaveRegistrationSession(s.Sessions, sess, s.ttl()); err != nil {
		return nil, err
	}
	return sess.View(), nil
}

// RemovePhoto discards a pending photo by its attachment index.
func (s *DefaultRegistrationService) RemovePhoto(ctx context.Context, sessionID string, index int) (*StepView, error) {
	sess, err := GetRegistrationSession(s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	kept := sess.PendingPhotos[:0]
	for _, p := range sess.PendingPhotos {
		if p.Index != index {
			kept = append(kept, p)
		}
	}
	sess.PendingPhotos = kept
	sess.Form.SetValue("photos", pendingRefs(sess.PendingPhotos))

	if err := SaveRegistrationSession(s.Sessions, sess, s.ttl()); err != nil {
		return nil, err
	}
	return sess.View(), nil
}

// Submit validates the whole form and runs the submission pipeline. The
// session survives a failed attempt (including the created-account marker,
// which prevents duplicate account creation on retry) and is deleted only
// after the pipeline completes.
func (s *DefaultRegistrationService) Submit(ctx context.Context, sessionID string) (*models.AuthResponse, error) {
	sess, err := GetRegistrationSession(s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.Form.ValidateAll() {
		nav := sess.Navigator()
		cur := nav.Current()
		if saveErr := SaveRegistrationSession(s.Sessions, sess, s.ttl()); saveErr != nil {
			return nil, saveErr
		}
		return nil, &StepIncompleteError{Step: cur.Step, Fields: sess.Form.FieldErrors}
	}

	sess.Form.Submitting = true
	result, pipeErr := s.Pipeline.Submit(ctx, sess)
	sess.Form.Submitting = false

	if pipeErr != nil {
		// Keep the session (and any created-account marker) for a retry.
		if saveErr := SaveRegistrationSession(s.Sessions, sess, s.ttl()); saveErr != nil {
			utils.GetLogger().Error("Submit: failed to persist session after pipeline failure", zap.Error(saveErr))
		}
		return nil, pipeErr
	}

	if err := DeleteRegistrationSession(s.Sessions, sessionID); err != nil {
		utils.GetLogger().Warn("Submit: failed to delete completed session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	return &models.AuthResponse{
		ID:      result.AccountID,
		Token:   result.Token,
		Email:   result.Email,
		Name:    result.Name,
		Photos:  result.PhotoURLs,
		Warning: result.Warning,
	}, nil
}

// pendingRefs renders opaque local refs for the photos form value; they are
// replaced by uploaded URLs during submission and never persisted.
func pendingRefs(photos []models.PendingPhoto) []string {
	refs := make([]string, 0, len(photos))
	for _, p := range photos {
		refs = append(refs, fmt.Sprintf("pending:%d", p.Index))
	}
	return refs
}
