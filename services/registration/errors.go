package registration

import "fmt"

// StepIncompleteError is the navigator's refusal to advance past a step whose
// fields do not validate. The field messages are also left on the form model.
type StepIncompleteError struct {
	Step   int
	Fields map[string]string
}

func (e *StepIncompleteError) Error() string {
	return fmt.Sprintf("step %d is incomplete (%d field errors)", e.Step, len(e.Fields))
}

// AuthError is a fatal account-creation failure; no profile or photo work
// proceeds after it. The form is left intact so the user can resubmit.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	return "account creation failed: " + e.Reason
}

func (e *AuthError) Unwrap() error { return e.Err }

// UploadError reports that one or more photo uploads failed. It is non-fatal:
// the account and profile already exist by the time it is raised.
type UploadError struct {
	Failed int
	Total  int
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%d of %d photo uploads failed", e.Failed, e.Total)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistError reports that the profile save failed after the account was
// created: a degraded success, pointing the user at a completion flow.
type PersistError struct {
	AccountID string
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to save profile for account %s", e.AccountID)
}

func (e *PersistError) Unwrap() error { return e.Err }

// CatalogError means the question catalog cannot produce a usable wizard
// (typically an empty catalog); the flow shows a configuration-required
// message instead of an empty form.
type CatalogError struct {
	Reason string
}

func (e *CatalogError) Error() string {
	return "question catalog unusable: " + e.Reason
}

// ErrSessionNotFound marks an expired or unknown wizard session.
var ErrSessionNotFound = fmt.Errorf("registration session not found or expired")
