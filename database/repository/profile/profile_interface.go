package profileRepo

import "amora/models"

// ProfileRepository defines data access for persisted dating profiles.
type ProfileRepository interface {
	// Save upserts the profile keyed by its account ID.
	Save(profile *models.Profile) error
	// GetByAccountID retrieves a profile by account ID. Returns (nil, nil)
	// when no profile exists yet.
	GetByAccountID(accountID string) (*models.Profile, error)
	// Delete removes a profile by account ID.
	Delete(accountID string) error
}
