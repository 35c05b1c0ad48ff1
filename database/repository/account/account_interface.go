package accountRepo

import (
	"amora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AccountRepository defines data access for credential records.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
	// GetByEmailWithProjection retrieves an account by email with a projection.
	// Returns (nil, nil) when no account matches.
	GetByEmailWithProjection(email string, projection bson.M) (*models.Account, error)
	// Create inserts a new account record.
	Create(account *models.Account) error
	// Update modifies an existing account record.
	Update(account *models.Account) error
	// Delete removes an account record by its ID.
	Delete(id string) error
}
