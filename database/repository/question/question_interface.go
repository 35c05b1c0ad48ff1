package questionRepo

import "amora/models"

// QuestionRepository defines data access for the registration question catalog.
type QuestionRepository interface {
	// GetEnabled retrieves only enabled questions, sorted by displayOrder.
	GetEnabled() ([]models.QuestionDefinition, error)
	// GetAll retrieves every question regardless of enabled state.
	GetAll() ([]models.QuestionDefinition, error)
	// GetByID retrieves a question by its unique ID.
	GetByID(id string) (*models.QuestionDefinition, error)
	// Create inserts a new question definition.
	Create(q *models.QuestionDefinition) error
	// Update modifies an existing question definition.
	Update(q *models.QuestionDefinition) error
	// Delete removes a question; system questions are refused.
	Delete(id string) error
	// Count returns the number of catalog documents.
	Count() (int64, error)
}
