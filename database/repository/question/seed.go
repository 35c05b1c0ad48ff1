package questionRepo

import (
	"fmt"

	"amora/models"
	"amora/utils"

	"go.uber.org/zap"
)

// systemQuestions are the fixed prompts the platform always requires. They are
// seeded once, cannot be disabled through the admin surface, and anchor the
// account and photos steps of the wizard.
var systemQuestions = []models.QuestionDefinition{
	{
		ID: "email", Text: "What's your email address?", Category: "Basics",
		FieldType: models.FieldText, Required: true, Enabled: true,
		RegistrationStep: models.StageAccount, DisplayOrder: 1,
		Placeholder: "you@example.com", IsSystemField: true,
	},
	{
		ID: "password", Text: "Choose a password", Category: "Basics",
		FieldType: models.FieldText, Required: true, Enabled: true,
		RegistrationStep: models.StageAccount, DisplayOrder: 2,
		IsSystemField: true,
	},
	{
		ID: "confirmPassword", Text: "Confirm your password", Category: "Basics",
		FieldType: models.FieldText, Required: true, Enabled: true,
		RegistrationStep: models.StageAccount, DisplayOrder: 3,
		IsSystemField: true,
	},
	{
		ID: "firstName", Text: "What's your first name?", Category: "Basics",
		FieldType: models.FieldText, Required: true, Enabled: true,
		RegistrationStep: models.StagePersonal, DisplayOrder: 10,
		ProfileField: "firstName", IsSystemField: true,
	},
	{
		ID: "lastName", Text: "And your last name?", Category: "Basics",
		FieldType: models.FieldText, Required: true, Enabled: true,
		RegistrationStep: models.StagePersonal, DisplayOrder: 11,
		ProfileField: "lastName", IsSystemField: true,
	},
	{
		ID: "dateOfBirth", Text: "When were you born?", Category: "Basics",
		FieldType: models.FieldDate, Required: true, Enabled: true,
		RegistrationStep: models.StagePersonal, DisplayOrder: 12,
		ProfileField: "dateOfBirth", IsSystemField: true,
	},
	{
		ID: "bio", Text: "Your bio", Category: "Profile",
		FieldType: models.FieldTextarea, Required: false, Enabled: true,
		RegistrationStep: models.StageProfile, DisplayOrder: 90,
		ProfileField: "bio", IsSystemField: true,
	},
	{
		ID: "photos", Text: "Add your best photos", Category: "Profile",
		FieldType: models.FieldText, Required: true, Enabled: true,
		RegistrationStep: models.StageProfile, DisplayOrder: 99,
		ProfileField: "photos", IsSystemField: true,
	},
}

// SeedSystemQuestions inserts the system questions when the catalog is empty.
func (r *MongoQuestionRepo) SeedSystemQuestions() error {
	count, err := r.Count()
	if err != nil {
		return fmt.Errorf("failed to check question catalog: %w", err)
	}
	if count > 0 {
		return nil
	}
	for i := range systemQuestions {
		q := systemQuestions[i]
		if err := r.Create(&q); err != nil {
			return fmt.Errorf("failed to seed system question %s: %w", q.ID, err)
		}
	}
	utils.GetLogger().Info("Seeded system questions", zap.Int("count", len(systemQuestions)))
	return nil
}
