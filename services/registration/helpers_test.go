package registration

import (
	"testing"
	"time"

	"amora/models"
)

// fixedNow pins the clock so age boundaries are stable across test runs.
var fixedNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func withFixedClock(t *testing.T) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = prev })
}

func q(id string, ft models.FieldType, required bool, stage models.RegistrationStage) models.QuestionDefinition {
	return models.QuestionDefinition{
		ID:               id,
		Text:             "Question " + id,
		FieldType:        ft,
		Required:         required,
		Enabled:          true,
		RegistrationStep: stage,
	}
}

// fullCatalog is a representative enabled catalog spanning every bucket.
func fullCatalog() []models.QuestionDefinition {
	email := q("email", models.FieldText, true, models.StageAccount)
	password := q("password", models.FieldText, true, models.StageAccount)
	confirm := q("confirmPassword", models.FieldText, true, models.StageAccount)

	firstName := q("firstName", models.FieldText, true, models.StagePersonal)
	firstName.ProfileField = "firstName"
	lastName := q("lastName", models.FieldText, true, models.StagePersonal)
	lastName.ProfileField = "lastName"
	dob := q("dateOfBirth", models.FieldDate, true, models.StagePersonal)
	dob.ProfileField = "dateOfBirth"
	age := q("age", models.FieldText, true, models.StagePersonal)

	ethnicity := q("ethnicity", models.FieldSelect, true, models.StagePhysical)
	ethnicity.ProfileField = "ethnicity"

	interests := q("interests", models.FieldMultiSelect, true, models.StagePreferences)
	hobbies := q("hobbies", models.FieldMultiSelect, true, models.StagePreferences)
	languages := q("languages", models.FieldMultiSelect, false, models.StagePreferences)
	dealbreakers := q("dealbreakers", models.FieldMultiSelect, true, models.StagePreferences)

	diet := q("diet", models.FieldSelect, true, models.StageLifestyle)
	diet.ProfileField = "diet"

	occupation := q("occupation", models.FieldText, true, models.StageProfile)
	occupation.ProfileField = "occupation"
	education := q("education", models.FieldSelect, true, models.StageProfile)
	education.ProfileField = "education"
	bio := q("bio", models.FieldTextarea, false, models.StageProfile)
	bio.ProfileField = "bio"

	photos := q("photos", models.FieldText, true, models.StageProfile)
	photos.ProfileField = "photos"

	terms := q("terms", models.FieldCheckbox, true, "")
	terms.Category = "Basics"

	favoriteColor := q("favoriteColor", models.FieldType("hologram"), false, "")
	favoriteColor.Category = "Fun"

	disabled := q("retired", models.FieldText, true, models.StagePersonal)
	disabled.Enabled = false

	return []models.QuestionDefinition{
		email, password, confirm,
		firstName, lastName, dob, age,
		ethnicity,
		interests, hobbies, languages, dealbreakers,
		diet,
		occupation, education, bio,
		photos,
		terms, favoriteColor, disabled,
	}
}

// minimalCatalog covers three steps: account, basics and photos.
func minimalCatalog() []models.QuestionDefinition {
	email := q("email", models.FieldText, true, models.StageAccount)
	password := q("password", models.FieldText, true, models.StageAccount)
	confirm := q("confirmPassword", models.FieldText, true, models.StageAccount)
	firstName := q("firstName", models.FieldText, true, models.StagePersonal)
	firstName.ProfileField = "firstName"
	dob := q("dateOfBirth", models.FieldDate, true, models.StagePersonal)
	dob.ProfileField = "dateOfBirth"
	photos := q("photos", models.FieldText, true, models.StageProfile)
	photos.ProfileField = "photos"
	return []models.QuestionDefinition{email, password, confirm, firstName, dob, photos}
}

// newTestForm builds a form over the given catalog.
func newTestForm(catalog []models.QuestionDefinition) *FormModel {
	return NewFormModel(BuildSchema(catalog), BuildDefaults(catalog))
}

// fillAccountStep sets valid values for the injected account fields.
func fillAccountStep(f *FormModel) {
	f.SetValues(map[string]any{
		"email":           "amara@example.com",
		"password":        "Sunshine22",
		"confirmPassword": "Sunshine22",
	})
}
