package models

import "time"

// FieldType identifies the kind of control a question is answered with.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multi-select"
	FieldRadio       FieldType = "radio"
	FieldCheckbox    FieldType = "checkbox"
	FieldDate        FieldType = "date"
)

// RegistrationStage is the coarse stage tag an admin assigns to a question.
type RegistrationStage string

const (
	StageAccount     RegistrationStage = "Account"
	StagePersonal    RegistrationStage = "Personal"
	StagePhysical    RegistrationStage = "Physical"
	StageLifestyle   RegistrationStage = "Lifestyle"
	StageBeliefs     RegistrationStage = "Beliefs"
	StagePreferences RegistrationStage = "Preferences"
	StageProfile     RegistrationStage = "Profile"
)

// QuestionDefinition is one configurable registration prompt. The ID doubles
// as the form field key; disabled questions are excluded from the compiled
// schema, the step list and the default value map entirely.
type QuestionDefinition struct {
	ID               string            `json:"id" bson:"id"`
	Text             string            `json:"text" bson:"text"`
	Category         string            `json:"category" bson:"category"`
	FieldType        FieldType         `json:"fieldType" bson:"fieldType"`
	Required         bool              `json:"required" bson:"required"`
	Enabled          bool              `json:"enabled" bson:"enabled"`
	RegistrationStep RegistrationStage `json:"registrationStep" bson:"registrationStep"`
	DisplayOrder     int               `json:"displayOrder" bson:"displayOrder"`
	Placeholder      string            `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
	FieldOptions     []string          `json:"fieldOptions,omitempty" bson:"fieldOptions,omitempty"`
	ProfileField     string            `json:"profileField,omitempty" bson:"profileField,omitempty"`
	IsSystemField    bool              `json:"isSystemField" bson:"isSystemField"`
	CreatedAt        time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt" bson:"updatedAt"`
}
