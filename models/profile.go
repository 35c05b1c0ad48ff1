package models

import "time"

// Account is the credential record created by the account service.
type Account struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	TokenHash    string    `json:"-" bson:"tokenHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Profile is the persisted dating profile assembled from the wizard's answers.
// Name, Age and Location always carry a value (hard-coded fallbacks are applied
// rather than blocking submission); everything else the catalog maps lands in
// Attributes under its profile field name.
type Profile struct {
	AccountID  string         `json:"accountId" bson:"accountId"`
	Name       string         `json:"name" bson:"name"`
	Age        int            `json:"age" bson:"age"`
	Location   string         `json:"location" bson:"location"`
	Bio        string         `json:"bio,omitempty" bson:"bio,omitempty"`
	ZodiacSign string         `json:"zodiacSign,omitempty" bson:"zodiacSign,omitempty"`
	Photos     []string       `json:"photos" bson:"photos"`
	Attributes map[string]any `json:"attributes,omitempty" bson:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// AuthResponse is returned to the client after a successful registration.
type AuthResponse struct {
	ID      string   `json:"id"`
	Token   string   `json:"token,omitempty"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Photos  []string `json:"photos,omitempty"`
	Warning string   `json:"warning,omitempty"`
}
