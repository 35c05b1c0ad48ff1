package profileRepo

import (
	"errors"
	"fmt"
	"time"

	"amora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save upserts the profile document keyed by account ID.
func (r *MongoProfileRepo) Save(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	filter := bson.M{"accountId": profile.AccountID}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save profile for account %s: %w", profile.AccountID, err)
	}
	return nil
}

// GetByAccountID retrieves a profile by its account ID.
func (r *MongoProfileRepo) GetByAccountID(accountID string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.Profile
	err := r.coll.FindOne(ctx, bson.M{"accountId": accountID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for account %s: %w", accountID, err)
	}
	return &profile, nil
}

// Delete removes a profile document by its account ID.
func (r *MongoProfileRepo) Delete(accountID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"accountId": accountID})
	if err != nil {
		return fmt.Errorf("failed to delete profile for account %s: %w", accountID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("profile for account %s not found", accountID)
	}
	return nil
}
