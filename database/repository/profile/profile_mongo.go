package profileRepo

import (
	"context"
	"time"

	"amora/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProfileRepo is the MongoDB implementation of ProfileRepository.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo returns a repository bound to the profiles collection.
func NewMongoProfileRepo() *MongoProfileRepo {
	return &MongoProfileRepo{
		coll: database.MongoClient.Database("amora").Collection("profiles"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
