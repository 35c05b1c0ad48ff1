package accountRepo

import (
	"context"
	"time"

	"amora/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAccountRepo is the MongoDB implementation of AccountRepository.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo returns a repository bound to the accounts collection.
func NewMongoAccountRepo() *MongoAccountRepo {
	return &MongoAccountRepo{
		coll: database.MongoClient.Database("amora").Collection("accounts"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
