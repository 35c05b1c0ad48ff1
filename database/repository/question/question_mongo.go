package questionRepo

import (
	"context"
	"time"

	"amora/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoQuestionRepo is the MongoDB implementation of QuestionRepository.
type MongoQuestionRepo struct {
	coll *mongo.Collection
}

// NewMongoQuestionRepo returns a repository bound to the questions collection.
func NewMongoQuestionRepo() *MongoQuestionRepo {
	return &MongoQuestionRepo{
		coll: database.MongoClient.Database("amora").Collection("questions"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
