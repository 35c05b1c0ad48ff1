package questionRepo

import (
	"fmt"
	"time"

	"amora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetEnabled retrieves enabled questions sorted by displayOrder.
func (r *MongoQuestionRepo) GetEnabled() ([]models.QuestionDefinition, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"enabled": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enabled questions: %w", err)
	}
	defer cursor.Close(ctx)

	var questions []models.QuestionDefinition
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return questions, nil
}

// GetAll retrieves every question sorted by displayOrder.
func (r *MongoQuestionRepo) GetAll() ([]models.QuestionDefinition, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	defer cursor.Close(ctx)

	var questions []models.QuestionDefinition
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return questions, nil
}

// GetByID retrieves a question by its unique ID.
func (r *MongoQuestionRepo) GetByID(id string) (*models.QuestionDefinition, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var q models.QuestionDefinition
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&q); err != nil {
		return nil, fmt.Errorf("failed to fetch question %s: %w", id, err)
	}
	return &q, nil
}

// Create inserts a new question document.
func (r *MongoQuestionRepo) Create(q *models.QuestionDefinition) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// Update modifies an existing question document.
func (r *MongoQuestionRepo) Update(q *models.QuestionDefinition) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	q.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": q.ID}, bson.M{"$set": q})
	if err != nil {
		return fmt.Errorf("failed to update question %s: %w", q.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("question with id %s not found", q.ID)
	}
	return nil
}

// Delete removes a question document. System questions cannot be deleted.
func (r *MongoQuestionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "isSystemField": false})
	if err != nil {
		return fmt.Errorf("failed to delete question %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("question with id %s not found or is a system question", id)
	}
	return nil
}

// Count returns the number of catalog documents.
func (r *MongoQuestionRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}
