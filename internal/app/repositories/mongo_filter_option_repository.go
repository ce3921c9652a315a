package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/collegehub/internal/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoFilterOptionRepository reads the uniqueFilterOptions collection
type MongoFilterOptionRepository struct {
	collection *mongo.Collection
}

var _ FilterOptionRepository = (*MongoFilterOptionRepository)(nil)

// NewMongoFilterOptionRepository creates a new MongoFilterOptionRepository
func NewMongoFilterOptionRepository(db *mongo.Database) *MongoFilterOptionRepository {
	return &MongoFilterOptionRepository{collection: db.Collection(models.CollectionUniqueFilterOptions)}
}

// FindAll returns every stored filter option document
func (r *MongoFilterOptionRepository) FindAll(ctx context.Context) ([]models.UniqueFilterOptions, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	options := []models.UniqueFilterOptions{}
	if err := cursor.All(ctx, &options); err != nil {
		return nil, fmt.Errorf("error decoding filter options: %w", err)
	}
	return options, nil
}
