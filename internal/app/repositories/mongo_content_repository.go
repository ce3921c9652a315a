package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/pkg/dberrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContentRepository reads html bodies from a course or scholarship collection
type MongoContentRepository struct {
	collection *mongo.Collection
}

var _ ContentRepository = (*MongoContentRepository)(nil)

// NewMongoContentRepository creates a repository over the named collection
func NewMongoContentRepository(db *mongo.Database, collection string) *MongoContentRepository {
	return &MongoContentRepository{collection: db.Collection(collection)}
}

// FindContentByID returns the id and html of one document
func (r *MongoContentRepository) FindContentByID(ctx context.Context, id string) (*models.Content, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, validateID(id)
	}

	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}, {Key: "html", Value: 1}})

	var content models.Content
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, opts).Decode(&content)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding %s: %w", r.collection.Name(), err)
	}
	return &content, nil
}
