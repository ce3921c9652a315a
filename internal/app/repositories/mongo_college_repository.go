package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/collegehub/internal/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollegeRepository handles college queries on MongoDB
type MongoCollegeRepository struct {
	colleges *mongo.Collection
}

var _ CollegeRepository = (*MongoCollegeRepository)(nil)

// NewMongoCollegeRepository creates a new MongoCollegeRepository
func NewMongoCollegeRepository(db *mongo.Database) *MongoCollegeRepository {
	return &MongoCollegeRepository{colleges: db.Collection(models.CollectionColleges)}
}

// FindAll returns every college without its landing blob, ordered by name
func (r *MongoCollegeRepository) FindAll(ctx context.Context) ([]models.College, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "landing", Value: 0}}).
		SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.colleges.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	colleges := []models.College{}
	if err := cursor.All(ctx, &colleges); err != nil {
		return nil, fmt.Errorf("error decoding colleges: %w", err)
	}
	return colleges, nil
}

// FindDetailByID returns the college with its courses and scholarships
func (r *MongoCollegeRepository) FindDetailByID(ctx context.Context, id string) (*models.CollegeDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, validateID(id)
	}

	cursor, err := r.colleges.Aggregate(ctx, collegeDetailPipeline(oid))
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("error reading cursor: %w", err)
		}
		return nil, ErrNotFound
	}

	var detail models.CollegeDetail
	if err := cursor.Decode(&detail); err != nil {
		return nil, fmt.Errorf("error decoding college: %w", err)
	}
	if detail.CourseDetails == nil {
		detail.CourseDetails = []models.Course{}
	}
	if detail.ScholarshipDetails == nil {
		detail.ScholarshipDetails = []models.Scholarship{}
	}
	return &detail, nil
}

type searchFacet struct {
	Data  []models.CollegeCourseRow `bson:"data"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

// Search returns one page of college/course rows matching filter and the
// total number of matching rows
func (r *MongoCollegeRepository) Search(ctx context.Context, filter models.CollegeFilter, offset, limit int64) ([]models.CollegeCourseRow, int64, error) {
	opts := options.Aggregate().SetAllowDiskUse(true)

	cursor, err := r.colleges.Aggregate(ctx, collegeSearchPipeline(filter, offset, limit), opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing search: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []models.CollegeCourseRow{}
	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, 0, fmt.Errorf("error reading cursor: %w", err)
		}
		return rows, 0, nil
	}

	var facet searchFacet
	if err := cursor.Decode(&facet); err != nil {
		return nil, 0, fmt.Errorf("error decoding search result: %w", err)
	}

	var total int64
	if len(facet.Total) > 0 {
		total = facet.Total[0].Count
	}
	if facet.Data != nil {
		rows = facet.Data
	}
	return rows, total, nil
}

// CountByCountry returns the number of colleges in country
func (r *MongoCollegeRepository) CountByCountry(ctx context.Context, country string) (int64, error) {
	count, err := r.colleges.CountDocuments(ctx, bson.D{{Key: "country", Value: country}})
	if err != nil {
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}
	return count, nil
}
