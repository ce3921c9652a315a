package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotFound is returned when no record matches the lookup
var ErrNotFound = errors.New("record not found")

// CollegeRepository reads colleges and runs college searches
type CollegeRepository interface {
	FindAll(ctx context.Context) ([]models.College, error)
	FindDetailByID(ctx context.Context, id string) (*models.CollegeDetail, error)
	Search(ctx context.Context, filter models.CollegeFilter, offset, limit int64) ([]models.CollegeCourseRow, int64, error)
	CountByCountry(ctx context.Context, country string) (int64, error)
}

// ContentRepository reads the HTML body of courses or scholarships
type ContentRepository interface {
	FindContentByID(ctx context.Context, id string) (*models.Content, error)
}

// FilterOptionRepository reads the precomputed filter values
type FilterOptionRepository interface {
	FindAll(ctx context.Context) ([]models.UniqueFilterOptions, error)
}

// Pinger checks that the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Querier is the part of *pgxpool.Pool the PostgreSQL repositories use
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository      CollegeRepository
	CourseRepository       ContentRepository
	ScholarshipRepository  ContentRepository
	FilterOptionRepository FilterOptionRepository
	Pinger                 Pinger
}

// NewMongoRepositories initializes all repositories on a MongoDB database
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		CollegeRepository:      NewMongoCollegeRepository(db),
		CourseRepository:       NewMongoContentRepository(db, models.CollectionCourses),
		ScholarshipRepository:  NewMongoContentRepository(db, models.CollectionScholarships),
		FilterOptionRepository: NewMongoFilterOptionRepository(db),
		Pinger:                 mongoPinger{client: db.Client()},
	}
}

// NewPostgresRepositories initializes all repositories on a PostgreSQL pool
func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CollegeRepository:      NewPostgresCollegeRepository(db),
		CourseRepository:       NewPostgresContentRepository(db, "courses"),
		ScholarshipRepository:  NewPostgresContentRepository(db, "scholarships"),
		FilterOptionRepository: NewPostgresFilterOptionRepository(db),
		Pinger:                 db,
	}
}

type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

// validateID checks that id is a 24 character hex object id.
// Both backends key their records by this form.
func validateID(id string) error {
	if !primitive.IsValidObjectID(id) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidID, id)
	}
	return nil
}

// normalizeID validates id and returns it in lower case, the form stored as a
// text key. Mongo decodes either case into the same ObjectID.
func normalizeID(id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	return strings.ToLower(id), nil
}
