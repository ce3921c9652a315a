package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateDefaultDataMongo loads the demo catalog into an empty MongoDB database.
// A database that already holds colleges is left untouched.
func CreateDefaultDataMongo(ctx context.Context, database *mongo.Database, lgr zerolog.Logger) error {
	count, err := database.Collection(models.CollectionColleges).EstimatedDocumentCount(ctx)
	if err != nil {
		return fmt.Errorf("error counting colleges: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("colleges", count).Msg("Catalog already populated, skipping seed")
		return nil
	}

	catalog := DemoCatalog()
	lgr.Info().Int("colleges", len(catalog.Colleges)).Msg("Seeding demo catalog...")

	var finalErr error
	insert := func(collection string, docs []interface{}) {
		if _, err := database.Collection(collection).InsertMany(ctx, docs); err != nil {
			lgr.Error().Err(err).Str("collection", collection).Msg("Error seeding collection")
			finalErr = errors.Join(finalErr, err)
		}
	}

	colleges := make([]interface{}, 0, len(catalog.Colleges))
	for _, c := range catalog.Colleges {
		doc := bson.D{
			{Key: "_id", Value: mustObjectID(c.ID)},
			{Key: "name", Value: c.Name},
			{Key: "address", Value: c.Address},
			{Key: "country", Value: c.Country},
		}
		if c.Landing != nil {
			doc = append(doc, bson.E{Key: "landing", Value: c.Landing})
		}
		colleges = append(colleges, doc)
	}
	insert(models.CollectionColleges, colleges)

	courses := make([]interface{}, 0, len(catalog.Courses))
	for _, c := range catalog.Courses {
		courses = append(courses, bson.D{
			{Key: "_id", Value: mustObjectID(c.ID)},
			{Key: "collegeId", Value: c.CollegeID},
			{Key: "program", Value: c.Program},
			{Key: "courseType", Value: c.CourseType},
			{Key: "courseName", Value: c.CourseName},
			{Key: "html", Value: c.HTML},
		})
	}
	insert(models.CollectionCourses, courses)

	scholarships := make([]interface{}, 0, len(catalog.Scholarships))
	for _, s := range catalog.Scholarships {
		scholarships = append(scholarships, bson.D{
			{Key: "_id", Value: mustObjectID(s.ID)},
			{Key: "collegeId", Value: s.CollegeID},
			{Key: "html", Value: s.HTML},
		})
	}
	insert(models.CollectionScholarships, scholarships)

	opts := catalog.FilterOptions
	insert(models.CollectionUniqueFilterOptions, []interface{}{bson.D{
		{Key: "_id", Value: mustObjectID(opts.ID)},
		{Key: "countries", Value: opts.Countries},
		{Key: "programs", Value: opts.Programs},
		{Key: "types", Value: opts.Types},
	}})

	lgr.Info().Msg("Demo catalog seeding finished.")
	return finalErr
}

// CreateDefaultDataPostgres loads the demo catalog into empty PostgreSQL tables
// in a single transaction
func CreateDefaultDataPostgres(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	var count int64
	if err := database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM colleges`).Scan(&count); err != nil {
		return fmt.Errorf("error counting colleges: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("colleges", count).Msg("Catalog already populated, skipping seed")
		return nil
	}

	catalog := DemoCatalog()
	lgr.Info().Int("colleges", len(catalog.Colleges)).Msg("Seeding demo catalog...")

	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, c := range catalog.Colleges {
			var landing []byte
			if c.Landing != nil {
				var err error
				if landing, err = json.Marshal(c.Landing); err != nil {
					return fmt.Errorf("error encoding landing: %w", err)
				}
			}
			batch.Queue(`INSERT INTO colleges (id, name, address, country, landing) VALUES ($1, $2, $3, $4, $5)`,
				c.ID, c.Name, c.Address, c.Country, landing)
		}
		for _, c := range catalog.Courses {
			batch.Queue(`INSERT INTO courses (id, college_id, program, course_type, course_name, html) VALUES ($1, $2, $3, $4, $5, $6)`,
				c.ID, c.CollegeID, c.Program, c.CourseType, c.CourseName, c.HTML)
		}
		for _, s := range catalog.Scholarships {
			batch.Queue(`INSERT INTO scholarships (id, college_id, html) VALUES ($1, $2, $3)`,
				s.ID, s.CollegeID, s.HTML)
		}
		opts := catalog.FilterOptions
		batch.Queue(`INSERT INTO unique_filter_options (id, countries, programs, types) VALUES ($1, $2, $3, $4)`,
			opts.ID, opts.Countries, opts.Programs, opts.Types)

		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return fmt.Errorf("error seeding catalog: %w", err)
	}

	lgr.Info().Msg("Demo catalog seeding finished.")
	return nil
}

func mustObjectID(hex string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(fmt.Sprintf("seed: invalid object id %q", hex))
	}
	return oid
}
