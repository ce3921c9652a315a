package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/pkg/dberrors"
)

// PostgresCollegeRepository handles college queries on PostgreSQL
type PostgresCollegeRepository struct {
	db Querier
}

var _ CollegeRepository = (*PostgresCollegeRepository)(nil)

// NewPostgresCollegeRepository creates a new PostgresCollegeRepository
func NewPostgresCollegeRepository(db Querier) *PostgresCollegeRepository {
	return &PostgresCollegeRepository{db: db}
}

// FindAll returns every college without its landing blob, ordered by name
func (r *PostgresCollegeRepository) FindAll(ctx context.Context) ([]models.College, error) {
	query := squirrel.Select("id", "name", "address", "country").
		From("colleges").
		OrderBy("name", "id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	colleges := []models.College{}
	for rows.Next() {
		var college models.College
		if err := rows.Scan(&college.ID, &college.Name, &college.Address, &college.Country); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		colleges = append(colleges, college)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return colleges, nil
}

// FindDetailByID returns the college with its courses and scholarships
func (r *PostgresCollegeRepository) FindDetailByID(ctx context.Context, id string) (*models.CollegeDetail, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}

	query := squirrel.Select("id", "name", "address", "country", "landing").
		From("colleges").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var detail models.CollegeDetail
	var landing []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Address,
		&detail.Country,
		&landing,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	if len(landing) > 0 {
		if err := json.Unmarshal(landing, &detail.Landing); err != nil {
			return nil, fmt.Errorf("error decoding landing: %w", err)
		}
	}

	if detail.CourseDetails, err = r.coursesOf(ctx, id); err != nil {
		return nil, err
	}
	if detail.ScholarshipDetails, err = r.scholarshipsOf(ctx, id); err != nil {
		return nil, err
	}

	return &detail, nil
}

func (r *PostgresCollegeRepository) coursesOf(ctx context.Context, collegeID string) ([]models.Course, error) {
	query := squirrel.Select("id", "college_id", "program", "course_type", "course_name").
		From("courses").
		Where(squirrel.Eq{"college_id": collegeID}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.CollegeID, &course.Program, &course.CourseType, &course.CourseName); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *PostgresCollegeRepository) scholarshipsOf(ctx context.Context, collegeID string) ([]models.Scholarship, error) {
	query := squirrel.Select("id", "college_id").
		From("scholarships").
		Where(squirrel.Eq{"college_id": collegeID}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	scholarships := []models.Scholarship{}
	for rows.Next() {
		var scholarship models.Scholarship
		if err := rows.Scan(&scholarship.ID, &scholarship.CollegeID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		scholarships = append(scholarships, scholarship)
	}
	return scholarships, rows.Err()
}

// Search returns one page of college/course rows matching filter and the
// total number of matching rows
func (r *PostgresCollegeRepository) Search(ctx context.Context, filter models.CollegeFilter, offset, limit int64) ([]models.CollegeCourseRow, int64, error) {
	countSQL, countArgs, err := searchCountQuery(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building count SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting search rows: %w", err)
	}

	rows := []models.CollegeCourseRow{}
	if total == 0 || offset >= total {
		return rows, total, nil
	}

	sql, args, err := searchPageQuery(filter, offset, limit).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing search: %w", err)
	}
	defer result.Close()

	for result.Next() {
		var row models.CollegeCourseRow
		err := result.Scan(
			&row.ID,
			&row.Name,
			&row.Address,
			&row.Country,
			&row.NumberOfCourses,
			&row.CourseID,
			&row.CourseName,
			&row.Program,
			&row.CourseType,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return rows, total, nil
}

// CountByCountry returns the number of colleges in country
func (r *PostgresCollegeRepository) CountByCountry(ctx context.Context, country string) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("colleges").
		Where(squirrel.Eq{"country": country}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}
	return count, nil
}
