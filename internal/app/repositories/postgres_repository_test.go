package repositories

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
)

const (
	pgCollegeID = "65f1c2a9e4b0a1b2c3d4e5f6"
	pgCourseID  = "65f1c2a9e4b0a1b2c3d4e5f7"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func sqlLike(fragment string) string {
	return regexp.QuoteMeta(fragment)
}

func TestPostgresCollegeRepository_FindDetailByID(t *testing.T) {
	t.Run("college with courses and no scholarships", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sqlLike("SELECT id, name, address, country, landing FROM colleges WHERE id = $1")).
			WithArgs(pgCollegeID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "address", "country", "landing"}).
				AddRow(pgCollegeID, "Alpha Institute", "Pune", "India", []byte(`{"established":1961}`)))
		mock.ExpectQuery(sqlLike("FROM courses WHERE college_id = $1 ORDER BY id")).
			WithArgs(pgCollegeID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "college_id", "program", "course_type", "course_name"}).
				AddRow(pgCourseID, pgCollegeID, "MBA", "Full Time", "Management"))
		mock.ExpectQuery(sqlLike("FROM scholarships WHERE college_id = $1 ORDER BY id")).
			WithArgs(pgCollegeID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "college_id"}))

		detail, err := NewPostgresCollegeRepository(mock).FindDetailByID(context.Background(), pgCollegeID)
		require.NoError(t, err)

		assert.Equal(t, pgCollegeID, detail.ID)
		assert.Equal(t, map[string]interface{}{"established": float64(1961)}, detail.Landing)
		require.Len(t, detail.CourseDetails, 1)
		assert.Equal(t, "Management", detail.CourseDetails[0].CourseName)
		assert.Empty(t, detail.CourseDetails[0].HTML)
		assert.NotNil(t, detail.ScholarshipDetails)
		assert.Empty(t, detail.ScholarshipDetails)
	})

	t.Run("upper case id is looked up in lower case", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sqlLike("FROM colleges WHERE id = $1")).
			WithArgs(pgCollegeID).
			WillReturnError(pgx.ErrNoRows)

		_, err := NewPostgresCollegeRepository(mock).FindDetailByID(context.Background(), strings.ToUpper(pgCollegeID))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid id never reaches the database", func(t *testing.T) {
		mock := newMockPool(t)

		_, err := NewPostgresCollegeRepository(mock).FindDetailByID(context.Background(), "65f1c2a9")
		assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sqlLike("FROM colleges WHERE id = $1")).
			WithArgs(pgCollegeID).
			WillReturnError(errors.New("connection reset"))

		_, err := NewPostgresCollegeRepository(mock).FindDetailByID(context.Background(), pgCollegeID)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrNotFound))
	})
}

func TestPostgresCollegeRepository_Search(t *testing.T) {
	filter := models.CollegeFilter{Country: "India", CourseName: "data", Page: 1}
	rowColumns := []string{
		"id", "name", "address", "country", "number_of_courses",
		"id", "course_name", "program", "course_type",
	}

	t.Run("count then page", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sqlLike("SELECT COUNT(*) FROM colleges c JOIN courses co")).
			WithArgs("India", "%data%").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
		mock.ExpectQuery(sqlLike("ORDER BY cc.number_of_courses DESC, c.id ASC, co.id ASC LIMIT 50 OFFSET 0")).
			WithArgs("India", "%data%").
			WillReturnRows(pgxmock.NewRows(rowColumns).
				AddRow(pgCollegeID, "Alpha Institute", "Pune", "India", 3, pgCourseID, "Data Science", "M.Tech", "Full Time").
				AddRow(pgCollegeID, "Alpha Institute", "Pune", "India", 3, "65f1c2a9e4b0a1b2c3d4e5f8", "Data Analytics", "MBA", "Part Time"))

		rows, total, err := NewPostgresCollegeRepository(mock).Search(context.Background(), filter, 0, 50)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, rows, 2)
		assert.LessOrEqual(t, len(rows), 50)
		assert.Equal(t, pgCourseID, rows[0].CourseID)
		assert.Equal(t, 3, rows[0].NumberOfCourses)
		assert.GreaterOrEqual(t, rows[0].NumberOfCourses, rows[1].NumberOfCourses)
	})

	t.Run("no matches skips the page query", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sqlLike("SELECT COUNT(*)")).
			WithArgs("India", "%data%").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		rows, total, err := NewPostgresCollegeRepository(mock).Search(context.Background(), filter, 0, 50)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("page past the end skips the page query", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sqlLike("SELECT COUNT(*)")).
			WithArgs("India", "%data%").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

		rows, total, err := NewPostgresCollegeRepository(mock).Search(context.Background(), filter, 9223372036854775750, 50)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, rows)
	})

	t.Run("count failure", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sqlLike("SELECT COUNT(*)")).
			WithArgs("India", "%data%").
			WillReturnError(errors.New("canceling statement due to statement timeout"))

		_, _, err := NewPostgresCollegeRepository(mock).Search(context.Background(), filter, 0, 50)
		assert.Error(t, err)
	})
}

func TestPostgresCollegeRepository_FindAllAndCount(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(sqlLike("SELECT id, name, address, country FROM colleges ORDER BY name, id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "address", "country"}).
			AddRow(pgCollegeID, "Alpha Institute", "Pune", "India"))
	mock.ExpectQuery(sqlLike("SELECT COUNT(*) FROM colleges WHERE country = $1")).
		WithArgs("India").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	repo := NewPostgresCollegeRepository(mock)

	colleges, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, colleges, 1)
	assert.Nil(t, colleges[0].Landing)

	count, err := repo.CountByCountry(context.Background(), "India")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPostgresContentRepository_FindContentByID(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		id      string
		rows    *pgxmock.Rows
		queried bool
		wantErr error
	}{
		{
			name:    "course",
			table:   "courses",
			id:      pgCourseID,
			rows:    pgxmock.NewRows([]string{"id", "html"}).AddRow(pgCourseID, "<h1>MBA</h1>"),
			queried: true,
		},
		{
			name:    "upper case scholarship id",
			table:   "scholarships",
			id:      strings.ToUpper(pgCourseID),
			rows:    pgxmock.NewRows([]string{"id", "html"}).AddRow(pgCourseID, "<p>Merit</p>"),
			queried: true,
		},
		{
			name:    "absent",
			table:   "courses",
			id:      pgCourseID,
			queried: true,
			wantErr: ErrNotFound,
		},
		{
			name:    "invalid id",
			table:   "courses",
			id:      "xyz",
			wantErr: apperrors.ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			if tt.queried {
				expect := mock.ExpectQuery(sqlLike("SELECT id, html FROM " + tt.table + " WHERE id = $1")).
					WithArgs(strings.ToLower(tt.id))
				if tt.rows != nil {
					expect.WillReturnRows(tt.rows)
				} else {
					expect.WillReturnError(pgx.ErrNoRows)
				}
			}

			content, err := NewPostgresContentRepository(mock, tt.table).FindContentByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, pgCourseID, content.ID)
			assert.NotEmpty(t, content.HTML)
		})
	}
}

func TestPostgresFilterOptionRepository_FindAll(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(sqlLike("SELECT id, countries, programs, types FROM unique_filter_options ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "countries", "programs", "types"}).
			AddRow("000000000000000000000001", []string{"Canada", "India"}, []string{"MBA"}, []string{"Full Time"}))

	options, err := NewPostgresFilterOptionRepository(mock).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, []string{"Canada", "India"}, options[0].Countries)
	assert.Equal(t, []string{"Full Time"}, options[0].Types)
}
