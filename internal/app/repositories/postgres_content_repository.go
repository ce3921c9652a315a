package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/pkg/dberrors"
)

// PostgresContentRepository reads html bodies from the courses or scholarships table
type PostgresContentRepository struct {
	db    Querier
	table string
}

var _ ContentRepository = (*PostgresContentRepository)(nil)

// NewPostgresContentRepository creates a repository over the named table
func NewPostgresContentRepository(db Querier, table string) *PostgresContentRepository {
	return &PostgresContentRepository{db: db, table: table}
}

// FindContentByID returns the id and html of one row
func (r *PostgresContentRepository) FindContentByID(ctx context.Context, id string) (*models.Content, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}

	query := squirrel.Select("id", "html").
		From(r.table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var content models.Content
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&content.ID, &content.HTML); err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding %s: %w", r.table, err)
	}
	return &content, nil
}
