package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/collegehub/internal/app/models"
)

// PostgresFilterOptionRepository reads the unique_filter_options table
type PostgresFilterOptionRepository struct {
	db Querier
}

var _ FilterOptionRepository = (*PostgresFilterOptionRepository)(nil)

// NewPostgresFilterOptionRepository creates a new PostgresFilterOptionRepository
func NewPostgresFilterOptionRepository(db Querier) *PostgresFilterOptionRepository {
	return &PostgresFilterOptionRepository{db: db}
}

// FindAll returns every stored filter option row
func (r *PostgresFilterOptionRepository) FindAll(ctx context.Context) ([]models.UniqueFilterOptions, error) {
	query := squirrel.Select("id", "countries", "programs", "types").
		From("unique_filter_options").
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

	options := []models.UniqueFilterOptions{}
	for rows.Next() {
		var o models.UniqueFilterOptions
		if err := rows.Scan(&o.ID, &o.Countries, &o.Programs, &o.Types); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return options, nil
}
