package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nhattranq/profilehub/internal/domain/directory"
	"github.com/nhattranq/profilehub/pkg/apperror"
)

type postgresDirectoryRepo struct {
	db *pgxpool.Pool
}

func NewPostgresDirectoryRepo(db *pgxpool.Pool) directory.Repository {
	return &postgresDirectoryRepo{db: db}
}

var psqlDirectory = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresDirectoryRepo) listTable(ctx context.Context, table string) ([]directory.Entry, error) {
	sql, args, err := psqlDirectory.Select("id", "name").
		From(table).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build directory query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query "+table, err)
	}
	defer rows.Close()

	entries := make([]directory.Entry, 0)
	for rows.Next() {
		var e directory.Entry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, apperror.NewInternal("failed to scan directory entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating directory entries", err)
	}
	return entries, nil
}

func (r *postgresDirectoryRepo) ListInstitutions(ctx context.Context) ([]directory.Entry, error) {
	return r.listTable(ctx, "institutions")
}

func (r *postgresDirectoryRepo) ListCompanies(ctx context.Context) ([]directory.Entry, error) {
	return r.listTable(ctx, "companies")
}
