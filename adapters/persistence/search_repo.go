package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nhattranq/profilehub/internal/domain/search"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/logger"
)

type postgresSearchRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSearchRepo(db *pgxpool.Pool, logger logger.Logger) search.Repository {
	return &postgresSearchRepo{db: db, logger: logger}
}

var psqlSearch = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresSearchRepo) runHitQuery(ctx context.Context, builder sq.SelectBuilder) ([]search.ProfileHit, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to execute search query", err)
	}
	defer rows.Close()

	hits := make([]search.ProfileHit, 0)
	for rows.Next() {
		var h search.ProfileHit
		if err := rows.Scan(&h.UserID, &h.Username, &h.FullName, &h.Title, &h.City, &h.ProfileImage); err != nil {
			return nil, apperror.NewInternal("failed to scan search hit", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating search hits", err)
	}
	return hits, nil
}

// SearchUsers joins the live users table with the profile section rows. The
// profile section is JSONB, so name/city/image come out of the document.
func (r *postgresSearchRepo) SearchUsers(ctx context.Context, q search.Query, limit int) ([]search.ProfileHit, error) {
	builder := psqlSearch.Select(
		"u.id",
		"u.username",
		"COALESCE(p.data->>'fullName', '')",
		"COALESCE(p.data->>'bio', '')",
		"COALESCE(p.data->>'city', '')",
		"COALESCE(p.data->>'profileImage', '')",
	).
		From("users u").
		LeftJoin("profile_sections p ON p.user_id = u.id AND p.section = 'profiles'").
		OrderBy("u.username ASC").
		Limit(uint64(limit))

	if q.Name != "" {
		pattern := "%" + q.Name + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"u.username": pattern},
			sq.ILike{"p.data->>'fullName'": pattern},
		})
	}
	if q.City != "" {
		builder = builder.Where(sq.ILike{"p.data->>'city'": "%" + q.City + "%"})
	}

	return r.runHitQuery(ctx, builder)
}

// SearchDirectory reads the denormalized table the worker maintains.
func (r *postgresSearchRepo) SearchDirectory(ctx context.Context, q search.Query, limit int) ([]search.ProfileHit, error) {
	builder := psqlSearch.Select(
		"user_id", "username", "full_name", "title", "city", "profile_image",
	).
		From("search_profiles").
		OrderBy("username ASC").
		Limit(uint64(limit))

	if q.Name != "" {
		builder = builder.Where(sq.ILike{"full_name": "%" + q.Name + "%"})
	}
	if q.City != "" {
		builder = builder.Where(sq.ILike{"city": "%" + q.City + "%"})
	}

	return r.runHitQuery(ctx, builder)
}

func (r *postgresSearchRepo) SampleProfiles(ctx context.Context, limit int) ([]search.ProfileHit, error) {
	builder := psqlSearch.Select(
		"u.id",
		"u.username",
		"COALESCE(p.data->>'fullName', '')",
		"COALESCE(p.data->>'bio', '')",
		"COALESCE(p.data->>'city', '')",
		"COALESCE(p.data->>'profileImage', '')",
	).
		From("users u").
		Join("profile_sections p ON p.user_id = u.id AND p.section = 'profiles'").
		OrderBy("p.updated_at DESC").
		Limit(uint64(limit))

	return r.runHitQuery(ctx, builder)
}

func (r *postgresSearchRepo) UpsertDirectoryEntry(ctx context.Context, hit search.ProfileHit) error {
	query := `
		INSERT INTO search_profiles (user_id, username, full_name, title, city, profile_image, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			full_name = EXCLUDED.full_name,
			title = EXCLUDED.title,
			city = EXCLUDED.city,
			profile_image = EXCLUDED.profile_image,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		hit.UserID, hit.Username, hit.FullName, hit.Title, hit.City, hit.ProfileImage,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert search profile", err)
	}
	return nil
}
