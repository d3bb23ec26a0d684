package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/logger"
)

// Sections live in one JSONB row per (user, section). Absent rows read back as
// the section's empty container, so a freshly registered user already has a
// complete (empty) aggregate.
type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetAggregate(ctx context.Context, userID uuid.UUID) (*profile.Aggregate, error) {
	query := `
		SELECT section, data
		FROM profile_sections
		WHERE user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query profile sections", err)
	}
	defer rows.Close()

	agg := profile.EmptyAggregate()
	for rows.Next() {
		var section string
		var data []byte
		if err := rows.Scan(&section, &data); err != nil {
			return nil, apperror.NewInternal("failed to scan profile section row", err)
		}
		if err := r.unmarshalSection(agg, profile.SectionKey(section), data); err != nil {
			r.logger.Warn("Failed to unmarshal profile section",
				zap.String("user_id", userID.String()),
				zap.String("section", section),
				zap.Error(err),
			)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile section rows", err)
	}

	agg.Normalize()
	return agg, nil
}

func (r *postgresProfileRepo) unmarshalSection(agg *profile.Aggregate, key profile.SectionKey, data []byte) error {
	switch key {
	case profile.SectionProfile:
		return json.Unmarshal(data, &agg.Profile)
	case profile.SectionAbout:
		return json.Unmarshal(data, &agg.About)
	case profile.SectionEducation:
		return json.Unmarshal(data, &agg.Education)
	case profile.SectionExperience:
		return json.Unmarshal(data, &agg.Experience)
	case profile.SectionAchievements:
		return json.Unmarshal(data, &agg.Achievements)
	case profile.SectionContributions:
		return json.Unmarshal(data, &agg.Contributions)
	case profile.SectionSkills:
		return json.Unmarshal(data, &agg.Skills)
	case profile.SectionSocialLinks:
		return json.Unmarshal(data, &agg.SocialLinks)
	}
	return nil
}

func (r *postgresProfileRepo) ReplaceSection(ctx context.Context, userID uuid.UUID, key profile.SectionKey, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile section", err)
	}

	query := `
		INSERT INTO profile_sections (user_id, section, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, section) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query, userID, string(key), payload)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile section", err)
	}
	return nil
}
