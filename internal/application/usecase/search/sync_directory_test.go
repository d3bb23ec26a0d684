package search

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/internal/domain/search"
	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/logger"
)

type stubUserRepo struct {
	u *user.User
}

func (r *stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if r.u != nil && r.u.ID == id {
		return r.u, nil
	}
	return nil, user.ErrUserNotFound
}
func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *stubUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *stubUserRepo) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	return nil
}
func (r *stubUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return nil
}

type stubProfileRepo struct {
	agg *profile.Aggregate
}

func (r *stubProfileRepo) GetAggregate(ctx context.Context, userID uuid.UUID) (*profile.Aggregate, error) {
	return r.agg, nil
}
func (r *stubProfileRepo) ReplaceSection(ctx context.Context, userID uuid.UUID, key profile.SectionKey, data any) error {
	return nil
}

type stubSearchRepo struct {
	upserts []search.ProfileHit
}

func (r *stubSearchRepo) SearchUsers(ctx context.Context, q search.Query, limit int) ([]search.ProfileHit, error) {
	return nil, nil
}
func (r *stubSearchRepo) SearchDirectory(ctx context.Context, q search.Query, limit int) ([]search.ProfileHit, error) {
	return nil, nil
}
func (r *stubSearchRepo) SampleProfiles(ctx context.Context, limit int) ([]search.ProfileHit, error) {
	return nil, nil
}
func (r *stubSearchRepo) UpsertDirectoryEntry(ctx context.Context, hit search.ProfileHit) error {
	r.upserts = append(r.upserts, hit)
	return nil
}

func TestSyncDirectoryUpsertsDenormalizedRow(t *testing.T) {
	u := &user.User{ID: uuid.New(), Username: "jane", Email: "jane@example.com"}
	agg := profile.EmptyAggregate()
	agg.Profile = profile.Profile{FullName: "Jane Doe", Bio: "Trial lawyer", City: "Hanoi", ProfileImage: "https://img"}

	searches := &stubSearchRepo{}
	uc := NewSyncDirectoryUseCase(&stubUserRepo{u: u}, &stubProfileRepo{agg: agg}, searches, logger.NewZapLogger("development"))

	require.NoError(t, uc.Execute(context.Background(), u.ID))
	require.Len(t, searches.upserts, 1)

	hit := searches.upserts[0]
	assert.Equal(t, u.ID, hit.UserID)
	assert.Equal(t, "jane", hit.Username)
	assert.Equal(t, "Jane Doe", hit.FullName)
	assert.Equal(t, "Trial lawyer", hit.Title)
	assert.Equal(t, "Hanoi", hit.City)
}

func TestSyncDirectorySkipsMissingUser(t *testing.T) {
	searches := &stubSearchRepo{}
	uc := NewSyncDirectoryUseCase(&stubUserRepo{}, &stubProfileRepo{agg: profile.EmptyAggregate()}, searches, logger.NewZapLogger("development"))

	require.NoError(t, uc.Execute(context.Background(), uuid.New()))
	assert.Empty(t, searches.upserts)
}

func TestSearchProfilesRequiresQuery(t *testing.T) {
	uc := NewSearchProfilesUseCase(&stubSearchRepo{})
	_, err := uc.Execute(context.Background(), search.Query{})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
