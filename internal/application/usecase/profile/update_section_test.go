package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhattranq/profilehub/adapters/event"
	profileDomain "github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/logger"
)

type fakeProfileRepo struct {
	sections map[profileDomain.SectionKey]any
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{sections: map[profileDomain.SectionKey]any{}}
}

func (r *fakeProfileRepo) GetAggregate(ctx context.Context, userID uuid.UUID) (*profileDomain.Aggregate, error) {
	agg := profileDomain.EmptyAggregate()
	if p, ok := r.sections[profileDomain.SectionProfile].(profileDomain.Profile); ok {
		agg.Profile = p
	}
	if s, ok := r.sections[profileDomain.SectionSkills].([]string); ok {
		agg.Skills = s
	}
	return agg, nil
}

func (r *fakeProfileRepo) ReplaceSection(ctx context.Context, userID uuid.UUID, key profileDomain.SectionKey, data any) error {
	if r.err != nil {
		return r.err
	}
	r.sections[key] = data
	return nil
}

type fakeCache struct {
	store       map[uuid.UUID]*profileDomain.Aggregate
	invalidated []uuid.UUID
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[uuid.UUID]*profileDomain.Aggregate{}}
}

func (c *fakeCache) Get(ctx context.Context, userID uuid.UUID) (*profileDomain.Aggregate, bool) {
	agg, ok := c.store[userID]
	return agg, ok
}

func (c *fakeCache) Set(ctx context.Context, userID uuid.UUID, agg *profileDomain.Aggregate) {
	c.store[userID] = agg
}

func (c *fakeCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	delete(c.store, userID)
	c.invalidated = append(c.invalidated, userID)
}

type fakePublisher struct {
	published []event.SectionUpdated
	err       error
}

func (p *fakePublisher) PublishSectionUpdated(ctx context.Context, ev event.SectionUpdated) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, ev)
	return nil
}

func newUpdateFixture() (*UpdateSectionUseCase, *fakeProfileRepo, *fakeCache, *fakePublisher) {
	repo := newFakeProfileRepo()
	cache := newFakeCache()
	pub := &fakePublisher{}
	uc := NewUpdateSectionUseCase(repo, cache, pub, logger.NewZapLogger("development"))
	return uc, repo, cache, pub
}

func TestUpdateSectionPersistsInvalidatesAndPublishes(t *testing.T) {
	uc, repo, cache, pub := newUpdateFixture()
	userID := uuid.New()
	cache.Set(context.Background(), userID, profileDomain.EmptyAggregate())

	out, err := uc.Execute(context.Background(), UpdateSectionInput{
		UserID:   userID,
		Username: "jane",
		Section:  profileDomain.SectionSkills,
		Value:    []string{"Litigation", "Contracts"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Litigation", "Contracts"}, out)

	assert.Equal(t, []string{"Litigation", "Contracts"}, repo.sections[profileDomain.SectionSkills])
	assert.Equal(t, []uuid.UUID{userID}, cache.invalidated)

	require.Len(t, pub.published, 1)
	assert.Equal(t, userID, pub.published[0].UserID)
	assert.Equal(t, "jane", pub.published[0].Username)
	assert.Equal(t, "skills", pub.published[0].Section)
}

func TestUpdateSectionRejectsUnknownSection(t *testing.T) {
	uc, repo, _, _ := newUpdateFixture()

	_, err := uc.Execute(context.Background(), UpdateSectionInput{
		UserID:  uuid.New(),
		Section: profileDomain.SectionKey("posts"),
		Value:   []string{},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, repo.sections)
}

func TestUpdateSectionValidationKeysAreIndexed(t *testing.T) {
	uc, repo, _, _ := newUpdateFixture()

	_, err := uc.Execute(context.Background(), UpdateSectionInput{
		UserID:  uuid.New(),
		Section: profileDomain.SectionEducation,
		Value: []profileDomain.Education{
			{Degree: "JD", Institution: "MIT", StartDate: "2015-09-01", Description: "Law"},
			{},
		},
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Degree is required", appErr.Fields["1.degree"])
	assert.NotContains(t, appErr.Fields, "0.degree")
	assert.Empty(t, repo.sections)
}

func TestUpdateSectionCleansExperienceBeforeSaving(t *testing.T) {
	uc, repo, _, _ := newUpdateFixture()

	out, err := uc.Execute(context.Background(), UpdateSectionInput{
		UserID:  uuid.New(),
		Section: profileDomain.SectionExperience,
		Value: []profileDomain.Experience{
			{Position: "Partner", Company: "Firm", StartDate: "2020-01-01",
				EndDate: "2024-01-01", CurrentlyWorking: true},
		},
	})
	require.NoError(t, err)

	saved := repo.sections[profileDomain.SectionExperience].([]profileDomain.Experience)
	assert.Empty(t, saved[0].EndDate)
	assert.Equal(t, saved, out)
}

func TestUpdateSectionSucceedsWhenPublishFails(t *testing.T) {
	uc, repo, _, pub := newUpdateFixture()
	pub.err = errors.New("broker down")

	_, err := uc.Execute(context.Background(), UpdateSectionInput{
		UserID:  uuid.New(),
		Section: profileDomain.SectionSkills,
		Value:   []string{"Litigation"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Litigation"}, repo.sections[profileDomain.SectionSkills])
}

func TestGetAggregateReadThrough(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.sections[profileDomain.SectionSkills] = []string{"Litigation"}
	cache := newFakeCache()
	uc := NewGetAggregateUseCase(repo, cache)
	userID := uuid.New()

	agg, err := uc.Execute(context.Background(), GetAggregateInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Litigation"}, agg.Skills)

	// Second read is served from cache.
	_, ok := cache.Get(context.Background(), userID)
	assert.True(t, ok)

	// Owner reads bypass the cache.
	stale := profileDomain.EmptyAggregate()
	stale.Skills = []string{"old"}
	cache.Set(context.Background(), userID, stale)

	agg, err = uc.Execute(context.Background(), GetAggregateInput{UserID: userID, BypassCache: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Litigation"}, agg.Skills)
}
