package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/adapters/event"
	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/logger"
)

// EventPublisher decouples the usecase from the Kafka client.
type EventPublisher interface {
	PublishSectionUpdated(ctx context.Context, ev event.SectionUpdated) error
}

type UpdateSectionUseCase struct {
	profileRepo profile.Repository
	cache       AggregateCache
	events      EventPublisher
	logger      logger.Logger
}

func NewUpdateSectionUseCase(repo profile.Repository, cache AggregateCache, events EventPublisher, log logger.Logger) *UpdateSectionUseCase {
	return &UpdateSectionUseCase{
		profileRepo: repo,
		cache:       cache,
		events:      events,
		logger:      log,
	}
}

type UpdateSectionInput struct {
	UserID   uuid.UUID
	Username string
	Section  profile.SectionKey
	Value    any
}

// Execute validates the typed section value, replaces the stored section,
// invalidates the cached aggregate and emits a profile event. The returned
// value is the section as persisted (experience entries cleaned).
func (uc *UpdateSectionUseCase) Execute(ctx context.Context, input UpdateSectionInput) (any, error) {

	ctx, span := tracer.Start(ctx, "UpdateSection")
	defer span.End()
	span.SetAttributes(
		attribute.String("user_id", input.UserID.String()),
		attribute.String("section", string(input.Section)),
	)

	if !input.Section.Valid() {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown profile section '%s'", input.Section), nil)
	}

	value, fieldErrs, err := cleanAndValidate(input.Section, input.Value)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationFailed(fmt.Sprintf("section '%s' failed validation", input.Section), fieldErrs)
	}

	if err := uc.profileRepo.ReplaceSection(ctx, input.UserID, input.Section, value); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, input.UserID)
	}

	if uc.events != nil {
		ev := event.SectionUpdated{
			UserID:    input.UserID,
			Username:  input.Username,
			Section:   string(input.Section),
			UpdatedAt: time.Now().UTC(),
		}
		if err := uc.events.PublishSectionUpdated(ctx, ev); err != nil {
			// The write committed; losing the event only delays the
			// directory refresh.
			uc.logger.Warn("Failed to publish section updated event",
				zap.String("user_id", input.UserID.String()),
				zap.String("section", string(input.Section)),
				zap.Error(err),
			)
		}
	}

	return value, nil
}

// cleanAndValidate enforces the per-section required-field table. For list
// sections the error map keys are "<index>.<field>".
func cleanAndValidate(key profile.SectionKey, value any) (any, map[string]string, error) {
	badType := func() error {
		return apperror.NewInvalidInput(fmt.Sprintf("unexpected payload type for section '%s'", key), nil)
	}

	switch key {
	case profile.SectionProfile:
		p, ok := value.(profile.Profile)
		if !ok {
			return nil, nil, badType()
		}
		return p, p.Validate(), nil

	case profile.SectionAbout:
		a, ok := value.(profile.About)
		if !ok {
			return nil, nil, badType()
		}
		if a.Highlights == nil {
			a.Highlights = []string{}
		}
		if a.Hobbies == nil {
			a.Hobbies = []string{}
		}
		return a, a.Validate(), nil

	case profile.SectionEducation:
		list, ok := value.([]profile.Education)
		if !ok {
			return nil, nil, badType()
		}
		errs := map[string]string{}
		for i, entry := range list {
			for field, msg := range entry.Validate() {
				errs[fmt.Sprintf("%d.%s", i, field)] = msg
			}
		}
		return list, errs, nil

	case profile.SectionExperience:
		list, ok := value.([]profile.Experience)
		if !ok {
			return nil, nil, badType()
		}
		errs := map[string]string{}
		for i := range list {
			list[i] = list[i].Clean()
			for field, msg := range list[i].Validate() {
				errs[fmt.Sprintf("%d.%s", i, field)] = msg
			}
		}
		return list, errs, nil

	case profile.SectionAchievements:
		list, ok := value.([]profile.Achievement)
		if !ok {
			return nil, nil, badType()
		}
		return list, nil, nil

	case profile.SectionContributions:
		list, ok := value.([]profile.Contribution)
		if !ok {
			return nil, nil, badType()
		}
		errs := map[string]string{}
		for i, entry := range list {
			for field, msg := range entry.Validate() {
				errs[fmt.Sprintf("%d.%s", i, field)] = msg
			}
		}
		return list, errs, nil

	case profile.SectionSkills:
		skills, ok := value.([]string)
		if !ok {
			return nil, nil, badType()
		}
		if skills == nil {
			skills = []string{}
		}
		return skills, nil, nil

	case profile.SectionSocialLinks:
		links, ok := value.(map[string]string)
		if !ok {
			return nil, nil, badType()
		}
		if links == nil {
			links = map[string]string{}
		}
		return links, nil, nil
	}

	return nil, nil, badType()
}
