package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/nhattranq/profilehub/internal/application/usecase/profile"
	profileDomain "github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/logger"
)

type ProfileHandler struct {
	getAggregate  *profileUC.GetAggregateUseCase
	updateSection *profileUC.UpdateSectionUseCase
	userRepo      user.Repository
	logger        logger.Logger
}

func NewProfileHandler(
	getUC *profileUC.GetAggregateUseCase,
	updateUC *profileUC.UpdateSectionUseCase,
	userRepo user.Repository,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		getAggregate:  getUC,
		updateSection: updateUC,
		userRepo:      userRepo,
		logger:        log,
	}
}

// GetProfileData serves the whole aggregate for one user id. The credential
// is optional; an owner request bypasses the cache.
func (h *ProfileHandler) GetProfileData(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	if _, err := h.userRepo.FindByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile data not found"})
			return
		}
		c.Error(err)
		return
	}

	viewerID, _ := GetUserIDFromGinContext(c)

	agg, err := h.getAggregate.Execute(c.Request.Context(), profileUC.GetAggregateInput{
		UserID:      userID,
		BypassCache: viewerID == userID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToAggregateDTO(agg))
}

// UpdateSection returns the handler for PUT /{section}/me. Identity comes
// from the credential only; the payload carries no user id.
func (h *ProfileHandler) UpdateSection(key profileDomain.SectionKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromGinContext(c)
		if !ok {
			c.Error(apperror.NewPermissionDenied("userID not found in context"))
			return
		}

		value, err := decodeSectionBody(key, c.Request.Body)
		if err != nil {
			c.Error(err)
			return
		}

		u, err := h.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.Error(err)
			return
		}

		updated, err := h.updateSection.Execute(c.Request.Context(), profileUC.UpdateSectionInput{
			UserID:   userID,
			Username: u.Username,
			Section:  key,
			Value:    value,
		})
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, sectionResponseBody(key, updated))
	}
}
