package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	searchUC "github.com/nhattranq/profilehub/internal/application/usecase/search"
	"github.com/nhattranq/profilehub/internal/domain/search"
	"github.com/nhattranq/profilehub/pkg/apperror"
)

type SearchHandler struct {
	useCase *searchUC.SearchProfilesUseCase
}

func NewSearchHandler(uc *searchUC.SearchProfilesUseCase) *SearchHandler {
	return &SearchHandler{useCase: uc}
}

func (h *SearchHandler) respond(c *gin.Context, hits []search.ProfileHit, err error) {
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Please provide a search query.",
			})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   ToSearchHitDTOs(hits),
	})
}

// SearchProfiles serves GET /profiles/search?username=&city= against the live
// tables.
func (h *SearchHandler) SearchProfiles(c *gin.Context) {
	q := search.Query{
		Name: c.Query("username"),
		City: c.Query("city"),
	}
	hits, err := h.useCase.Execute(c.Request.Context(), q)
	h.respond(c, hits, err)
}

// SearchDirectory serves GET /searchdata/search?fullName=&city= against the
// worker-maintained table.
func (h *SearchHandler) SearchDirectory(c *gin.Context) {
	q := search.Query{
		Name: c.Query("fullName"),
		City: c.Query("city"),
	}
	hits, err := h.useCase.ExecuteDirectory(c.Request.Context(), q)
	h.respond(c, hits, err)
}

// ListProfiles serves the landing page slider.
func (h *SearchHandler) ListProfiles(c *gin.Context) {
	hits, err := h.useCase.ExecuteSample(c.Request.Context(), 12)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"profiles": ToSearchHitDTOs(hits),
	})
}
