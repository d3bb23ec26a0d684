package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	directoryUC "github.com/nhattranq/profilehub/internal/application/usecase/directory"
	"github.com/nhattranq/profilehub/internal/domain/directory"
)

type DirectoryHandler struct {
	useCase *directoryUC.ListUseCase
}

func NewDirectoryHandler(uc *directoryUC.ListUseCase) *DirectoryHandler {
	return &DirectoryHandler{useCase: uc}
}

type directoryEntryDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func toDirectoryDTOs(entries []directory.Entry) []directoryEntryDTO {
	out := make([]directoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, directoryEntryDTO{ID: e.ID.String(), Name: e.Name})
	}
	return out
}

func (h *DirectoryHandler) ListInstitutions(c *gin.Context) {
	entries, err := h.useCase.Institutions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"institutions": toDirectoryDTOs(entries)})
}

func (h *DirectoryHandler) ListCompanies(c *gin.Context) {
	entries, err := h.useCase.Companies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": toDirectoryDTOs(entries)})
}
