package directory

import (
	"context"

	"github.com/nhattranq/profilehub/internal/domain/directory"
)

type ListUseCase struct {
	repo directory.Repository
}

func NewListUseCase(repo directory.Repository) *ListUseCase {
	return &ListUseCase{repo: repo}
}

func (uc *ListUseCase) Institutions(ctx context.Context) ([]directory.Entry, error) {
	return uc.repo.ListInstitutions(ctx)
}

func (uc *ListUseCase) Companies(ctx context.Context) ([]directory.Entry, error) {
	return uc.repo.ListCompanies(ctx)
}
