package usecase

import (
	"context"

	"go-investment-backend/internal/domain"
	"go-investment-backend/pkg/apperror"
)

type contentUsecase struct {
	repo domain.ContentRepository
}

// NewContentUsecase creates a new content usecase
func NewContentUsecase(repo domain.ContentRepository) domain.ContentUsecase {
	return &contentUsecase{repo: repo}
}

func (uc *contentUsecase) GetPage(ctx context.Context, slug string) (*domain.Page, error) {
	page, ok := uc.repo.GetPage(slug)
	if !ok {
		return nil, apperror.NotFound("page not found")
	}
	return page, nil
}

func (uc *contentUsecase) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return uc.repo.ListProjects(), nil
}

func (uc *contentUsecase) GetProject(ctx context.Context, slug string) (*domain.Project, error) {
	project, ok := uc.repo.GetProject(slug)
	if !ok {
		return nil, apperror.NotFound("project not found")
	}
	return project, nil
}
