package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-investment-backend/internal/repository/memory"
	"go-investment-backend/internal/usecase"
	"go-investment-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestContentPageLookup(t *testing.T) {
	uc := usecase.NewContentUsecase(memory.NewContentRepository())

	t.Run("known slugs resolve", func(t *testing.T) {
		for _, slug := range []string{"home", "about", "milestone-right"} {
			page, err := uc.GetPage(context.Background(), slug)
			assert.NoError(t, err)
			if assert.NotNil(t, page) {
				assert.Equal(t, slug, page.Slug)
				assert.NotEmpty(t, page.Title.Ar)
				assert.NotEmpty(t, page.Title.En)
				assert.NotEmpty(t, page.Sections)
			}
		}
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		_, err := uc.GetPage(context.Background(), "careers")
		assert.Error(t, err)

		var appErr *apperror.AppError
		if assert.True(t, errors.As(err, &appErr)) {
			assert.Equal(t, http.StatusNotFound, appErr.Code)
		}
	})
}

func TestContentProjects(t *testing.T) {
	uc := usecase.NewContentUsecase(memory.NewContentRepository())

	projects, err := uc.ListProjects(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, projects)

	// Declaration order is display order
	assert.Equal(t, "narjes-residence", projects[0].Slug)

	first, err := uc.GetProject(context.Background(), projects[0].Slug)
	assert.NoError(t, err)
	assert.Equal(t, projects[0].Name, first.Name)

	_, err = uc.GetProject(context.Background(), "does-not-exist")
	assert.Error(t, err)
}
