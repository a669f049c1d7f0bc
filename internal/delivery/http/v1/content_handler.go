package v1

import (
	"net/http"

	"go-investment-backend/internal/delivery/http/response"
	"go-investment-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the read-only content routes the frontend
// renders its pages from
func NewContentHandler(public *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{
		contentUC: contentUC,
	}

	content := public.Group("/content")
	{
		content.GET("/pages/:slug", handler.GetPage)
		content.GET("/projects", handler.ListProjects)
		content.GET("/projects/:slug", handler.GetProject)
	}
}

// GetPage godoc
// @Summary      Get Page Content
// @Description  Fetch the bilingual content of a static page (home, about, milestone-right).
// @Tags         content
// @Produce      json
// @Param        slug path string true "Page slug"
// @Success      200 {object} response.Response{data=domain.Page}
// @Failure      404 {object} response.Response
// @Router       /content/pages/{slug} [get]
func (h *ContentHandler) GetPage(c *gin.Context) {
	page, err := h.contentUC.GetPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "page retrieved", page)
}

// ListProjects godoc
// @Summary      List Projects
// @Description  Fetch the project portfolio in display order.
// @Tags         content
// @Produce      json
// @Success      200 {object} response.Response{data=[]domain.Project}
// @Router       /content/projects [get]
func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.contentUC.ListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "projects retrieved", projects)
}

// GetProject godoc
// @Summary      Get Project
// @Description  Fetch one project by slug.
// @Tags         content
// @Produce      json
// @Param        slug path string true "Project slug"
// @Success      200 {object} response.Response{data=domain.Project}
// @Failure      404 {object} response.Response
// @Router       /content/projects/{slug} [get]
func (h *ContentHandler) GetProject(c *gin.Context) {
	project, err := h.contentUC.GetProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "project retrieved", project)
}
