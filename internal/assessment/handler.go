package assessment

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/practicekit/practicekit/internal/platform/auth"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "practitioner"))
	readGroup.GET("/assessments", h.ListAssessments)
	readGroup.GET("/assessments/:id", h.GetAssessment)
}

// ListAssessments returns the full instrument library. An optional
// ?category= filter narrows to personality or clinical instruments.
func (h *Handler) ListAssessments(c echo.Context) error {
	if cat := c.QueryParam("category"); cat != "" {
		return c.JSON(http.StatusOK, ByCategory(cat))
	}
	return c.JSON(http.StatusOK, All())
}

func (h *Handler) GetAssessment(c echo.Context) error {
	a, ok := ByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, a)
}
