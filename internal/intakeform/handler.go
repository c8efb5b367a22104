package intakeform

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
	readGroup.GET("/intake-forms/:practiceType", h.GetTemplate)
}

// GetTemplate resolves the intake template for a practice type. The
// ?variant= query selects quick (default) or comprehensive; unresolvable
// combinations fall back rather than 404, mirroring ByPracticeType.
func (h *Handler) GetTemplate(c echo.Context) error {
	t := ByPracticeType(c.Param("practiceType"), c.QueryParam("variant"))
	return c.JSON(http.StatusOK, t)
}
