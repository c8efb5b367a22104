package track

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
	readGroup.GET("/tracks", h.ListTracks)
	readGroup.GET("/tracks/:practiceType", h.GetTrack)
	readGroup.GET("/practice-types", h.ListPracticeTypes)
}

func (h *Handler) ListTracks(c echo.Context) error {
	out := make([]Track, 0, len(order))
	for _, key := range order {
		out = append(out, configs[key])
	}
	return c.JSON(http.StatusOK, out)
}

// GetTrack resolves a practice type to its track. Unknown types fall back
// to therapy rather than 404, mirroring Config.
func (h *Handler) GetTrack(c echo.Context) error {
	return c.JSON(http.StatusOK, Config(c.Param("practiceType")))
}

func (h *Handler) ListPracticeTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, PracticeTypes())
}
