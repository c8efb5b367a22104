package intake

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/practicekit/practicekit/internal/intakeform"
	"github.com/practicekit/practicekit/internal/platform/auth"
	"github.com/practicekit/practicekit/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the intake endpoints. The public group carries no
// auth middleware: clients reach it with nothing but the link token. The
// protected group is the therapist-facing surface.
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.GET("/form/:token", h.GetForm)
	public.POST("/submit/:token", h.SubmitSection)
	public.POST("/submit-assessment/:token", h.SubmitAssessment)
	public.POST("/complete/:token", h.CompleteIntake)

	writeGroup := protected.Group("", auth.RequireRole("admin", "practitioner"))
	writeGroup.POST("/create-link", h.CreateLink)
	writeGroup.POST("/send-email", h.SendEmail)
	writeGroup.GET("/pending", h.ListPending)
	writeGroup.GET("/review/:id", h.GetReview)
	writeGroup.POST("/approve/:id", h.Approve)
}

// tokenErr maps the service sentinels onto the HTTP boundary: unknown
// tokens are 404, expired ones 410, closed sessions 409.
func tokenErr(err error) error {
	switch {
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "invalid or expired link")
	case errors.Is(err, ErrLinkExpired):
		return echo.NewHTTPError(http.StatusGone, "link has expired")
	case errors.Is(err, ErrSessionClosed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// -- Public handlers --

func (h *Handler) GetForm(c echo.Context) error {
	view, err := h.svc.FormByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return tokenErr(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) SubmitSection(c echo.Context) error {
	var patch intakeform.Values
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.SaveProgress(c.Request().Context(), c.Param("token"), patch); err != nil {
		return tokenErr(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "Progress saved"})
}

type submitAssessmentRequest struct {
	AssessmentID string         `json:"assessment_id"`
	Responses    map[string]int `json:"responses"`
}

func (h *Handler) SubmitAssessment(c echo.Context) error {
	var req submitAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	record, err := h.svc.SubmitAssessment(c.Request().Context(), c.Param("token"), req.AssessmentID, req.Responses)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrLinkExpired) || errors.Is(err, ErrSessionClosed) {
			return tokenErr(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, record)
}

func (h *Handler) CompleteIntake(c echo.Context) error {
	if err := h.svc.Complete(c.Request().Context(), c.Param("token")); err != nil {
		return tokenErr(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "Intake completed. Thank you!"})
}

// -- Therapist handlers --

func (h *Handler) CreateLink(c echo.Context) error {
	var req CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	therapistID := auth.UserIDFromContext(c.Request().Context())
	link, err := h.svc.CreateLink(c.Request().Context(), therapistID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"link_token":   link.Token,
		"public_url":   "/intake/" + link.Token,
		"expires_at":   link.ExpiresAt,
		"client_email": link.ClientEmail,
		"form_type":    link.FormType,
	})
}

type sendEmailRequest struct {
	LinkToken     string `json:"link_token"`
	CustomMessage string `json:"custom_message"`
}

func (h *Handler) SendEmail(c echo.Context) error {
	var req sendEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	therapistID := auth.UserIDFromContext(c.Request().Context())
	link, err := h.svc.MarkSent(c.Request().Context(), therapistID, req.LinkToken)
	if err != nil {
		return tokenErr(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Email queued for " + link.ClientEmail,
	})
}

func (h *Handler) ListPending(c echo.Context) error {
	pg := pagination.FromContext(c)
	therapistID := auth.UserIDFromContext(c.Request().Context())
	items, total, err := h.svc.ListPending(c.Request().Context(), therapistID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetReview(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	therapistID := auth.UserIDFromContext(c.Request().Context())
	review, err := h.svc.ForReview(c.Request().Context(), therapistID, id)
	if err != nil {
		return tokenErr(err)
	}
	return c.JSON(http.StatusOK, review)
}

type approveRequest struct {
	ClientID *uuid.UUID `json:"client_id,omitempty"`
}

func (h *Handler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req approveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	therapistID := auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.Approve(c.Request().Context(), therapistID, id, req.ClientID); err != nil {
		return tokenErr(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "Intake approved"})
}
