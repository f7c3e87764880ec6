package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
	appErrors "github.com/mpcl/league-api/pkg/errors"
	"github.com/mpcl/league-api/pkg/response"
)

type clubService interface {
	List(ctx context.Context) ([]models.Club, error)
	Get(ctx context.Context, id int64) (*models.Club, error)
	Upsert(ctx context.Context, req dto.UpsertClubRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
	Register(ctx context.Context, req dto.ClubRegistrationRequest) (int64, error)
	PendingApplications(ctx context.Context) ([]models.ClubApplication, error)
	Accept(ctx context.Context, id int64) (int64, error)
	Reject(ctx context.Context, id int64) error
}

// ClubHandler exposes club registry and review endpoints.
type ClubHandler struct {
	service clubService
}

// NewClubHandler constructs the handler.
func NewClubHandler(service clubService) *ClubHandler {
	return &ClubHandler{service: service}
}

// List godoc
// @Summary List all clubs
// @Tags Clubs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /clubs [get]
func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, clubs, nil)
}

// Get godoc
// @Summary Get one club
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} response.Envelope
// @Router /clubs/{id} [get]
func (h *ClubHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid club id"))
		return
	}
	club, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, club, nil)
}

// Upsert godoc
// @Summary Add or update a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param payload body dto.UpsertClubRequest true "Club fields"
// @Success 200 {object} response.Envelope
// @Router /clubs [post]
func (h *ClubHandler) Upsert(c *gin.Context) {
	var req dto.UpsertClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid club payload"))
		return
	}

	id, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}
	response.JSON(c, status, gin.H{"id": id}, nil)
}

// Delete godoc
// @Summary Delete a club
// @Tags Clubs
// @Param id path int true "Club ID"
// @Success 204 "No Content"
// @Router /clubs/{id} [delete]
func (h *ClubHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid club id"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Register godoc
// @Summary File a club application
// @Tags Clubs
// @Accept json
// @Produce json
// @Param payload body dto.ClubRegistrationRequest true "Application payload"
// @Success 201 {object} response.Envelope
// @Router /clubs/club-registration [post]
func (h *ClubHandler) Register(c *gin.Context) {
	var req dto.ClubRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid club registration payload"))
		return
	}

	id, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": id})
}

// Applications godoc
// @Summary List pending club applications
// @Tags Clubs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /clubs/applications [get]
func (h *ClubHandler) Applications(c *gin.Context) {
	applications, err := h.service.PendingApplications(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, applications, nil)
}

// Approve godoc
// @Summary Accept a club application into the registry
// @Tags Clubs
// @Accept json
// @Produce json
// @Param payload body dto.ReviewClubApplicationRequest true "Application id"
// @Success 200 {object} response.Envelope
// @Router /clubs/approve [post]
func (h *ClubHandler) Approve(c *gin.Context) {
	var req dto.ReviewClubApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid review payload"))
		return
	}

	clubID, err := h.service.Accept(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"club_id": clubID}, nil)
}

// Reject godoc
// @Summary Reject a club application
// @Tags Clubs
// @Accept json
// @Produce json
// @Param payload body dto.ReviewClubApplicationRequest true "Application id"
// @Success 200 {object} response.Envelope
// @Router /clubs/reject [post]
func (h *ClubHandler) Reject(c *gin.Context) {
	var req dto.ReviewClubApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid review payload"))
		return
	}

	if err := h.service.Reject(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": req.ID}, nil)
}
