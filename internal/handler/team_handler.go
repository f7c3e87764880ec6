package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
	appErrors "github.com/mpcl/league-api/pkg/errors"
	"github.com/mpcl/league-api/pkg/response"
)

type teamService interface {
	List(ctx context.Context) ([]models.Team, error)
	Get(ctx context.Context, id int64) (*models.TeamWithPlayers, error)
	ListByClub(ctx context.Context, clubID int64) ([]models.Team, error)
	Upsert(ctx context.Context, req dto.UpsertTeamRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// TeamHandler exposes team and roster endpoints.
type TeamHandler struct {
	service teamService
}

// NewTeamHandler constructs the handler.
func NewTeamHandler(service teamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// List godoc
// @Summary List all teams
// @Tags Teams
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teams, nil)
}

// Get godoc
// @Summary Get a team with its roster resolved
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} response.Envelope
// @Router /teams/{id} [get]
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid team id"))
		return
	}
	team, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, team, nil)
}

// ListByClub godoc
// @Summary List the teams of one club
// @Tags Teams
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} response.Envelope
// @Router /teams/club/{id} [get]
func (h *TeamHandler) ListByClub(c *gin.Context) {
	clubID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || clubID <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid club id"))
		return
	}
	teams, err := h.service.ListByClub(c.Request.Context(), clubID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teams, nil)
}

// Upsert godoc
// @Summary Add or update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param payload body dto.UpsertTeamRequest true "Team fields"
// @Success 200 {object} response.Envelope
// @Router /teams [post]
func (h *TeamHandler) Upsert(c *gin.Context) {
	var req dto.UpsertTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid team payload"))
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
// @Summary Delete a team
// @Tags Teams
// @Param id path int true "Team ID"
// @Success 204 "No Content"
// @Router /teams/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid team id"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
