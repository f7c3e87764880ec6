package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
	appErrors "github.com/mpcl/league-api/pkg/errors"
	"github.com/mpcl/league-api/pkg/response"
)

type playerService interface {
	Register(ctx context.Context, req dto.PlayerRegistrationRequest) (int64, error)
	Applications(ctx context.Context) ([]models.PlayerApplication, error)
	Application(ctx context.Context, id int64) (*models.PlayerApplication, error)
	DeleteApplication(ctx context.Context, id int64) error
	RequestTransfer(ctx context.Context, req dto.PlayerTransferRequest) (int64, error)
	Transfers(ctx context.Context) ([]models.PlayerTransfer, error)
	Transfer(ctx context.Context, id int64) (*models.PlayerTransfer, error)
	DeleteTransfer(ctx context.Context, id int64) error
}

type approvalService interface {
	DecideApplication(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.PlayerApplication, error)
	DecideTransfer(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.PlayerTransfer, error)
	ReassignPlayer(ctx context.Context, req dto.UpdatePlayerClubRequest) error
}

// PlayerHandler exposes player registration, transfer and approval endpoints.
type PlayerHandler struct {
	players   playerService
	approvals approvalService
}

// NewPlayerHandler constructs the handler.
func NewPlayerHandler(players playerService, approvals approvalService) *PlayerHandler {
	return &PlayerHandler{players: players, approvals: approvals}
}

// Register godoc
// @Summary Submit a player application
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body dto.PlayerRegistrationRequest true "Application payload"
// @Success 201 {object} response.Envelope
// @Router /players/player-registration [post]
func (h *PlayerHandler) Register(c *gin.Context) {
	var req dto.PlayerRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid registration payload"))
		return
	}

	id, err := h.players.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": id})
}

// Applications godoc
// @Summary List player applications
// @Tags Players
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /players/applications [get]
func (h *PlayerHandler) Applications(c *gin.Context) {
	applications, err := h.players.Applications(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, applications, nil)
}

// Application godoc
// @Summary Get one player application
// @Tags Players
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope
// @Router /players/applications/{id} [get]
func (h *PlayerHandler) Application(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid application id"))
		return
	}
	application, err := h.players.Application(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, application, nil)
}

// DeleteApplication godoc
// @Summary Withdraw a player application
// @Tags Players
// @Param id path int true "Application ID"
// @Success 204 "No Content"
// @Router /players/applications/{id} [delete]
func (h *PlayerHandler) DeleteApplication(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid application id"))
		return
	}
	if err := h.players.DeleteApplication(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Approve godoc
// @Summary Record a party's approval of a player application
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body dto.ApplicationDecisionRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Router /players/approve [post]
func (h *PlayerHandler) Approve(c *gin.Context) {
	h.decideApplication(c, models.DecisionApprove)
}

// Reject godoc
// @Summary Record a party's rejection of a player application
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body dto.ApplicationDecisionRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Router /players/reject [post]
func (h *PlayerHandler) Reject(c *gin.Context) {
	h.decideApplication(c, models.DecisionReject)
}

// RequestTransfer godoc
// @Summary Submit a player transfer
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body dto.PlayerTransferRequest true "Transfer payload"
// @Success 201 {object} response.Envelope
// @Router /players/player-transfer [post]
func (h *PlayerHandler) RequestTransfer(c *gin.Context) {
	var req dto.PlayerTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid transfer payload"))
		return
	}

	id, err := h.players.RequestTransfer(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": id})
}

// Transfers godoc
// @Summary List player transfers
// @Tags Players
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /players/player-transfers [get]
func (h *PlayerHandler) Transfers(c *gin.Context) {
	transfers, err := h.players.Transfers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, transfers, nil)
}

// Transfer godoc
// @Summary Get one player transfer
// @Tags Players
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} response.Envelope
// @Router /players/player-transfers/{id} [get]
func (h *PlayerHandler) Transfer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid transfer id"))
		return
	}
	transfer, err := h.players.Transfer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, transfer, nil)
}

// DeleteTransfer godoc
// @Summary Withdraw a player transfer
// @Tags Players
// @Param id path int true "Transfer ID"
// @Success 204 "No Content"
// @Router /players/player-transfers/{id} [delete]
func (h *PlayerHandler) DeleteTransfer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid transfer id"))
		return
	}
	if err := h.players.DeleteTransfer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ApproveTransfer godoc
// @Summary Record a club's approval of a transfer
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body dto.ApplicationDecisionRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Router /players/approve-transfer [post]
func (h *PlayerHandler) ApproveTransfer(c *gin.Context) {
	h.decideTransfer(c, models.DecisionApprove)
}

// RejectTransfer godoc
// @Summary Record a club's rejection of a transfer
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body dto.ApplicationDecisionRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Router /players/reject-transfer [post]
func (h *PlayerHandler) RejectTransfer(c *gin.Context) {
	h.decideTransfer(c, models.DecisionReject)
}

// UpdatePlayerClub godoc
// @Summary Reassign a player to a new club
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body dto.UpdatePlayerClubRequest true "Reassignment"
// @Success 200 {object} response.Envelope
// @Router /players/update-player-club [post]
func (h *PlayerHandler) UpdatePlayerClub(c *gin.Context) {
	var req dto.UpdatePlayerClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid reassignment payload"))
		return
	}

	if err := h.approvals.ReassignPlayer(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"player_id": req.PlayerID}, nil)
}

func (h *PlayerHandler) decideApplication(c *gin.Context, decision models.Decision) {
	req, party, ok := bindDecision(c, decision)
	if !ok {
		return
	}

	application, err := h.approvals.DecideApplication(c.Request.Context(), req.ID, party, decision)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, application, nil)
}

func (h *PlayerHandler) decideTransfer(c *gin.Context, decision models.Decision) {
	req, party, ok := bindDecision(c, decision)
	if !ok {
		return
	}

	transfer, err := h.approvals.DecideTransfer(c.Request.Context(), req.ID, party, decision)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, transfer, nil)
}

func bindDecision(c *gin.Context, decision models.Decision) (dto.ApplicationDecisionRequest, models.ApprovalParty, bool) {
	var req dto.ApplicationDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid decision payload"))
		return req, "", false
	}

	raw := req.ApprovedBy
	if decision == models.DecisionReject {
		raw = req.RejectedBy
	}
	party := models.ApprovalParty(strings.ToLower(strings.TrimSpace(raw)))
	switch party {
	case models.PartyClub, models.PartyLeague, models.PartyFromClub, models.PartyToClub:
		return req, party, true
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown deciding party"))
		return req, "", false
	}
}
