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

type personService interface {
	Upsert(ctx context.Context, req dto.UpsertPersonRequest) (int64, error)
	List(ctx context.Context) ([]models.PersonSummary, error)
	Get(ctx context.Context, id int64) (*models.Person, error)
	Details(ctx context.Context, req dto.PersonDetailsRequest) ([]models.PersonSummary, error)
	Umpires(ctx context.Context) ([]models.PersonSummary, error)
	Committee(ctx context.Context) ([]models.PersonSummary, error)
	Delete(ctx context.Context, id int64) error
}

// PersonHandler exposes REST endpoints for the people registry.
type PersonHandler struct {
	service personService
}

// NewPersonHandler constructs the handler.
func NewPersonHandler(service personService) *PersonHandler {
	return &PersonHandler{service: service}
}

// List godoc
// @Summary List all people
// @Tags People
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /people [get]
func (h *PersonHandler) List(c *gin.Context) {
	people, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, people, nil)
}

// Get godoc
// @Summary Get one person
// @Tags People
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} response.Envelope
// @Router /people/{id} [get]
func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid person id"))
		return
	}
	person, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, person, nil)
}

// Add godoc
// @Summary Add or update a person
// @Tags People
// @Accept json
// @Produce json
// @Param payload body dto.UpsertPersonRequest true "Person fields"
// @Success 200 {object} response.Envelope
// @Router /people/add [post]
func (h *PersonHandler) Add(c *gin.Context) {
	var req dto.UpsertPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid person payload"))
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

// Details godoc
// @Summary Look up summaries for a batch of person ids
// @Tags People
// @Accept json
// @Produce json
// @Param payload body dto.PersonDetailsRequest true "Person ids"
// @Success 200 {object} response.Envelope
// @Router /people/details [post]
func (h *PersonHandler) Details(c *gin.Context) {
	var req dto.PersonDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid details payload"))
		return
	}

	people, err := h.service.Details(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, people, nil)
}

// Umpires godoc
// @Summary List umpires
// @Tags People
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /people/umpires [get]
func (h *PersonHandler) Umpires(c *gin.Context) {
	umpires, err := h.service.Umpires(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, umpires, nil)
}

// Committee godoc
// @Summary List committee members
// @Tags People
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /people/commitee-members [get]
func (h *PersonHandler) Committee(c *gin.Context) {
	committee, err := h.service.Committee(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, committee, nil)
}

// Delete godoc
// @Summary Delete a person
// @Tags People
// @Param id path int true "Person ID"
// @Success 204 "No Content"
// @Router /people/{id} [delete]
func (h *PersonHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid person id"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
