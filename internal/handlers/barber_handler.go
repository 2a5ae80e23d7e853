package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-showcase/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-showcase/internal/httperr"
	"github.com/BruksfildServices01/barber-showcase/internal/httpresp"
	"github.com/BruksfildServices01/barber-showcase/internal/models"
)

type BarberHandler struct {
	repo catalog.Repository
}

func NewBarberHandler(repo catalog.Repository) *BarberHandler {
	return &BarberHandler{repo: repo}
}

// --------- Requests ---------

// BarberRequest is used for both create and update; any id in the body is
// ignored.
type BarberRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Age       *int   `json:"age" binding:"required"`
	Address   string `json:"address" binding:"required"`
}

func (r BarberRequest) model() models.Barber {
	return models.Barber{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Age:       *r.Age,
		Address:   r.Address,
	}
}

// --------- Handlers ---------

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	barber := req.model()
	if err := h.repo.CreateBarber(c.Request.Context(), &barber); err != nil {
		barberResource.fail(c, "create", err)
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context(), 0, catalog.ListLimit)
	if err != nil {
		barberResource.fail(c, "list", err)
		return
	}

	httpresp.OK(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	barber, err := h.repo.GetBarber(c.Request.Context(), id)
	if err != nil {
		barberResource.fail(c, "get", err)
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	barber, err := h.repo.UpdateBarber(c.Request.Context(), id, req.model())
	if err != nil {
		barberResource.fail(c, "update", err)
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	barber, err := h.repo.DeleteBarber(c.Request.Context(), id)
	if err != nil {
		barberResource.fail(c, "delete", err)
		return
	}

	httpresp.OK(c, barber)
}

// ListHairstyles returns the hairstyles whose barber_id is the path barber.
func (h *BarberHandler) ListHairstyles(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.GetBarber(ctx, id); err != nil {
		barberResource.fail(c, "get", err)
		return
	}

	hairstyles, err := h.repo.ListHairstylesByBarber(ctx, id, 0, catalog.ListLimit)
	if err != nil {
		hairstyleResource.fail(c, "list", err)
		return
	}

	httpresp.OK(c, hairstyles)
}

func (h *BarberHandler) ListExamples(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.GetBarber(ctx, id); err != nil {
		barberResource.fail(c, "get", err)
		return
	}

	examples, err := h.repo.ListExamplesByBarber(ctx, id, 0, catalog.ListLimit)
	if err != nil {
		exampleResource.fail(c, "list", err)
		return
	}

	httpresp.OK(c, examples)
}
