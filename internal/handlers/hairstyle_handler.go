package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-showcase/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-showcase/internal/httperr"
	"github.com/BruksfildServices01/barber-showcase/internal/httpresp"
	"github.com/BruksfildServices01/barber-showcase/internal/models"
)

type HairstyleHandler struct {
	repo catalog.Repository
}

func NewHairstyleHandler(repo catalog.Repository) *HairstyleHandler {
	return &HairstyleHandler{repo: repo}
}

// --------- Requests ---------

type HairstyleRequest struct {
	Name     string `json:"name" binding:"required"`
	Likes    int    `json:"likes"`
	BarberID *uint  `json:"barber_id"`
}

func (r HairstyleRequest) model() models.Hairstyle {
	return models.Hairstyle{
		Name:     r.Name,
		Likes:    r.Likes,
		BarberID: r.BarberID,
	}
}

// --------- Handlers ---------

func (h *HairstyleHandler) Create(c *gin.Context) {
	var req HairstyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	hairstyle := req.model()
	if err := h.repo.CreateHairstyle(c.Request.Context(), &hairstyle); err != nil {
		hairstyleResource.fail(c, "create", err)
		return
	}

	httpresp.OK(c, hairstyle)
}

func (h *HairstyleHandler) List(c *gin.Context) {
	hairstyles, err := h.repo.ListHairstyles(c.Request.Context(), 0, catalog.ListLimit)
	if err != nil {
		hairstyleResource.fail(c, "list", err)
		return
	}

	httpresp.OK(c, hairstyles)
}

func (h *HairstyleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	hairstyle, err := h.repo.GetHairstyle(c.Request.Context(), id)
	if err != nil {
		hairstyleResource.fail(c, "get", err)
		return
	}

	httpresp.OK(c, hairstyle)
}

func (h *HairstyleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req HairstyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	hairstyle, err := h.repo.UpdateHairstyle(c.Request.Context(), id, req.model())
	if err != nil {
		hairstyleResource.fail(c, "update", err)
		return
	}

	httpresp.OK(c, hairstyle)
}

func (h *HairstyleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	hairstyle, err := h.repo.DeleteHairstyle(c.Request.Context(), id)
	if err != nil {
		hairstyleResource.fail(c, "delete", err)
		return
	}

	httpresp.OK(c, hairstyle)
}

func (h *HairstyleHandler) ListExamples(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.GetHairstyle(ctx, id); err != nil {
		hairstyleResource.fail(c, "get", err)
		return
	}

	examples, err := h.repo.ListExamplesByHairstyle(ctx, id, 0, catalog.ListLimit)
	if err != nil {
		exampleResource.fail(c, "list", err)
		return
	}

	httpresp.OK(c, examples)
}
