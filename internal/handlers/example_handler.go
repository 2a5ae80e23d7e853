package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-showcase/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-showcase/internal/httperr"
	"github.com/BruksfildServices01/barber-showcase/internal/httpresp"
	"github.com/BruksfildServices01/barber-showcase/internal/models"
)

type ExampleHandler struct {
	repo catalog.Repository
}

func NewExampleHandler(repo catalog.Repository) *ExampleHandler {
	return &ExampleHandler{repo: repo}
}

// --------- Requests ---------

// ExampleRequest has no required fields; both references may be null.
type ExampleRequest struct {
	BarberID    *uint `json:"barber_id"`
	HairstyleID *uint `json:"hairstyle_id"`
}

func (r ExampleRequest) model() models.Example {
	return models.Example{
		BarberID:    r.BarberID,
		HairstyleID: r.HairstyleID,
	}
}

// --------- Handlers ---------

func (h *ExampleHandler) Create(c *gin.Context) {
	var req ExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	example := req.model()
	if err := h.repo.CreateExample(c.Request.Context(), &example); err != nil {
		exampleResource.fail(c, "create", err)
		return
	}

	httpresp.OK(c, example)
}

func (h *ExampleHandler) List(c *gin.Context) {
	examples, err := h.repo.ListExamples(c.Request.Context(), 0, catalog.ListLimit)
	if err != nil {
		exampleResource.fail(c, "list", err)
		return
	}

	httpresp.OK(c, examples)
}

func (h *ExampleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	example, err := h.repo.GetExample(c.Request.Context(), id)
	if err != nil {
		exampleResource.fail(c, "get", err)
		return
	}

	httpresp.OK(c, example)
}

func (h *ExampleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	example, err := h.repo.UpdateExample(c.Request.Context(), id, req.model())
	if err != nil {
		exampleResource.fail(c, "update", err)
		return
	}

	httpresp.OK(c, example)
}

func (h *ExampleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	example, err := h.repo.DeleteExample(c.Request.Context(), id)
	if err != nil {
		exampleResource.fail(c, "delete", err)
		return
	}

	httpresp.OK(c, example)
}
