package property

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "realestate-backend/internal/domains/property"
	service "realestate-backend/internal/domains/property/service"
	"realestate-backend/internal/shared/pagination"
	"realestate-backend/internal/shared/response"
)

type Handler struct {
	service model.ServiceInterface
}

func NewHandler(service model.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/properties/create
func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if model.HandlePropertyError(c, err) {
		return
	}

	response.OK(c, http.StatusCreated, "Property created successfully", gin.H{
		"property": p,
	})
}

// List handles GET /api/properties with optional query filters.
func (h *Handler) List(c *gin.Context) {
	filters, err := model.FromQuery(c.Request.URL.Query())
	if model.HandlePropertyError(c, err) {
		return
	}

	params := pagination.Parse(c.Query("page"), c.Query("limit"), service.DefaultListLimit)

	items, meta, err := h.service.List(c.Request.Context(), filters, params)
	if model.HandlePropertyError(c, err) {
		return
	}

	response.List(c, "properties", items, meta)
}

// Search handles POST /api/properties/search
func (h *Handler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items, meta, err := h.service.Search(c.Request.Context(), &req)
	if model.HandlePropertyError(c, err) {
		return
	}

	response.List(c, "properties", items, meta)
}

// AdminList handles GET /api/properties/admin/all
func (h *Handler) AdminList(c *gin.Context) {
	properties, err := h.service.AdminList(c.Request.Context())
	if model.HandlePropertyError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"count":      len(properties),
		"properties": properties,
	})
}

// HomeProperties handles GET /api/properties/homepage
func (h *Handler) HomeProperties(c *gin.Context) {
	items, err := h.service.HomeProperties(c.Request.Context())
	if model.HandlePropertyError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"properties": items,
	})
}

// GetByID handles GET /api/properties/:id
func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if model.HandlePropertyError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"property": p,
	})
}

// Update handles PUT /api/properties/:id
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if model.HandlePropertyError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Property updated successfully", gin.H{
		"property": p,
	})
}

// Delete handles DELETE /api/properties/:id
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if model.HandlePropertyError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Property deleted successfully", nil)
}

// RemoveImage handles DELETE /api/properties/:id/image
func (h *Handler) RemoveImage(c *gin.Context) {
	var req struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.RemoveImage(c.Request.Context(), c.Param("id"), req.ImageURL)
	if model.HandlePropertyError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Image removed successfully", gin.H{
		"property": p,
	})
}

// AddToHomePage handles PUT /api/properties/:id/add-homepage
func (h *Handler) AddToHomePage(c *gin.Context) {
	err := h.service.AddToHomePage(c.Request.Context(), c.Param("id"))
	if model.HandlePropertyError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Property added to homepage", nil)
}

// RemoveFromHomePage handles PUT /api/properties/:id/remove-homepage
func (h *Handler) RemoveFromHomePage(c *gin.Context) {
	err := h.service.RemoveFromHomePage(c.Request.Context(), c.Param("id"))
	if model.HandlePropertyError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Property removed from homepage", nil)
}
