package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "realestate-backend/internal/domains/admin"
	service "realestate-backend/internal/domains/admin/service"
	"realestate-backend/internal/shared/pagination"
	"realestate-backend/internal/shared/response"
)

type Handler struct {
	service model.ServiceInterface
}

func NewHandler(service model.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Login authenticates an admin and returns a session token.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrMissingCredentials.Error())
		return
	}

	token, view, err := h.service.Login(c.Request.Context(), &req)
	if model.HandleAdminError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"admin": view,
	})
}

// Verify re-validates a stored token for the panel.
func (h *Handler) Verify(c *gin.Context) {
	var req model.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrTokenRequired.Error())
		return
	}

	view, err := h.service.VerifyToken(c.Request.Context(), req.Token)
	if model.HandleAdminError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{"admin": view})
}

// Profile returns the authenticated admin's own account.
func (h *Handler) Profile(c *gin.Context) {
	view, err := h.service.Profile(c.Request.Context(), c.GetString("admin_id"))
	if model.HandleAdminError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{"admin": view})
}

// ListAdmins returns the admin directory with active/inactive counts.
func (h *Handler) ListAdmins(c *gin.Context) {
	q := model.AdminQuery{
		Role:     c.Query("role"),
		SortBy:   c.Query("sortBy"),
		SortDesc: c.Query("order") == "desc",
	}
	if raw := c.Query("isActive"); raw == "true" || raw == "false" {
		active := raw == "true"
		q.IsActive = &active
	}

	params := pagination.Parse(c.Query("page"), c.Query("limit"), service.DefaultListLimit)

	views, meta, activeCount, inactiveCount, err := h.service.ListAdmins(c.Request.Context(), q, params)
	if model.HandleAdminError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"admins":        views,
		"pagination":    meta,
		"activeCount":   activeCount,
		"inactiveCount": inactiveCount,
	})
}

// CreateAdmin creates an account; super-admin only.
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrFieldsRequired.Error())
		return
	}

	view, err := h.service.CreateAdmin(c.Request.Context(), &req)
	if model.HandleAdminError(c, err) {
		return
	}

	response.OK(c, http.StatusCreated, "Admin created successfully", gin.H{"admin": view})
}

// CreateInitialAdmin bootstraps the first super-admin account.
func (h *Handler) CreateInitialAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrFieldsRequired.Error())
		return
	}

	view, err := h.service.CreateInitialAdmin(c.Request.Context(), &req)
	if model.HandleAdminError(c, err) {
		return
	}

	response.OK(c, http.StatusCreated, "Admin created successfully", gin.H{"admin": view})
}

// UpdateAdmin applies a partial update to an account.
func (h *Handler) UpdateAdmin(c *gin.Context) {
	var req model.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.service.UpdateAdmin(c.Request.Context(), c.Param("id"), &req)
	if model.HandleAdminError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Admin updated successfully", gin.H{"admin": view})
}

// DeleteAdmin removes an account. Self-deletion is rejected.
func (h *Handler) DeleteAdmin(c *gin.Context) {
	err := h.service.DeleteAdmin(c.Request.Context(), c.Param("id"), c.GetString("admin_id"))
	if model.HandleAdminError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Admin deleted successfully", nil)
}

// ToggleStatus flips an account between active and deactivated.
func (h *Handler) ToggleStatus(c *gin.Context) {
	view, err := h.service.ToggleStatus(c.Request.Context(), c.Param("id"), c.GetString("admin_id"))
	if model.HandleAdminError(c, err) {
		return
	}

	message := "Admin deactivated successfully"
	if view.IsActive {
		message = "Admin activated successfully"
	}

	response.OK(c, http.StatusOK, message, gin.H{"admin": view})
}
