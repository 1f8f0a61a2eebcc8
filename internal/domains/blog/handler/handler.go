package blog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	model "realestate-backend/internal/domains/blog"
	service "realestate-backend/internal/domains/blog/service"
	"realestate-backend/internal/shared/pagination"
	"realestate-backend/internal/shared/response"
)

type Handler struct {
	service model.ServiceInterface
}

func NewHandler(service model.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/blogs/create
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if model.HandleBlogError(c, err) {
		return
	}

	response.OK(c, http.StatusCreated, "Blog created successfully", gin.H{
		"blog": b,
	})
}

// ListAll handles GET /api/blogs
func (h *Handler) ListAll(c *gin.Context) {
	blogs, err := h.service.ListAll(c.Request.Context())
	if model.HandleBlogError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"blogs": blogs,
	})
}

// Paginate handles GET /api/blogs/pagination
func (h *Handler) Paginate(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), service.DefaultListLimit)
	q := model.ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", "newest"),
	}

	items, meta, err := h.service.Paginate(c.Request.Context(), q, params)
	if model.HandleBlogError(c, err) {
		return
	}

	response.List(c, "blogs", items, meta)
}

// GetByID handles GET /api/blogs/:id
func (h *Handler) GetByID(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if model.HandleBlogError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"blog": b,
	})
}

// Update handles PUT /api/blogs/:id
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if model.HandleBlogError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Blog updated successfully", gin.H{
		"blog": b,
	})
}

// Delete handles DELETE /api/blogs/:id
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if model.HandleBlogError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Blog deleted successfully", nil)
}

// AddToHomePage handles PATCH /api/blogs/:id/add-to-home
func (h *Handler) AddToHomePage(c *gin.Context) {
	b, count, err := h.service.AddToHomePage(c.Request.Context(), c.Param("id"))
	if model.HandleBlogError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Blog added to homepage successfully", gin.H{
		"blog":          b,
		"homepageCount": count,
	})
}

// RemoveFromHomePage handles PATCH /api/blogs/:id/remove-from-home
func (h *Handler) RemoveFromHomePage(c *gin.Context) {
	b, count, err := h.service.RemoveFromHomePage(c.Request.Context(), c.Param("id"))
	if model.HandleBlogError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Blog removed from homepage successfully", gin.H{
		"blog":          b,
		"homepageCount": count,
	})
}

// HomeBlogs handles GET /api/blogs/homepage
func (h *Handler) HomeBlogs(c *gin.Context) {
	items, err := h.service.HomeBlogs(c.Request.Context())
	if model.HandleBlogError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"count": len(items),
		"blogs": items,
	})
}

// Categories handles GET /api/blogs/meta/categories
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if model.HandleBlogError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"categories": categories,
	})
}

// Related handles GET /api/blogs/related/category
func (h *Handler) Related(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.service.Related(c.Request.Context(),
		c.Query("category"), c.Query("exclude"), limit)
	if model.HandleBlogError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"blogs": items,
	})
}

// Autocomplete handles GET /api/blogs/search/query
func (h *Handler) Autocomplete(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	results, err := h.service.Autocomplete(c.Request.Context(), c.Query("q"), limit)
	if model.HandleBlogError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"results": results,
	})
}
