package lead

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "realestate-backend/internal/domains/lead"
	service "realestate-backend/internal/domains/lead/service"
	"realestate-backend/internal/shared/pagination"
	"realestate-backend/internal/shared/response"
)

type Handler struct {
	service model.ServiceInterface
}

func NewHandler(service model.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ---- contacts ----

// CreateContact handles POST /api/contacts
func (h *Handler) CreateContact(c *gin.Context) {
	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.service.CreateContact(c.Request.Context(), &req)
	if model.HandleLeadError(c, err) {
		return
	}

	response.OK(c, http.StatusCreated,
		"Contact form submitted successfully! We'll get back to you soon.", gin.H{
			"data": contact,
		})
}

// ListContacts handles GET /api/contacts/admin/all-simple
func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.service.ListContacts(c.Request.Context())
	if model.HandleLeadError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "All contacts fetched successfully", gin.H{
		"count":    len(contacts),
		"contacts": contacts,
	})
}

// GetContact handles GET /api/contacts/:id
func (h *Handler) GetContact(c *gin.Context) {
	contact, err := h.service.GetContact(c.Request.Context(), c.Param("id"))
	if model.HandleLeadError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Contact fetched successfully", gin.H{
		"data": contact,
	})
}

// DeleteContact handles DELETE /api/contacts/:id
func (h *Handler) DeleteContact(c *gin.Context) {
	contact, err := h.service.DeleteContact(c.Request.Context(), c.Param("id"))
	if model.HandleLeadError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Contact deleted successfully", gin.H{
		"data": contact,
	})
}

// ---- callbacks ----

// CreateCallback handles POST /api/callbacks
func (h *Handler) CreateCallback(c *gin.Context) {
	var req model.CreateCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cb, err := h.service.CreateCallback(c.Request.Context(), &req)
	if model.HandleLeadError(c, err) {
		return
	}

	response.OK(c, http.StatusCreated,
		"Callback request submitted successfully! We'll contact you soon.", gin.H{
			"callbackRequest": model.NewCallbackReceipt(cb),
		})
}

// ListCallbacks handles GET /api/callbacks
func (h *Handler) ListCallbacks(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), service.CallbackListLimit)
	q := model.CallbackQuery{
		Status:     c.Query("status"),
		PropertyID: c.Query("propertyId"),
	}

	callbacks, meta, counts, err := h.service.ListCallbacks(c.Request.Context(), q, params)
	if model.HandleLeadError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"callbackRequests": callbacks,
		"pagination":       meta,
		"statusCounts":     counts,
	})
}

// GetCallback handles GET /api/callbacks/:id
func (h *Handler) GetCallback(c *gin.Context) {
	cb, err := h.service.GetCallback(c.Request.Context(), c.Param("id"))
	if model.HandleLeadError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"callbackRequest": cb,
	})
}

// UpdateCallback handles PUT /api/callbacks/:id
func (h *Handler) UpdateCallback(c *gin.Context) {
	var req model.UpdateCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cb, err := h.service.UpdateCallback(c.Request.Context(), c.Param("id"), &req)
	if model.HandleLeadError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Callback request updated successfully", gin.H{
		"callbackRequest": cb,
	})
}

// DeleteCallback handles DELETE /api/callbacks/:id
func (h *Handler) DeleteCallback(c *gin.Context) {
	err := h.service.DeleteCallback(c.Request.Context(), c.Param("id"))
	if model.HandleLeadError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Callback request deleted successfully", nil)
}

// CallbackStats handles GET /api/callbacks/stats
func (h *Handler) CallbackStats(c *gin.Context) {
	stats, err := h.service.CallbackStats(c.Request.Context())
	if model.HandleLeadError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"stats": stats,
	})
}

// ---- newsletter ----

// Subscribe handles POST /api/newsletter/subscribe
func (h *Handler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sub, alreadySubscribed, err := h.service.Subscribe(c.Request.Context(), &req, c.ClientIP())
	if model.HandleLeadError(c, err) {
		return
	}

	if alreadySubscribed {
		response.OK(c, http.StatusOK, "You are already subscribed to our newsletter!", gin.H{
			"alreadySubscribed": true,
		})
		return
	}

	response.OK(c, http.StatusCreated,
		"Thank you for subscribing! You'll receive updates soon.", gin.H{
			"subscription": sub,
		})
}

// Unsubscribe handles POST /api/newsletter/unsubscribe
func (h *Handler) Unsubscribe(c *gin.Context) {
	var req model.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	alreadyInactive, err := h.service.Unsubscribe(c.Request.Context(), req.Email)
	if model.HandleLeadError(c, err) {
		return
	}

	if alreadyInactive {
		response.OK(c, http.StatusOK, "You are already unsubscribed", nil)
		return
	}
	response.OK(c, http.StatusOK, "You have been successfully unsubscribed", nil)
}

// ListSubscribers handles GET /api/newsletter/subscribers
func (h *Handler) ListSubscribers(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), service.SubscriberListLimit)

	q := model.SubscriberQuery{
		SortBy:   c.DefaultQuery("sortBy", "createdAt"),
		SortDesc: c.DefaultQuery("order", "desc") == "desc",
	}
	if isActive := c.Query("isActive"); isActive != "" {
		active := isActive == "true"
		q.IsActive = &active
	}

	subscribers, meta, activeCount, err := h.service.ListSubscribers(c.Request.Context(), q, params)
	if model.HandleLeadError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"subscribers": subscribers,
		"pagination":  meta,
		"activeCount": activeCount,
	})
}

// DeleteSubscriber handles DELETE /api/newsletter/:id
func (h *Handler) DeleteSubscriber(c *gin.Context) {
	err := h.service.DeleteSubscriber(c.Request.Context(), c.Param("id"))
	if model.HandleLeadError(c, err) {
		return
	}

	response.OK(c, http.StatusOK, "Subscriber deleted successfully", nil)
}

// NewsletterStats handles GET /api/newsletter/stats
func (h *Handler) NewsletterStats(c *gin.Context) {
	stats, err := h.service.NewsletterStats(c.Request.Context())
	if model.HandleLeadError(c, err) {
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"stats": stats,
	})
}

// ---- campaign leads ----

// SubmitCampaignLead handles POST /api/:campaign-leads/submit. The route
// registrations bind the campaign name.
func (h *Handler) SubmitCampaignLead(campaign string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.SubmitCampaignLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}

		l, err := h.service.SubmitCampaignLead(c.Request.Context(), campaign, &req)
		if model.HandleLeadError(c, err) {
			return
		}

		response.OK(c, http.StatusCreated, "Lead submitted successfully", gin.H{
			"lead": l,
		})
	}
}

// ListCampaignLeads handles GET /api/:campaign-leads/all.
func (h *Handler) ListCampaignLeads(campaign string) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.Parse(c.Query("page"), c.Query("limit"), service.CampaignListLimit)

		leads, meta, err := h.service.ListCampaignLeads(c.Request.Context(), campaign, params)
		if model.HandleLeadError(c, err) {
			return
		}

		response.List(c, "leads", leads, meta)
	}
}
