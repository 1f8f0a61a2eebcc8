package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"realestate-backend/internal/shared/middleware"
	"realestate-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupPropertyRoutes(api, c)
		setupBlogRoutes(api, c)
		setupContactRoutes(api, c)
		setupCallbackRoutes(api, c)
		setupNewsletterRoutes(api, c)
		setupCampaignLeadRoutes(api, c)
		setupAuthRoutes(api, c)
	}

	return router
}

func setupPropertyRoutes(api *gin.RouterGroup, c *container.Container) {
	properties := api.Group("/properties")
	{
		// Public browsing
		properties.GET("", c.PropertyHandler.List)
		properties.POST("/search", c.PropertyHandler.Search)
		properties.GET("/homepage", c.PropertyHandler.HomeProperties)
		properties.GET("/:id", c.PropertyHandler.GetByID)
	}

	adminProperties := api.Group("/properties")
	adminProperties.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		adminProperties.POST("/create", c.PropertyHandler.Create)
		adminProperties.GET("/admin/all", c.PropertyHandler.AdminList)
		adminProperties.PUT("/:id", c.PropertyHandler.Update)
		adminProperties.DELETE("/:id", c.PropertyHandler.Delete)
		adminProperties.DELETE("/:id/image", c.PropertyHandler.RemoveImage)
		adminProperties.PUT("/:id/add-to-homepage", c.PropertyHandler.AddToHomePage)
		adminProperties.PUT("/:id/remove-from-homepage", c.PropertyHandler.RemoveFromHomePage)
	}
}

func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	blogs := api.Group("/blogs")
	{
		blogs.GET("", c.BlogHandler.ListAll)
		blogs.GET("/pagination", c.BlogHandler.Paginate)
		blogs.GET("/homepage", c.BlogHandler.HomeBlogs)
		blogs.GET("/meta/categories", c.BlogHandler.Categories)
		blogs.GET("/related/category", c.BlogHandler.Related)
		blogs.GET("/search/query", c.BlogHandler.Autocomplete)
		blogs.GET("/:id", c.BlogHandler.GetByID)
	}

	adminBlogs := api.Group("/blogs")
	adminBlogs.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		adminBlogs.POST("/create", c.BlogHandler.Create)
		adminBlogs.PUT("/:id", c.BlogHandler.Update)
		adminBlogs.DELETE("/:id", c.BlogHandler.Delete)
		adminBlogs.PATCH("/:id/add-to-home", c.BlogHandler.AddToHomePage)
		adminBlogs.PATCH("/:id/remove-from-home", c.BlogHandler.RemoveFromHomePage)
	}
}

func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	contacts := api.Group("/contacts")
	{
		contacts.POST("/create", c.LeadHandler.CreateContact)
	}

	adminContacts := api.Group("/contacts")
	adminContacts.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		adminContacts.GET("/admin/all-simple", c.LeadHandler.ListContacts)
		adminContacts.GET("/getbyid/:id", c.LeadHandler.GetContact)
		adminContacts.DELETE("/delete/:id", c.LeadHandler.DeleteContact)
	}
}

func setupCallbackRoutes(api *gin.RouterGroup, c *container.Container) {
	callbacks := api.Group("/callbacks")
	{
		callbacks.POST("", c.LeadHandler.CreateCallback)
	}

	adminCallbacks := api.Group("/callbacks")
	adminCallbacks.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		adminCallbacks.GET("", c.LeadHandler.ListCallbacks)
		adminCallbacks.GET("/stats", c.LeadHandler.CallbackStats)
		adminCallbacks.GET("/:id", c.LeadHandler.GetCallback)
		adminCallbacks.PUT("/:id", c.LeadHandler.UpdateCallback)
		adminCallbacks.DELETE("/:id", c.LeadHandler.DeleteCallback)
	}
}

func setupNewsletterRoutes(api *gin.RouterGroup, c *container.Container) {
	newsletter := api.Group("/newsletter")
	{
		newsletter.POST("/subscribe", c.LeadHandler.Subscribe)
		newsletter.POST("/unsubscribe", c.LeadHandler.Unsubscribe)
	}

	adminNewsletter := api.Group("/newsletter")
	adminNewsletter.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		adminNewsletter.GET("/subscribers", c.LeadHandler.ListSubscribers)
		adminNewsletter.GET("/stats", c.LeadHandler.NewsletterStats)
		adminNewsletter.DELETE("/:id", c.LeadHandler.DeleteSubscriber)
	}
}

func setupCampaignLeadRoutes(api *gin.RouterGroup, c *container.Container) {
	leads := api.Group("/leads")
	{
		leads.POST("/blunders/submit", c.LeadHandler.SubmitCampaignLead("blunders"))
		leads.POST("/strategies/submit", c.LeadHandler.SubmitCampaignLead("strategies"))
	}

	adminLeads := api.Group("/leads")
	adminLeads.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		adminLeads.GET("/blunders/all", c.LeadHandler.ListCampaignLeads("blunders"))
		adminLeads.GET("/strategies/all", c.LeadHandler.ListCampaignLeads("strategies"))
	}
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.AdminHandler.Login)
		auth.POST("/verify", c.AdminHandler.Verify)
		// Bootstrap route, disable once the first super-admin exists
		auth.POST("/create-admin", c.AdminHandler.CreateInitialAdmin)
	}

	profile := api.Group("/auth")
	profile.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		profile.GET("/profile", c.AdminHandler.Profile)
	}

	admins := api.Group("/auth/admins")
	admins.Use(middleware.AuthMiddleware(c.JWTManager), middleware.SuperAdminOnly())
	{
		admins.GET("", c.AdminHandler.ListAdmins)
		admins.POST("", c.AdminHandler.CreateAdmin)
		admins.PUT("/:id", c.AdminHandler.UpdateAdmin)
		admins.DELETE("/:id", c.AdminHandler.DeleteAdmin)
		admins.PATCH("/:id/toggle-status", c.AdminHandler.ToggleStatus)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":      "ok",
			"timestamp":   time.Now().Format(time.RFC3339),
			"version":     appCtx.Config.App.Version,
			"environment": appCtx.Config.App.Environment,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		statusCode := http.StatusOK
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			health["status"] = "degraded"
			health["database"] = err.Error()
			statusCode = http.StatusServiceUnavailable
		} else {
			health["database"] = "ok"
		}

		c.JSON(statusCode, health)
	}
}
