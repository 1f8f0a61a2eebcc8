package container

import (
	"context"
	"fmt"
	"time"

	"realestate-backend/internal/config"
	"realestate-backend/internal/infrastructure/database"
	"realestate-backend/internal/infrastructure/storage"
	"realestate-backend/pkg/jwt"
	"realestate-backend/pkg/logger"

	admin "realestate-backend/internal/domains/admin"
	adminHandler "realestate-backend/internal/domains/admin/handler"
	adminRepo "realestate-backend/internal/domains/admin/repository"
	adminService "realestate-backend/internal/domains/admin/service"
	blog "realestate-backend/internal/domains/blog"
	blogHandler "realestate-backend/internal/domains/blog/handler"
	blogRepo "realestate-backend/internal/domains/blog/repository"
	blogService "realestate-backend/internal/domains/blog/service"
	lead "realestate-backend/internal/domains/lead"
	leadHandler "realestate-backend/internal/domains/lead/handler"
	leadRepo "realestate-backend/internal/domains/lead/repository"
	leadService "realestate-backend/internal/domains/lead/service"
	property "realestate-backend/internal/domains/property"
	propertyHandler "realestate-backend/internal/domains/property/handler"
	propertyRepo "realestate-backend/internal/domains/property/repository"
	propertyService "realestate-backend/internal/domains/property/service"
)

// Container holds every long-lived dependency of the application.
// Initialization order matters: config, infrastructure, repositories,
// services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.MongoDB
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	PropertyRepo property.RepositoryInterface
	BlogRepo     blog.RepositoryInterface
	LeadRepo     lead.RepositoryInterface
	AdminRepo    admin.RepositoryInterface

	PropertyService property.ServiceInterface
	BlogService     blog.ServiceInterface
	LeadService     lead.ServiceInterface
	AdminService    admin.ServiceInterface

	PropertyHandler *propertyHandler.Handler
	BlogHandler     *blogHandler.Handler
	LeadHandler     *leadHandler.Handler
	AdminHandler    *adminHandler.Handler
}

// propertyDirectory adapts the property repository for the callback flow,
// which only needs existence lookups.
type propertyDirectory struct {
	repo property.RepositoryInterface
}

func (d propertyDirectory) GetByID(ctx context.Context, id string) (*property.Property, error) {
	return d.repo.GetByID(ctx, id)
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewMongoDB(cfg.Mongo)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.ConnTimeout)*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("mongodb health check failed: %w", err)
	}
	c.DB = db
	logger.Info("mongodb connected", map[string]interface{}{"database": cfg.Mongo.Database})

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	c.PropertyRepo = propertyRepo.NewMongoRepository(db, cfg.Mongo.Properties)
	c.BlogRepo = blogRepo.NewMongoRepository(db, cfg.Mongo.Blogs)
	c.LeadRepo = leadRepo.NewMongoRepository(db, cfg.Mongo)
	c.AdminRepo = adminRepo.NewMongoRepository(db, cfg.Mongo.Admins)

	c.PropertyService = propertyService.NewService(c.PropertyRepo, minioStorage)
	c.BlogService = blogService.NewService(c.BlogRepo, minioStorage)
	c.LeadService = leadService.NewService(c.LeadRepo, propertyDirectory{repo: c.PropertyRepo})
	c.AdminService = adminService.NewService(c.AdminRepo, c.JWTManager)

	c.PropertyHandler = propertyHandler.NewHandler(c.PropertyService)
	c.BlogHandler = blogHandler.NewHandler(c.BlogService)
	c.LeadHandler = leadHandler.NewHandler(c.LeadService)
	c.AdminHandler = adminHandler.NewHandler(c.AdminService)

	return c, nil
}

// Cleanup releases infrastructure connections. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.DB.Close(ctx); err != nil {
			logger.Error("failed to close mongodb connection", err)
		}
	}
}
