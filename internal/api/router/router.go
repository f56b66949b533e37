package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"climate-registry/internal/api/handler"
	"climate-registry/internal/api/middleware"
	"climate-registry/internal/pkg/config"
	"climate-registry/internal/repository"
	"climate-registry/internal/service"
)

// Setup builds the HTTP engine and wires all layers onto the injected DB handle
func Setup(db *gorm.DB, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	projectRepo := repository.NewProjectRepository(db)
	pendingRepo := repository.NewPendingProjectRepository(db)
	agencyRepo := repository.NewAgencyRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	fundingSourceRepo := repository.NewFundingSourceRepository(db)
	focalAreaRepo := repository.NewFocalAreaRepository(db)
	userRepo := repository.NewUserRepository(db)

	projectService := service.NewProjectService(projectRepo, logger)
	submissionService := service.NewSubmissionService(pendingRepo, logger)
	approvalService := service.NewApprovalService(db, projectRepo, pendingRepo, logger)
	lookupService := service.NewLookupService(agencyRepo, locationRepo, fundingSourceRepo, focalAreaRepo)
	authService := service.NewAuthService(userRepo, logger)

	projectHandler := handler.NewProjectHandler(projectService)
	submissionHandler := handler.NewSubmissionHandler(submissionService, approvalService)
	lookupHandler := handler.NewLookupHandler(lookupService)
	authHandler := handler.NewAuthHandler(authService)

	v1 := r.Group("/api/v1")
	{
		// authentication (no token required)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		// public read access to the registry and lookups
		v1.GET("/projects", projectHandler.List)
		v1.GET("/projects/:id", projectHandler.GetByID)
		v1.GET("/agencies", lookupHandler.ListAgencies)
		v1.GET("/locations", lookupHandler.ListLocations)
		v1.GET("/funding-sources", lookupHandler.ListFundingSources)
		v1.GET("/focal-areas", lookupHandler.ListFocalAreas)

		// public project submission (no account needed)
		v1.POST("/submissions", submissionHandler.Submit)

		// administrator routes
		admin := v1.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminRequired())
		{
			admin.GET("/auth/me", authHandler.GetMe)

			admin.POST("/projects", projectHandler.Create)
			admin.PUT("/projects/:id", projectHandler.Update)
			admin.DELETE("/projects/:id", projectHandler.Delete)

			admin.GET("/submissions", submissionHandler.List)
			admin.GET("/submissions/:id", submissionHandler.GetByID)
			admin.POST("/submissions/:id/approve", submissionHandler.Approve)
			admin.POST("/submissions/:id/reject", submissionHandler.Reject)

			admin.POST("/agencies", lookupHandler.CreateAgency)
			admin.PUT("/agencies/:id", lookupHandler.UpdateAgency)
			admin.DELETE("/agencies/:id", lookupHandler.DeleteAgency)
			admin.POST("/locations", lookupHandler.CreateLocation)
			admin.PUT("/locations/:id", lookupHandler.UpdateLocation)
			admin.DELETE("/locations/:id", lookupHandler.DeleteLocation)
			admin.POST("/funding-sources", lookupHandler.CreateFundingSource)
			admin.PUT("/funding-sources/:id", lookupHandler.UpdateFundingSource)
			admin.DELETE("/funding-sources/:id", lookupHandler.DeleteFundingSource)
			admin.POST("/focal-areas", lookupHandler.CreateFocalArea)
			admin.PUT("/focal-areas/:id", lookupHandler.UpdateFocalArea)
			admin.DELETE("/focal-areas/:id", lookupHandler.DeleteFocalArea)
		}
	}

	return r
}
