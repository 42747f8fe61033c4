package handlers

import (
	"time"

	"github.com/Shunea/be-easyreserv-sub002/cmd/docs"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/middleware"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/config"
	"github.com/Shunea/be-easyreserv-sub002/internal/ws"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// hub may be nil, in which case the live feed is not served.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *ws.Hub,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.GET("/health", getHealth)

	auth := middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	setupAPIV1Routes(r.Group("/api/v1", auth), cfg, services)

	if hub != nil {
		RegisterLiveFeedRoutes(r.Group("/ws", auth), hub)
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes delegates route registration to the entity handlers
func setupAPIV1Routes(v1 *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	loc := cfg.ReportLocation
	if loc == nil {
		loc = time.UTC
	}
	RegisterStaffRoutes(v1, services.Staff)
	RegisterScheduleRoutes(v1, services.Schedule, loc)
	RegisterReservationRoutes(v1, services.Reservation)
	RegisterReportingRoutes(v1, services.Reporting, loc)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
