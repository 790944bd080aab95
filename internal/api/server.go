package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/eventmaster/docs"
	v1 "github.com/yizeng/gab/gin/gorm/eventmaster/internal/api/handler/v1"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/config"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/repository"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	venueHandler := s.initVenueHandler(db)
	eventHandler := s.initEventHandler(db)
	s.MountHandlers(venueHandler, eventHandler)

	return s
}

func (s *Server) initVenueHandler(db *gorm.DB) *v1.VenueHandler {
	venueDAO := dao.NewVenueDAO(db)
	repo := repository.NewVenueRepository(venueDAO)
	svc := service.NewVenueService(repo)
	handler := v1.NewVenueHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(venueHandler *v1.VenueHandler, eventHandler *v1.EventHandler) {
	venues := s.Router.Group("/recintos")
	{
		venues.POST("/", venueHandler.HandleCreateVenue)
		venues.GET("/", venueHandler.HandleGetVenues)
		venues.PUT("/:id", venueHandler.HandleUpdateVenue)
		venues.DELETE("/:id", venueHandler.HandleDeleteVenue)
	}

	events := s.Router.Group("/eventos")
	{
		events.POST("/", eventHandler.HandleCreateEvent)
		events.GET("/", eventHandler.HandleGetEvents)
		events.PATCH("/:id/comprar", eventHandler.HandlePurchaseTickets)
	}

	s.Router.GET("/", v1.HandleIndex)
	s.Router.GET("/health", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "EventMaster API"
	docs.SwaggerInfo.Description = "Venues, events and ticket sales."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
