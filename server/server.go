package server

import (
	"net/http"

	"realty-server/confs"
	"realty-server/db"
	httpHandler "realty-server/handlers/http"
	"realty-server/middleware"
	"realty-server/repositories"
	"realty-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	s := &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Initialize repositories
	propertyRepo := repositories.NewPropertyGormRepository(s.db)
	bookingRepo := repositories.NewBookingGormRepository(s.db)
	userRepo := repositories.NewUserGormRepository(s.db)

	// Initialize use cases
	propertyUseCase := usecases.NewPropertyUseCase(propertyRepo)
	bookingUseCase := usecases.NewBookingUseCase(bookingRepo)
	authUseCase := usecases.NewAuthUseCase(userRepo, s.cfg.JWTSecret, s.cfg.TokenTTL)

	// Initialize handlers
	propertyHandler := httpHandler.NewPropertyHandler(propertyUseCase)
	bookingHandler := httpHandler.NewBookingHandler(bookingUseCase)
	authHandler := httpHandler.NewAuthHandler(authUseCase)

	requireUser := middleware.RequireUser(userRepo, s.cfg.JWTSecret)

	// Auth routes
	auth := s.app.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Property routes; only creation requires a logged-in user
	properties := s.app.Group("/properties")
	{
		properties.POST("", requireUser, propertyHandler.CreateProperty)
		properties.GET("", propertyHandler.GetAllProperties)
		properties.GET("/:id", propertyHandler.GetProperty)
	}

	// Service booking routes
	services := s.app.Group("/services")
	{
		services.POST("/book", bookingHandler.CreateBooking)
		services.GET("/bookings", bookingHandler.GetAllBookings)
		services.GET("/bookings/:id", bookingHandler.GetBooking)
	}
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler { return s.app }

func (s *Server) Start() {
	if err := s.app.Run(s.cfg.ListenAddr); err != nil {
		panic(err)
	}
}
