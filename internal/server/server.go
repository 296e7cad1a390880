package server

import (
	"context"
	"net/http"

	"groomslot/internal/appointment"
	"groomslot/internal/auth"
	"groomslot/internal/catalog"
	"groomslot/internal/config"
	"groomslot/internal/email"
	"groomslot/internal/notification"
	"groomslot/internal/pet"
	"groomslot/internal/schedule"
	"groomslot/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	config     *config.Config
	email      *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))
	router.Use(corsMiddleware())

	userRepo := user.NewRepository(db)
	petRepo := pet.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	scheduleRepo := schedule.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	appointmentRepo := appointment.NewRepository(db)

	userService := user.NewService(userRepo, cfg.JWTSecret)
	petService := pet.NewService(petRepo)
	catalogService := catalog.NewService(catalogRepo)
	scheduleService := schedule.NewService(scheduleRepo)
	notificationService := notification.NewService(notificationRepo)
	appointmentService := appointment.NewService(
		appointmentRepo, petRepo, userRepo, catalogRepo, scheduleRepo,
		notificationService, emailService)

	userHandler := user.NewHandler(userService)
	petHandler := pet.NewHandler(petService)
	catalogHandler := catalog.NewHandler(catalogService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	notificationHandler := notification.NewHandler(notificationService)
	appointmentHandler := appointment.NewHandler(appointmentService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	router.GET("/services", catalogHandler.ListServices)
	router.GET("/groomers", userHandler.ListGroomers)
	router.GET("/groomers/:groomerID/schedule", scheduleHandler.ListGroomerBlocks)
	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.PUT("/me", userHandler.UpdateMe)

		protected.POST("/pets", petHandler.CreatePet)
		protected.GET("/pets", petHandler.ListPets)
		protected.GET("/pets/:petID", petHandler.GetPet)
		protected.PUT("/pets/:petID", petHandler.UpdatePet)
		protected.DELETE("/pets/:petID", petHandler.DeletePet)

		protected.GET("/availability", appointmentHandler.GetAvailability)
		protected.POST("/appointments", appointmentHandler.CreateAppointment)
		protected.GET("/appointments", appointmentHandler.ListAppointments)
		protected.GET("/appointments/:appointmentID", appointmentHandler.GetAppointment)
		protected.POST("/appointments/:appointmentID/reschedule", appointmentHandler.RescheduleAppointment)
	}

	groomerMiddleware := auth.RequireAnyRole(auth.RoleGroomer, auth.RoleAdmin)
	groomer := router.Group("/")
	groomer.Use(authMiddleware, groomerMiddleware)
	{
		groomer.POST("/appointments/:appointmentID/confirm", appointmentHandler.ConfirmAppointment)
		groomer.POST("/appointments/:appointmentID/cancel", appointmentHandler.CancelAppointment)
		groomer.POST("/appointments/:appointmentID/complete", appointmentHandler.CompleteAppointment)
		groomer.POST("/appointments/:appointmentID/no-show", appointmentHandler.MarkNoShow)
		groomer.GET("/appointments/day", appointmentHandler.DayView)
		groomer.GET("/appointments/upcoming", appointmentHandler.Upcoming)

		groomer.POST("/schedule", scheduleHandler.CreateBlock)
		groomer.GET("/schedule", scheduleHandler.ListMyBlocks)
		groomer.PUT("/schedule/:blockID", scheduleHandler.UpdateBlock)
		groomer.DELETE("/schedule/:blockID", scheduleHandler.DeleteBlock)

		groomer.GET("/notifications", notificationHandler.ListNotifications)
		groomer.GET("/notifications/unread", notificationHandler.ListUnread)
		groomer.GET("/notifications/unread/count", notificationHandler.UnreadCount)
		groomer.POST("/notifications/:notificationID/read", notificationHandler.MarkRead)
		groomer.POST("/notifications/read-all", notificationHandler.MarkAllRead)
		groomer.POST("/notifications/reminders", appointmentHandler.GenerateReminders)
	}

	adminMiddleware := auth.RequireRole(auth.RoleAdmin)
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/groomers", userHandler.CreateGroomer)
		admin.GET("/users", userHandler.ListUsers)
		admin.DELETE("/users/:userID", userHandler.DeleteUser)

		admin.GET("/services", catalogHandler.ListAllServices)
		admin.POST("/services", catalogHandler.CreateService)
		admin.PUT("/services/:serviceID", catalogHandler.UpdateService)
		admin.DELETE("/services/:serviceID", catalogHandler.DeleteService)
	}

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
