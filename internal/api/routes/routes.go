package routes

import (
	"log"
	"time"

	"realty-crm-backend/internal/api/handlers"
	"realty-crm-backend/internal/api/middleware"
	"realty-crm-backend/internal/auth"
	"realty-crm-backend/internal/config"
	"realty-crm-backend/internal/repository"
	"realty-crm-backend/internal/service"
	"realty-crm-backend/internal/viewmode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Load stage templates used when seeding new projects
	stageTemplates, err := config.LoadStageTemplates(cfg.StageTemplatesFile)
	if err != nil {
		log.Printf("Warning: failed to load stage templates: %v", err)
		stageTemplates = config.StageTemplates{}
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	stageRepo := repository.NewStageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	historyRepo := repository.NewStageHistoryRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	demandNoteRepo := repository.NewDemandNoteRepository(db)
	receiptRepo := repository.NewPaymentReceiptRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, stageRepo, stageTemplates, validator)
	stageService := service.NewStageService(stageRepo, projectRepo, historyRepo, validator)
	bookingService := service.NewBookingService(bookingRepo, projectRepo, validator)
	registrationService := service.NewRegistrationService(bookingRepo, stageRepo, historyRepo, validator)
	leadService := service.NewLeadService(leadRepo, validator)
	demandNoteService := service.NewDemandNoteService(demandNoteRepo, bookingRepo, validator)
	receiptService := service.NewPaymentReceiptService(receiptRepo, bookingRepo, demandNoteRepo, validator)
	noticeService := service.NewNoticeService(noticeRepo, validator)
	eventService := service.NewEventService(eventRepo, validator)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret, 12*time.Hour)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	stageHandler := handlers.NewStageHandler(stageService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	leadHandler := handlers.NewLeadHandler(leadService)
	demandNoteHandler := handlers.NewDemandNoteHandler(demandNoteService)
	receiptHandler := handlers.NewPaymentReceiptHandler(receiptService)
	noticeHandler := handlers.NewNoticeHandler(noticeService)
	eventHandler := handlers.NewEventHandler(eventService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Projects
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/stages", stageHandler.ListStagesByProject)
			projects.GET("/:id/bookings", bookingHandler.ListBookingsByProject)
			projects.POST("", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), projectHandler.CreateProject)
			projects.PUT("/:id", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), projectHandler.UpdateProject)
			projects.DELETE("/:id", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), projectHandler.DeleteProject)
		}

		// Stages
		stages := v1.Group("/stages")
		stages.Use(authMiddleware.RequireRole(auth.Role.CanManageRegistrations))
		{
			stages.POST("", stageHandler.CreateStage)
			stages.PUT("/:id", stageHandler.UpdateStage)
			stages.DELETE("/:id", stageHandler.DeleteStage)
		}

		// Bookings
		bookings := v1.Group("/bookings")
		{
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.GET("/:id/demand-notes", demandNoteHandler.ListDemandNotesByBooking)
			bookings.GET("/:id/payment-receipts", receiptHandler.ListPaymentReceiptsByBooking)
			bookings.POST("", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), bookingHandler.CreateBooking)
			bookings.PUT("/:id", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), bookingHandler.UpdateBooking)
			bookings.DELETE("/:id", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), bookingHandler.DeleteBooking)
		}

		// Registration timeline, operations context: editable
		operations := v1.Group("/operations")
		operations.Use(middleware.ViewMode(viewmode.ModeEditable))
		{
			operations.GET("/bookings/:id/timeline", registrationHandler.GetTimeline)
			operations.POST("/bookings/:id/advance",
				authMiddleware.RequireRole(auth.Role.CanManageRegistrations),
				registrationHandler.AdvanceStage)
			operations.POST("/bookings/:id/shift",
				authMiddleware.RequireRole(auth.Role.CanManageRegistrations),
				registrationHandler.ShiftBooking)
		}

		// Registration timeline, post-sales context: always read-only.
		// Mutation routes stay mounted so the read-only guard is exercised
		// server-side rather than silently 404ing.
		postSales := v1.Group("/post-sales")
		postSales.Use(middleware.ViewMode(viewmode.ModeReadOnly))
		{
			postSales.GET("/bookings/:id/timeline", registrationHandler.GetTimeline)
			postSales.POST("/bookings/:id/advance",
				authMiddleware.RequireRole(auth.Role.CanManageRegistrations),
				registrationHandler.AdvanceStage)
			postSales.POST("/bookings/:id/shift",
				authMiddleware.RequireRole(auth.Role.CanManageRegistrations),
				registrationHandler.ShiftBooking)
		}

		// Leads
		leads := v1.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.GET("/:id", leadHandler.GetLead)
			leads.POST("", authMiddleware.RequireRole(auth.Role.CanManageLeads), leadHandler.CreateLead)
			leads.PUT("/:id", authMiddleware.RequireRole(auth.Role.CanManageLeads), leadHandler.UpdateLead)
			leads.DELETE("/:id", authMiddleware.RequireRole(auth.Role.CanManageLeads), leadHandler.DeleteLead)
		}

		// Demand notes
		demandNotes := v1.Group("/demand-notes")
		{
			demandNotes.GET("/:id", demandNoteHandler.GetDemandNote)
			demandNotes.POST("", authMiddleware.RequireRole(auth.Role.CanManageFinancials), demandNoteHandler.CreateDemandNote)
			demandNotes.POST("/:id/issue", authMiddleware.RequireRole(auth.Role.CanManageFinancials), demandNoteHandler.IssueDemandNote)
			demandNotes.POST("/:id/paid", authMiddleware.RequireRole(auth.Role.CanManageFinancials), demandNoteHandler.MarkDemandNotePaid)
			demandNotes.POST("/:id/cancel", authMiddleware.RequireRole(auth.Role.CanManageFinancials), demandNoteHandler.CancelDemandNote)
		}

		// Payment receipts
		receipts := v1.Group("/payment-receipts")
		{
			receipts.GET("/:id", receiptHandler.GetPaymentReceipt)
			receipts.POST("", authMiddleware.RequireRole(auth.Role.CanManageFinancials), receiptHandler.CreatePaymentReceipt)
		}

		// Notices
		notices := v1.Group("/notices")
		{
			notices.GET("", noticeHandler.ListNotices)
			notices.GET("/:id", noticeHandler.GetNotice)
			notices.POST("", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), noticeHandler.CreateNotice)
			notices.PUT("/:id", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), noticeHandler.UpdateNotice)
			notices.POST("/:id/publish", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), noticeHandler.PublishNotice)
			notices.DELETE("/:id", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), noticeHandler.DeleteNotice)
		}

		// Events
		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), eventHandler.CreateEvent)
			events.DELETE("/:id", authMiddleware.RequireRole(auth.Role.CanManageRegistrations), eventHandler.DeleteEvent)
		}
	}

	return router
}
