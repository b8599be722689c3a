package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/queueworks/queue-booking-api/internal/audit"
	"github.com/queueworks/queue-booking-api/internal/cache"
	"github.com/queueworks/queue-booking-api/internal/catalog"
	"github.com/queueworks/queue-booking-api/internal/config"
	"github.com/queueworks/queue-booking-api/internal/handlers"
	infraRepo "github.com/queueworks/queue-booking-api/internal/infra/repository"
	"github.com/queueworks/queue-booking-api/internal/middleware"
	"github.com/queueworks/queue-booking-api/internal/models"
	"github.com/queueworks/queue-booking-api/internal/realtime"
	ucBooking "github.com/queueworks/queue-booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	variant *catalog.Variant,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	listings := cache.NewListingCache(rdb, log)
	hub := realtime.NewHub(log)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		variant,
		auditDispatcher,
		listings,
		hub,
	)

	cancelOwnUC := ucBooking.NewCancelOwn(
		bookingRepo,
		auditDispatcher,
		listings,
		hub,
	)

	assignQueueUC := ucBooking.NewAssignQueue(
		bookingRepo,
		auditDispatcher,
		listings,
		hub,
	)

	callNextUC := ucBooking.NewCallNext(
		bookingRepo,
		auditDispatcher,
		listings,
		hub,
	)

	skipUC := ucBooking.NewSkip(
		bookingRepo,
		auditDispatcher,
		listings,
		hub,
		callNextUC,
	)

	completeUC := ucBooking.NewCompleteCurrent(
		bookingRepo,
		auditDispatcher,
		listings,
		hub,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
		listings,
		hub,
	)

	deleteBranchUC := ucBooking.NewDeleteBranch(bookingRepo, auditDispatcher)
	deleteUserUC := ucBooking.NewDeleteUser(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	catalogHandler := handlers.NewCatalogHandler(variant)
	branchHandler := handlers.NewBranchHandler(bookingRepo, deleteBranchUC)
	userHandler := handlers.NewUserHandler(bookingRepo, deleteUserUC)

	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		listings,
		createBookingUC,
		cancelOwnUC,
	)

	queueHandler := handlers.NewQueueHandler(
		bookingRepo,
		assignQueueUC,
		callNextUC,
		skipUC,
		completeUC,
	)

	adminBookingHandler := handlers.NewAdminBookingHandler(bookingRepo, deleteBookingUC)
	analyticsHandler := handlers.NewAnalyticsHandler(bookingRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	eventsHandler := handlers.NewEventsHandler(hub)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/services", catalogHandler.Services)
			secured.GET("/branches", branchHandler.List)
			secured.GET("/branches/:id", branchHandler.Get)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.GET("/queue/status", bookingHandler.QueueStatus)

			secured.GET("/events", eventsHandler.Subscribe)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/branches", branchHandler.Create)
				admin.PATCH("/branches/:id", branchHandler.Update)
				admin.DELETE("/branches/:id", branchHandler.Delete)

				admin.GET("/users", userHandler.List)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.GET("/bookings", adminBookingHandler.List)
				admin.DELETE("/bookings/:id", adminBookingHandler.Delete)

				admin.GET("/queue", queueHandler.Get)
				admin.POST("/queue/assign/:id", queueHandler.Assign)
				admin.POST("/queue/call-next", queueHandler.CallNext)
				admin.POST("/queue/skip", queueHandler.Skip)
				admin.POST("/queue/complete", queueHandler.Complete)

				admin.GET("/analytics", analyticsHandler.Summary)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
