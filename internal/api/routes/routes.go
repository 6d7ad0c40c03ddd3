package routes

import (
	"context"
	"net/http"

	"performance-tracker-backend/internal/api/handlers"
	"performance-tracker-backend/internal/api/middleware"
	"performance-tracker-backend/internal/config"
	"performance-tracker-backend/internal/logger"
	"performance-tracker-backend/internal/repository"
	"performance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// gormPinger adapts *gorm.DB to handlers.Pinger
type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// SetupRoutes wires repositories, services and handlers over db and mounts them
// under /api/v1. Health probes and swagger live at the root.
func SetupRoutes(db *gorm.DB, cfg *config.Config, snapshots service.SnapshotProvider) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg),
	)

	validate := validator.New()
	memberRepo := repository.NewMemberRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	memberHandler := handlers.NewMemberHandler(service.NewMemberService(memberRepo, snapshots, validate))
	taskHandler := handlers.NewTaskHandler(service.NewTaskService(taskRepo, memberRepo, snapshots, validate))
	ratingHandler := handlers.NewRatingHandler(service.NewRatingService(ratingRepo, taskRepo, memberRepo, snapshots, validate))
	statsHandler := handlers.NewStatsHandler(service.NewStatsService(snapshots, cfg.RecentRatingsLimit))
	exportHandler := handlers.NewExportHandler(service.NewExportService(snapshots))

	health := handlers.NewHealthHandler(gormPinger{db: db}, snapshots)
	router.GET("/health", health.Health)
	router.GET("/health/ready", health.Ready)
	router.GET("/health/live", health.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers) // ?q=
			members.POST("", memberHandler.CreateMember)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
			members.GET("/:id/tasks", taskHandler.GetTasksByMember)
			members.GET("/:id/ratings", ratingHandler.GetRatingsByMember)
			members.GET("/:id/stats", statsHandler.GetMemberStats)
			members.GET("/:id/dimensions", statsHandler.GetMemberDimensions)
			members.GET("/:id/report", exportHandler.MemberReport)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks) // ?q=&status=
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/archive", taskHandler.ListArchivedTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.POST("/:id/subtasks", taskHandler.AddSubtask)
			tasks.PATCH("/:id/subtasks/:subtaskId/toggle", taskHandler.ToggleSubtask)
			tasks.POST("/:id/attachments", taskHandler.AddAttachment)
			tasks.GET("/:id/ratings", ratingHandler.GetRatingsByTask)
			tasks.GET("/:id/ratings/:memberId", ratingHandler.GetRatingsByTaskAndMember)
			tasks.GET("/:id/leaderboard", statsHandler.GetTaskLeaderboard)
			tasks.GET("/:id/stats", statsHandler.GetTaskStats)
			tasks.GET("/:id/report", exportHandler.TaskReport)
		}

		ratings := v1.Group("/ratings")
		{
			ratings.POST("", ratingHandler.CreateRating)
			ratings.DELETE("/:id", ratingHandler.DeleteRating)
		}

		// Team-wide views
		v1.GET("/leaderboard", statsHandler.GetLeaderboard)
		v1.GET("/dashboard", statsHandler.GetDashboard)
		v1.GET("/reports/team", exportHandler.TeamReport)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router
}
