package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/controllers"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// Pinger reports whether the storage backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	awardController *controllers.AwardController,
	db Pinger,
) {
	students := router.Group("/students")
	{
		students.GET("/", studentController.GetAllStudents)
		students.GET("/:account", studentController.GetStudent)
		students.POST("/", studentController.CreateStudent)
		students.PUT("/:account", studentController.UpdateStudent)
		students.DELETE("/:account", studentController.DeleteStudent)
		students.POST("/:account/verify", studentController.VerifyCredentials)
	}

	awards := router.Group("/awardsinfo")
	{
		awards.GET("/", awardController.GetAllAwards)
		awards.GET("/:id", awardController.GetAward)
		awards.POST("/", awardController.CreateAward)
		awards.PUT("/:id", awardController.UpdateAward)
		awards.DELETE("/:id", awardController.DeleteAward)
	}

	router.GET("/health", healthHandler(db))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
