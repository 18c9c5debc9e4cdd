package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// request-scoped zap logging with a correlation id
	r.Use(func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Next()
		app.Logger.Sugar().Infow("http",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	})

	r.GET("/health", app.healthCheck)

	v1 := r.Group("/api/v1")
	v1.Use(app.AuthMiddleware())
	{
		v1.POST("/interviews", app.Handler.ScheduleInterview)
		v1.PUT("/interviews", app.Handler.UpdateInterview)
		v1.GET("/interviews", app.Handler.ListInterviews)
		v1.GET("/interviews/range", app.Handler.ListByDateRange)
		v1.GET("/interviews/:id", app.Handler.GetInterview)
		v1.GET("/interviews/candidate/:candidate_id", app.Handler.ListByCandidate)
		v1.GET("/interviews/user/:user_id", app.Handler.ListByUser)
		v1.GET("/interviews/candidate/:candidate_id/job/:job_id", app.Handler.GetByCandidateAndJob)
		v1.GET("/interviews/candidate/:candidate_id/job/:job_id/status", app.Handler.GetInterviewStatus)
		v1.DELETE("/interviews/candidate/:candidate_id/job/:job_id", app.Handler.DeleteInterview)
	}

	return r
}

func (app *application) healthCheck(c *gin.Context) {
	if err := app.DB.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
