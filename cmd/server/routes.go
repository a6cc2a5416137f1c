package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"safe-rescue.backend/internal/interfaces/http/handlers"
	"safe-rescue.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	teamHandler     *handlers.TeamHandler
	shiftHandler    *handlers.ShiftHandler
	companyHandler  *handlers.CompanyHandler
	teamTypeHandler *handlers.TeamTypeHandler
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID, Idempotency-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Team routes: aggregate CRUD plus relationship assignment
		teams := v1.Group("/teams")
		{
			teams.GET("", d.teamHandler.ListTeams)
			teams.GET("/:id", d.teamHandler.GetTeam)
			teams.POST("", middleware.IdempotencyMiddleware(), d.teamHandler.CreateTeam)
			teams.PUT("/:id", d.teamHandler.UpdateTeam)
			teams.DELETE("/:id", d.teamHandler.DeleteTeam)

			teams.POST("/:id/assign-shift/:shiftId", middleware.IdempotencyMiddleware(), d.teamHandler.AssignShift)
			teams.POST("/:id/assign-company/:companyId", middleware.IdempotencyMiddleware(), d.teamHandler.AssignCompany)
			teams.POST("/:id/assign-team-type/:teamTypeId", middleware.IdempotencyMiddleware(), d.teamHandler.AssignTeamType)
			teams.POST("/:id/assign-firefighters/:firefighterIds", middleware.IdempotencyMiddleware(), d.teamHandler.AssignFirefighters)
		}

		// Shift routes
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", d.shiftHandler.ListShifts)
			shifts.GET("/:id", d.shiftHandler.GetShift)
			shifts.POST("", middleware.IdempotencyMiddleware(), d.shiftHandler.CreateShift)
			shifts.PUT("/:id", d.shiftHandler.UpdateShift)
			shifts.DELETE("/:id", d.shiftHandler.DeleteShift)
		}

		// Company routes
		companies := v1.Group("/companies")
		{
			companies.GET("", d.companyHandler.ListCompanies)
			companies.GET("/:id", d.companyHandler.GetCompany)
			companies.POST("", middleware.IdempotencyMiddleware(), d.companyHandler.CreateCompany)
			companies.PUT("/:id", d.companyHandler.UpdateCompany)
			companies.DELETE("/:id", d.companyHandler.DeleteCompany)

			companies.POST("/:id/assign-location/:locationId", d.companyHandler.AssignLocation)
		}

		// Team type routes
		teamTypes := v1.Group("/team-types")
		{
			teamTypes.GET("", d.teamTypeHandler.ListTeamTypes)
			teamTypes.GET("/:id", d.teamTypeHandler.GetTeamType)
			teamTypes.POST("", middleware.IdempotencyMiddleware(), d.teamTypeHandler.CreateTeamType)
			teamTypes.PUT("/:id", d.teamTypeHandler.UpdateTeamType)
			teamTypes.DELETE("/:id", d.teamTypeHandler.DeleteTeamType)
		}
	}
}
