package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a gin engine. Mode is gin's "debug" or
// "release".
func NewRouter(h *Handler, am *AuthMiddleware, mode string) *gin.Engine {
	if mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", h.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)
		api.POST("/reset-password", h.ResetPassword)
		api.GET("/problems", h.ListProblems)
		api.GET("/themes", h.ListThemes)
		api.POST("/admin/login", h.AdminLogin)
	}

	team := router.Group("/api")
	team.Use(am.RequireTeam())
	{
		team.POST("/change-password", h.ChangePassword)
		team.GET("/dashboard", h.Dashboard)
		team.POST("/select", h.SaveSelection)
		team.POST("/generate", h.GenerateResearch)
		team.GET("/research/:problem_id", h.GetResearch)
		team.GET("/download/:problem_id", h.DownloadDeck)
	}

	admin := router.Group("/api/admin")
	admin.Use(am.RequireAdmin())
	{
		admin.GET("/stats", h.AdminStats)
		admin.GET("/analytics", h.AdminAnalytics)
		admin.GET("/export", h.AdminExport)
	}

	return router
}
