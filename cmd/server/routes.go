package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"medishare.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	donationHandler *handlers.DonationHandler
	authMiddleware  gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
		}

		// Donation routes. Submitting is public; everything else needs a
		// bearer token. The static /user route is registered before the
		// :id routes so gin matches it first.
		donations := api.Group("/donations")
		{
			donations.POST("", d.donationHandler.Create)
			donations.GET("", d.authMiddleware, d.donationHandler.ListAll)
			donations.GET("/user", d.authMiddleware, d.donationHandler.ListMine)
			donations.GET("/:id", d.authMiddleware, d.donationHandler.Get)
			donations.PUT("/:id", d.authMiddleware, d.donationHandler.UpdateStatus)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "medishare-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Allow-all without credentials; auth is carried in the Authorization
// header, never in cookies.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
