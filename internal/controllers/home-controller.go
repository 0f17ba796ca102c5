package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const indexPage = "<h1>Code challenge</h1>"

// Index godoc
// @Summary Index page
// @Description Static HTML banner
// @Tags home
// @Produce html
// @Success 200 {string} string "HTML banner"
// @Router / [get]
func Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-restaurants-api",
	})
}
