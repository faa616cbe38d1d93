package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves system-level endpoints
type SystemHandler struct {
	BaseHandler
	appName string
	env     string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(appName, env string) *SystemHandler {
	return &SystemHandler{appName: appName, env: env}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	system.GET("/ping", h.Ping)
	system.GET("/info", h.Info)
}

// Ping answers liveness probes
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}

// Info returns basic application information
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, gin.H{
		"app":  h.appName,
		"env":  h.env,
		"time": time.Now().Format(time.RFC3339),
	})
}
