package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/contas/backend/internal/infrastructure/logger"
	"github.com/contas/backend/internal/infrastructure/persistence"
	"github.com/contas/backend/internal/interfaces/http/dto"
	"github.com/contas/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Greeting is the body of GET /
const Greeting = "OLA MUNDO!"

// DatabaseStatus reports reachability and pool usage of the database
type DatabaseStatus interface {
	Ping() error
	Stats() (persistence.ConnectionStats, error)
}

// SystemHandler handles greeting, health and info endpoints
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	db        DatabaseStatus
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version string, db DatabaseStatus) *SystemHandler {
	return &SystemHandler{
		name:      name,
		version:   version,
		db:        db,
		startTime: time.Now(),
	}
}

// Routes declares the root-level system routes
func (h *SystemHandler) Routes() *router.DomainGroup {
	routes := router.NewDomainGroup("system", "/")
	routes.GET("", h.Root).
		GET("/health", h.Health).
		GET("/system/info", h.GetSystemInfo)
	return routes
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	// Database is omitted when pool statistics are unavailable
	Database *DatabasePoolResponse `json:"database,omitempty"`
}

// DatabasePoolResponse is the connection pool section of system info
type DatabasePoolResponse struct {
	MaxOpenConnections int    `json:"max_open_connections"`
	OpenConnections    int    `json:"open_connections"`
	InUse              int    `json:"in_use"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"wait_count"`
	WaitDuration       string `json:"wait_duration"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Database string `json:"database"`
}

// Root godoc
// @Summary      Greeting
// @Tags         system
// @Produce      json
// @Success      200 {string} string "OLA MUNDO!"
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	h.Success(c, Greeting)
}

// Health godoc
// @Summary      Health check
// @Description  Pings the database
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	now := time.Now().Format(time.RFC3339)
	if err := h.db.Ping(); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Time: now, Database: "error"})
		return
	}
	h.Success(c, HealthResponse{Status: "healthy", Time: now, Database: "ok"})
}

// GetSystemInfo godoc
// @Summary      Get system information
// @Tags         system
// @Produce      json
// @Success      200 {object} SystemInfoResponse
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      h.name,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	stats, err := h.db.Stats()
	if err != nil {
		logger.GetGinLogger(c).Warn("Failed to read database pool stats", zap.Error(err))
	} else {
		info.Database = &DatabasePoolResponse{
			MaxOpenConnections: stats.MaxOpenConnections,
			OpenConnections:    stats.OpenConnections,
			InUse:              stats.InUse,
			Idle:               stats.Idle,
			WaitCount:          stats.WaitCount,
			WaitDuration:       stats.WaitDuration.String(),
		}
	}
	h.Success(c, info)
}

// NoRoute answers unknown paths with the error envelope
func (h *SystemHandler) NoRoute(c *gin.Context) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Route not found: "+c.Request.URL.Path)
}

// NoMethod answers known paths requested with an unsupported method
func (h *SystemHandler) NoMethod(c *gin.Context) {
	h.Error(c, http.StatusMethodNotAllowed, dto.ErrCodeMethodNotAllowed, "Method not allowed: "+c.Request.Method)
}
