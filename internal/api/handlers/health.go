package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoints
var Version = "1.0.0"

var errNoDatabase = errors.New("database not configured")

// HealthHandler serves liveness and readiness checks
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthStatus is the body of the health endpoints
type HealthStatus struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database,omitempty" example:"ok"`
	Version  string `json:"version" example:"1.0.0"`
}

func (h *HealthHandler) ping(c *gin.Context) error {
	if h.db == nil {
		return errNoDatabase
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request.Context())
}

// Ready reports whether the database answers
// @Summary Readiness check
// @Description Ping the database. Served on /health and /health/ready.
// @Tags health
// @Produce json
// @Success 200 {object} HealthStatus
// @Failure 503 {object} HealthStatus
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	body := HealthStatus{Status: "ok", Database: "ok", Version: Version}
	code := http.StatusOK
	if err := h.ping(c); err != nil {
		body.Status = "unavailable"
		body.Database = err.Error()
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, body)
}

// Live answers as long as the process serves requests
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{Status: "ok", Version: Version})
}
