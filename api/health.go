package api

import (
	"github.com/gin-gonic/gin"
)

// HealthStatus is the health endpoint payload
type HealthStatus struct {
	Status  string `json:"status"`
	Backend bool   `json:"backend"`
}

// GetHealth handles GET /api/health. Backend reachability is advisory; the
// service itself reports ok as long as it can serve requests.
func (h *Handlers) GetHealth(c *gin.Context) {
	backendUp := h.gen.Healthy(c.Request.Context())
	status := "ok"
	if !backendUp {
		status = "degraded"
	}
	RespondData(c, HealthStatus{Status: status, Backend: backendUp})
}
