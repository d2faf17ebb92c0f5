package usersserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthAPI exposes process liveness.
type HealthAPI struct{}

// NewHealthAPI wires dependencies.
func NewHealthAPI() HealthAPI {
	return HealthAPI{}
}

// Get /healthz
func (api *HealthAPI) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
