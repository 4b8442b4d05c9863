package handlers

import (
	"net/http"

	"finalprojectapi/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports on the backends the API depends on.
type HealthHandler struct {
	Deps map[string]utils.Pinger
}

func NewHealthHandler(deps map[string]utils.Pinger) *HealthHandler {
	return &HealthHandler{Deps: deps}
}

func (h *HealthHandler) RootHandler(c *gin.Context) {
	c.String(http.StatusOK, "FINALPROJECTAPI running - store connected")
}

func (h *HealthHandler) HealthHandler(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(), h.Deps)
	if !status.Healthy {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
