package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"malama_health_backend/internal/model"
	"malama_health_backend/pkg/store"
)

type HealthController struct {
	Store store.Store
}

func NewHealthController(s store.Store) *HealthController {
	return &HealthController{Store: s}
}

// HealthCheck godoc
// @Summary Service health
// @Description Probes the data store with a read of the users collection.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	var users []model.User
	if err := c.Store.ReadAll(store.Users, &users); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"components": gin.H{
				"dataStore": "down",
			},
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"components": gin.H{
			"dataStore": "up",
		},
	})
}
