package transport

import (
	"encoding/json"
	"net/http"

	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OverviewHandler struct {
	overviewService service.OverviewService
}

func NewOverviewHandler(overviewService service.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

func (h *OverviewHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/overview", h.GetOverview)
}

// GetOverview never returns a partial snapshot. The body is encoded before
// the status is written so an unencodable snapshot still answers 500.
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	overview, err := h.overviewService.GetOverview(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to compute overview")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load overview data"})
		return
	}

	body, err := json.Marshal(overview)
	if err != nil {
		logrus.WithError(err).Error("Failed to encode overview")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load overview data"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
