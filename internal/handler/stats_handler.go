package handler

import (
	"net/http"

	"orgsite-backend/internal/services"
	"orgsite-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the public aggregated stats and the admin member
// stats endpoints.
type StatsHandler struct {
	stats   *services.StatsService
	members *services.MemberStatsService
}

func NewStatsHandler(stats *services.StatsService, members *services.MemberStatsService) *StatsHandler {
	return &StatsHandler{stats: stats, members: members}
}

// Get always answers 200: the landing page prefers zero values over an
// error banner.
func (h *StatsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(h.stats.Get(c.Request.Context())))
}

func (h *StatsHandler) GetMemberStats(c *gin.Context) {
	stats, err := h.members.Get(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(stats))
}

func (h *StatsHandler) UpdateMemberStats(c *gin.Context) {
	var req services.MemberStatsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}
	stats, err := h.members.Update(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(stats))
}
