package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/lks7470-gif/bt-admin/internal/mes/service"
)

// DashboardHandler 모니터 전광판 API
type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Snapshot GET /api/v1/dashboard
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.svc.GetSnapshot(c.Request.Context())
	if err != nil {
		InternalError(c, "집계 조회 중 오류가 발생했습니다")
		return
	}
	Success(c, snapshot)
}
