package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/lks7470-gif/bt-admin/internal/mes/service"
)

// FabricHandler 원단 재고 API
type FabricHandler struct {
	svc *service.FabricService
}

func NewFabricHandler(svc *service.FabricService) *FabricHandler {
	return &FabricHandler{svc: svc}
}

// Register POST /api/v1/fabric
func (h *FabricHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청: "+err.Error())
		return
	}

	roll, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, "원단 등록 중 오류가 발생했습니다")
		return
	}
	Created(c, roll)
}

// List GET /api/v1/fabric
func (h *FabricHandler) List(c *gin.Context) {
	rolls, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "재고 조회 중 오류가 발생했습니다")
		return
	}
	Success(c, rolls)
}

// Get GET /api/v1/fabric/:lotNo
func (h *FabricHandler) Get(c *gin.Context) {
	roll, err := h.svc.Get(c.Request.Context(), c.Param("lotNo"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "원단 정보가 없습니다")
			return
		}
		InternalError(c, "재고 조회 중 오류가 발생했습니다")
		return
	}
	Success(c, roll)
}
