package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lks7470-gif/bt-admin/internal/mes/process"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/lks7470-gif/bt-admin/internal/mes/service"
)

// DefectHandler 불량 신고 API
type DefectHandler struct {
	svc *service.DefectService
}

func NewDefectHandler(svc *service.DefectService) *DefectHandler {
	return &DefectHandler{svc: svc}
}

// Report POST /api/v1/defects
func (h *DefectHandler) Report(c *gin.Context) {
	var req service.DefectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청: "+err.Error())
		return
	}
	if req.Worker == "" {
		req.Worker = GetWorker(c)
	}

	record, err := h.svc.ReportDefect(c.Request.Context(), &req)
	if err != nil {
		if re, ok := process.AsReject(err); ok {
			ErrorData(c, 42203, re.Message, gin.H{"reason": string(re.Code)})
			return
		}
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "등록되지 않은 LOT 번호입니다")
		case errors.Is(err, service.ErrInvalidStep):
			BadRequest(c, err.Error())
		default:
			InternalError(c, "불량 등록 중 오류가 발생했습니다")
		}
		return
	}

	Created(c, record)
}

// Types GET /api/v1/defects/types 작업자 화면의 불량 유형 목록
func (h *DefectHandler) Types(c *gin.Context) {
	Success(c, service.DefectTypes)
}
