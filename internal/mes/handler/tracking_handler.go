package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lks7470-gif/bt-admin/internal/mes/process"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/lks7470-gif/bt-admin/internal/mes/service"
)

// TrackingHandler 스캔 등록 API
type TrackingHandler struct {
	svc *service.TrackingService
}

func NewTrackingHandler(svc *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{svc: svc}
}

// Scan POST /api/v1/scan
// QR로 읽은 LOT 번호와 공정을 검증해 기록한다. 거절 사유는 코드로
// 구분해 내려 주어 작업자 화면이 안내를 달리할 수 있게 한다.
func (h *TrackingHandler) Scan(c *gin.Context) {
	var req service.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청: "+err.Error())
		return
	}
	if req.Worker == "" {
		req.Worker = GetWorker(c)
	}

	result, err := h.svc.ValidateAndRecordStep(c.Request.Context(), &req)
	if err != nil {
		writeScanError(c, err)
		return
	}

	Success(c, result)
}

// Steps GET /api/v1/scan/steps
// 작업자 화면이 공정 버튼을 구성할 때 쓰는 공정 목록.
func (h *TrackingHandler) Steps(c *gin.Context) {
	type stepView struct {
		Code       string `json:"code"`
		Label      string `json:"label"`
		Level      int    `json:"level"`
		Preceding  string `json:"preceding"`
		Lamination bool   `json:"lamination"`
	}
	steps := make([]stepView, 0, len(process.WorkSteps))
	for _, s := range process.WorkSteps {
		steps = append(steps, stepView{
			Code:       s.Code(),
			Label:      s.StatusText(),
			Level:      s.Level(),
			Preceding:  process.PrecedingStep(s).Code(),
			Lamination: s.IsLamination(),
		})
	}
	Success(c, steps)
}

// writeScanError 스캔 오류 분류. 업무상 거절(중복/역순/불량)은 422,
// 동시 스캔 충돌은 409로 재시도를 유도하고, 저장소 장애만 5xx다.
func writeScanError(c *gin.Context, err error) {
	if re, ok := process.AsReject(err); ok {
		code := 42200
		switch re.Code {
		case process.RejectDuplicateStep:
			code = 42201
		case process.RejectSequenceViolation:
			code = 42202
		case process.RejectAlreadyDefective:
			code = 42203
		}
		ErrorData(c, code, re.Message, gin.H{"reason": string(re.Code)})
		return
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "등록되지 않은 LOT 번호입니다")
	case errors.Is(err, repository.ErrStatusConflict):
		ErrorData(c, 40901, "다른 작업대에서 먼저 처리되었습니다. 다시 스캔해 주세요.", gin.H{"reason": "conflict"})
	case errors.Is(err, service.ErrInvalidStep):
		BadRequest(c, err.Error())
	default:
		InternalError(c, "저장 중 오류가 발생했습니다")
	}
}
