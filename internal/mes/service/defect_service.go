package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"github.com/lks7470-gif/bt-admin/internal/mes/metrics"
	"github.com/lks7470-gif/bt-admin/internal/mes/process"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"go.uber.org/zap"
)

// DefectTypes 현장에서 쓰는 불량 유형
var DefectTypes = []string{
	"이물질", "기포/들뜸", "치수 불량", "스크래치", "전극 불량", "원단 불량", "기타",
}

// DefectService 불량 게이트. 불량 기록을 만들고 지시서 상태를 불량
// 마커로 강제 덮어써서 이후 모든 스캔이 거절되게 한다. 되돌리는 경로는
// 없고, 불량 LOT은 신규 LOT으로 재등록한다.
type DefectService struct {
	orders  *repository.WorkOrderRepository
	defects *repository.DefectRepository
	logger  *zap.Logger
}

func NewDefectService(orders *repository.WorkOrderRepository, defects *repository.DefectRepository, logger *zap.Logger) *DefectService {
	return &DefectService{orders: orders, defects: defects, logger: logger}
}

// DefectRequest 불량 신고
type DefectRequest struct {
	LotNo      string `json:"lot_no" binding:"required"`
	Step       string `json:"step" binding:"required"` // 발견 공정 코드
	DefectType string `json:"defect_type" binding:"required"`
	Note       string `json:"note"`
	Worker     string `json:"worker"` // 비우면 토큰의 작업자
}

// ReportDefect 불량을 등록한다. 이미 불량/보류인 LOT에는 중복 등록을
// 막는다 (현장 화면도 스캔 단계에서 차단한다).
func (s *DefectService) ReportDefect(ctx context.Context, req *DefectRequest) (*entity.DefectRecord, error) {
	step, err := process.ParseStepCode(req.Step)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStep, req.Step)
	}

	order, err := s.orders.GetByLotNo(ctx, req.LotNo)
	if err != nil {
		return nil, err
	}

	if info := process.ParseStatus(order.Status); info.Defective || info.Held {
		return nil, &process.RejectError{
			Code:    process.RejectAlreadyDefective,
			Message: fmt.Sprintf("불량/보류 제품입니다 (%s)", order.Status),
		}
	}

	record := &entity.DefectRecord{
		ID:         uuid.New().String(),
		LotNo:      req.LotNo,
		Step:       step.StatusText(),
		DefectType: req.DefectType,
		Note:       req.Note,
		Worker:     req.Worker,
		Status:     entity.DefectResolutionPending,
		CreatedAt:  time.Now(),
	}
	if err := s.defects.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("insert defect record: %w", err)
	}

	// 불량 마커에 유형을 담아 두면 리듀서가 조인 없이 복원한다.
	// CAS가 아닌 강제 덮어쓰기. 불량 게이트는 현재 상태와 무관하다.
	if err := s.orders.UpdateStatus(ctx, req.LotNo, process.DefectStatusText(req.DefectType)); err != nil {
		return nil, fmt.Errorf("force defect status: %w", err)
	}

	metrics.DefectsTotal.WithLabelValues(req.DefectType).Inc()
	s.logger.Warn("Defect reported",
		zap.String("lot_no", req.LotNo),
		zap.String("step", step.Code()),
		zap.String("defect_type", req.DefectType),
		zap.String("worker", req.Worker),
	)

	return record, nil
}
