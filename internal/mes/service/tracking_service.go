package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"github.com/lks7470-gif/bt-admin/internal/mes/lotid"
	"github.com/lks7470-gif/bt-admin/internal/mes/metrics"
	"github.com/lks7470-gif/bt-admin/internal/mes/process"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"go.uber.org/zap"
)

// ErrInvalidStep 등록 대상이 아닌 공정 코드
var ErrInvalidStep = errors.New("invalid step code")

// TrackingService 스캔 이벤트의 검증과 기록. 호출마다 저장소에서 현재
// 상태를 새로 읽으며 호출 간 캐시를 두지 않는다. 여러 작업대가 같은
// LOT을 보더라도 판단 근거가 갈라지지 않게 하기 위함이다.
type TrackingService struct {
	orders *repository.WorkOrderRepository
	logs   *repository.ProductionLogRepository
	logger *zap.Logger
}

func NewTrackingService(orders *repository.WorkOrderRepository, logs *repository.ProductionLogRepository, logger *zap.Logger) *TrackingService {
	return &TrackingService{orders: orders, logs: logs, logger: logger}
}

// ScanRequest 작업 등록 스캔
type ScanRequest struct {
	LotNo  string `json:"lot_no" binding:"required"`
	Step   string `json:"step" binding:"required"` // full_cut / half_cut / electrode / lamination_*
	Worker string `json:"worker"` // 비우면 토큰의 작업자
	Data   string `json:"data"` // 장비 세팅값 등 자유 입력
}

// ScanResult 수락된 스캔의 결과. NextStep 은 정규 경로상 다음 공정
// 코드로, 작업자 화면이 다음 작업대를 안내하는 데 쓴다 (마지막 공정이면
// 빈 문자열).
type ScanResult struct {
	LotNo    string           `json:"lot_no"`
	Step     string           `json:"step"`
	Status   string           `json:"status"`
	NextStep string           `json:"next_step,omitempty"`
	State    process.LotState `json:"state"`
}

// ValidateAndRecordStep 스캔 하나를 검증하고 기록한다.
//
// 순서: LOT 번호 형식 → 지시서/최근 로그 조회 → 불량 게이트 →
// 레벨 단조성 검사 → 로그 append → 상태 CAS 갱신.
//
// 로그 append 와 상태 갱신 사이에 죽으면 둘이 어긋날 수 있는데,
// 리듀서가 로그 우선으로 조정하고 다음 스캔은 로그 기준으로 검증하므로
// 기록이 오염되지는 않는다. 거절은 업무상 정상 결과라 에러 로그를 남기지
// 않고 그대로 반환한다.
func (s *TrackingService) ValidateAndRecordStep(ctx context.Context, req *ScanRequest) (*ScanResult, error) {
	// 형식이 깨진 LOT 번호는 미등록 LOT과 동일하게 조회 실패로 처리
	if _, err := lotid.Decode(req.LotNo); err != nil {
		metrics.ScansTotal.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, req.LotNo)
	}

	step, err := process.ParseStepCode(req.Step)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStep, req.Step)
	}

	order, err := s.orders.GetByLotNo(ctx, req.LotNo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.ScansTotal.WithLabelValues("not_found").Inc()
			return nil, err
		}
		// 저장소 장애를 "이전 공정 없음"으로 해석하면 안 된다
		return nil, fmt.Errorf("fetch work order: %w", err)
	}

	lastLog, err := s.logs.GetLatestByLot(ctx, req.LotNo)
	if err != nil {
		return nil, fmt.Errorf("fetch latest log: %w", err)
	}

	statusInfo := process.ParseStatus(order.Status)

	if statusInfo.Done {
		metrics.ScansTotal.WithLabelValues("sequence_violation").Inc()
		return nil, &process.RejectError{
			Code:    process.RejectSequenceViolation,
			Message: fmt.Sprintf("이미 완료/출고된 제품입니다 (%s)", order.Status),
		}
	}

	// 마지막 공정은 로그가 진실의 원본, 로그가 없으면 상태 칸으로 추정
	last := process.StepWaiting
	if lastLog != nil {
		if li := process.ParseStatus(lastLog.Step); li.Known && !li.Defective && !li.Held {
			last = li.Step
		}
	} else if statusInfo.Known && !statusInfo.Defective && !statusInfo.Held {
		last = statusInfo.Step
	}

	blocked := statusInfo.Defective || statusInfo.Held
	if err := process.CheckTransition(last, blocked, order.Status, step); err != nil {
		if re, ok := process.AsReject(err); ok {
			metrics.ScansTotal.WithLabelValues(string(re.Code)).Inc()
		}
		return nil, err
	}

	now := time.Now()
	log := &entity.ProductionLog{
		ID:        uuid.New().String(),
		LotNo:     req.LotNo,
		Step:      step.StatusText(),
		Data:      req.Data,
		Worker:    req.Worker,
		Result:    entity.ResultOK,
		CreatedAt: now,
	}
	if err := s.logs.Append(ctx, log); err != nil {
		return nil, fmt.Errorf("append production log: %w", err)
	}

	if err := s.orders.UpdateStatusCAS(ctx, req.LotNo, order.Status, step.StatusText()); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			// 다른 세션이 먼저 진행시킨 것. 호출자는 재스캔하면 되고,
			// 재스캔은 방금 쌓인 로그 기준으로 중복 거절된다
			metrics.StatusConflictsTotal.Inc()
			metrics.ScansTotal.WithLabelValues("conflict").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("update status: %w", err)
	}

	metrics.ScansTotal.WithLabelValues("accepted").Inc()
	s.logger.Info("Scan accepted",
		zap.String("lot_no", req.LotNo),
		zap.String("step", step.Code()),
		zap.String("worker", req.Worker),
	)

	order.Status = step.StatusText()
	result := &ScanResult{
		LotNo:  req.LotNo,
		Step:   step.Code(),
		Status: order.Status,
		State:  process.Reduce(order, log),
	}
	if next, ok := process.NextStep(step, order.LaminationSpec != nil); ok {
		result.NextStep = next.Code()
	}
	return result, nil
}
